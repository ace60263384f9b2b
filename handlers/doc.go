// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers for the AJAX endpoint and the
pages that post to it.

# Handler Types

Each handler is a struct with store and config dependencies:

  - AjaxHandler: the server dispatcher behind POST /admin-ajax
  - PageHandler: admin options page, widget page, widget settings

	ajaxHandler := handlers.NewAjaxHandler(st, cfg)

# AJAX Flow

The client script (static/ajax-example.js) posts three form fields:

	action   = ajax_example_widget
	security = <nonce from the page>
	data     = caller=ajax-example-widget&example-data=hello

Handle then:

 1. Rejects unknown actions, and admin-only actions from anonymous
    visitors, with 400 and body "0"
 2. Verifies the nonce; on failure answers {"message":"DOING IT WRONG!"}
 3. Parses data with ParseFormData
 4. Runs the branch registered for the form's caller
 5. Writes an AjaxResponse

# Callers

	ajax-example-widget → saves example-data; status passed if the write succeeded
	admin-options       → echoes the form as a print_r-style <pre> block
	update-widget-text  → returns the saved text

Any other caller is logged and answered with the submitted values.

# Output

Stored and submitted output is returned exactly as it was saved or posted.
The admin-options dump is the one thing built here: a <pre> block with
escaped fields for the page, or plain print_r text when print_where is alert.

# Pages

	GET  /admin        → AdminPage (admin key; ?key= sets the cookie)
	GET  /widget       → WidgetPage
	POST /admin/widget → UpdateWidget (title, tags stripped)
*/
package handlers
