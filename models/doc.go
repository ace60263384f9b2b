// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the AJAX endpoint.

# Request Types

  - FormRequest: the parsed `data` field of an AJAX post, with ordered
    fields and typed accessors (action, caller, print_output, print_where,
    output, status, example-data)
  - Field: a single name/value pair

Defaults for fields the form did not submit:

	action       = ""
	caller       = ""
	print_output = "no"
	print_where  = ""
	output       = ""
	status       = "failed"

# Response Types

  - AjaxResponse: caller, status, print_output, print_where, output
  - MessageResponse: message (authentication failure)
  - ErrorResponse: error, message (malformed transport)

# Constants

Callers:

	CallerWidget           = "ajax-example-widget"
	CallerAdminOptions     = "admin-options"
	CallerUpdateWidgetText = "update-widget-text"

Actions:

	ActionAdminOptions     = "ajax_example_admin_options"
	ActionUpdateWidgetText = "ajax_example_update_widget_text"
	ActionWidget           = "ajax_example_widget"

Option names:

	OptionName         = "ajax_example"
	WidgetSettingsName = "widget_ajax_example_widget"
*/
package models
