// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Ajax Example server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

AJAX (form-encoded action, security, data):

	POST /admin-ajax

Pages:

	GET  /admin        - Options page (admin key via header, cookie or ?key=)
	POST /admin/widget - Save widget title
	GET  /widget       - Public widget

Client script:

	GET /static/ajax-example.js

# Handler Initialization

Both handlers share the option store and configuration:

	ajaxHandler := handlers.NewAjaxHandler(st, cfg)
	pageHandler := handlers.NewPageHandler(st, cfg)
*/
package router
