// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/ajax-example/cliparse"
	"github.com/danielhkuo/ajax-example/handlers"
	"github.com/danielhkuo/ajax-example/middleware"
	"github.com/danielhkuo/ajax-example/store"
)

func NewRouter(st store.OptionStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	ajaxHandler := handlers.NewAjaxHandler(st, cfg)
	pageHandler := handlers.NewPageHandler(st, cfg)
	static := http.FileServerFS(handlers.StaticFiles())

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// AJAX endpoint (every action posts here)
	mux.HandleFunc("POST "+handlers.AjaxPath, middleware.WithLogging(ajaxHandler.Handle))

	// Pages that embed the client script
	mux.HandleFunc("GET /admin", middleware.WithLogging(pageHandler.AdminPage))
	mux.HandleFunc("POST /admin/widget", middleware.WithLogging(pageHandler.UpdateWidget))
	mux.HandleFunc("GET /widget", middleware.WithLogging(pageHandler.WidgetPage))

	// Client script
	mux.HandleFunc("GET /static/", middleware.WithLogging(static.ServeHTTP))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ajax-example v1"))
	})

	return mux
}
