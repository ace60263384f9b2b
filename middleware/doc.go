// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(duration_ms). The request id is taken from X-Request-ID or generated as a
UUID, and echoed back in the X-Request-ID response header.

# CORS Middleware

Enable credentialed cross-origin requests for configured origins only
(CORS_ORIGINS or -cors-origins):

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigins)(mux),
	}

A listed origin is echoed with methods GET, POST, OPTIONS and headers
Content-Type, X-Admin-Key, X-Request-ID. Any other origin gets no CORS
headers.

# Response Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.TextResponse(w, http.StatusBadRequest, "0")

# Form Bodies

Parse a form-encoded body (capped at MaxFormBytes):

	values, err := middleware.ParseFormBody(w, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form body")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Logged with every request.
*/
package middleware
