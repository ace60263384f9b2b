// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Ajax Example server.

Ajax Example demonstrates one AJAX round trip: a public widget posts a line of
text, and the admin options page either reads that text back or echoes its own
form. Every request carries a nonce minted into the page that rendered it.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	ADMIN_KEY_SALT=... NONCE_SALT=... go run .

Or with flags:

	go run . serve -p 3318 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first; --env-file picks
another one.

# Commands

  - serve (default): create schema, register the option, listen
  - install: create schema and register the option
  - uninstall: remove the option and widget settings
  - admin-key: print the admin key

# Configuration

Required settings:

  - ADMIN_KEY_SALT (--admin-salt): Secret for admin key HMAC
  - NONCE_SALT (--nonce-salt): Secret for nonce HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or memory (default: sqlite)
  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
  - NONCE_LIFETIME (--nonce-lifetime): default 24h
  - CORS_ORIGINS (--cors-origins): origins allowed cross-site (default: none)

# Architecture

  - handlers: AJAX dispatcher, form parsing, pages and client script
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON and form helpers
  - models: Form and response types
  - auth: Admin key and nonce generation and validation
  - store: Option persistence (SQL or memory)
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
