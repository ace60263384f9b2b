// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Drivers

Both drivers are registered by this package:

	conn, err := db.Open(db.DriverSQLite, "ajax-example.db")
	conn, err := db.Open(db.DriverPostgres, "postgres://...")

SQLite connections are limited to one open connection.

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - ajax_option: name (primary key), nullable value, autoload flag,
    updated_at

Two rows are used: ajax_example holds the text submitted from the widget,
widget_ajax_example_widget holds the widget settings as JSON.
*/
package db
