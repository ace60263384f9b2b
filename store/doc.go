// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists named option values.

# OptionStore

Handlers depend on the OptionStore interface rather than a database:

	st := store.NewSQLStore(conn, db.DriverSQLite)
	ok, err := st.Update(ctx, models.OptionName, "hello")
	value, err := store.GetValue(ctx, st, models.OptionName)

Update is an upsert: the last writer wins and there is no versioning.
Add creates an option with no value (used on install), Delete removes it
(used on uninstall). Get reports an option with no value as absent.

# Implementations

  - SQLStore: the ajax_option table, SQLite or PostgreSQL
  - Memory: a mutex-guarded map, for tests and DATABASE_TYPE=memory
*/
package store
