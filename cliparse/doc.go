// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(args)

LoadEnvFile reads a .env file into the environment first, so values there
behave like exported variables:

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		return err
	}

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite, postgres or memory (default: sqlite)
  - DatabaseURL: sqlite file path (default: ajax-example.db) or PostgreSQL URL (required for postgres)
  - AdminKeySalt: Secret for admin key HMAC (required)
  - NonceSalt: Secret for nonce HMAC (required)
  - NonceLifetime: How long a page's nonce stays valid (default: 24h)

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	--nonce-lifetime Nonce lifetime
	--admin-salt     Admin key salt
	--nonce-salt     Nonce salt

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	NONCE_LIFETIME → --nonce-lifetime
	ADMIN_KEY_SALT → --admin-salt
	NONCE_SALT     → --nonce-salt

CLI flags take precedence over environment variables.
*/
package cliparse
