package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/ajax-example/auth"
)

// Supported database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseMemory   = "memory"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	AdminKeySalt  string
	NonceSalt     string
	NonceLifetime time.Duration

	// AllowedOrigins may make credentialed cross-origin requests
	AllowedOrigins []string
}

// LoadEnvFile loads KEY=value pairs from path into the environment.
// Variables already set are left alone. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var lifetime string
	var origins string

	fs := flag.NewFlagSet("ajax-example", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite file path or postgres URL)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or memory)")
	fs.StringVar(&lifetime, "nonce-lifetime", "", "Nonce lifetime, e.g. 24h")
	fs.StringVar(&origins, "cors-origins", "", "Comma-separated origins allowed to call the server cross-site")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")
	fs.StringVar(&cfg.NonceSalt, "nonce-salt", "", "Nonce salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres, DatabaseMemory:
	default:
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		switch cfg.DatabaseType {
		case DatabaseSQLite:
			cfg.DatabaseURL = "ajax-example.db"
		case DatabasePostgres:
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	}

	if lifetime == "" {
		lifetime = os.Getenv("NONCE_LIFETIME")
	}
	cfg.NonceLifetime = auth.DefaultNonceLifetime
	if lifetime != "" {
		d, err := time.ParseDuration(lifetime)
		if err != nil || d <= 0 {
			return Config{}, errors.New("invalid nonce lifetime")
		}
		cfg.NonceLifetime = d
	}

	if origins == "" {
		origins = os.Getenv("CORS_ORIGINS")
	}
	cfg.AllowedOrigins = splitOrigins(origins)

	// Secrets - MUST be provided
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	if cfg.NonceSalt == "" {
		cfg.NonceSalt = os.Getenv("NONCE_SALT")
	}
	if cfg.NonceSalt == "" {
		return Config{}, errors.New("NONCE_SALT required")
	}

	return cfg, nil
}

// splitOrigins parses a comma-separated origin list, dropping blanks and
// trailing slashes
func splitOrigins(list string) []string {
	var origins []string
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimSuffix(strings.TrimSpace(o), "/")
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
