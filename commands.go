package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/ajax-example/auth"
	"github.com/danielhkuo/ajax-example/cliparse"
	"github.com/danielhkuo/ajax-example/db"
	"github.com/danielhkuo/ajax-example/middleware"
	"github.com/danielhkuo/ajax-example/models"
	"github.com/danielhkuo/ajax-example/router"
	"github.com/danielhkuo/ajax-example/store"
)

// defaultEnvFile is read before flags and environment, when it exists
const defaultEnvFile = ".env"

var serveCmd = &cobra.Command{
	Use:                "serve [flags]",
	Short:              "Run the HTTP server (default)",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(args)
	},
}

var installCmd = &cobra.Command{
	Use:                "install [flags]",
	Short:              "Create the schema and register the option",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(args, func(ctx context.Context, st store.OptionStore, _ cliparse.Config) error {
			return install(ctx, st)
		})
	},
}

var uninstallCmd = &cobra.Command{
	Use:                "uninstall [flags]",
	Short:              "Remove the option and the widget settings",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(args, func(ctx context.Context, st store.OptionStore, _ cliparse.Config) error {
			return uninstall(ctx, st)
		})
	},
}

var adminKeyCmd = &cobra.Command{
	Use:                "admin-key [flags]",
	Short:              "Print the admin key for the configured salt",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), auth.GenerateAdminKey(cfg.AdminKeySalt))
		return nil
	},
}

// splitEnvFile pulls --env-file out of args and returns the remaining
// flags for cliparse
func splitEnvFile(args []string) (string, []string, error) {
	path := defaultEnvFile
	rest := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--env-file" || arg == "-env-file":
			if i+1 >= len(args) {
				return "", nil, fmt.Errorf("%s requires a path", arg)
			}
			path = args[i+1]
			i++
		case strings.HasPrefix(arg, "--env-file="):
			path = strings.TrimPrefix(arg, "--env-file=")
		case strings.HasPrefix(arg, "-env-file="):
			path = strings.TrimPrefix(arg, "-env-file=")
		default:
			rest = append(rest, arg)
		}
	}

	return path, rest, nil
}

func loadConfig(args []string) (cliparse.Config, error) {
	envFile, rest, err := splitEnvFile(args)
	if err != nil {
		return cliparse.Config{}, err
	}
	if err := cliparse.LoadEnvFile(envFile); err != nil {
		return cliparse.Config{}, err
	}
	return cliparse.ParseFlags(rest)
}

// openStore connects to the configured backend and makes sure the schema
// exists. The returned close func must always be called.
func openStore(cfg cliparse.Config) (store.OptionStore, func() error, error) {
	var driver string
	switch cfg.DatabaseType {
	case cliparse.DatabaseMemory:
		return store.NewMemory(), func() error { return nil }, nil
	case cliparse.DatabasePostgres:
		driver = db.DriverPostgres
	default:
		driver = db.DriverSQLite
	}

	conn, err := db.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("schema creation failed: %w", err)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	return store.NewSQLStore(conn, driver), conn.Close, nil
}

func withStore(args []string, fn func(context.Context, store.OptionStore, cliparse.Config) error) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	st, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	return fn(context.Background(), st, cfg)
}

// install registers the option with no value. Running it twice is harmless.
func install(ctx context.Context, st store.OptionStore) error {
	added, err := st.Add(ctx, models.OptionName)
	if err != nil {
		return fmt.Errorf("failed to add option: %w", err)
	}
	slog.Info("install complete", "option", models.OptionName, "added", added)
	return nil
}

func uninstall(ctx context.Context, st store.OptionStore) error {
	for _, name := range []string{models.OptionName, models.WidgetSettingsName} {
		deleted, err := st.Delete(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to delete %s: %w", name, err)
		}
		slog.Info("option removed", "option", name, "deleted", deleted)
	}
	return nil
}

func runServe(args []string) error {
	return withStore(args, func(ctx context.Context, st store.OptionStore, cfg cliparse.Config) error {
		// Activation runs on every start
		if err := install(ctx, st); err != nil {
			return err
		}

		mux := router.NewRouter(st, cfg)

		server := http.Server{
			Handler: middleware.CORS(cfg.AllowedOrigins)(mux),
			Addr:    ":" + strconv.Itoa(cfg.Port),
		}

		// signal.Notify requires the channel to be buffered
		ctrlc := make(chan os.Signal, 1)
		signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(ctrlc)
		go func() {
			// Wait for Ctrl-C signal
			<-ctrlc
			server.Close()
		}()

		slog.Info("Listening", "port", cfg.Port, "database", cfg.DatabaseType)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server closed", "error", err)
			return err
		}
		slog.Info("Server closed", "error", err)
		return nil
	})
}
