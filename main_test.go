package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/ajax-example/auth"
	"github.com/danielhkuo/ajax-example/cliparse"
	"github.com/danielhkuo/ajax-example/models"
	"github.com/danielhkuo/ajax-example/store"
)

func TestSplitEnvFile(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantPath string
		wantRest []string
	}{
		{"default", []string{"-p", "8080"}, ".env", []string{"-p", "8080"}},
		{"separate value", []string{"--env-file", "prod.env", "-t", "memory"}, "prod.env", []string{"-t", "memory"}},
		{"equals form", []string{"-d", "x.db", "--env-file=dev.env"}, "dev.env", []string{"-d", "x.db"}},
		{"single dash", []string{"-env-file=a.env"}, "a.env", []string{}},
		{"empty disables", []string{"--env-file="}, "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, rest, err := splitEnvFile(tt.args)
			if err != nil {
				t.Fatalf("splitEnvFile() error = %v", err)
			}
			if path != tt.wantPath {
				t.Errorf("path = %q, want %q", path, tt.wantPath)
			}
			if diff := cmp.Diff(tt.wantRest, rest); diff != "" {
				t.Errorf("rest mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, _, err := splitEnvFile([]string{"--env-file"}); err == nil {
		t.Error("expected error for --env-file without a path")
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "ADMIN_KEY_SALT", "NONCE_SALT", "NONCE_LIFETIME", "CORS_ORIGINS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	path := filepath.Join(t.TempDir(), "test.env")
	content := "ADMIN_KEY_SALT=file-admin\nNONCE_SALT=file-nonce\nDATABASE_TYPE=memory\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig([]string{"--env-file", path, "-p", "9000"})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if cfg.AdminKeySalt != "file-admin" || cfg.NonceSalt != "file-nonce" {
		t.Errorf("salts not loaded from env file: %+v", cfg)
	}
	if cfg.DatabaseType != cliparse.DatabaseMemory {
		t.Errorf("DatabaseType = %q, want memory", cfg.DatabaseType)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
}

func TestOpenStore_SQLite(t *testing.T) {
	cfg := cliparse.Config{
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  filepath.Join(t.TempDir(), "cli.db"),
	}

	st, closeStore, err := openStore(cfg)
	if err != nil {
		t.Fatalf("openStore() error = %v", err)
	}
	defer closeStore()

	if _, ok := st.(*store.SQLStore); !ok {
		t.Errorf("openStore() returned %T, want *store.SQLStore", st)
	}
}

func TestInstallUninstall(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	if err := install(ctx, st); err != nil {
		t.Fatalf("install() error = %v", err)
	}
	// Installed but never written reads as absent
	if _, ok, _ := st.Get(ctx, models.OptionName); ok {
		t.Error("freshly installed option should have no value")
	}
	if added, _ := st.Add(ctx, models.OptionName); added {
		t.Error("option should already exist after install")
	}

	// A second install leaves an existing value alone
	st.Update(ctx, models.OptionName, "kept")
	if err := install(ctx, st); err != nil {
		t.Fatalf("second install() error = %v", err)
	}
	if v, _ := store.GetValue(ctx, st, models.OptionName); v != "kept" {
		t.Errorf("value after reinstall = %q, want kept", v)
	}

	st.Update(ctx, models.WidgetSettingsName, `{"title":"t"}`)
	if err := uninstall(ctx, st); err != nil {
		t.Fatalf("uninstall() error = %v", err)
	}
	for _, name := range []string{models.OptionName, models.WidgetSettingsName} {
		if _, ok, _ := st.Get(ctx, name); ok {
			t.Errorf("%s still present after uninstall", name)
		}
	}

	// Uninstalling twice is not an error
	if err := uninstall(ctx, st); err != nil {
		t.Errorf("second uninstall() error = %v", err)
	}
}

func TestAdminKeyCommand(t *testing.T) {
	t.Setenv("ADMIN_KEY_SALT", "cmd-admin")
	t.Setenv("NONCE_SALT", "cmd-nonce")
	t.Setenv("DATABASE_TYPE", "memory")

	var out bytes.Buffer
	adminKeyCmd.SetOut(&out)
	defer adminKeyCmd.SetOut(nil)

	if err := adminKeyCmd.RunE(adminKeyCmd, []string{"--env-file="}); err != nil {
		t.Fatalf("admin-key error = %v", err)
	}

	want := auth.GenerateAdminKey("cmd-admin") + "\n"
	if out.String() != want {
		t.Errorf("admin-key printed %q, want %q", out.String(), want)
	}
}
