// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/ajax-example/auth"
	"github.com/danielhkuo/ajax-example/cliparse"
	"github.com/danielhkuo/ajax-example/db"
	"github.com/danielhkuo/ajax-example/models"
	"github.com/danielhkuo/ajax-example/store"
)

// SetupTestDB creates a fresh SQLite database with the full schema.
// The file lives in the test's temp dir and is closed on cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore returns an option store backed by a fresh test database
func SetupTestStore(t *testing.T) store.OptionStore {
	t.Helper()
	return store.NewSQLStore(SetupTestDB(t), db.DriverSQLite)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseType:  cliparse.DatabaseSQLite,
		AdminKeySalt:  "test-admin-salt",
		NonceSalt:     "test-nonce-salt",
		NonceLifetime: auth.DefaultNonceLifetime,
	}
}

// AdminKey returns the valid admin key for cfg
func AdminKey(cfg cliparse.Config) string {
	return auth.GenerateAdminKey(cfg.AdminKeySalt)
}

// Nonce mints a nonce for userID that is valid right now
func Nonce(cfg cliparse.Config, userID string) string {
	return auth.CreateNonce(models.NonceAction, userID, cfg.NonceSalt, time.Now(), cfg.NonceLifetime)
}

// SetOption writes an option directly, bypassing the handlers
func SetOption(t *testing.T, st store.OptionStore, name, value string) {
	t.Helper()
	if _, err := st.Update(context.Background(), name, value); err != nil {
		t.Fatalf("Failed to set option %s: %v", name, err)
	}
}

// GetOption reads an option directly; ok is false if it has no value
func GetOption(t *testing.T, st store.OptionStore, name string) (value string, ok bool) {
	t.Helper()
	opt, ok, err := st.Get(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to get option %s: %v", name, err)
	}
	return opt.Value, ok
}

// MakeAjaxRequest creates a POST to the AJAX endpoint with the three
// top-level fields the client script sends
func MakeAjaxRequest(action, security, data string, headers map[string]string) *http.Request {
	body := url.Values{}
	body.Set("action", action)
	body.Set("security", security)
	body.Set("data", data)

	return MakeFormRequest("POST", "/admin-ajax", body, headers)
}

// MakeFormRequest creates a form-encoded HTTP test request
func MakeFormRequest(method, path string, body url.Values, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AdminHeaders returns request headers carrying the admin key
func AdminHeaders(cfg cliparse.Config) map[string]string {
	return map[string]string{auth.AdminHeader: AdminKey(cfg)}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
