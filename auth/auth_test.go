// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGenerateAdminKey(t *testing.T) {
	tests := []struct {
		name string
		salt string
	}{
		{"standard", "secret-salt"},
		{"empty salt", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateAdminKey(tt.salt)

			if key == "" {
				t.Error("GenerateAdminKey() returned empty string")
			}

			// Should be deterministic
			if key != GenerateAdminKey(tt.salt) {
				t.Error("GenerateAdminKey() is not deterministic")
			}

			if key == GenerateAdminKey(tt.salt+"x") {
				t.Error("GenerateAdminKey() produced same key for different salts")
			}

			// Should be URL-safe (no padding)
			if strings.Contains(key, "=") {
				t.Error("GenerateAdminKey() contains padding characters")
			}
		})
	}
}

func TestValidateAdminKey(t *testing.T) {
	salt := "test-salt"
	validKey := GenerateAdminKey(salt)

	tests := []struct {
		name     string
		adminKey string
		salt     string
		wantErr  bool
	}{
		{"valid key", validKey, salt, false},
		{"wrong key", "wrong-key", salt, true},
		{"wrong salt", validKey, "different-salt", true},
		{"empty key", "", salt, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.adminKey, tt.salt)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAdminKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidAdminKey {
				t.Errorf("ValidateAdminKey() error = %v, want %v", err, ErrInvalidAdminKey)
			}
		})
	}
}

func TestUserID(t *testing.T) {
	salt := "test-salt"
	key := GenerateAdminKey(salt)

	tests := []struct {
		name  string
		setup func(r *http.Request)
		want  string
	}{
		{"anonymous", func(r *http.Request) {}, AnonymousUser},
		{"header", func(r *http.Request) { r.Header.Set(AdminHeader, key) }, AdminUser},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: AdminCookie, Value: key}) }, AdminUser},
		{"bad header", func(r *http.Request) { r.Header.Set(AdminHeader, "nope") }, AnonymousUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/admin-ajax", nil)
			tt.setup(req)
			if got := UserID(req, salt); got != tt.want {
				t.Errorf("UserID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNonceTick(t *testing.T) {
	lifetime := 24 * time.Hour
	half := int64(12 * 60 * 60)

	tests := []struct {
		name string
		unix int64
		want int64
	}{
		{"window boundary", half * 10, 10},
		{"just past boundary", half*10 + 1, 11},
		{"end of window", half * 11, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NonceTick(time.Unix(tt.unix, 0), lifetime)
			if got != tt.want {
				t.Errorf("NonceTick() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCreateNonce(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	nonce := CreateNonce("ajax_example", "admin", "salt", now, DefaultNonceLifetime)

	if len(nonce) != 10 {
		t.Errorf("CreateNonce() length = %d, want 10", len(nonce))
	}
	if nonce != CreateNonce("ajax_example", "admin", "salt", now, DefaultNonceLifetime) {
		t.Error("CreateNonce() is not deterministic within a window")
	}
	if nonce == CreateNonce("ajax_example", "", "salt", now, DefaultNonceLifetime) {
		t.Error("CreateNonce() produced same nonce for different users")
	}
	if nonce == CreateNonce("other", "admin", "salt", now, DefaultNonceLifetime) {
		t.Error("CreateNonce() produced same nonce for different actions")
	}
}

func TestVerifyNonce(t *testing.T) {
	lifetime := 24 * time.Hour
	minted := time.Unix(1_700_000_000, 0)
	nonce := CreateNonce("ajax_example", "", "salt", minted, lifetime)

	tests := []struct {
		name    string
		nonce   string
		action  string
		user    string
		salt    string
		at      time.Time
		want    int
		wantErr bool
	}{
		{"same window", nonce, "ajax_example", "", "salt", minted, 1, false},
		{"previous window", nonce, "ajax_example", "", "salt", minted.Add(12 * time.Hour), 2, false},
		{"expired", nonce, "ajax_example", "", "salt", minted.Add(25 * time.Hour), 0, true},
		{"wrong action", nonce, "other", "", "salt", minted, 0, true},
		{"wrong user", nonce, "ajax_example", "admin", "salt", minted, 0, true},
		{"wrong salt", nonce, "ajax_example", "", "pepper", minted, 0, true},
		{"empty", "", "ajax_example", "", "salt", minted, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerifyNonce(tt.nonce, tt.action, tt.user, tt.salt, tt.at, lifetime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("VerifyNonce() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidNonce {
				t.Errorf("VerifyNonce() error = %v, want %v", err, ErrInvalidNonce)
			}
			if got != tt.want {
				t.Errorf("VerifyNonce() = %d, want %d", got, tt.want)
			}
		})
	}
}
