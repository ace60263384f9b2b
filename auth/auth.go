// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrInvalidNonce    = errors.New("invalid nonce")
)

// AdminCookie holds the admin key for browser sessions
const AdminCookie = "ajax_example_admin"

// AdminHeader holds the admin key for API clients
const AdminHeader = "X-Admin-Key"

const adminKeyName = "ajax_example_admin"

// GenerateAdminKey creates the HMAC-based admin key for this install
// This is deterministic and verifiable
func GenerateAdminKey(salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(adminKeyName))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks if the provided admin key is valid
func ValidateAdminKey(adminKey, salt string) error {
	if adminKey == "" {
		return ErrInvalidAdminKey
	}
	expected := GenerateAdminKey(salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// AdminKeyFromRequest returns the admin key carried by r, header first
func AdminKeyFromRequest(r *http.Request) string {
	if key := r.Header.Get(AdminHeader); key != "" {
		return key
	}
	if c, err := r.Cookie(AdminCookie); err == nil {
		return c.Value
	}
	return ""
}

// UserID returns "admin" for requests carrying a valid admin key and ""
// for anonymous visitors. Nonces are scoped to this value.
func UserID(r *http.Request, salt string) string {
	if ValidateAdminKey(AdminKeyFromRequest(r), salt) == nil {
		return AdminUser
	}
	return AnonymousUser
}

const (
	AdminUser     = "admin"
	AnonymousUser = ""
)
