// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// DefaultNonceLifetime matches a day; a nonce stays valid for between
// half a lifetime and a full lifetime.
const DefaultNonceLifetime = 24 * time.Hour

// NonceTick returns the time window now falls in.
// Each window is half a lifetime long.
func NonceTick(now time.Time, lifetime time.Duration) int64 {
	if lifetime <= 0 {
		lifetime = DefaultNonceLifetime
	}
	half := int64(lifetime/time.Second) / 2
	if half < 1 {
		half = 1
	}
	unix := now.Unix()
	// ceil(unix / half)
	tick := unix / half
	if unix%half != 0 {
		tick++
	}
	return tick
}

// CreateNonce mints a nonce for action and user at time now
func CreateNonce(action, userID, salt string, now time.Time, lifetime time.Duration) string {
	return nonceForTick(NonceTick(now, lifetime), action, userID, salt)
}

// VerifyNonce checks a nonce minted by CreateNonce.
// It returns 1 when the nonce was minted in the current window and 2 when
// it was minted in the previous one.
func VerifyNonce(nonce, action, userID, salt string, now time.Time, lifetime time.Duration) (int, error) {
	if nonce == "" {
		return 0, ErrInvalidNonce
	}
	tick := NonceTick(now, lifetime)

	if hmac.Equal([]byte(nonce), []byte(nonceForTick(tick, action, userID, salt))) {
		return 1, nil
	}
	if hmac.Equal([]byte(nonce), []byte(nonceForTick(tick-1, action, userID, salt))) {
		return 2, nil
	}
	return 0, ErrInvalidNonce
}

func nonceForTick(tick int64, action, userID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(strconv.FormatInt(tick, 10) + "|" + action + "|" + userID))
	sum := hex.EncodeToString(h.Sum(nil))
	// 10 chars taken from near the end of the digest
	return sum[len(sum)-12 : len(sum)-2]
}
