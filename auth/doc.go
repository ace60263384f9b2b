// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin keys and request nonces.

# Admin Key

The admin key uses HMAC-SHA256 over a fixed name:

	adminKey := auth.GenerateAdminKey(salt)
	err := auth.ValidateAdminKey(adminKey, salt)

It is deterministic, so it never needs to be stored. Browsers carry it in
the ajax_example_admin cookie, API clients in the X-Admin-Key header.
UserID maps a request to "admin" or to the anonymous user "".

# Nonces

Every page embeds a nonce minted for the ajax_example namespace and the
current user:

	nonce := auth.CreateNonce(models.NonceAction, uid, salt, time.Now(), lifetime)

Time is cut into windows of half a lifetime. VerifyNonce accepts a nonce
from the current window (returns 1) or the previous one (returns 2):

	n, err := auth.VerifyNonce(nonce, models.NonceAction, uid, salt, time.Now(), lifetime)

A nonce is 10 hex characters of HMAC-SHA256(salt, "tick|action|user").
*/
package auth
