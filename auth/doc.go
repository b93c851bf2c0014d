// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the admin key check and IP hashing used by the inbox.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	key := auth.GenerateAdminKey(auth.InboxScope, salt)
	err := auth.ValidateAdminKey(auth.InboxScope, key, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the operator can print it with the -print-admin-key flag and nothing is
stored. With no salt configured every key is rejected with ErrNoSalt.

# IP Hashing

Client IPs are stored only as a salted HMAC:

	hash := auth.HashIP(ip, salt)

The result is 16 hex characters, enough to spot repeat submitters without
keeping the address. An empty IP hashes to the empty string.
*/
package auth
