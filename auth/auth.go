// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

// InboxScope is the scope the inbox admin key is derived for.
const InboxScope = "inbox"

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrNoSalt          = errors.New("admin key salt not configured")
)

// GenerateAdminKey derives the admin key for scope from salt.
// The same scope and salt always produce the same key.
func GenerateAdminKey(scope, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(scope))
	sum := h.Sum(nil)
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks adminKey against the key derived for scope.
// An empty salt disables admin access entirely.
func ValidateAdminKey(scope, adminKey, salt string) error {
	if salt == "" {
		return ErrNoSalt
	}
	expected := GenerateAdminKey(scope, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
func HashIP(ip, salt string) string {
	if ip == "" {
		return ""
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// first 16 hex chars
	return hex.EncodeToString(sum[:8])
}
