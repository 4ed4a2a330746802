package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"time"
)

// SessionLifetime bounds every session; there is no renewal, each sign-in
// issues a brand-new token.
const SessionLifetime = 30 * 24 * time.Hour

// tokenBytes is 160 bits of entropy, the floor for a long-lived bearer
// credential.
const tokenBytes = 20

var lowerBase32 = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567")

// NewToken returns a fresh opaque bearer token: 20 random bytes encoded
// as lowercase padded base32, safe for cookies and URLs.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return lowerBase32.EncodeToString(b), nil
}

// TokenDigest maps a raw bearer token to the identifier stored server-side.
// Only this digest is ever persisted.
func TokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
