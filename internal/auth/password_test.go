package auth_test

import (
	"strings"
	"testing"

	"github.com/dom/securecart/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	passwords := []string{
		"Secret123",
		"",
		"a",
		"correct horse battery staple",
		"pässwörd with ünicode 🔒",
		strings.Repeat("x", 1024),
	}

	for _, pw := range passwords {
		encoded, err := auth.HashPassword(pw)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"), "unexpected encoding: %s", encoded)
		assert.True(t, auth.VerifyPassword(pw, encoded))
		assert.False(t, auth.VerifyPassword(pw+"x", encoded))
	}
}

func TestHashPassword_NoPlaintext(t *testing.T) {
	const pw = "correct horse battery staple"

	encoded, err := auth.HashPassword(pw)
	require.NoError(t, err)
	assert.NotContains(t, encoded, pw, "plaintext must not appear in the hash")
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	first, err := auth.HashPassword("Secret123")
	require.NoError(t, err)
	second, err := auth.HashPassword("Secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password must differ by salt")
	assert.True(t, auth.VerifyPassword("Secret123", first))
	assert.True(t, auth.VerifyPassword("Secret123", second))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	malformed := []string{
		"",
		"not a hash",
		"$argon2id$v=19$m=65536,t=1,p=4$",
		"$argon2id$v=19$m=65536,t=1,p=4$salt",
		"$argon2id$v=19$m=65536,t=1,p=4$!!notb64!!$!!notb64!!",
		"$argon2i$v=19$m=65536,t=1,p=4$c29tZXNhbHQ$c29tZWRpZ2VzdA",
		"$argon2id$v=18$m=65536,t=1,p=4$c29tZXNhbHQ$c29tZWRpZ2VzdA",
		"$argon2id$v=19$m=0,t=0,p=0$c29tZXNhbHQ$c29tZWRpZ2VzdA",
		"$argon2id$v=19$m=junk$c29tZXNhbHQ$c29tZWRpZ2VzdA",
	}

	for _, encoded := range malformed {
		assert.False(t, auth.VerifyPassword("Secret123", encoded), "malformed hash verified: %q", encoded)
	}
}

func TestVerifyPassword_EmbeddedParams(t *testing.T) {
	// Verification must honor the parameters embedded in the string, not
	// the package defaults: bumping the embedded time cost changes the
	// recomputed digest.
	encoded, err := auth.HashPassword("Secret123")
	require.NoError(t, err)

	tweaked := strings.Replace(encoded, "m=65536,t=1", "m=65536,t=2", 1)
	assert.False(t, auth.VerifyPassword("Secret123", tweaked),
		"changing embedded work factor must invalidate the digest")
}
