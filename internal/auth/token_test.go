package auth_test

import (
	"regexp"
	"testing"

	"github.com/dom/securecart/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken_Shape(t *testing.T) {
	token, err := auth.NewToken()
	require.NoError(t, err)

	// 20 bytes -> 32 lowercase base32 chars, no padding remainder.
	assert.Len(t, token, 32)
	assert.Regexp(t, regexp.MustCompile(`^[a-z2-7]+$`), token)
}

func TestNewToken_Uniqueness(t *testing.T) {
	const n = 1000

	tokens := make(map[string]struct{}, n)
	digests := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		token, err := auth.NewToken()
		require.NoError(t, err)

		if _, dup := tokens[token]; dup {
			t.Fatalf("duplicate token after %d generations", i)
		}
		tokens[token] = struct{}{}

		digest := auth.TokenDigest(token)
		if _, dup := digests[digest]; dup {
			t.Fatalf("duplicate digest after %d generations", i)
		}
		digests[digest] = struct{}{}
	}
}

func TestTokenDigest(t *testing.T) {
	digest := auth.TokenDigest("sometoken")

	assert.Len(t, digest, 64)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]+$`), digest)
	assert.Equal(t, digest, auth.TokenDigest("sometoken"), "digest must be deterministic")
	assert.NotEqual(t, digest, auth.TokenDigest("othertoken"))
	assert.NotContains(t, digest, "sometoken")
}
