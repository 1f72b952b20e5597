//go:build unit

package token_test

import (
	"encoding/base64"
	"testing"

	"consult-booking/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		tok, err := token.Generate()
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(tok)
		require.NoError(t, err)
		assert.Len(t, raw, 32)

		_, dup := seen[tok]
		assert.False(t, dup, "token generated twice: %s", tok)
		seen[tok] = struct{}{}
	}
}
