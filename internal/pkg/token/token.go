package token

import (
	"crypto/rand"
	"encoding/base64"

	"consult-booking/internal/pkg/errs"
)

const byteLength = 32

// Generate returns an opaque URL-safe token with 256 bits of entropy.
func Generate() (string, error) {
	buf := make([]byte, byteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to read random bytes")
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
