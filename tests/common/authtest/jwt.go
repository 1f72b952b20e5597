//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"consult-booking/internal/pkg/config"
	"consult-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper issues counselor tokens for tests; the service only validates them.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, counselorID uuid.UUID, email string) string {
	t.Helper()
	ttl, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return h.issue(t, ttl, counselorID, email)
}

// CreateExpiredToken returns a token that expired a minute ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, counselorID uuid.UUID, email string) string {
	t.Helper()
	return h.issue(t, -time.Minute, counselorID, email)
}

// AccessCookie carries a valid token the way a browser session does.
func (h *JWTHelper) AccessCookie(t *testing.T, counselorID uuid.UUID, email string) *http.Cookie {
	t.Helper()
	return &http.Cookie{Name: "access_token", Value: h.GenerateToken(t, counselorID, email)}
}

func (h *JWTHelper) issue(t *testing.T, ttl time.Duration, counselorID uuid.UUID, email string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, ttl).GenerateToken(counselorID, email)
	require.NoError(t, err)
	return token
}
