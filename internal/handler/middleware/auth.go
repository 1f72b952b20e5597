package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"consult-booking/internal/handler/httperr"
	"consult-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxCounselorIDKey = "counselor_id"
	accessTokenCookie = "access_token"
	bearerPrefix      = "Bearer "
)

// AuthMiddleware guards the counselor surface. Clients never pass through it;
// their access is carried by invite and reservation tokens.
type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokenValidator: tokenValidator}
}

// RequireAuth accepts the access_token cookie or a Bearer header, cookie first.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := accessToken(c)
		if raw == "" {
			httperr.AbortWithCode(c, http.StatusUnauthorized, nil, "UNAUTHENTICATED", "Access token required", nil)
			return
		}

		counselorID, _, err := m.tokenValidator.ValidateToken(raw)
		if err != nil {
			slog.Debug("counselor token rejected", "error", err.Error(), "path", c.Request.URL.Path)
			httperr.AbortWithCode(c, http.StatusUnauthorized, err, "UNAUTHENTICATED", "Invalid or expired token", nil)
			return
		}

		c.Set(ctxCounselorIDKey, counselorID)
		c.Next()
	}
}

func accessToken(c *gin.Context) string {
	if t, err := c.Cookie(accessTokenCookie); err == nil && t != "" {
		return t
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
	}
	return ""
}

// GetCounselorID is false outside the admin group.
func GetCounselorID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ctxCounselorIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}
