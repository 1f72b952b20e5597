//go:build unit

package api_test

import (
	"errors"
	"net/http"

	"consult-booking/internal/domain/invitation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnexpected = errors.New("connection reset")

// mockAuth stands in for RequireAuth: any Authorization header authenticates
// as counselorID.
func mockAuth(counselorID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		c.Set("counselor_id", counselorID)
		c.Next()
	}
}

func ptr[T any](v T) *T { return &v }

var invitationScope = invitation.Scope{OwnerID: uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2")}
