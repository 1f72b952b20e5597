package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// InviteTokenRM is a stored invite token as the gate reads it.
type InviteTokenRM struct {
	Token       string
	CounselorID uuid.UUID
	ClientEmail string
	ExpiresAt   time.Time
}
