package request

import (
	"strings"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	Token  string    `json:"token" binding:"required"`
	SlotID uuid.UUID `json:"slotId" binding:"required"`
	Name   string    `json:"name" binding:"required,max=100"`
	Email  *string   `json:"email,omitempty" binding:"omitempty,max=254"`
	Note   *string   `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// GetEmail treats a blank email as omitted.
func (r CreateReservationRequest) GetEmail() *string {
	if r.Email == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Email)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type CancelReservationRequest struct {
	Token string `json:"token" binding:"required"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=CANCELLED COMPLETED"`
}
