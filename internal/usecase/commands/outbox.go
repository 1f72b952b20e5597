package commands

import (
	"context"
	"encoding/json"
	"time"

	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	jobKindEmail = "email"

	TopicReservationCreated   = "reservation_created"
	TopicReservationCancelled = "reservation_cancelled"
	TopicInvitationCreated    = "invitation_created"
)

type reservationEvent struct {
	ReservationID uuid.UUID `json:"reservationId"`
	SlotID        uuid.UUID `json:"slotId"`
	Email         string    `json:"email"`
}

type invitationEvent struct {
	CounselorID uuid.UUID `json:"counselorId"`
	Email       string    `json:"email"`
	BookingURL  string    `json:"bookingUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// enqueue writes an outbox row in tx; it commits or rolls back with the change it announces.
func enqueue(ctx context.Context, tx shared.Tx, topic string, event any, runAt time.Time) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode outbox payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), jobKindEmail, topic, payload, runAt)
}
