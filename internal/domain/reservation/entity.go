package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrMissingSlot = errors.New("slot is required")

type Reservation struct {
	id          uuid.UUID
	slotID      uuid.UUID
	email       Email
	name        Name
	note        Note
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
	cancelledAt *time.Time
}

// NewReservation builds a BOOKED reservation. createdAt is truncated to
// microseconds so it survives a round trip through timestamptz unchanged.
func NewReservation(slotID uuid.UUID, email Email, name Name, note Note, now time.Time) (*Reservation, error) {
	if slotID == uuid.Nil {
		return nil, ErrMissingSlot
	}
	if email.IsZero() {
		return nil, ErrInvalidEmail
	}
	now = now.UTC().Truncate(time.Microsecond)
	return &Reservation{
		id:        uuid.New(),
		slotID:    slotID,
		email:     email,
		name:      name,
		note:      note,
		status:    StatusBooked,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) SlotID() uuid.UUID    { return r.slotID }
func (r *Reservation) Email() Email         { return r.email }
func (r *Reservation) Name() Name           { return r.name }
func (r *Reservation) Note() Note           { return r.note }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

func (r *Reservation) CancelledAt() *time.Time { return r.cancelledAt }
