package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	Duration    = 30 * time.Minute
	MinCapacity = 1
	MaxCapacity = 100
)

var (
	ErrInvalidTimeRange = errors.New("slot start must be before its end")
	ErrInvalidDuration  = errors.New("slot must be exactly 30 minutes long")
	ErrInvalidCapacity  = errors.New("capacity must be between 1 and 100")
	ErrMissingOwner     = errors.New("slot owner is required")
)

// Slot is a bookable interval. booked is only ever changed by the ledger
// (claim/release), never through this type.
type Slot struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	startAt   time.Time
	endAt     time.Time
	capacity  int
	booked    int
	createdAt time.Time
	updatedAt time.Time
}

func NewSlot(ownerID uuid.UUID, startAt, endAt time.Time, capacity int, now time.Time) (*Slot, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if !startAt.Before(endAt) {
		return nil, ErrInvalidTimeRange
	}
	if endAt.Sub(startAt) != Duration {
		return nil, ErrInvalidDuration
	}
	if err := ValidateCapacity(capacity); err != nil {
		return nil, err
	}

	now = now.UTC().Truncate(time.Microsecond)
	return &Slot{
		id:        uuid.New(),
		ownerID:   ownerID,
		startAt:   startAt.UTC(),
		endAt:     endAt.UTC(),
		capacity:  capacity,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructSlot(
	id, ownerID uuid.UUID,
	startAt, endAt time.Time,
	capacity, booked int,
	createdAt, updatedAt time.Time,
) *Slot {
	return &Slot{
		id:        id,
		ownerID:   ownerID,
		startAt:   startAt,
		endAt:     endAt,
		capacity:  capacity,
		booked:    booked,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func ValidateCapacity(capacity int) error {
	if capacity < MinCapacity || capacity > MaxCapacity {
		return ErrInvalidCapacity
	}
	return nil
}

// Available never goes below zero even if a stale row reports booked > capacity.
func Available(capacity, booked int) int {
	if booked >= capacity {
		return 0
	}
	return capacity - booked
}

func (s *Slot) HasStarted(now time.Time) bool {
	return !now.Before(s.startAt)
}

func (s *Slot) ID() uuid.UUID        { return s.id }
func (s *Slot) OwnerID() uuid.UUID   { return s.ownerID }
func (s *Slot) StartAt() time.Time   { return s.startAt }
func (s *Slot) EndAt() time.Time     { return s.endAt }
func (s *Slot) Capacity() int        { return s.capacity }
func (s *Slot) Booked() int          { return s.booked }
func (s *Slot) Available() int       { return Available(s.capacity, s.booked) }
func (s *Slot) CreatedAt() time.Time { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time { return s.updatedAt }
