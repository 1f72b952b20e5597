package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read-side query types.
type SlotSnapshot struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	StartAt   time.Time
	EndAt     time.Time
	Capacity  int
	Booked    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ReservationSnapshot struct {
	ID          uuid.UUID
	SlotID      uuid.UUID
	Email       string
	Name        string
	Note        *string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CancelledAt *time.Time
}

type ReservationTokenSnapshot struct {
	ReservationID uuid.UUID
	Token         string
	ExpiresAt     time.Time
}
