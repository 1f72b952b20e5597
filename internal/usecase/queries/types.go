package queries

import (
	"time"

	"consult-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCursor = errs.Sentinel("invalid cursor", errs.ErrValidation)
	ErrInvalidLimit  = errs.Sentinel("limit must be between 1 and 50", errs.ErrValidation)
)

type SlotView struct {
	ID          uuid.UUID
	CounselorID uuid.UUID
	StartAt     time.Time
	EndAt       time.Time
	Capacity    int
	BookedCount int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AvailableCount is derived, never stored.
func (v SlotView) AvailableCount() int {
	if v.BookedCount >= v.Capacity {
		return 0
	}
	return v.Capacity - v.BookedCount
}

// SlotSummary is the slot context attached to reservation reads.
type SlotSummary struct {
	CounselorID uuid.UUID
	StartAt     time.Time
	EndAt       time.Time
}

type ReservationView struct {
	ID          uuid.UUID
	SlotID      uuid.UUID
	Email       string
	Name        string
	Note        *string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CancelledAt *time.Time
	Slot        *SlotSummary
}

type HistoryItem struct {
	ID        uuid.UUID
	SlotID    uuid.UUID
	Email     string
	Name      string
	Status    string
	CreatedAt time.Time
	Slot      SlotSummary
}

// HistoryFilter holds already-normalized values.
type HistoryFilter struct {
	Email  string
	Status *string
}

type HistoryPage struct {
	Items      []*HistoryItem
	NextCursor *string
	HasMore    bool
}

type NotificationJobView struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Attempts  int32
	Status    string
	LastError *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
