//go:build unit || e2e

package builder

import (
	"time"

	"consult-booking/internal/domain/slot"
	reqdto "consult-booking/internal/handler/dto/request"
	"consult-booking/internal/usecase/queries"
	"consult-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	ID          uuid.UUID
	CounselorID uuid.UUID
	StartAt     time.Time
	Capacity    int
	Booked      int
	CreatedAt   time.Time
}

func NewSlotBuilder() *SlotBuilder {
	now := time.Now().UTC().Truncate(time.Minute)
	return &SlotBuilder{
		ID:          uuid.New(),
		CounselorID: uuid.New(),
		StartAt:     now.Add(48 * time.Hour),
		Capacity:    3,
		CreatedAt:   now,
	}
}

func (s *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(s)
	return s
}

func (s *SlotBuilder) EndAt() time.Time {
	return s.StartAt.Add(slot.Duration)
}

func (s *SlotBuilder) BuildCreateRequestDTO() reqdto.CreateSlotRequest {
	capacity := s.Capacity
	return reqdto.CreateSlotRequest{StartAt: s.StartAt, EndAt: s.EndAt(), Capacity: &capacity}
}

func (s *SlotBuilder) BuildDomain() (*slot.Slot, error) {
	return slot.NewSlot(s.CounselorID, s.StartAt, s.EndAt(), s.Capacity, s.CreatedAt)
}

func (s *SlotBuilder) BuildSnapshot() *shared.SlotSnapshot {
	return &shared.SlotSnapshot{
		ID:        s.ID,
		OwnerID:   s.CounselorID,
		StartAt:   s.StartAt,
		EndAt:     s.EndAt(),
		Capacity:  s.Capacity,
		Booked:    s.Booked,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.CreatedAt,
	}
}

func (s *SlotBuilder) BuildView() *queries.SlotView {
	return &queries.SlotView{
		ID:          s.ID,
		CounselorID: s.CounselorID,
		StartAt:     s.StartAt,
		EndAt:       s.EndAt(),
		Capacity:    s.Capacity,
		BookedCount: s.Booked,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.CreatedAt,
	}
}
