package response

import (
	"time"

	"consult-booking/internal/domain/slot"
	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/queries"
	"consult-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID             uuid.UUID `json:"id"`
	CounselorID    uuid.UUID `json:"counselorId"`
	StartAt        time.Time `json:"startAt"`
	EndAt          time.Time `json:"endAt"`
	Capacity       int       `json:"capacity"`
	BookedCount    int       `json:"bookedCount"`
	AvailableCount int       `json:"availableCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type SlotBatchResponse struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:             v.ID,
		CounselorID:    v.CounselorID,
		StartAt:        v.StartAt,
		EndAt:          v.EndAt,
		Capacity:       v.Capacity,
		BookedCount:    v.BookedCount,
		AvailableCount: v.AvailableCount(),
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	res := make([]*SlotResponse, len(views))
	for i, v := range views {
		res[i] = FromSlotView(v)
	}
	return res
}

func FromSlotSnapshot(s *shared.SlotSnapshot) *SlotResponse {
	return &SlotResponse{
		ID:             s.ID,
		CounselorID:    s.OwnerID,
		StartAt:        s.StartAt,
		EndAt:          s.EndAt,
		Capacity:       s.Capacity,
		BookedCount:    s.Booked,
		AvailableCount: slot.Available(s.Capacity, s.Booked),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func FromBatchResult(r *commands.BatchResult) *SlotBatchResponse {
	return &SlotBatchResponse{Created: r.Created, Skipped: r.Skipped}
}
