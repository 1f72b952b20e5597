package response

import (
	"time"

	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/queries"
	"consult-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotSummaryResponse struct {
	CounselorID uuid.UUID `json:"counselorId"`
	StartAt     time.Time `json:"startAt"`
	EndAt       time.Time `json:"endAt"`
}

type ReservationResponse struct {
	ID          uuid.UUID            `json:"id"`
	SlotID      uuid.UUID            `json:"slotId"`
	Email       string               `json:"email"`
	Name        string               `json:"name"`
	Note        *string              `json:"note,omitempty"`
	Status      string               `json:"status"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	CancelledAt *time.Time           `json:"cancelledAt,omitempty"`
	Slot        *SlotSummaryResponse `json:"slot,omitempty"`
}

// BookingResponse carries the reservation token, shown only once.
type BookingResponse struct {
	ReservationResponse
	ReservationToken string `json:"reservationToken"`
}

type TransitionResponse struct {
	ReservationResponse
	Updated bool `json:"updated"`
}

type HistoryItemResponse struct {
	ID        uuid.UUID           `json:"id"`
	SlotID    uuid.UUID           `json:"slotId"`
	Email     string              `json:"email"`
	Name      string              `json:"name"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	Slot      SlotSummaryResponse `json:"slot"`
}

type HistoryResponse struct {
	Items      []*HistoryItemResponse `json:"items"`
	NextCursor *string                `json:"nextCursor,omitempty"`
	HasMore    bool                   `json:"hasMore"`
}

func FromReservationSnapshot(s shared.ReservationSnapshot) ReservationResponse {
	return ReservationResponse{
		ID:          s.ID,
		SlotID:      s.SlotID,
		Email:       s.Email,
		Name:        s.Name,
		Note:        s.Note,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		CancelledAt: s.CancelledAt,
	}
}

func FromBookingResult(r *commands.BookingResult) *BookingResponse {
	return &BookingResponse{
		ReservationResponse: FromReservationSnapshot(r.Reservation),
		ReservationToken:    r.ReservationToken,
	}
}

func FromTransitionResult(r *commands.TransitionResult) *TransitionResponse {
	return &TransitionResponse{
		ReservationResponse: FromReservationSnapshot(r.Reservation),
		Updated:             r.Updated,
	}
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	resp := &ReservationResponse{
		ID:          v.ID,
		SlotID:      v.SlotID,
		Email:       v.Email,
		Name:        v.Name,
		Note:        v.Note,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
		CancelledAt: v.CancelledAt,
	}
	if v.Slot != nil {
		resp.Slot = &SlotSummaryResponse{
			CounselorID: v.Slot.CounselorID,
			StartAt:     v.Slot.StartAt,
			EndAt:       v.Slot.EndAt,
		}
	}
	return resp
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(views))
	for i, v := range views {
		res[i] = FromReservationView(v)
	}
	return res
}

func FromHistoryPage(p *queries.HistoryPage) *HistoryResponse {
	items := make([]*HistoryItemResponse, len(p.Items))
	for i, it := range p.Items {
		items[i] = &HistoryItemResponse{
			ID:        it.ID,
			SlotID:    it.SlotID,
			Email:     it.Email,
			Name:      it.Name,
			Status:    it.Status,
			CreatedAt: it.CreatedAt,
			Slot: SlotSummaryResponse{
				CounselorID: it.Slot.CounselorID,
				StartAt:     it.Slot.StartAt,
				EndAt:       it.Slot.EndAt,
			},
		}
	}
	return &HistoryResponse{Items: items, NextCursor: p.NextCursor, HasMore: p.HasMore}
}
