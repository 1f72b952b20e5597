//go:build unit || e2e

package builder

import (
	"time"

	"consult-booking/internal/domain/reservation"
	reqdto "consult-booking/internal/handler/dto/request"
	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/queries"
	"consult-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	SlotID      uuid.UUID
	CounselorID uuid.UUID
	Email       string
	Name        string
	Note        *string
	Status      reservation.Status
	SlotStartAt time.Time
	CreatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &ReservationBuilder{
		ID:          uuid.New(),
		SlotID:      uuid.New(),
		CounselorID: uuid.New(),
		Email:       "client@example.com",
		Name:        "Test Client",
		Status:      reservation.StatusBooked,
		SlotStartAt: now.Add(48 * time.Hour),
		CreatedAt:   now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildCreateRequestDTO(token string) reqdto.CreateReservationRequest {
	email := r.Email
	return reqdto.CreateReservationRequest{
		Token:  token,
		SlotID: r.SlotID,
		Name:   r.Name,
		Email:  &email,
		Note:   r.Note,
	}
}

func (r *ReservationBuilder) BuildSnapshot() shared.ReservationSnapshot {
	snap := shared.ReservationSnapshot{
		ID:        r.ID,
		SlotID:    r.SlotID,
		Email:     r.Email,
		Name:      r.Name,
		Note:      r.Note,
		Status:    r.Status.String(),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.CreatedAt,
	}
	if r.Status == reservation.StatusCancelled {
		at := r.CreatedAt
		snap.CancelledAt = &at
	}
	return snap
}

func (r *ReservationBuilder) BuildBookingResult(token string) *commands.BookingResult {
	return &commands.BookingResult{Reservation: r.BuildSnapshot(), ReservationToken: token}
}

func (r *ReservationBuilder) BuildTransitionResult(updated bool) *commands.TransitionResult {
	return &commands.TransitionResult{Updated: updated, Reservation: r.BuildSnapshot()}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	snap := r.BuildSnapshot()
	return &queries.ReservationView{
		ID:          snap.ID,
		SlotID:      snap.SlotID,
		Email:       snap.Email,
		Name:        snap.Name,
		Note:        snap.Note,
		Status:      snap.Status,
		CreatedAt:   snap.CreatedAt,
		UpdatedAt:   snap.UpdatedAt,
		CancelledAt: snap.CancelledAt,
		Slot: &queries.SlotSummary{
			CounselorID: r.CounselorID,
			StartAt:     r.SlotStartAt,
			EndAt:       r.SlotStartAt.Add(30 * time.Minute),
		},
	}
}

func (r *ReservationBuilder) BuildHistoryItem() *queries.HistoryItem {
	return &queries.HistoryItem{
		ID:        r.ID,
		SlotID:    r.SlotID,
		Email:     r.Email,
		Name:      r.Name,
		Status:    r.Status.String(),
		CreatedAt: r.CreatedAt,
		Slot: queries.SlotSummary{
			CounselorID: r.CounselorID,
			StartAt:     r.SlotStartAt,
			EndAt:       r.SlotStartAt.Add(30 * time.Minute),
		},
	}
}
