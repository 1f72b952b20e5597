package repository

import (
	"context"
	"time"

	"consult-booking/internal/domain/reservation"
	"consult-booking/internal/infra"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	TransitionReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionReservationParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts a BOOKED row. A second active booking for the same slot and
// email surfaces as KindDuplicateKey from the partial unique index.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	params := sqlc.CreateReservationParams{
		ID:        res.ID(),
		SlotID:    res.SlotID(),
		Email:     res.Email().Value(),
		Name:      res.Name().Value(),
		Note:      pgconv.StringPtrToPgtype(res.Note().Value()),
		CreatedAt: pgconv.TimeToPgtype(res.CreatedAt()),
	}
	if err := r.queries.CreateReservation(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Transition(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, target reservation.Status, at time.Time) (bool, error) {
	affected, err := r.queries.TransitionReservation(ctx, tx, sqlc.TransitionReservationParams{
		Target: target.String(),
		At:     pgconv.TimeToPgtype(at.UTC().Truncate(time.Microsecond)),
		ID:     id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition reservation", err)
	}
	return affected == 1, nil
}
