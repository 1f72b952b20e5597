package repository

import (
	"context"
	"time"

	"consult-booking/internal/infra"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationTokenWriteQueries interface {
	CreateReservationToken(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationTokenParams) error
}

type ReservationTokenRepository struct {
	queries ReservationTokenWriteQueries
	db      sqlc.DBTX
}

func NewReservationTokenRepository(queries ReservationTokenWriteQueries, db sqlc.DBTX) *ReservationTokenRepository {
	return &ReservationTokenRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationTokenRepository) Create(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID, token string, expiresAt time.Time) error {
	err := r.queries.CreateReservationToken(ctx, tx, sqlc.CreateReservationTokenParams{
		ReservationID: reservationID,
		Token:         token,
		ExpiresAt:     pgconv.TimeToPgtype(expiresAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation token", err)
	}
	return nil
}
