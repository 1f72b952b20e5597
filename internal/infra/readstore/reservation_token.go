package readstore

import (
	"context"

	"consult-booking/internal/infra"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"
	"consult-booking/internal/usecase/shared"
)

type ReservationTokenQueries interface {
	GetReservationTokenByToken(ctx context.Context, db sqlc.DBTX, token string) (sqlc.GetReservationTokenByTokenRow, error)
}

type ReservationTokenReadStore struct {
	queries ReservationTokenQueries
	db      sqlc.DBTX
}

func NewReservationTokenReadStore(queries ReservationTokenQueries, db sqlc.DBTX) *ReservationTokenReadStore {
	return &ReservationTokenReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *ReservationTokenReadStore) FindByToken(ctx context.Context, token string) (*shared.ReservationTokenSnapshot, error) {
	row, err := s.queries.GetReservationTokenByToken(ctx, s.db, token)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation token not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation token", err)
	}
	return &shared.ReservationTokenSnapshot{
		ReservationID: row.ReservationID,
		Token:         row.Token,
		ExpiresAt:     pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
