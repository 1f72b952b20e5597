package readstore

import (
	"context"

	"consult-booking/internal/infra"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"
	"consult-booking/internal/usecase/readmodel"
)

type InviteTokenQueries interface {
	GetInviteTokenByToken(ctx context.Context, db sqlc.DBTX, token string) (sqlc.InviteToken, error)
}

type InviteTokenReadStore struct {
	queries InviteTokenQueries
	db      sqlc.DBTX
}

func NewInviteTokenReadStore(queries InviteTokenQueries, db sqlc.DBTX) *InviteTokenReadStore {
	return &InviteTokenReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *InviteTokenReadStore) FindByToken(ctx context.Context, token string) (*readmodel.InviteTokenRM, error) {
	row, err := s.queries.GetInviteTokenByToken(ctx, s.db, token)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invite token not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invite token", err)
	}
	return &readmodel.InviteTokenRM{
		Token:       row.Token,
		CounselorID: row.CounselorID,
		ClientEmail: row.ClientEmail,
		ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
