package repository

import (
	"context"

	"consult-booking/internal/domain/invitation"
	"consult-booking/internal/infra"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"
)

type InvitationWriteQueries interface {
	DeleteInviteTokensForClient(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteInviteTokensForClientParams) error
	CreateInviteToken(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInviteTokenParams) error
}

type InvitationRepository struct {
	queries InvitationWriteQueries
	db      sqlc.DBTX
}

func NewInvitationRepository(queries InvitationWriteQueries, db sqlc.DBTX) *InvitationRepository {
	return &InvitationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *InvitationRepository) Replace(ctx context.Context, tx sqlc.DBTX, inv *invitation.Invitation) error {
	err := r.queries.DeleteInviteTokensForClient(ctx, tx, sqlc.DeleteInviteTokensForClientParams{
		CounselorID: inv.CounselorID(),
		ClientEmail: inv.ClientEmail().Value(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to drop previous invitation", err)
	}

	err = r.queries.CreateInviteToken(ctx, tx, sqlc.CreateInviteTokenParams{
		Token:       inv.Token(),
		CounselorID: inv.CounselorID(),
		ClientEmail: inv.ClientEmail().Value(),
		ExpiresAt:   pgconv.TimeToPgtype(inv.ExpiresAt()),
		CreatedAt:   pgconv.TimeToPgtype(inv.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create invitation", err)
	}
	return nil
}
