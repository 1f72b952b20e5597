package usecase

import (
	"context"
	"log/slog"
	"strings"

	"consult-booking/internal/domain/invitation"
	"consult-booking/internal/domain/reservation"
	"consult-booking/internal/infra"
	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/usecase/readmodel"
	"consult-booking/internal/usecase/shared"
)

type InviteTokenReadStore interface {
	FindByToken(ctx context.Context, token string) (*readmodel.InviteTokenRM, error)
}

// InviteGate turns an opaque invite token into the scope it grants. Any
// doubt about the token rejects it.
type InviteGate interface {
	Resolve(ctx context.Context, token string) (*invitation.Scope, error)
}

type inviteGateImpl struct {
	store InviteTokenReadStore
	clock clock.Clock
}

func NewInviteGate(store InviteTokenReadStore, clk clock.Clock) InviteGate {
	return &inviteGateImpl{store: store, clock: clk}
}

func (g *inviteGateImpl) Resolve(ctx context.Context, token string) (*invitation.Scope, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, shared.ErrInvalidOrExpiredToken
	}

	rec, err := g.store.FindByToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrInvalidOrExpiredToken
		}
		return nil, err
	}

	email, err := reservation.NewEmail(rec.ClientEmail)
	if err != nil {
		slog.Warn("invite token with unusable email", "token_prefix", prefix(token))
		return nil, shared.ErrInvalidOrExpiredToken
	}
	inv, err := invitation.RestoreInvitation(token, rec.CounselorID, email, rec.ExpiresAt)
	if err != nil {
		slog.Warn("invite token with unusable record", "token_prefix", prefix(token), "error", err.Error())
		return nil, shared.ErrInvalidOrExpiredToken
	}
	if inv.IsExpired(g.clock.Now()) {
		return nil, shared.ErrInvalidOrExpiredToken
	}

	scope := inv.Scope()
	return &scope, nil
}

func prefix(token string) string {
	if len(token) > 6 {
		return token[:6]
	}
	return token
}
