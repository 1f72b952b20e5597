package commands

import (
	"context"
	"net/url"
	"time"

	"consult-booking/internal/domain/invitation"
	"consult-booking/internal/domain/reservation"
	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/pkg/token"
	"consult-booking/internal/pkg/tracing"
	"consult-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type InvitationSettings struct {
	TTL       time.Duration
	PublicURL string
}

type IssuedInvitation struct {
	Token      string
	Email      string
	ExpiresAt  time.Time
	BookingURL string
}

type InvitationCommands interface {
	Issue(ctx context.Context, counselorID uuid.UUID, email string, expiresInDays *int) (*IssuedInvitation, error)
}

type invitationUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings InvitationSettings
}

func NewInvitationUseCase(uow shared.UnitOfWork, clk clock.Clock, settings InvitationSettings) InvitationCommands {
	return &invitationUseCaseImpl{uow: uow, clock: clk, settings: settings}
}

func (uc *invitationUseCaseImpl) defaultDays() int {
	days := int(uc.settings.TTL / (24 * time.Hour))
	if days < invitation.MinExpiresInDays {
		return invitation.MinExpiresInDays
	}
	return days
}

// Issue replaces any earlier invite for the same client and queues the
// invitation email in the same transaction.
func (uc *invitationUseCaseImpl) Issue(ctx context.Context, counselorID uuid.UUID, email string, expiresInDays *int) (result *IssuedInvitation, err error) {
	ctx, span := tracing.Start(ctx, "commands.IssueInvitation")
	defer func() { tracing.End(span, err) }()

	normalized, err := reservation.NewEmail(email)
	if err != nil {
		return nil, errs.Validation(err)
	}
	days := uc.defaultDays()
	if expiresInDays != nil {
		days = *expiresInDays
	}

	tok, err := token.Generate()
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	inv, err := invitation.NewInvitation(tok, counselorID, normalized, days, now)
	if err != nil {
		return nil, errs.Validation(err)
	}
	bookingURL := uc.bookingURL(tok)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if rerr := tx.Invitations().Replace(ctx, tx.DB(), inv); rerr != nil {
			return rerr
		}
		return enqueue(ctx, tx, TopicInvitationCreated, invitationEvent{
			CounselorID: counselorID,
			Email:       normalized.Value(),
			BookingURL:  bookingURL,
			ExpiresAt:   inv.ExpiresAt(),
		}, now)
	})
	if err != nil {
		return nil, err
	}

	return &IssuedInvitation{
		Token:      tok,
		Email:      normalized.Value(),
		ExpiresAt:  inv.ExpiresAt(),
		BookingURL: bookingURL,
	}, nil
}

func (uc *invitationUseCaseImpl) bookingURL(tok string) string {
	u, err := url.Parse(uc.settings.PublicURL)
	if err != nil {
		return uc.settings.PublicURL + "?token=" + url.QueryEscape(tok)
	}
	q := u.Query()
	q.Set("token", tok)
	u.RawQuery = q.Encode()
	return u.String()
}
