package commands

import (
	"context"
	"log/slog"

	"consult-booking/internal/domain/invitation"
	"consult-booking/internal/domain/reservation"
	"consult-booking/internal/infra"
	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/pkg/token"
	"consult-booking/internal/pkg/tracing"
	"consult-booking/internal/usecase/shared"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type CreateBookingInput struct {
	SlotID uuid.UUID
	Email  *string
	Name   string
	Note   *string
}

type BookingResult struct {
	Reservation      shared.ReservationSnapshot
	ReservationToken string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, scope invitation.Scope, in CreateBookingInput) (*BookingResult, error)
	CancelWithInvite(ctx context.Context, scope invitation.Scope, reservationID uuid.UUID) (*TransitionResult, error)
	CancelWithReservationToken(ctx context.Context, reservationToken string) (*TransitionResult, error)
	TransitionAsOwner(ctx context.Context, counselorID, reservationID uuid.UUID, target reservation.Status) (*TransitionResult, error)
}

type bookingUseCaseImpl struct {
	uow     shared.UnitOfWork
	machine *StateMachine
	clock   clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, machine *StateMachine, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, machine: machine, clock: clk}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, scope invitation.Scope, in CreateBookingInput) (result *BookingResult, err error) {
	ctx, span := tracing.Start(ctx, "commands.CreateBooking", attribute.String("slot.id", in.SlotID.String()))
	defer func() { tracing.End(span, err) }()

	email, name, note, err := uc.bookingFields(scope, in)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		snap, rerr := tx.Reads().SlotByID(ctx, in.SlotID)
		if rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return shared.ErrSlotNotFound
			}
			return rerr
		}
		if !scope.AuthorizesOwner(snap.OwnerID) {
			return shared.ErrForbidden
		}
		if !now.Before(snap.StartAt) {
			return ErrSlotClosed
		}

		res, derr := reservation.NewReservation(snap.ID, email, name, note, now)
		if derr != nil {
			return errs.Validation(derr)
		}

		outcome, berr := uc.machine.Book(ctx, tx, res)
		if berr != nil {
			return berr
		}
		if outcome != Booked {
			slog.Info("booking rejected", "slot_id", snap.ID, "outcome", outcome.String())
			return outcome.Err()
		}

		tok, terr := token.Generate()
		if terr != nil {
			return terr
		}
		if terr = tx.ReservationTokens().Create(ctx, tx.DB(), res.ID(), tok, snap.EndAt); terr != nil {
			return terr
		}

		if oerr := enqueue(ctx, tx, TopicReservationCreated, reservationEvent{
			ReservationID: res.ID(),
			SlotID:        snap.ID,
			Email:         email.Value(),
		}, now); oerr != nil {
			return oerr
		}

		result = &BookingResult{
			Reservation:      snapshotOf(res),
			ReservationToken: tok,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// bookingFields validates the request before any storage call. An explicit
// email must name the invited client.
func (uc *bookingUseCaseImpl) bookingFields(scope invitation.Scope, in CreateBookingInput) (reservation.Email, reservation.Name, reservation.Note, error) {
	email := scope.GranteeEmail
	if in.Email != nil && *in.Email != "" {
		given, err := reservation.NewEmail(*in.Email)
		if err != nil {
			return reservation.Email{}, reservation.Name{}, reservation.Note{}, errs.Validation(err)
		}
		if !scope.AuthorizesEmail(given) {
			return reservation.Email{}, reservation.Name{}, reservation.Note{}, ErrEmailMismatch
		}
		email = given
	}
	if email.IsZero() {
		return reservation.Email{}, reservation.Name{}, reservation.Note{}, shared.ErrInvalidOrExpiredToken
	}

	name, err := reservation.NewName(in.Name)
	if err != nil {
		return reservation.Email{}, reservation.Name{}, reservation.Note{}, errs.Validation(err)
	}
	note, err := reservation.NewNote(in.Note)
	if err != nil {
		return reservation.Email{}, reservation.Name{}, reservation.Note{}, errs.Validation(err)
	}
	return email, name, note, nil
}

func (uc *bookingUseCaseImpl) CancelWithInvite(ctx context.Context, scope invitation.Scope, reservationID uuid.UUID) (result *TransitionResult, err error) {
	ctx, span := tracing.Start(ctx, "commands.CancelWithInvite", attribute.String("reservation.id", reservationID.String()))
	defer func() { tracing.End(span, err) }()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, rerr := reservationFor(ctx, tx, reservationID)
		if rerr != nil {
			return rerr
		}
		if !scope.AuthorizesReservation(snap.Email) {
			return shared.ErrForbidden
		}

		res, terr := uc.cancel(ctx, tx, reservationID)
		if terr != nil {
			return terr
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) CancelWithReservationToken(ctx context.Context, reservationToken string) (result *TransitionResult, err error) {
	ctx, span := tracing.Start(ctx, "commands.CancelWithReservationToken")
	defer func() { tracing.End(span, err) }()

	if reservationToken == "" {
		return nil, shared.ErrInvalidOrExpiredToken
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tok, rerr := tx.Reads().ReservationTokenByToken(ctx, reservationToken)
		if rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return shared.ErrInvalidOrExpiredToken
			}
			return rerr
		}
		if !uc.clock.Now().Before(tok.ExpiresAt) {
			return shared.ErrInvalidOrExpiredToken
		}

		res, terr := uc.cancel(ctx, tx, tok.ReservationID)
		if terr != nil {
			return terr
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) TransitionAsOwner(ctx context.Context, counselorID, reservationID uuid.UUID, target reservation.Status) (result *TransitionResult, err error) {
	ctx, span := tracing.Start(ctx, "commands.TransitionAsOwner",
		attribute.String("reservation.id", reservationID.String()),
		attribute.String("reservation.target", target.String()),
	)
	defer func() { tracing.End(span, err) }()

	if !target.IsTerminal() {
		return nil, ErrInvalidTarget
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, rerr := reservationFor(ctx, tx, reservationID)
		if rerr != nil {
			return rerr
		}
		slotSnap, rerr := tx.Reads().SlotByID(ctx, snap.SlotID)
		if rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return shared.ErrSlotNotFound
			}
			return rerr
		}
		if slotSnap.OwnerID != counselorID {
			return shared.ErrForbidden
		}

		var res *TransitionResult
		var terr error
		if target == reservation.StatusCancelled {
			res, terr = uc.cancel(ctx, tx, reservationID)
		} else {
			res, terr = uc.machine.Transition(ctx, tx, reservationID, target, uc.clock.Now())
		}
		if terr != nil {
			return terr
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// cancel runs the CANCELLED transition and announces it when it took effect.
func (uc *bookingUseCaseImpl) cancel(ctx context.Context, tx shared.Tx, reservationID uuid.UUID) (*TransitionResult, error) {
	now := uc.clock.Now()
	res, err := uc.machine.Transition(ctx, tx, reservationID, reservation.StatusCancelled, now)
	if err != nil {
		return nil, err
	}
	if !res.Updated {
		slog.Debug("cancel was a no-op", "reservation_id", reservationID, "status", res.Reservation.Status)
		return res, nil
	}
	if err := enqueue(ctx, tx, TopicReservationCancelled, reservationEvent{
		ReservationID: res.Reservation.ID,
		SlotID:        res.Reservation.SlotID,
		Email:         res.Reservation.Email,
	}, now); err != nil {
		return nil, err
	}
	return res, nil
}

func reservationFor(ctx context.Context, tx shared.Tx, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	snap, err := tx.Reads().ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrReservationNotFound
		}
		return nil, err
	}
	return snap, nil
}

func snapshotOf(res *reservation.Reservation) shared.ReservationSnapshot {
	return shared.ReservationSnapshot{
		ID:          res.ID(),
		SlotID:      res.SlotID(),
		Email:       res.Email().Value(),
		Name:        res.Name().Value(),
		Note:        res.Note().Value(),
		Status:      res.Status().String(),
		CreatedAt:   res.CreatedAt(),
		UpdatedAt:   res.UpdatedAt(),
		CancelledAt: res.CancelledAt(),
	}
}

// IsExpectedRejection reports whether err is an ordinary outcome of
// contention or bad input rather than a system failure.
func IsExpectedRejection(err error) bool {
	return errs.HasCategory(err, errs.ErrBusinessRejection) ||
		errs.HasCategory(err, errs.ErrValidation) ||
		errors.Is(err, shared.ErrSlotNotFound) ||
		errors.Is(err, shared.ErrReservationNotFound)
}
