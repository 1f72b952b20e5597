//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"consult-booking/internal/domain/invitation"
	"consult-booking/internal/domain/reservation"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/shared"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestBookingUseCase_CreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success: books a seat and queues the confirmation", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSlot(t, 3)

		res, err := f.booking.CreateBooking(ctx, f.scope(t, "client@example.com"), commands.CreateBookingInput{
			SlotID: s.ID,
			Email:  ptr(" Client@Example.com "),
			Name:   "Client",
			Note:   ptr("first visit"),
		})

		require.NoError(t, err)
		assert.NotEmpty(t, res.ReservationToken)
		assert.Equal(t, s.ID, res.Reservation.SlotID)
		assert.Equal(t, "client@example.com", res.Reservation.Email)
		assert.Equal(t, reservation.StatusBooked.String(), res.Reservation.Status)
		require.NotNil(t, res.Reservation.Note)
		assert.Equal(t, "first visit", *res.Reservation.Note)
		assert.Equal(t, 1, f.booked(t, s.ID))
		assert.Equal(t, 1, f.store.JobCount(commands.TopicReservationCreated))
	})

	// memstore serializes Within, so this checks outcomes rather than seat
	// contention; ledger_test.go races the counter directly and the Postgres
	// e2e suite races real transactions.
	t.Run("success: concurrent bookings never exceed capacity", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSlot(t, 3)

		const attempts = 10
		var wg sync.WaitGroup
		results := make([]error, attempts)
		for i := range attempts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, results[i] = f.booking.CreateBooking(ctx, f.scope(t, fmt.Sprintf("client%d@example.com", i)), commands.CreateBookingInput{
					SlotID: s.ID,
					Name:   "Client",
				})
			}(i)
		}
		wg.Wait()

		booked := 0
		for _, err := range results {
			if err == nil {
				booked++
				continue
			}
			assert.True(t, errors.Is(err, commands.ErrSlotFull), "unexpected error: %v", err)
		}
		assert.Equal(t, 3, booked)
		assert.Equal(t, 3, f.booked(t, s.ID))
		assert.Equal(t, 3, f.store.ReservationCount(s.ID))
		assert.Equal(t, 3, f.store.JobCount(commands.TopicReservationCreated))
	})

	t.Run("error: second active booking for the same email gives the seat back", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSlot(t, 3)
		f.book(t, s.ID, "client@example.com")

		_, err := f.booking.CreateBooking(ctx, f.scope(t, "CLIENT@example.com"), commands.CreateBookingInput{
			SlotID: s.ID,
			Name:   "Client",
		})

		assert.True(t, errors.Is(err, commands.ErrDuplicateActiveReservation))
		assert.Equal(t, 1, f.booked(t, s.ID))
		assert.Equal(t, 1, f.store.ReservationCount(s.ID))
		assert.Equal(t, 1, f.store.JobCount(commands.TopicReservationCreated))
	})

	t.Run("error: same email racing for one slot books once", func(t *testing.T) {
		const rounds = 20
		for round := range rounds {
			f := newFixture(t)
			s := f.seedSlot(t, 3)
			scope := f.scope(t, "client@example.com")

			var wg sync.WaitGroup
			start := make(chan struct{})
			results := make([]error, 2)
			for i := range results {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					<-start
					_, results[i] = f.booking.CreateBooking(ctx, scope, commands.CreateBookingInput{
						SlotID: s.ID,
						Name:   "Client",
					})
				}(i)
			}
			close(start)
			wg.Wait()

			booked, duplicate := 0, 0
			for _, err := range results {
				switch {
				case err == nil:
					booked++
				case errors.Is(err, commands.ErrDuplicateActiveReservation):
					duplicate++
				default:
					t.Errorf("round %d: unexpected error: %v", round, err)
				}
			}
			assert.Equal(t, 1, booked, "round %d", round)
			assert.Equal(t, 1, duplicate, "round %d", round)
			assert.Equal(t, 1, f.booked(t, s.ID), "round %d", round)
			assert.Equal(t, 1, f.store.ReservationCount(s.ID), "round %d", round)
			assert.Equal(t, 1, f.store.JobCount(commands.TopicReservationCreated), "round %d", round)
		}
	})

	t.Run("success: rebooking after a cancel is allowed", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSlot(t, 1)
		scope := f.scope(t, "client@example.com")
		first := f.book(t, s.ID, "client@example.com")

		_, err := f.booking.CancelWithInvite(ctx, scope, first.Reservation.ID)
		require.NoError(t, err)

		second := f.book(t, s.ID, "client@example.com")
		assert.NotEqual(t, first.Reservation.ID, second.Reservation.ID)
		assert.Equal(t, 1, f.booked(t, s.ID))
		assert.Equal(t, 2, f.store.ReservationCount(s.ID))
	})

	t.Run("error: full slot rejects without writing", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSlot(t, 1)
		f.book(t, s.ID, "first@example.com")

		_, err := f.booking.CreateBooking(ctx, f.scope(t, "second@example.com"), commands.CreateBookingInput{
			SlotID: s.ID,
			Name:   "Client",
		})

		assert.True(t, errors.Is(err, commands.ErrSlotFull))
		assert.True(t, errs.HasCategory(err, errs.ErrBusinessRejection))
		assert.Equal(t, 1, f.booked(t, s.ID))
		assert.Equal(t, 1, f.store.JobCount(commands.TopicReservationCreated))
	})

	tests := []struct {
		name    string
		prepare func(f *fixture, s *shared.SlotSnapshot) (invitation.Scope, commands.CreateBookingInput)
		wantErr error
		wantCat error
	}{
		{
			name: "error: explicit email differs from the invitation",
			prepare: func(f *fixture, s *shared.SlotSnapshot) (invitation.Scope, commands.CreateBookingInput) {
				return f.scope(t, "client@example.com"), commands.CreateBookingInput{SlotID: s.ID, Email: ptr("other@example.com"), Name: "Client"}
			},
			wantErr: commands.ErrEmailMismatch,
			wantCat: errs.ErrForbidden,
		},
		{
			name: "error: malformed explicit email",
			prepare: func(f *fixture, s *shared.SlotSnapshot) (invitation.Scope, commands.CreateBookingInput) {
				return f.scope(t, "client@example.com"), commands.CreateBookingInput{SlotID: s.ID, Email: ptr("not-an-email"), Name: "Client"}
			},
			wantCat: errs.ErrValidation,
		},
		{
			name: "error: invitation belongs to another counselor",
			prepare: func(f *fixture, s *shared.SlotSnapshot) (invitation.Scope, commands.CreateBookingInput) {
				scope := f.scope(t, "client@example.com")
				scope.OwnerID = uuid.New()
				return scope, commands.CreateBookingInput{SlotID: s.ID, Name: "Client"}
			},
			wantErr: shared.ErrForbidden,
		},
		{
			name: "error: slot does not exist",
			prepare: func(f *fixture, _ *shared.SlotSnapshot) (invitation.Scope, commands.CreateBookingInput) {
				return f.scope(t, "client@example.com"), commands.CreateBookingInput{SlotID: uuid.New(), Name: "Client"}
			},
			wantErr: shared.ErrSlotNotFound,
		},
		{
			name: "error: slot has started",
			prepare: func(f *fixture, s *shared.SlotSnapshot) (invitation.Scope, commands.CreateBookingInput) {
				f.clock.Set(s.StartAt)
				return f.scope(t, "client@example.com"), commands.CreateBookingInput{SlotID: s.ID, Name: "Client"}
			},
			wantErr: commands.ErrSlotClosed,
		},
		{
			name: "error: blank name",
			prepare: func(f *fixture, s *shared.SlotSnapshot) (invitation.Scope, commands.CreateBookingInput) {
				return f.scope(t, "client@example.com"), commands.CreateBookingInput{SlotID: s.ID, Name: "  "}
			},
			wantCat: errs.ErrValidation,
		},
		{
			name: "error: scope without a grantee email",
			prepare: func(f *fixture, s *shared.SlotSnapshot) (invitation.Scope, commands.CreateBookingInput) {
				return invitation.Scope{OwnerID: f.ownerID}, commands.CreateBookingInput{SlotID: s.ID, Name: "Client"}
			},
			wantErr: shared.ErrInvalidOrExpiredToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			s := f.seedSlot(t, 3)
			scope, in := tt.prepare(f, s)

			res, err := f.booking.CreateBooking(ctx, scope, in)

			require.Error(t, err)
			assert.Nil(t, res)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
			if tt.wantCat != nil {
				assert.True(t, errs.HasCategory(err, tt.wantCat), "got %v", err)
			}
			assert.Equal(t, 0, f.booked(t, s.ID))
			assert.Equal(t, 0, f.store.JobCount(commands.TopicReservationCreated))
		})
	}
}

func TestBookingUseCase_CancelWithInvite(t *testing.T) {
	ctx := context.Background()

	t.Run("success: cancel is idempotent and releases the seat once", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSlot(t, 3)
		scope := f.scope(t, "client@example.com")
		booked := f.book(t, s.ID, "client@example.com")

		first, err := f.booking.CancelWithInvite(ctx, scope, booked.Reservation.ID)
		require.NoError(t, err)
		assert.True(t, first.Updated)
		assert.Equal(t, reservation.StatusCancelled.String(), first.Reservation.Status)
		assert.NotNil(t, first.Reservation.CancelledAt)

		second, err := f.booking.CancelWithInvite(ctx, scope, booked.Reservation.ID)
		require.NoError(t, err)
		assert.False(t, second.Updated)
		assert.Equal(t, reservation.StatusCancelled.String(), second.Reservation.Status)

		assert.Equal(t, 0, f.booked(t, s.ID))
		assert.Equal(t, 1, f.store.JobCount(commands.TopicReservationCancelled))
	})

	t.Run("error: invitation for another email", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSlot(t, 3)
		booked := f.book(t, s.ID, "client@example.com")

		_, err := f.booking.CancelWithInvite(ctx, f.scope(t, "intruder@example.com"), booked.Reservation.ID)

		assert.True(t, errors.Is(err, shared.ErrForbidden))
		assert.Equal(t, 1, f.booked(t, s.ID))
	})

	t.Run("error: unknown reservation", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.booking.CancelWithInvite(ctx, f.scope(t, "client@example.com"), uuid.New())

		assert.True(t, errors.Is(err, shared.ErrReservationNotFound))
	})
}

func TestBookingUseCase_CancelWithReservationToken(t *testing.T) {
	ctx := context.Background()

	t.Run("success: token issued at booking cancels it", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSlot(t, 3)
		booked := f.book(t, s.ID, "client@example.com")

		res, err := f.booking.CancelWithReservationToken(ctx, booked.ReservationToken)

		require.NoError(t, err)
		assert.True(t, res.Updated)
		assert.Equal(t, booked.Reservation.ID, res.Reservation.ID)
		assert.Equal(t, 0, f.booked(t, s.ID))
	})

	tests := []struct {
		name  string
		token func(f *fixture, booked *commands.BookingResult) string
	}{
		{
			name:  "error: empty token",
			token: func(*fixture, *commands.BookingResult) string { return "" },
		},
		{
			name:  "error: unknown token",
			token: func(*fixture, *commands.BookingResult) string { return "res_unknown" },
		},
		{
			name: "error: token expired with the slot end",
			token: func(f *fixture, booked *commands.BookingResult) string {
				f.clock.Set(baseTime.Add(48*time.Hour + 30*time.Minute))
				return booked.ReservationToken
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			s := f.seedSlot(t, 3)
			booked := f.book(t, s.ID, "client@example.com")

			_, err := f.booking.CancelWithReservationToken(ctx, tt.token(f, booked))

			assert.True(t, errors.Is(err, shared.ErrInvalidOrExpiredToken), "got %v", err)
			assert.Equal(t, 1, f.booked(t, s.ID))
		})
	}
}

func TestBookingUseCase_TransitionAsOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("success: completing keeps the seat counted", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSlot(t, 3)
		booked := f.book(t, s.ID, "client@example.com")

		res, err := f.booking.TransitionAsOwner(ctx, f.ownerID, booked.Reservation.ID, reservation.StatusCompleted)

		require.NoError(t, err)
		assert.True(t, res.Updated)
		assert.Equal(t, reservation.StatusCompleted.String(), res.Reservation.Status)
		assert.Nil(t, res.Reservation.CancelledAt)
		assert.Equal(t, 1, f.booked(t, s.ID))
		assert.Equal(t, 0, f.store.JobCount(commands.TopicReservationCancelled))
	})

	t.Run("success: owner cancel releases the seat and queues a notice", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSlot(t, 3)
		booked := f.book(t, s.ID, "client@example.com")

		res, err := f.booking.TransitionAsOwner(ctx, f.ownerID, booked.Reservation.ID, reservation.StatusCancelled)

		require.NoError(t, err)
		assert.True(t, res.Updated)
		assert.Equal(t, 0, f.booked(t, s.ID))
		assert.Equal(t, 1, f.store.JobCount(commands.TopicReservationCancelled))
	})

	t.Run("success: terminal reservation is left alone", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSlot(t, 3)
		booked := f.book(t, s.ID, "client@example.com")
		_, err := f.booking.TransitionAsOwner(ctx, f.ownerID, booked.Reservation.ID, reservation.StatusCancelled)
		require.NoError(t, err)

		res, err := f.booking.TransitionAsOwner(ctx, f.ownerID, booked.Reservation.ID, reservation.StatusCompleted)

		require.NoError(t, err)
		assert.False(t, res.Updated)
		assert.Equal(t, reservation.StatusCancelled.String(), res.Reservation.Status)
		assert.Equal(t, 0, f.booked(t, s.ID))
	})

	t.Run("error: BOOKED is not a target", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSlot(t, 3)
		booked := f.book(t, s.ID, "client@example.com")

		_, err := f.booking.TransitionAsOwner(ctx, f.ownerID, booked.Reservation.ID, reservation.StatusBooked)

		assert.True(t, errors.Is(err, commands.ErrInvalidTarget))
	})

	t.Run("error: another counselor's reservation", func(t *testing.T) {
		f := newFixture(t)
		s := f.seedSlot(t, 3)
		booked := f.book(t, s.ID, "client@example.com")

		_, err := f.booking.TransitionAsOwner(ctx, uuid.New(), booked.Reservation.ID, reservation.StatusCancelled)

		assert.True(t, errors.Is(err, shared.ErrForbidden))
		assert.Equal(t, 1, f.booked(t, s.ID))
	})

	t.Run("error: unknown reservation", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.booking.TransitionAsOwner(ctx, f.ownerID, uuid.New(), reservation.StatusCompleted)

		assert.True(t, errors.Is(err, shared.ErrReservationNotFound))
	})
}

func TestIsExpectedRejection(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "success: slot full", err: commands.ErrSlotFull, want: true},
		{name: "success: validation", err: errs.Validation(errors.New("bad")), want: true},
		{name: "success: wrapped not found", err: errors.Wrap(shared.ErrSlotNotFound, "lookup"), want: true},
		{name: "success: plain failure", err: errors.New("connection reset"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commands.IsExpectedRejection(tt.err))
		})
	}
}
