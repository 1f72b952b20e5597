//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"consult-booking/internal/domain/invitation"
	"consult-booking/internal/domain/reservation"
	"consult-booking/internal/domain/slot"
	"consult-booking/internal/infra/memstore"
	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	store       *memstore.Store
	clock       *clock.MockClock
	booking     commands.BookingCommands
	slots       commands.SlotCommands
	invitations commands.InvitationCommands
	ownerID     uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	uow := memstore.NewUnitOfWork(store)
	clk := clock.NewMockClock(baseTime)

	return &fixture{
		store:   store,
		clock:   clk,
		booking: commands.NewBookingUseCase(uow, commands.NewStateMachine(), clk),
		slots:   commands.NewSlotUseCase(uow, clk, commands.SlotSettings{DefaultCapacity: 3}),
		invitations: commands.NewInvitationUseCase(uow, clk, commands.InvitationSettings{
			TTL:       7 * 24 * time.Hour,
			PublicURL: "https://booking.example.com/book",
		}),
		ownerID: uuid.New(),
	}
}

// seedSlot creates a slot for the fixture owner starting two days after baseTime.
func (f *fixture) seedSlot(t *testing.T, capacity int) *shared.SlotSnapshot {
	t.Helper()
	return f.seedSlotAt(t, baseTime.Add(48*time.Hour), capacity)
}

func (f *fixture) seedSlotAt(t *testing.T, start time.Time, capacity int) *shared.SlotSnapshot {
	t.Helper()
	snap, err := f.slots.CreateSlot(context.Background(), f.ownerID, commands.CreateSlotInput{
		StartAt:  start,
		EndAt:    start.Add(slot.Duration),
		Capacity: &capacity,
	})
	require.NoError(t, err)
	return snap
}

func (f *fixture) scope(t *testing.T, email string) invitation.Scope {
	t.Helper()
	e, err := reservation.NewEmail(email)
	require.NoError(t, err)
	return invitation.Scope{
		GranteeEmail: e,
		OwnerID:      f.ownerID,
		ExpiresAt:    baseTime.AddDate(0, 0, 7),
	}
}

func (f *fixture) book(t *testing.T, slotID uuid.UUID, email string) *commands.BookingResult {
	t.Helper()
	res, err := f.booking.CreateBooking(context.Background(), f.scope(t, email), commands.CreateBookingInput{
		SlotID: slotID,
		Name:   "Client",
	})
	require.NoError(t, err)
	return res
}

func (f *fixture) booked(t *testing.T, slotID uuid.UUID) int {
	t.Helper()
	n, ok := f.store.BookedCount(slotID)
	require.True(t, ok, "slot %s not in store", slotID)
	return n
}
