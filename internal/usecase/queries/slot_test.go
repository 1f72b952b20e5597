//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"consult-booking/internal/domain/invitation"
	"consult-booking/internal/domain/slot"
	"consult-booking/internal/infra/memstore"
	"consult-booking/internal/pkg/clock"
	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/queries"
	"consult-booking/internal/usecase/shared"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotView_AvailableCount(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		booked   int
		want     int
	}{
		{name: "success: empty", capacity: 3, booked: 0, want: 3},
		{name: "success: partly booked", capacity: 3, booked: 2, want: 1},
		{name: "success: full", capacity: 3, booked: 3, want: 0},
		{name: "success: never negative", capacity: 2, booked: 5, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := queries.SlotView{Capacity: tt.capacity, BookedCount: tt.booked}
			assert.Equal(t, tt.want, v.AvailableCount())
		})
	}
}

func TestSlotQueries(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	clk := clock.NewMockClock(baseTime)
	slots := commands.NewSlotUseCase(memstore.NewUnitOfWork(store), clk, commands.SlotSettings{DefaultCapacity: 2})
	q := queries.NewSlotQueries(memstore.NewSlotReadStore(store))
	ownerID, otherID := uuid.New(), uuid.New()

	// JST day 2026-03-10 runs from 2026-03-09T15:00Z to 2026-03-10T15:00Z.
	create := func(owner uuid.UUID, start time.Time) uuid.UUID {
		snap, err := slots.CreateSlot(ctx, owner, commands.CreateSlotInput{StartAt: start, EndAt: start.Add(slot.Duration)})
		require.NoError(t, err)
		return snap.ID
	}
	atFrom := create(ownerID, time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC))
	inside := create(ownerID, time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC))
	create(ownerID, time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC))
	create(ownerID, time.Date(2026, 3, 9, 14, 30, 0, 0, time.UTC))
	create(otherID, time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC))

	window, err := slot.DayWindow("2026-03-10", -540)
	require.NoError(t, err)

	t.Run("success: public listing is scoped to the inviting counselor and half-open", func(t *testing.T) {
		list, err := q.ListPublic(ctx, invitation.Scope{OwnerID: ownerID}, window)

		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, atFrom, list[0].ID)
		assert.Equal(t, inside, list[1].ID)
		assert.Equal(t, 2, list[0].AvailableCount())
	})

	t.Run("success: owner listing uses the same window", func(t *testing.T) {
		list, err := q.ListForOwner(ctx, otherID, window)

		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("success: owner reads a single slot", func(t *testing.T) {
		sv, err := q.GetForOwner(ctx, ownerID, inside)

		require.NoError(t, err)
		assert.Equal(t, ownerID, sv.CounselorID)
	})

	t.Run("error: single slot of another counselor", func(t *testing.T) {
		_, err := q.GetForOwner(ctx, otherID, inside)
		assert.True(t, errors.Is(err, shared.ErrForbidden))
	})

	t.Run("error: unknown slot", func(t *testing.T) {
		_, err := q.GetForOwner(ctx, ownerID, uuid.New())
		assert.True(t, errors.Is(err, shared.ErrSlotNotFound))
	})
}

func TestNotificationQueries_ListDue(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	clk := clock.NewMockClock(baseTime)
	invites := commands.NewInvitationUseCase(memstore.NewUnitOfWork(store), clk, commands.InvitationSettings{
		TTL:       7 * 24 * time.Hour,
		PublicURL: "https://booking.example.com",
	})
	q := queries.NewNotificationQueries(memstore.NewNotificationReadStore(store), clk)

	counselorID := uuid.New()
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := invites.Issue(ctx, counselorID, email, nil)
		require.NoError(t, err)
	}

	t.Run("success: queued jobs are due once their run time passes", func(t *testing.T) {
		jobs, err := q.ListDue(ctx, nil)

		require.NoError(t, err)
		require.Len(t, jobs, 3)
		assert.Equal(t, commands.TopicInvitationCreated, jobs[0].Topic)
		assert.Equal(t, "queued", jobs[0].Status)
		assert.Contains(t, string(jobs[0].Payload), "bookingUrl")
	})

	t.Run("success: limit caps the result", func(t *testing.T) {
		limit := 2
		jobs, err := q.ListDue(ctx, &limit)

		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	})

	t.Run("success: nothing is due before the run time", func(t *testing.T) {
		past := clock.NewMockClock(baseTime.Add(-time.Minute))
		early := queries.NewNotificationQueries(memstore.NewNotificationReadStore(store), past)

		jobs, err := early.ListDue(ctx, nil)

		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("error: limit out of range", func(t *testing.T) {
		limit := 51
		_, err := q.ListDue(ctx, &limit)
		assert.True(t, errors.Is(err, queries.ErrInvalidLimit))
	})
}
