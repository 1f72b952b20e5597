//go:build unit

package slot_test

import (
	"testing"
	"time"

	"consult-booking/internal/domain/slot"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateWindow(t *testing.T) {
	tests := []struct {
		name   string
		from   string
		to     string
		offset int
		want   slot.Window
		errIs  error
	}{
		{
			name: "success: single UTC day",
			from: "2026-05-01", to: "2026-05-01", offset: 0,
			want: slot.Window{
				From: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "success: UTC+9 day starts the previous evening in UTC",
			from: "2026-05-01", to: "2026-05-01", offset: -540,
			want: slot.Window{
				From: time.Date(2026, 4, 30, 15, 0, 0, 0, time.UTC),
				To:   time.Date(2026, 5, 1, 15, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "success: three days at UTC-5",
			from: "2026-05-01", to: "2026-05-03", offset: 300,
			want: slot.Window{
				From: time.Date(2026, 5, 1, 5, 0, 0, 0, time.UTC),
				To:   time.Date(2026, 5, 4, 5, 0, 0, 0, time.UTC),
			},
		},
		{name: "error: reversed range", from: "2026-05-03", to: "2026-05-01", errIs: slot.ErrInvalidWindow},
		{name: "error: malformed date", from: "2026/05/01", to: "2026-05-01", errIs: slot.ErrInvalidDate},
		{name: "error: offset out of range", from: "2026-05-01", to: "2026-05-01", offset: 900, errIs: slot.ErrInvalidOffset},
		{name: "error: window too large", from: "2026-01-01", to: "2026-06-01", errIs: slot.ErrWindowTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := slot.DateWindow(tt.from, tt.to, tt.offset)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("window mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExpandBatch(t *testing.T) {
	owner := uuid.New()
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success: days times times-of-day minus exclusions", func(t *testing.T) {
		slots, err := slot.ExpandBatch(owner, slot.BatchSpec{
			StartDate:     "2026-05-01",
			EndDate:       "2026-05-03",
			TimesOfDay:    []string{"10:00", "09:30", "10:00"},
			ExcludeDates:  []string{"2026-05-02"},
			Capacity:      2,
			OffsetMinutes: -540,
		}, now)
		require.NoError(t, err)

		var starts []time.Time
		for _, s := range slots {
			starts = append(starts, s.StartAt())
			assert.Equal(t, slot.Duration, s.EndAt().Sub(s.StartAt()))
			assert.Equal(t, 2, s.Capacity())
		}
		want := []time.Time{
			time.Date(2026, 5, 1, 0, 30, 0, 0, time.UTC),
			time.Date(2026, 5, 1, 1, 0, 0, 0, time.UTC),
			time.Date(2026, 5, 3, 0, 30, 0, 0, time.UTC),
			time.Date(2026, 5, 3, 1, 0, 0, 0, time.UTC),
		}
		if diff := cmp.Diff(want, starts); diff != "" {
			t.Errorf("starts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: every day excluded", func(t *testing.T) {
		_, err := slot.ExpandBatch(owner, slot.BatchSpec{
			StartDate:    "2026-05-01",
			EndDate:      "2026-05-01",
			TimesOfDay:   []string{"10:00"},
			ExcludeDates: []string{"2026-05-01"},
			Capacity:     1,
		}, now)
		assert.ErrorIs(t, err, slot.ErrEmptyBatch)
	})

	t.Run("error: bad time of day", func(t *testing.T) {
		_, err := slot.ExpandBatch(owner, slot.BatchSpec{
			StartDate:  "2026-05-01",
			EndDate:    "2026-05-01",
			TimesOfDay: []string{"25:00"},
			Capacity:   1,
		}, now)
		assert.ErrorIs(t, err, slot.ErrInvalidTimeOfDay)
	})

	t.Run("error: bad capacity", func(t *testing.T) {
		_, err := slot.ExpandBatch(owner, slot.BatchSpec{
			StartDate:  "2026-05-01",
			EndDate:    "2026-05-01",
			TimesOfDay: []string{"10:00"},
			Capacity:   0,
		}, now)
		assert.ErrorIs(t, err, slot.ErrInvalidCapacity)
	})
}
