//go:build unit

package uow

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestCalculateBackoff(t *testing.T) {
	base := 20 * time.Millisecond

	tests := []struct {
		name    string
		attempt int
		min     time.Duration
		max     time.Duration
	}{
		{name: "success: first retry stays around base", attempt: 0, min: 10 * time.Millisecond, max: 20 * time.Millisecond},
		{name: "success: grows exponentially", attempt: 3, min: 80 * time.Millisecond, max: 160 * time.Millisecond},
		{name: "success: capped at one second", attempt: 10, min: 500 * time.Millisecond, max: time.Second},
		{name: "success: large attempt does not overflow", attempt: 80, min: 500 * time.Millisecond, max: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				got := calculateBackoff(tt.attempt, base)
				assert.GreaterOrEqual(t, got, tt.min)
				assert.Less(t, got, tt.max+time.Nanosecond)
			}
		})
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "success: serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "success: deadlock", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "success: wrapped serialization failure", err: fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40001"}), want: true},
		{name: "error: unique violation is final", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "error: non pg error", err: errors.New("boom"), want: false},
		{name: "error: nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Equal(t, int64(0), cryptoRandInt63n(0))
	assert.Equal(t, int64(0), cryptoRandInt63n(-5))
	for i := 0; i < 100; i++ {
		v := cryptoRandInt63n(7)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(7))
	}
}
