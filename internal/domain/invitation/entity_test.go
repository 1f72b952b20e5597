//go:build unit

package invitation_test

import (
	"testing"
	"time"

	"consult-booking/internal/domain/invitation"
	"consult-booking/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvitation(t *testing.T) {
	counselor := uuid.New()
	email, _ := reservation.NewEmail("client@example.com")
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		token     string
		counselor uuid.UUID
		email     reservation.Email
		days      int
		errIs     error
	}{
		{name: "success: one week", token: "tok", counselor: counselor, email: email, days: 7},
		{name: "success: one year", token: "tok", counselor: counselor, email: email, days: 365},
		{name: "error: zero days", token: "tok", counselor: counselor, email: email, days: 0, errIs: invitation.ErrInvalidExpiry},
		{name: "error: over a year", token: "tok", counselor: counselor, email: email, days: 366, errIs: invitation.ErrInvalidExpiry},
		{name: "error: empty token", token: "", counselor: counselor, email: email, days: 7, errIs: invitation.ErrMissingToken},
		{name: "error: no counselor", token: "tok", counselor: uuid.Nil, email: email, days: 7, errIs: invitation.ErrMissingCounsel},
		{name: "error: no email", token: "tok", counselor: counselor, days: 7, errIs: reservation.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := invitation.NewInvitation(tt.token, tt.counselor, tt.email, tt.days, now)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, now.AddDate(0, 0, tt.days), inv.ExpiresAt())
			assert.False(t, inv.IsExpired(now))
			assert.True(t, inv.IsExpired(inv.ExpiresAt()))

			scope := inv.Scope()
			assert.Equal(t, tt.counselor, scope.OwnerID)
			assert.True(t, scope.GranteeEmail.Equal(tt.email))
			assert.Equal(t, inv.ExpiresAt(), scope.ExpiresAt)
		})
	}
}

func TestRestoreInvitation(t *testing.T) {
	counselor := uuid.New()
	email, _ := reservation.NewEmail("client@example.com")
	// stored rows may carry any expiry, even one NewInvitation would refuse
	expiresAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		token     string
		counselor uuid.UUID
		email     reservation.Email
		errIs     error
	}{
		{name: "success: stored invite", token: "tok", counselor: counselor, email: email},
		{name: "error: empty token", token: "", counselor: counselor, email: email, errIs: invitation.ErrMissingToken},
		{name: "error: no counselor", token: "tok", counselor: uuid.Nil, email: email, errIs: invitation.ErrMissingCounsel},
		{name: "error: no email", token: "tok", counselor: counselor, errIs: reservation.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := invitation.RestoreInvitation(tt.token, tt.counselor, tt.email, expiresAt)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, inv)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "tok", inv.Token())
			assert.False(t, inv.IsExpired(expiresAt.Add(-time.Microsecond)))
			assert.True(t, inv.IsExpired(expiresAt))
			assert.Equal(t, invitation.Scope{GranteeEmail: email, OwnerID: counselor, ExpiresAt: expiresAt}, inv.Scope())
		})
	}
}

func TestScope(t *testing.T) {
	owner := uuid.New()
	email, _ := reservation.NewEmail("client@example.com")
	other, _ := reservation.NewEmail("other@example.com")
	scope := invitation.Scope{GranteeEmail: email, OwnerID: owner, ExpiresAt: time.Now().Add(time.Hour)}

	assert.True(t, scope.AuthorizesOwner(owner))
	assert.False(t, scope.AuthorizesOwner(uuid.New()))
	assert.True(t, scope.AuthorizesEmail(email))
	assert.False(t, scope.AuthorizesEmail(other))
	assert.False(t, invitation.Scope{}.AuthorizesOwner(uuid.Nil))
	assert.False(t, invitation.Scope{}.AuthorizesEmail(reservation.Email{}))
}

func TestScope_AuthorizesReservation(t *testing.T) {
	email, _ := reservation.NewEmail("client@example.com")
	scope := invitation.Scope{GranteeEmail: email, OwnerID: uuid.New()}

	tests := []struct {
		name   string
		holder string
		expect bool
	}{
		{name: "success: same client", holder: "client@example.com", expect: true},
		{name: "success: case and spacing differ", holder: " Client@Example.COM ", expect: true},
		{name: "error: another client", holder: "other@example.com", expect: false},
		{name: "error: unparseable holder", holder: "broken", expect: false},
		{name: "error: empty holder", holder: "", expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, scope.AuthorizesReservation(tt.holder))
		})
	}
	assert.False(t, invitation.Scope{}.AuthorizesReservation("client@example.com"))
}
