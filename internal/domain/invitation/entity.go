package invitation

import (
	"errors"
	"time"

	"consult-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

const (
	MinExpiresInDays = 1
	MaxExpiresInDays = 365
)

var (
	ErrInvalidExpiry  = errors.New("expiresInDays must be between 1 and 365")
	ErrMissingToken   = errors.New("invitation token is required")
	ErrMissingCounsel = errors.New("counselor is required")
)

// Scope is what a resolved invite token grants: one client email acting
// against one counselor's slots until ExpiresAt.
type Scope struct {
	GranteeEmail reservation.Email
	OwnerID      uuid.UUID
	ExpiresAt    time.Time
}

func (s Scope) AuthorizesOwner(ownerID uuid.UUID) bool {
	return s.OwnerID != uuid.Nil && s.OwnerID == ownerID
}

func (s Scope) AuthorizesEmail(email reservation.Email) bool {
	return !s.GranteeEmail.IsZero() && s.GranteeEmail.Equal(email)
}

// AuthorizesReservation reports whether a reservation held under holderEmail
// was made by this scope's client.
func (s Scope) AuthorizesReservation(holderEmail string) bool {
	email, err := reservation.NewEmail(holderEmail)
	if err != nil {
		return false
	}
	return s.AuthorizesEmail(email)
}

type Invitation struct {
	token       string
	counselorID uuid.UUID
	clientEmail reservation.Email
	expiresAt   time.Time
	createdAt   time.Time
}

func NewInvitation(token string, counselorID uuid.UUID, email reservation.Email, expiresInDays int, now time.Time) (*Invitation, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	if counselorID == uuid.Nil {
		return nil, ErrMissingCounsel
	}
	if email.IsZero() {
		return nil, reservation.ErrInvalidEmail
	}
	if expiresInDays < MinExpiresInDays || expiresInDays > MaxExpiresInDays {
		return nil, ErrInvalidExpiry
	}
	now = now.UTC().Truncate(time.Microsecond)
	return &Invitation{
		token:       token,
		counselorID: counselorID,
		clientEmail: email,
		expiresAt:   now.AddDate(0, 0, expiresInDays),
		createdAt:   now,
	}, nil
}

// RestoreInvitation rebuilds a stored invite. The issuing window is not
// rechecked; only IsExpired decides whether it still grants anything.
func RestoreInvitation(token string, counselorID uuid.UUID, email reservation.Email, expiresAt time.Time) (*Invitation, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	if counselorID == uuid.Nil {
		return nil, ErrMissingCounsel
	}
	if email.IsZero() {
		return nil, reservation.ErrInvalidEmail
	}
	return &Invitation{
		token:       token,
		counselorID: counselorID,
		clientEmail: email,
		expiresAt:   expiresAt,
	}, nil
}

func (i *Invitation) Scope() Scope {
	return Scope{GranteeEmail: i.clientEmail, OwnerID: i.counselorID, ExpiresAt: i.expiresAt}
}

func (i *Invitation) IsExpired(now time.Time) bool {
	return !now.Before(i.expiresAt)
}

func (i *Invitation) Token() string                  { return i.token }
func (i *Invitation) CounselorID() uuid.UUID         { return i.counselorID }
func (i *Invitation) ClientEmail() reservation.Email { return i.clientEmail }
func (i *Invitation) ExpiresAt() time.Time           { return i.expiresAt }
func (i *Invitation) CreatedAt() time.Time           { return i.createdAt }
