package response

import (
	"encoding/json"
	"time"

	"consult-booking/internal/domain/invitation"
	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type InvitationResponse struct {
	Token      string    `json:"token"`
	Email      string    `json:"email"`
	ExpiresAt  time.Time `json:"expiresAt"`
	BookingURL string    `json:"bookingUrl"`
}

func FromIssuedInvitation(i *commands.IssuedInvitation) *InvitationResponse {
	return &InvitationResponse{
		Token:      i.Token,
		Email:      i.Email,
		ExpiresAt:  i.ExpiresAt,
		BookingURL: i.BookingURL,
	}
}

// InviteScopeResponse tells the booking page who an invite token is for.
type InviteScopeResponse struct {
	Email       string    `json:"email"`
	CounselorID uuid.UUID `json:"counselorId"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func FromInviteScope(s *invitation.Scope) *InviteScopeResponse {
	return &InviteScopeResponse{
		Email:       s.GranteeEmail.Value(),
		CounselorID: s.OwnerID,
		ExpiresAt:   s.ExpiresAt,
	}
}

type NotificationJobResponse struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Topic     string          `json:"topic"`
	Payload   json.RawMessage `json:"payload"`
	RunAt     time.Time       `json:"runAt"`
	Attempts  int32           `json:"attempts"`
	Status    string          `json:"status"`
	LastError *string         `json:"lastError,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

func FromNotificationJobs(jobs []*queries.NotificationJobView) []*NotificationJobResponse {
	res := make([]*NotificationJobResponse, len(jobs))
	for i, j := range jobs {
		res[i] = &NotificationJobResponse{
			ID:        j.ID,
			Kind:      j.Kind,
			Topic:     j.Topic,
			Payload:   json.RawMessage(j.Payload),
			RunAt:     j.RunAt,
			Attempts:  j.Attempts,
			Status:    j.Status,
			LastError: j.LastError,
			CreatedAt: j.CreatedAt,
		}
	}
	return res
}
