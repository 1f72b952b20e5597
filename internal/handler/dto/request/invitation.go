package request

type IssueInvitationRequest struct {
	Email         string `json:"email" binding:"required,email"`
	ExpiresInDays *int   `json:"expiresInDays,omitempty" binding:"omitempty,min=1,max=365"`
}
