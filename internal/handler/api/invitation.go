package api

import (
	"net/http"

	reqdto "consult-booking/internal/handler/dto/request"
	resdto "consult-booking/internal/handler/dto/response"
	"consult-booking/internal/usecase"
	"consult-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type InvitationHandler struct {
	cmds commands.InvitationCommands
	gate usecase.InviteGate
}

func NewInvitationHandler(cmds commands.InvitationCommands, gate usecase.InviteGate) *InvitationHandler {
	return &InvitationHandler{cmds: cmds, gate: gate}
}

// @Summary Issue invitation
// @Description Issue an invite token for one client email. Replaces any earlier invite for the same email.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueInvitationRequest true "Invitation"
// @Success 201 {object} resdto.Envelope{data=resdto.InvitationResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/invitations [post]
func (h *InvitationHandler) Issue(c *gin.Context) {
	counselorID, ok := requireCounselor(c)
	if !ok {
		return
	}
	var req reqdto.IssueInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}

	issued, err := h.cmds.Issue(c.Request.Context(), counselorID, req.Email, req.ExpiresInDays)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.OK(resdto.FromIssuedInvitation(issued)))
}

// @Summary Validate invite token
// @Description Resolve an invite token before the client picks a slot
// @Tags public
// @Produce json
// @Param token query string true "Invite token"
// @Success 200 {object} resdto.Envelope{data=resdto.InviteScopeResponse}
// @Failure 401 {object} httperr.Response
// @Router /public/invitations/validate [get]
func (h *InvitationHandler) Validate(c *gin.Context) {
	scope, err := h.gate.Resolve(c.Request.Context(), c.Query("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromInviteScope(scope)))
}
