package api

import (
	"net/http"
	"strconv"

	"consult-booking/internal/domain/reservation"
	reqdto "consult-booking/internal/handler/dto/request"
	resdto "consult-booking/internal/handler/dto/response"
	"consult-booking/internal/handler/httperr"
	"consult-booking/internal/usecase"
	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.BookingCommands
	q    queries.ReservationQueries
	gate usecase.InviteGate
}

func NewReservationHandler(cmds commands.BookingCommands, q queries.ReservationQueries, gate usecase.InviteGate) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, gate: gate}
}

// @Summary Book a slot
// @Description Reserve one seat of a slot with an invite token
// @Tags public
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Booking request"
// @Success 201 {object} resdto.Envelope{data=resdto.BookingResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /public/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}

	scope, err := h.gate.Resolve(c.Request.Context(), req.Token)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), *scope, commands.CreateBookingInput{
		SlotID: req.SlotID,
		Email:  req.GetEmail(),
		Name:   req.Name,
		Note:   req.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", "/public/reservations/"+result.Reservation.ID.String())
	c.JSON(http.StatusCreated, resdto.OK(resdto.FromBookingResult(result)))
}

// @Summary Cancel with invite
// @Description Cancel a reservation as the invited client. Repeating the call returns the same reservation.
// @Tags public
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CancelReservationRequest true "Invite token"
// @Success 200 {object} resdto.Envelope{data=resdto.TransitionResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /public/reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelWithInvite(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid reservation id")
		return
	}
	var req reqdto.CancelReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		badRequest(c, bindErr, "Invalid request")
		return
	}

	scope, err := h.gate.Resolve(c.Request.Context(), req.Token)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.cmds.CancelWithInvite(c.Request.Context(), *scope, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromTransitionResult(result)))
}

// @Summary Cancel with reservation token
// @Description Cancel the reservation a standalone reservation token points at
// @Tags public
// @Produce json
// @Param token query string true "Reservation token"
// @Success 200 {object} resdto.Envelope{data=resdto.TransitionResponse}
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /public/reservations/cancel [post]
func (h *ReservationHandler) CancelWithReservationToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		httperr.AbortWithCode(c, http.StatusUnauthorized, nil, "INVALID_OR_EXPIRED_TOKEN", "Invalid or expired token", nil)
		return
	}

	result, err := h.cmds.CancelWithReservationToken(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromTransitionResult(result)))
}

// @Summary Update reservation status
// @Description Cancel or complete a reservation on one of the counselor's slots
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationStatusRequest true "Target status"
// @Success 200 {object} resdto.Envelope{data=resdto.TransitionResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/reservations/{id}/status [patch]
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	counselorID, ok := requireCounselor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid reservation id")
		return
	}
	var req reqdto.UpdateReservationStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		badRequest(c, bindErr, "Invalid request")
		return
	}
	target, err := reservation.ParseTargetStatus(req.Status)
	if err != nil {
		badRequest(c, err, "Status must be CANCELLED or COMPLETED")
		return
	}

	result, err := h.cmds.TransitionAsOwner(c.Request.Context(), counselorID, id, target)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromTransitionResult(result)))
}

// @Summary Reservation history
// @Description Page a client's reservations newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param email query string true "Client email"
// @Param status query string false "BOOKED, CANCELLED or COMPLETED"
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size (1-50, default 20)"
// @Success 200 {object} resdto.Envelope{data=resdto.HistoryResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/reservations [get]
func (h *ReservationHandler) History(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		badRequest(c, nil, "email is required")
		return
	}

	var limit *int
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(c, queries.ErrInvalidLimit)
			return
		}
		limit = &n
	}
	var status, cursor *string
	if v := c.Query("status"); v != "" {
		status = &v
	}
	if v := c.Query("cursor"); v != "" {
		cursor = &v
	}

	page, err := h.q.History(c.Request.Context(), email, status, cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromHistoryPage(page)))
}

// @Summary Get reservation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.Envelope{data=resdto.ReservationResponse}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	counselorID, ok := requireCounselor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid reservation id")
		return
	}

	view, err := h.q.GetForOwner(c.Request.Context(), counselorID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromReservationView(view)))
}
