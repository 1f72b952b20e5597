package api

import (
	"net/http"
	"strconv"

	"consult-booking/internal/domain/slot"
	reqdto "consult-booking/internal/handler/dto/request"
	resdto "consult-booking/internal/handler/dto/response"
	"consult-booking/internal/handler/httperr"
	"consult-booking/internal/handler/middleware"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/usecase"
	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	cmds         commands.SlotCommands
	q            queries.SlotQueries
	reservations queries.ReservationQueries
	gate         usecase.InviteGate
}

func NewSlotHandler(cmds commands.SlotCommands, q queries.SlotQueries, reservations queries.ReservationQueries, gate usecase.InviteGate) *SlotHandler {
	return &SlotHandler{cmds: cmds, q: q, reservations: reservations, gate: gate}
}

// @Summary List bookable slots
// @Description Slots of the inviting counselor for one local day (date) or a range (from, to)
// @Tags public
// @Produce json
// @Param token query string true "Invite token"
// @Param date query string false "YYYY-MM-DD"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param offset query int false "Timezone offset in minutes (getTimezoneOffset)"
// @Success 200 {object} resdto.Envelope{data=[]resdto.SlotResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /public/slots [get]
func (h *SlotHandler) ListPublic(c *gin.Context) {
	scope, err := h.gate.Resolve(c.Request.Context(), c.Query("token"))
	if err != nil {
		respondError(c, err)
		return
	}

	var window slot.Window
	if date := c.Query("date"); date != "" {
		offset, offErr := parseOffset(c)
		if offErr != nil {
			badRequest(c, offErr, "Invalid offset")
			return
		}
		window, err = slot.DayWindow(date, offset)
	} else {
		window, err = windowFromQuery(c)
	}
	if err != nil {
		respondError(c, errs.Validation(err))
		return
	}

	views, err := h.q.ListPublic(c.Request.Context(), *scope, window)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromSlotViews(views)))
}

// @Summary Create slot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSlotRequest true "Slot"
// @Success 201 {object} resdto.Envelope{data=resdto.SlotResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/slots [post]
func (h *SlotHandler) Create(c *gin.Context) {
	counselorID, ok := requireCounselor(c)
	if !ok {
		return
	}
	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}

	snap, err := h.cmds.CreateSlot(c.Request.Context(), counselorID, commands.CreateSlotInput{
		StartAt:  req.StartAt,
		EndAt:    req.EndAt,
		Capacity: req.Capacity,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.OK(resdto.FromSlotSnapshot(snap)))
}

// @Summary Create slots in batch
// @Description Expand local days x times of day into 30 minute slots. Existing slots are skipped.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSlotBatchRequest true "Batch"
// @Success 201 {object} resdto.Envelope{data=resdto.SlotBatchResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/slots/batch [post]
func (h *SlotHandler) CreateBatch(c *gin.Context) {
	counselorID, ok := requireCounselor(c)
	if !ok {
		return
	}
	var req reqdto.CreateSlotBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.CreateBatch(c.Request.Context(), counselorID, commands.CreateBatchInput{
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		TimesOfDay:    req.TimeSlots,
		ExcludeDates:  req.ExcludeDates,
		Capacity:      req.Capacity,
		OffsetMinutes: req.GetOffset(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.OK(resdto.FromBatchResult(result)))
}

// @Summary List own slots
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param from query string true "YYYY-MM-DD"
// @Param to query string true "YYYY-MM-DD"
// @Param offset query int false "Timezone offset in minutes (getTimezoneOffset)"
// @Success 200 {object} resdto.Envelope{data=[]resdto.SlotResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	counselorID, ok := requireCounselor(c)
	if !ok {
		return
	}
	window, err := windowFromQuery(c)
	if err != nil {
		respondError(c, errs.Validation(err))
		return
	}

	views, err := h.q.ListForOwner(c.Request.Context(), counselorID, window)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromSlotViews(views)))
}

// @Summary Get slot
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.Envelope{data=resdto.SlotResponse}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/slots/{id} [get]
func (h *SlotHandler) Get(c *gin.Context) {
	counselorID, ok := requireCounselor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid slot id")
		return
	}

	view, err := h.q.GetForOwner(c.Request.Context(), counselorID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromSlotView(view)))
}

// @Summary List slot reservations
// @Description Reservations on an owned slot, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.Envelope{data=[]resdto.ReservationResponse}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/slots/{id}/reservations [get]
func (h *SlotHandler) ListReservations(c *gin.Context) {
	counselorID, ok := requireCounselor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid slot id")
		return
	}

	views, err := h.reservations.ListBySlot(c.Request.Context(), counselorID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromReservationViews(views)))
}

// @Summary Delete slot
// @Description Only slots without active bookings can be deleted
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/slots/{id} [delete]
func (h *SlotHandler) Delete(c *gin.Context) {
	counselorID, ok := requireCounselor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid slot id")
		return
	}

	if err := h.cmds.DeleteSlot(c.Request.Context(), counselorID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func requireCounselor(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetCounselorID(c)
	if !ok {
		httperr.AbortWithCode(c, http.StatusUnauthorized, nil, "UNAUTHENTICATED", "Unauthorized", nil)
	}
	return id, ok
}

func parseOffset(c *gin.Context) (int, error) {
	v := c.Query("offset")
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func windowFromQuery(c *gin.Context) (slot.Window, error) {
	offset, err := parseOffset(c)
	if err != nil {
		return slot.Window{}, slot.ErrInvalidOffset
	}
	return slot.DateWindow(c.Query("from"), c.Query("to"), offset)
}
