package api

import (
	"net/http"
	"strconv"

	resdto "consult-booking/internal/handler/dto/response"
	"consult-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	q queries.NotificationQueries
}

func NewNotificationHandler(q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{q: q}
}

// @Summary List due notification jobs
// @Description Queued outbox jobs whose run_at has passed, oldest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max jobs (1-50, default 20)"
// @Success 200 {object} resdto.Envelope{data=[]resdto.NotificationJobResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/notifications [get]
func (h *NotificationHandler) ListDue(c *gin.Context) {
	var limit *int
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(c, queries.ErrInvalidLimit)
			return
		}
		limit = &n
	}

	jobs, err := h.q.ListDue(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromNotificationJobs(jobs)))
}
