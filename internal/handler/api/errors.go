package api

import (
	"errors"
	"log/slog"
	"net/http"

	"consult-booking/internal/handler/httperr"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/queries"
	"consult-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// Specific sentinels first; categories below catch the rest.
var errorMappings = []errorMapping{
	{shared.ErrInvalidOrExpiredToken, http.StatusUnauthorized, "INVALID_OR_EXPIRED_TOKEN", "Invalid or expired token"},
	{commands.ErrEmailMismatch, http.StatusForbidden, "EMAIL_MISMATCH", "Email does not match the invitation"},
	{shared.ErrForbidden, http.StatusForbidden, "FORBIDDEN", "Forbidden"},
	{shared.ErrSlotNotFound, http.StatusNotFound, "SLOT_NOT_FOUND", "Slot not found"},
	{shared.ErrReservationNotFound, http.StatusNotFound, "RESERVATION_NOT_FOUND", "Reservation not found"},
	{commands.ErrSlotFull, http.StatusBadRequest, "SLOT_FULL", "Slot is full"},
	{commands.ErrDuplicateActiveReservation, http.StatusConflict, "DUPLICATE_ACTIVE_RESERVATION", "An active reservation for this slot already exists"},
	{commands.ErrSlotClosed, http.StatusBadRequest, "SLOT_CLOSED", "Slot has already started"},
	{commands.ErrDuplicateSlot, http.StatusConflict, "DUPLICATE_SLOT", "Slot already exists"},
	{commands.ErrSlotHasBookings, http.StatusBadRequest, "SLOT_HAS_BOOKINGS", "Slot has active bookings"},
	{commands.ErrSlotHasReservations, http.StatusBadRequest, "SLOT_HAS_RESERVATIONS", "Slot has reservation history"},
	{commands.ErrNoSlotsCreated, http.StatusBadRequest, "NO_SLOTS_CREATED", "No new slots were created"},
	{commands.ErrInvalidTarget, http.StatusBadRequest, "INVALID_STATUS", "Status must be CANCELLED or COMPLETED"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "INVALID_CURSOR", "Invalid cursor"},
	{queries.ErrInvalidLimit, http.StatusBadRequest, "INVALID_LIMIT", "Limit must be between 1 and 50"},
}

// respondError maps a use-case error onto the HTTP envelope. Expected
// rejections stay out of the error log.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			httperr.AbortWithCode(c, m.status, err, m.code, m.message, nil)
			return
		}
	}

	switch {
	case errs.HasCategory(err, errs.ErrValidation):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "VALIDATION_FAILED", err.Error(), nil)
	case errs.HasCategory(err, errs.ErrUnauthenticated):
		httperr.AbortWithCode(c, http.StatusUnauthorized, err, "UNAUTHENTICATED", "Unauthorized", nil)
	case errs.HasCategory(err, errs.ErrForbidden):
		httperr.AbortWithCode(c, http.StatusForbidden, err, "FORBIDDEN", "Forbidden", nil)
	case errs.HasCategory(err, errs.ErrNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, err, "NOT_FOUND", "Not found", nil)
	case errs.HasCategory(err, errs.ErrBusinessRejection):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "REJECTED", err.Error(), nil)
	default:
		slog.Error("unhandled use case error",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12),
		)
		httperr.AbortWithCode(c, http.StatusInternalServerError, err, "INTERNAL", "Internal server error", nil)
	}
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithCode(c, http.StatusBadRequest, err, "INVALID_REQUEST", msg, nil)
}
