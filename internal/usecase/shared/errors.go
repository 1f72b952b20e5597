package shared

import "consult-booking/internal/pkg/errs"

var (
	ErrInvalidOrExpiredToken = errs.Sentinel("invalid or expired token", errs.ErrUnauthenticated)
	ErrForbidden             = errs.Sentinel("not allowed to act on this resource", errs.ErrForbidden)
	ErrSlotNotFound          = errs.Sentinel("slot not found", errs.ErrNotFound)
	ErrReservationNotFound   = errs.Sentinel("reservation not found", errs.ErrNotFound)
)
