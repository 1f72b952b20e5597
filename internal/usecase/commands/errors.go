package commands

import "consult-booking/internal/pkg/errs"

var (
	ErrSlotFull                   = errs.Sentinel("slot is full", errs.ErrBusinessRejection)
	ErrDuplicateActiveReservation = errs.Sentinel("an active reservation for this slot and email already exists", errs.ErrBusinessRejection)
	ErrSlotClosed                 = errs.Sentinel("slot has already started", errs.ErrValidation)
	ErrEmailMismatch              = errs.Sentinel("email does not match the invitation", errs.ErrForbidden)
	ErrInvalidTarget              = errs.Sentinel("target status must be CANCELLED or COMPLETED", errs.ErrValidation)
	ErrBookingFailed              = errs.New("booking failed")

	ErrDuplicateSlot       = errs.Sentinel("slot already exists", errs.ErrBusinessRejection)
	ErrSlotHasBookings     = errs.Sentinel("slot has active bookings", errs.ErrBusinessRejection)
	ErrSlotHasReservations = errs.Sentinel("slot has reservation history", errs.ErrBusinessRejection)
	ErrNoSlotsCreated      = errs.Sentinel("no slots to create", errs.ErrBusinessRejection)
)
