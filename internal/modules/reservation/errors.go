package reservation

import "errors"

var (
	ErrInvalidDates    = errors.New("booking end precedes booking start")
	ErrRoomUnavailable = errors.New("room not available for the requested window")
	ErrNotFound        = errors.New("reservation not found")
	ErrForbidden       = errors.New("forbidden")
	ErrCancelledStay   = errors.New("reservation has been cancelled")
)
