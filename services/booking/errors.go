package booking

import "errors"

// Sentinel errors for the booking engine. Handlers map these to HTTP status
// codes; everything else is an internal error.
var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrServiceNotFound  = errors.New("service not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotOwner         = errors.New("booking does not belong to caller")
	ErrSlotFullyBooked  = errors.New("time slot is fully booked")
	ErrInvalidStatus    = errors.New("booking status does not allow this transition")
)
