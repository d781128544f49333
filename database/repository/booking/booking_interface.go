package bookingRepo

import (
	"context"
	"errors"

	"trailhead/models"
)

// ErrCapacityExceeded is returned when the transactional insert finds the
// interval over capacity at commit time. Callers surface it exactly like a
// pre-check conflict.
var ErrCapacityExceeded = errors.New("booking capacity exceeded")

// BookingRepository defines persistence for service bookings. Capacity sums
// only count bookings in an active status (pending, pending_payment,
// confirmed).
type BookingRepository interface {
	// InsertWithCapacityCheck inserts the booking inside a transaction and
	// re-validates capacity against committed state before committing.
	// exactStart selects discrete-slot counting (same start minute) instead
	// of interval overlap. Returns ErrCapacityExceeded on conflict.
	InsertWithCapacityCheck(ctx context.Context, booking *models.Booking, maxCapacity int, exactStart bool) error

	SumOverlapping(ctx context.Context, serviceID, date string, start, end int) (int, error)
	SumAtStart(ctx context.Context, serviceID, date string, start int) (int, error)
	ListActiveByServiceDate(ctx context.Context, serviceID, date string) ([]models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListByProviderDate(ctx context.Context, providerID, date string) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
