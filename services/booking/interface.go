package booking

import (
	"context"

	bookingRepo "trailhead/database/repository/booking"
	serviceRepo "trailhead/database/repository/service"
	"trailhead/models"
	"trailhead/services/notification"

	"github.com/go-redis/redis/v8"
)

// BookingEngine is the booking core: availability resolution, conflict
// checking, and the authoritative booking writer.
type BookingEngine interface {
	// GetAvailability computes the advisory per-slot state for one service
	// and date. It never reserves anything; a slot shown available can
	// still fail at creation if another booking commits first.
	GetAvailability(ctx context.Context, serviceID, date string, quantity int) (*models.AvailabilityResult, error)
	// CreateBooking is the authoritative writer. It re-validates conflict
	// state against current database state and never trusts client-side
	// slot-validity claims. The bool reports whether payment is required.
	CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (*models.Booking, bool, error)

	CancelBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	CompleteBooking(ctx context.Context, providerID, bookingID string) (*models.Booking, error)
	ConfirmPayment(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	CreatePaymentIntent(ctx context.Context, userID, bookingID string) (string, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	ListProviderBookings(ctx context.Context, providerID, date string) ([]models.Booking, error)
}

// DefaultBookingEngine is the production implementation.
type DefaultBookingEngine struct {
	Bookings bookingRepo.BookingRepository
	Services serviceRepo.ServiceRepository
	Notifier notification.NotificationService
	Cache    *redis.Client // nil disables slot-state caching
}
