package booking

import (
	"context"
	"fmt"
	"time"

	"trailhead/models"
	"trailhead/utils"

	"go.uber.org/zap"
)

// CancelBooking transitions a caller-owned booking to cancelled. Bookings
// are never deleted; cancellation frees the capacity the booking held.
func (e *DefaultBookingEngine) CancelBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	b, err := e.ownedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	switch b.Status {
	case models.BookingPending, models.BookingPendingPayment, models.BookingConfirmed:
	default:
		return nil, ErrInvalidStatus
	}

	if err := e.Bookings.UpdateStatus(ctx, b.ID, models.BookingCancelled); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	b.Status = models.BookingCancelled
	b.UpdatedAt = time.Now()

	e.invalidateSlotCache(ctx, b.ServiceID, b.Date)

	go func(b models.Booking) {
		nctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		svc, err := e.Services.GetByID(nctx, b.ServiceID)
		if err != nil || svc == nil {
			return
		}
		if err := e.Notifier.NotifyBookingCancelled(nctx, &b, svc); err != nil {
			utils.GetLogger().Warn("failed to notify provider of cancellation",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}(*b)

	return b, nil
}

// CompleteBooking lets the provider mark a confirmed booking as completed.
func (e *DefaultBookingEngine) CompleteBooking(ctx context.Context, providerID, bookingID string) (*models.Booking, error) {
	b, err := e.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if b.ProviderID != providerID {
		return nil, ErrNotOwner
	}
	if b.Status != models.BookingConfirmed {
		return nil, ErrInvalidStatus
	}

	if err := e.Bookings.UpdateStatus(ctx, b.ID, models.BookingCompleted); err != nil {
		return nil, fmt.Errorf("failed to complete booking: %w", err)
	}
	b.Status = models.BookingCompleted
	b.UpdatedAt = time.Now()
	return b, nil
}

// ConfirmPayment transitions a pending_payment booking to confirmed after
// payment capture.
func (e *DefaultBookingEngine) ConfirmPayment(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	b, err := e.ownedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingPendingPayment {
		return nil, ErrInvalidStatus
	}

	if err := e.Bookings.UpdateStatus(ctx, b.ID, models.BookingConfirmed); err != nil {
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}
	b.Status = models.BookingConfirmed
	b.UpdatedAt = time.Now()
	return b, nil
}

func (e *DefaultBookingEngine) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return e.Bookings.ListByUser(ctx, userID)
}

func (e *DefaultBookingEngine) ListProviderBookings(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	return e.Bookings.ListByProviderDate(ctx, providerID, date)
}

func (e *DefaultBookingEngine) ownedBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	b, err := e.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if b.UserID != userID {
		return nil, ErrNotOwner
	}
	return b, nil
}
