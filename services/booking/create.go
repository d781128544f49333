package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "trailhead/database/repository/booking"
	"trailhead/models"
	"trailhead/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking authoritatively creates a booking. Validation failures
// return sentinel errors without side effects; a capacity conflict found
// either by the pre-check or by the transactional insert surfaces as
// ErrSlotFullyBooked so the two layers are indistinguishable to callers.
func (e *DefaultBookingEngine) CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (*models.Booking, bool, error) {
	logger := utils.GetLogger()

	if req.ServiceID == "" || req.ServiceDate == "" {
		return nil, false, ErrMissingFields
	}
	if _, err := time.Parse("2006-01-02", req.ServiceDate); err != nil {
		return nil, false, ErrMissingFields
	}

	svc, err := e.Services.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load service: %w", err)
	}
	if svc == nil {
		return nil, false, ErrServiceNotFound
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	discrete := svc.AvailabilityType == models.AvailabilityWeekly
	start, end, err := resolveBookingWindow(svc, req)
	if err != nil {
		return nil, false, err
	}
	duration := end - start
	if duration <= 0 {
		return nil, false, ErrInvalidTimeRange
	}

	totalAmount := CalculateTotalAmount(svc, duration, quantity)

	// Authoritative pre-check against current database state, not the
	// client's cached view.
	var used int
	if discrete {
		used, err = e.Bookings.SumAtStart(ctx, svc.ID, req.ServiceDate, start)
	} else {
		used, err = e.Bookings.SumOverlapping(ctx, svc.ID, req.ServiceDate, start, end)
	}
	if err != nil {
		return nil, false, fmt.Errorf("capacity check failed: %w", err)
	}
	if used+quantity > svc.MaxCapacity {
		return nil, false, ErrSlotFullyBooked
	}

	now := time.Now()
	status := models.BookingConfirmed
	if totalAmount > 0 {
		status = models.BookingPendingPayment
	}
	b := &models.Booking{
		ID:              uuid.New().String(),
		Reference:       utils.GenerateBookingReference(),
		ServiceID:       svc.ID,
		ProviderID:      svc.ProviderID,
		UserID:          userID,
		Date:            req.ServiceDate,
		Start:           start,
		End:             end,
		Quantity:        quantity,
		TotalAmount:     totalAmount,
		Status:          status,
		SpecialRequests: req.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// The transactional insert re-checks capacity against committed state; a
	// rejection here is a legitimate concurrent-conflict outcome and maps to
	// the same error as the pre-check.
	if err := e.Bookings.InsertWithCapacityCheck(ctx, b, svc.MaxCapacity, discrete); err != nil {
		if errors.Is(err, bookingRepo.ErrCapacityExceeded) {
			return nil, false, ErrSlotFullyBooked
		}
		return nil, false, fmt.Errorf("booking insert failed: %w", err)
	}

	e.invalidateSlotCache(ctx, svc.ID, req.ServiceDate)

	// Best-effort provider notification; failure must not roll back the
	// booking.
	go func(b models.Booking, svc models.Service) {
		nctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Notifier.NotifyBookingCreated(nctx, &b, &svc); err != nil {
			logger.Warn("failed to notify provider of new booking",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}(*b, *svc)

	return b, totalAmount > 0, nil
}

// resolveBookingWindow determines the [start, end) minute window for the
// request. Range services require both bounds from the client; weekly
// services take the session start and derive the end from the configured
// session duration.
func resolveBookingWindow(svc *models.Service, req models.BookingRequest) (int, int, error) {
	if req.StartTime == "" {
		return 0, 0, ErrMissingFields
	}
	start, err := utils.ParseClock(req.StartTime)
	if err != nil {
		return 0, 0, ErrInvalidTimeRange
	}

	if svc.AvailabilityType == models.AvailabilityWeekly {
		if svc.SessionDuration <= 0 {
			return 0, 0, ErrInvalidTimeRange
		}
		return start, start + svc.SessionDuration, nil
	}

	if req.EndTime == "" {
		return 0, 0, ErrMissingFields
	}
	end, err := utils.ParseClock(req.EndTime)
	if err != nil {
		return 0, 0, ErrInvalidTimeRange
	}
	return start, end, nil
}
