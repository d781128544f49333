package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	bookingRepo "trailhead/database/repository/booking"
	"trailhead/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRangeService(services *mockServiceRepo) *models.Service {
	svc := rangeService()
	svc.ProviderID = "prov-1"
	svc.PricingModel = models.PricingHourly
	svc.Price = 40
	services.services[svc.ID] = svc
	return svc
}

func seedWeeklyService(services *mockServiceRepo) *models.Service {
	svc := weeklyService()
	svc.ProviderID = "prov-1"
	svc.PricingModel = models.PricingFixed
	svc.Price = 0
	services.services[svc.ID] = svc
	return svc
}

func waitNotified(t *testing.T, ch chan string) string {
	t.Helper()
	select {
	case id := <-ch:
		return id
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
		return ""
	}
}

func TestCreateBookingValidation(t *testing.T) {
	engine, _, services, _ := newTestEngine()
	seedRangeService(services)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.BookingRequest
		want error
	}{
		{"missing service id", models.BookingRequest{ServiceDate: "2026-09-07"}, ErrMissingFields},
		{"missing date", models.BookingRequest{ServiceID: "svc-range"}, ErrMissingFields},
		{"malformed date", models.BookingRequest{ServiceID: "svc-range", ServiceDate: "07/09/2026", StartTime: "10:00", EndTime: "11:00"}, ErrMissingFields},
		{"missing start time", models.BookingRequest{ServiceID: "svc-range", ServiceDate: "2026-09-07", EndTime: "11:00"}, ErrMissingFields},
		{"missing end time for range", models.BookingRequest{ServiceID: "svc-range", ServiceDate: "2026-09-07", StartTime: "10:00"}, ErrMissingFields},
		{"end before start", models.BookingRequest{ServiceID: "svc-range", ServiceDate: "2026-09-07", StartTime: "11:00", EndTime: "10:00"}, ErrInvalidTimeRange},
		{"zero duration", models.BookingRequest{ServiceID: "svc-range", ServiceDate: "2026-09-07", StartTime: "10:00", EndTime: "10:00"}, ErrInvalidTimeRange},
		{"unknown service", models.BookingRequest{ServiceID: "nope", ServiceDate: "2026-09-07", StartTime: "10:00", EndTime: "11:00"}, ErrServiceNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := engine.CreateBooking(ctx, "user-1", tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateBookingFreeServiceConfirmsImmediately(t *testing.T) {
	engine, _, services, notifier := newTestEngine()
	seedWeeklyService(services)

	b, requiresPayment, err := engine.CreateBooking(context.Background(), "user-1", models.BookingRequest{
		ServiceID:   "svc-weekly",
		ServiceDate: "2026-09-07",
		StartTime:   "10:00",
	})
	require.NoError(t, err)
	assert.False(t, requiresPayment)
	assert.Equal(t, models.BookingConfirmed, b.Status)
	assert.Equal(t, 1, b.Quantity) // defaults to one person
	assert.Equal(t, 600, b.Start)
	assert.Equal(t, 660, b.End) // session duration applied
	assert.Equal(t, "prov-1", b.ProviderID)
	assert.NotEmpty(t, b.Reference)

	assert.Equal(t, b.ID, waitNotified(t, notifier.created))
}

func TestCreateBookingPricedServiceRequiresPayment(t *testing.T) {
	engine, _, services, notifier := newTestEngine()
	seedRangeService(services)

	b, requiresPayment, err := engine.CreateBooking(context.Background(), "user-1", models.BookingRequest{
		ServiceID:   "svc-range",
		ServiceDate: "2026-09-07",
		StartTime:   "10:00",
		EndTime:     "11:30",
		Quantity:    2,
	})
	require.NoError(t, err)
	assert.True(t, requiresPayment)
	assert.Equal(t, models.BookingPendingPayment, b.Status)
	assert.InDelta(t, 120.0, b.TotalAmount, 0.001)
	waitNotified(t, notifier.created)
}

func TestCreateBookingCapacityConflicts(t *testing.T) {
	ctx := context.Background()

	t.Run("quantity beyond capacity rejected even when empty", func(t *testing.T) {
		engine, _, services, _ := newTestEngine()
		seedRangeService(services) // capacity 2
		_, _, err := engine.CreateBooking(ctx, "user-1", models.BookingRequest{
			ServiceID:   "svc-range",
			ServiceDate: "2026-09-07",
			StartTime:   "10:00",
			EndTime:     "11:00",
			Quantity:    3,
		})
		assert.ErrorIs(t, err, ErrSlotFullyBooked)
	})

	t.Run("overlapping interval at capacity rejected", func(t *testing.T) {
		engine, repo, services, _ := newTestEngine()
		seedRangeService(services)
		repo.bookings = append(repo.bookings, models.Booking{
			ID: "b1", ServiceID: "svc-range", Date: "2026-09-07",
			Start: 600, End: 660, Quantity: 2, Status: models.BookingConfirmed,
		})

		_, _, err := engine.CreateBooking(ctx, "user-2", models.BookingRequest{
			ServiceID:   "svc-range",
			ServiceDate: "2026-09-07",
			StartTime:   "10:30",
			EndTime:     "11:30",
		})
		assert.ErrorIs(t, err, ErrSlotFullyBooked)
	})

	t.Run("touching interval is accepted", func(t *testing.T) {
		engine, repo, services, notifier := newTestEngine()
		seedRangeService(services)
		repo.bookings = append(repo.bookings, models.Booking{
			ID: "b1", ServiceID: "svc-range", Date: "2026-09-07",
			Start: 600, End: 660, Quantity: 2, Status: models.BookingConfirmed,
		})

		b, _, err := engine.CreateBooking(ctx, "user-2", models.BookingRequest{
			ServiceID:   "svc-range",
			ServiceDate: "2026-09-07",
			StartTime:   "11:00",
			EndTime:     "12:00",
		})
		require.NoError(t, err)
		assert.Equal(t, 660, b.Start)
		waitNotified(t, notifier.created)
	})

	t.Run("cancelled bookings free their capacity", func(t *testing.T) {
		engine, repo, services, notifier := newTestEngine()
		seedRangeService(services)
		repo.bookings = append(repo.bookings, models.Booking{
			ID: "b1", ServiceID: "svc-range", Date: "2026-09-07",
			Start: 600, End: 660, Quantity: 2, Status: models.BookingCancelled,
		})

		_, _, err := engine.CreateBooking(ctx, "user-2", models.BookingRequest{
			ServiceID:   "svc-range",
			ServiceDate: "2026-09-07",
			StartTime:   "10:00",
			EndTime:     "11:00",
			Quantity:    2,
		})
		require.NoError(t, err)
		waitNotified(t, notifier.created)
	})

	t.Run("commit-time conflict maps to the same error", func(t *testing.T) {
		engine, repo, services, _ := newTestEngine()
		seedRangeService(services)
		repo.insertErr = fmt.Errorf("transaction aborted: %w", bookingRepo.ErrCapacityExceeded)

		_, _, err := engine.CreateBooking(ctx, "user-1", models.BookingRequest{
			ServiceID:   "svc-range",
			ServiceDate: "2026-09-07",
			StartTime:   "10:00",
			EndTime:     "11:00",
		})
		assert.ErrorIs(t, err, ErrSlotFullyBooked)
	})
}

func TestCreateBookingNotificationFailureDoesNotRollBack(t *testing.T) {
	engine, repo, services, notifier := newTestEngine()
	seedWeeklyService(services)
	notifier.err = errors.New("fcm unreachable")

	b, _, err := engine.CreateBooking(context.Background(), "user-1", models.BookingRequest{
		ServiceID:   "svc-weekly",
		ServiceDate: "2026-09-07",
		StartTime:   "10:00",
	})
	require.NoError(t, err)
	waitNotified(t, notifier.created)

	stored, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.BookingConfirmed, stored.Status)
}

func TestCreateBookingDiscreteSlotsCountSameStartOnly(t *testing.T) {
	engine, repo, services, notifier := newTestEngine()
	svc := seedWeeklyService(services)
	svc.MaxCapacity = 2

	// Existing session at 10:00 fills the slot.
	repo.bookings = append(repo.bookings, models.Booking{
		ID: "b1", ServiceID: "svc-weekly", Date: "2026-09-07",
		Start: 600, End: 660, Quantity: 2, Status: models.BookingConfirmed,
	})

	_, _, err := engine.CreateBooking(context.Background(), "user-2", models.BookingRequest{
		ServiceID:   "svc-weekly",
		ServiceDate: "2026-09-07",
		StartTime:   "10:00",
	})
	assert.ErrorIs(t, err, ErrSlotFullyBooked)

	// A different configured start is an independent slot.
	_, _, err = engine.CreateBooking(context.Background(), "user-2", models.BookingRequest{
		ServiceID:   "svc-weekly",
		ServiceDate: "2026-09-07",
		StartTime:   "14:00",
	})
	require.NoError(t, err)
	waitNotified(t, notifier.created)
}
