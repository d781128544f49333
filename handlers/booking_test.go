package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"trailhead/middleware"
	"trailhead/models"
	"trailhead/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEngine returns canned results so handler tests can exercise the HTTP
// mapping in isolation.
type stubEngine struct {
	booking         *models.Booking
	availability    *models.AvailabilityResult
	requiresPayment bool
	err             error
}

func (s *stubEngine) GetAvailability(ctx context.Context, serviceID, date string, quantity int) (*models.AvailabilityResult, error) {
	return s.availability, s.err
}

func (s *stubEngine) CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (*models.Booking, bool, error) {
	return s.booking, s.requiresPayment, s.err
}

func (s *stubEngine) CancelBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubEngine) CompleteBooking(ctx context.Context, providerID, bookingID string) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubEngine) ConfirmPayment(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubEngine) CreatePaymentIntent(ctx context.Context, userID, bookingID string) (string, error) {
	return "secret", s.err
}

func (s *stubEngine) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, s.err
}

func (s *stubEngine) ListProviderBookings(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	return nil, s.err
}

func bookingRouter(engine booking.BookingEngine) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &HandlerBundle{Bookings: engine}
	router := gin.New()
	router.POST("/api/bookings", func(c *gin.Context) {
		c.Set(middleware.CtxUserID, "user-1")
		h.CreateBookingHandler(c)
	})
	router.GET("/api/services/:id/availability", h.GetAvailabilityHandler)
	return router
}

func postBooking(t *testing.T, router *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateBookingHandlerSuccess(t *testing.T) {
	engine := &stubEngine{
		booking:         &models.Booking{ID: "b1", Reference: "BK-X", Status: models.BookingPendingPayment},
		requiresPayment: true,
	}
	w := postBooking(t, bookingRouter(engine), models.BookingRequest{
		ServiceID:   "svc-1",
		ServiceDate: "2026-09-07",
		StartTime:   "10:00",
		EndTime:     "11:00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.RequiresPayment)
	assert.Equal(t, "b1", resp.Booking.ID)
	assert.Contains(t, w.Body.String(), `"requiresPayment":true`)
}

func TestCreateBookingHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"missing fields", booking.ErrMissingFields, http.StatusBadRequest, "Missing required fields: service_id and service_date"},
		{"invalid time range", booking.ErrInvalidTimeRange, http.StatusBadRequest, "Invalid time range"},
		{"service not found", booking.ErrServiceNotFound, http.StatusNotFound, "Service not found"},
		{"slot fully booked", booking.ErrSlotFullyBooked, http.StatusConflict, "Time slot is fully booked"},
		{"unexpected", assert.AnError, http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &stubEngine{err: tt.err}
			w := postBooking(t, bookingRouter(engine), models.BookingRequest{
				ServiceID:   "svc-1",
				ServiceDate: "2026-09-07",
			})

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp["error"])
		})
	}
}

func TestGetAvailabilityHandler(t *testing.T) {
	t.Run("requires date", func(t *testing.T) {
		router := bookingRouter(&stubEngine{})
		req := httptest.NewRequest(http.MethodGet, "/api/services/svc-1/availability", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		router := bookingRouter(&stubEngine{})
		req := httptest.NewRequest(http.MethodGet, "/api/services/svc-1/availability?date=07-09-2026", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects bad quantity", func(t *testing.T) {
		router := bookingRouter(&stubEngine{})
		req := httptest.NewRequest(http.MethodGet, "/api/services/svc-1/availability?date=2026-09-07&quantity=zero", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown service maps to 404", func(t *testing.T) {
		router := bookingRouter(&stubEngine{err: booking.ErrServiceNotFound})
		req := httptest.NewRequest(http.MethodGet, "/api/services/svc-1/availability?date=2026-09-07", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns the advisory result", func(t *testing.T) {
		router := bookingRouter(&stubEngine{availability: &models.AvailabilityResult{
			ServiceID: "svc-1",
			Date:      "2026-09-07",
			Mode:      models.AvailabilityWeekly,
			Slots: []models.SlotAvailability{
				{Start: 600, StartTime: "10:00", Remaining: 3},
			},
		}})
		req := httptest.NewRequest(http.MethodGet, "/api/services/svc-1/availability?date=2026-09-07", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var result models.AvailabilityResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.Len(t, result.Slots, 1)
		assert.Equal(t, 3, result.Slots[0].Remaining)
	})
}
