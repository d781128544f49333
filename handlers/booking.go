package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"trailhead/middleware"
	"trailhead/models"
	"trailhead/services/booking"
	"trailhead/utils"

	"github.com/gin-gonic/gin"
)

// GetAvailabilityHandler returns the advisory slot state for a service on a
// given date. The response is a hint for clients; the booking writer is the
// authority.
func (h *HandlerBundle) GetAvailabilityHandler(c *gin.Context) {
	serviceID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter: date")
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}
	quantity := 1
	if q := c.Query("quantity"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil || parsed < 1 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid quantity")
			return
		}
		quantity = parsed
	}

	result, err := h.Bookings.GetAvailability(c.Request.Context(), serviceID, date, quantity)
	if err != nil {
		if errors.Is(err, booking.ErrServiceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found")
			return
		}
		h.internalError(c, "availability", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateBookingHandler is the authoritative booking endpoint. All conflict
// and capacity validation happens server-side against current state.
func (h *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields: service_id and service_date")
		return
	}

	b, requiresPayment, err := h.Bookings.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMissingFields):
			utils.JSONError(c, http.StatusBadRequest, "Missing required fields: service_id and service_date")
		case errors.Is(err, booking.ErrInvalidTimeRange):
			utils.JSONError(c, http.StatusBadRequest, "Invalid time range")
		case errors.Is(err, booking.ErrServiceNotFound):
			utils.JSONError(c, http.StatusNotFound, "Service not found")
		case errors.Is(err, booking.ErrSlotFullyBooked):
			utils.JSONError(c, http.StatusConflict, "Time slot is fully booked")
		default:
			h.internalError(c, "booking.create", err)
		}
		return
	}

	c.JSON(http.StatusCreated, models.BookingResponse{
		Success:         true,
		Booking:         b,
		RequiresPayment: requiresPayment,
	})
}

// CancelBookingHandler cancels an active booking owned by the caller.
func (h *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	b, err := h.Bookings.CancelBooking(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.bookingTransitionError(c, "booking.cancel", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// CompleteBookingHandler marks a confirmed booking completed. Provider only.
func (h *HandlerBundle) CompleteBookingHandler(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)
	b, err := h.Bookings.CompleteBooking(c.Request.Context(), providerID, c.Param("id"))
	if err != nil {
		h.bookingTransitionError(c, "booking.complete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// ConfirmPaymentHandler promotes a pending_payment booking to confirmed.
func (h *HandlerBundle) ConfirmPaymentHandler(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	b, err := h.Bookings.ConfirmPayment(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.bookingTransitionError(c, "booking.confirm_payment", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// CreatePaymentIntentHandler returns a Stripe client secret for the booking.
func (h *HandlerBundle) CreatePaymentIntentHandler(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	clientSecret, err := h.Bookings.CreatePaymentIntent(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.bookingTransitionError(c, "booking.payment_intent", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// ListUserBookingsHandler lists the caller's bookings, newest first.
func (h *HandlerBundle) ListUserBookingsHandler(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	bookings, err := h.Bookings.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		h.internalError(c, "booking.list_user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListProviderBookingsHandler lists bookings across the provider's services,
// optionally filtered to one date.
func (h *HandlerBundle) ListProviderBookingsHandler(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)
	bookings, err := h.Bookings.ListProviderBookings(c.Request.Context(), providerID, c.Query("date"))
	if err != nil {
		h.internalError(c, "booking.list_provider", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// bookingTransitionError maps booking lifecycle errors to HTTP statuses.
func (h *HandlerBundle) bookingTransitionError(c *gin.Context, source string, err error) {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, booking.ErrNotOwner):
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, booking.ErrInvalidStatus):
		utils.JSONError(c, http.StatusConflict, "Booking status does not allow this operation")
	default:
		h.internalError(c, source, err)
	}
}
