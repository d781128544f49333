package models

import "time"

// Booking statuses. A booking is never deleted; cancellation and completion
// are status transitions.
const (
	BookingPending        = "pending"
	BookingPendingPayment = "pending_payment"
	BookingConfirmed      = "confirmed"
	BookingCompleted      = "completed"
	BookingCancelled      = "cancelled"
)

// ActiveBookingStatuses are the statuses that count toward capacity.
var ActiveBookingStatuses = []string{BookingPending, BookingPendingPayment, BookingConfirmed}

// Booking represents a reservation of one service for one date and time range.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	Reference       string    `bson:"reference" json:"reference"` // human-readable booking reference
	ServiceID       string    `bson:"service_id" json:"service_id"`
	ProviderID      string    `bson:"provider_id" json:"provider_id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	Date            string    `bson:"date" json:"date"`   // "2006-01-02"
	Start           int       `bson:"start" json:"start"` // minutes from midnight
	End             int       `bson:"end" json:"end"`     // minutes from midnight
	Quantity        int       `bson:"quantity" json:"quantity"` // people, not rows
	TotalAmount     float64   `bson:"total_amount" json:"total_amount"`
	Status          string    `bson:"status" json:"status"`
	SpecialRequests string    `bson:"special_requests,omitempty" json:"special_requests,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingRequest is the wire payload for creating a booking.
type BookingRequest struct {
	ServiceID       string `json:"service_id"`
	ServiceDate     string `json:"service_date"`
	StartTime       string `json:"start_time,omitempty"` // "HH:MM"
	EndTime         string `json:"end_time,omitempty"`   // "HH:MM"
	SpecialRequests string `json:"special_requests,omitempty"`
	Quantity        int    `json:"quantity,omitempty"` // defaults to 1
}

// BookingResponse is returned on successful creation.
type BookingResponse struct {
	Success         bool     `json:"success"`
	Booking         *Booking `json:"booking"`
	RequiresPayment bool     `json:"requiresPayment"`
}
