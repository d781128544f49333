package booking

import (
	"context"
	"fmt"

	"trailhead/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// CreatePaymentIntent creates a Stripe payment intent for a pending_payment
// booking and returns its client secret. Payment capture itself happens on
// the client; ConfirmPayment finalizes the transition.
func (e *DefaultBookingEngine) CreatePaymentIntent(ctx context.Context, userID, bookingID string) (string, error) {
	b, err := e.ownedBooking(ctx, userID, bookingID)
	if err != nil {
		return "", err
	}
	if b.Status != models.BookingPendingPayment {
		return "", ErrInvalidStatus
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(b.TotalAmount * 100)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("booking_id", b.ID)
	params.AddMetadata("booking_reference", b.Reference)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
