package booking

import (
	"context"
	"fmt"
	"math"

	"fixify/config"
	"fixify/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// PaymentHandler creates the checkout the customer pays through. Settlement
// and webhooks are handled outside this service.
type PaymentHandler interface {
	CreateCheckoutSession(ctx context.Context, b *models.Booking) (sessionID, checkoutURL string, err error)
}

// StripePaymentHandler implements PaymentHandler with Stripe Checkout.
type StripePaymentHandler struct {
	Logger *zap.Logger
}

// amountToCents rounds so a price like 79.99 becomes 7999 cents rather than
// truncating the float representation down to 7998.
func amountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (h *StripePaymentHandler) CreateCheckoutSession(ctx context.Context, b *models.Booking) (string, string, error) {
	currency := b.Currency
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(b.Email),
		SuccessURL:    stripe.String(config.AppConfig.CheckoutSuccessURL),
		CancelURL:     stripe.String(config.AppConfig.CheckoutCancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(b.Service),
						Description: stripe.String(fmt.Sprintf("%s on %s at %s", b.Service, b.Date, b.Time)),
					},
					UnitAmount: stripe.Int64(amountToCents(b.Amount)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		ClientReferenceID: stripe.String(b.ID),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	h.Logger.Info("checkout session created",
		zap.String("bookingID", b.ID),
		zap.String("sessionID", sess.ID))
	return sess.ID, sess.URL, nil
}
