// Package stripeclient wraps the Stripe SDK behind the payment package's
// processor interface. The API key lives on an explicitly constructed client
// instead of the SDK's global key.
package stripeclient

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"

	"github.com/frahmantamala/checkout-payments/internal/payment"
)

const orderIDMetadataKey = "orderId"

type Client struct {
	api    *client.API
	logger *slog.Logger
}

func New(secretKey string, logger *slog.Logger) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &Client{
		api:    api,
		logger: logger,
	}
}

// CreateIntent opens a PaymentIntent for the given amount and currency.
// Currency must already be lower-cased; Stripe rejects upper-cased codes.
func (c *Client) CreateIntent(ctx context.Context, params payment.IntentParams) (*payment.Intent, error) {
	intentParams := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(params.AmountCents),
		Currency: stripe.String(params.Currency),
	}
	intentParams.Context = ctx
	if params.ReceiptEmail != "" {
		intentParams.ReceiptEmail = stripe.String(params.ReceiptEmail)
	}
	intentParams.AddMetadata(orderIDMetadataKey, params.OrderID)

	c.logger.Info("creating stripe payment intent",
		"order_id", params.OrderID,
		"amount_cents", params.AmountCents,
		"currency", params.Currency)

	intent, err := c.api.PaymentIntents.New(intentParams)
	if err != nil {
		c.logger.Error("stripe payment intent creation failed",
			"error", err,
			"order_id", params.OrderID)
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	c.logger.Info("stripe payment intent created",
		"payment_intent_id", intent.ID,
		"order_id", params.OrderID)

	return &payment.Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
