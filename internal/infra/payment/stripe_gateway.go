// Package payment contains the Stripe implementation of the payment gateway
// capability.
package payment

import (
	"context"
	"log/slog"

	"medistore/config"
	"medistore/internal/domain/service"
	"medistore/internal/errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"go.uber.org/fx"
)

// Params defines the dependencies for the gateway constructor.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// stripeGateway implements service.PaymentGateway against the Stripe API.
type stripeGateway struct {
	api *client.API
}

// unconfiguredGateway is the "not configured" variant: every call reports the
// gateway unavailable. Keeping it behind the same interface avoids nil checks
// scattered across handlers.
type unconfiguredGateway struct{}

// NewStripeGateway creates the payment gateway. Deployments without a Stripe
// secret key get the unconfigured variant so the rest of the storefront still
// serves.
func NewStripeGateway(params Params) service.PaymentGateway {
	if params.Config.Stripe == nil || params.Config.Stripe.SecretKey == "" {
		params.Logger.Warn("Stripe secret key not found, payment features will be disabled")

		return unconfiguredGateway{}
	}

	api := &client.API{}
	api.Init(params.Config.Stripe.SecretKey, nil)

	return &stripeGateway{api: api}
}

// CreateIntent creates a payment intent for the given smallest-unit amount.
func (g *stripeGateway) CreateIntent(ctx context.Context, params service.CreateIntentParams) (*service.PaymentIntent, error) {
	intentParams := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(params.AmountSmallestUnit),
		Currency: stripe.String(params.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	intentParams.Context = ctx
	for key, value := range params.Metadata {
		intentParams.AddMetadata(key, value)
	}

	intent, err := g.api.PaymentIntents.New(intentParams)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment intent")
	}

	return toPaymentIntent(intent), nil
}

// RetrieveIntent fetches the current state of a payment intent.
func (g *stripeGateway) RetrieveIntent(ctx context.Context, id string) (*service.PaymentIntent, error) {
	intentParams := &stripe.PaymentIntentParams{}
	intentParams.Context = ctx

	intent, err := g.api.PaymentIntents.Get(id, intentParams)
	if err != nil {
		return nil, errors.Wrap(err, "failed to retrieve payment intent")
	}

	return toPaymentIntent(intent), nil
}

func (unconfiguredGateway) CreateIntent(context.Context, service.CreateIntentParams) (*service.PaymentIntent, error) {
	return nil, service.ErrGatewayNotConfigured
}

func (unconfiguredGateway) RetrieveIntent(context.Context, string) (*service.PaymentIntent, error) {
	return nil, service.ErrGatewayNotConfigured
}

func toPaymentIntent(intent *stripe.PaymentIntent) *service.PaymentIntent {
	return &service.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
	}
}
