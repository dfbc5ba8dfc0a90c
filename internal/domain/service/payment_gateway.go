// Package service defines capability interfaces the use case layer depends
// on, implemented under internal/infra.
package service

import (
	"context"

	"medistore/internal/errors"
)

// ErrGatewayNotConfigured is returned when no payment gateway credentials are
// present. The storefront runs without payments instead of failing at boot.
var ErrGatewayNotConfigured = errors.New("payment gateway not configured")

// IntentStatusSucceeded is the gateway status that authorizes order creation.
const IntentStatusSucceeded = "succeeded"

// CreateIntentParams carries the gateway-boundary form of a charge: the
// amount is already converted to the smallest currency unit. Everywhere else
// in the system amounts stay in decimal currency units.
type CreateIntentParams struct {
	AmountSmallestUnit int64
	Currency           string
	Metadata           map[string]string
}

// PaymentIntent is the gateway's view of a reserved charge.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
}

// PaymentGateway is the capability interface for the third-party payment
// processor. It is injected into the checkout workflow at construction time;
// a nil-credential deployment yields a gateway whose methods return
// ErrGatewayNotConfigured.
type PaymentGateway interface {
	// CreateIntent creates a payment authorization for the given amount and
	// currency and returns its identifier and client secret.
	CreateIntent(ctx context.Context, params CreateIntentParams) (*PaymentIntent, error)

	// RetrieveIntent fetches the current state of an authorization by
	// identifier.
	RetrieveIntent(ctx context.Context, id string) (*PaymentIntent, error)
}
