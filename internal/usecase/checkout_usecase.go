// Package usecase defines the interfaces and data transfer types of the
// application's use case layer.
package usecase

import (
	"context"

	"medistore/internal/domain/entity"
)

// PaymentIntentInput carries the request to open a payment authorization.
// Amount is in decimal currency units; conversion to the smallest currency
// unit happens at the gateway boundary only.
type PaymentIntentInput struct {
	Amount       float64
	Currency     string
	CustomerInfo *entity.CustomerInfo
	CartItems    []entity.LineItem
}

// PaymentIntentResult is returned to the storefront client so it can complete
// the charge.
type PaymentIntentResult struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// ConfirmPaymentInput carries the request to finalize a checkout after the
// client-side payment flow completed.
type ConfirmPaymentInput struct {
	PaymentIntentID string
	CustomerInfo    entity.CustomerInfo
	CartItems       []entity.LineItem
	OrderTotal      float64
}

// CheckoutUsecase defines the order-confirmation workflow against the payment
// gateway.
type CheckoutUsecase interface {
	// CreatePaymentIntent opens a payment authorization for the declared
	// amount and returns its identifier and client secret.
	CreatePaymentIntent(ctx context.Context, input PaymentIntentInput) (*PaymentIntentResult, error)

	// ConfirmPayment verifies the authorization succeeded, persists the order
	// and adjusts stock for every purchased line item. No write happens when
	// the authorization is not in a succeeded state.
	ConfirmPayment(ctx context.Context, input ConfirmPaymentInput) (*entity.Order, error)
}
