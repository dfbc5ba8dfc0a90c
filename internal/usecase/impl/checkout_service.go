// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"math"
	"strconv"
	"time"

	"medistore/config"
	"medistore/internal/domain/entity"
	domainerrors "medistore/internal/domain/errors"
	"medistore/internal/domain/repository"
	"medistore/internal/domain/service"
	"medistore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultCurrency = "usd"

type checkoutService struct {
	gateway   service.PaymentGateway
	orders    repository.OrderRepository
	medicines repository.MedicineRepository
	config    *config.Config
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Gateway   service.PaymentGateway
	Orders    repository.OrderRepository
	Medicines repository.MedicineRepository
	Config    *config.Config
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		gateway:   params.Gateway,
		orders:    params.Orders,
		medicines: params.Medicines,
		config:    params.Config,
	}
}

// CreatePaymentIntent opens a payment authorization for the declared amount.
func (s *checkoutService) CreatePaymentIntent(ctx context.Context, input usecase.PaymentIntentInput) (*usecase.PaymentIntentResult, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidAmount
	}

	currency := input.Currency
	if currency == "" {
		currency = s.defaultCurrency()
	}

	metadata := map[string]string{
		"itemCount": strconv.Itoa(len(input.CartItems)),
		"orderType": "medicine_purchase",
	}
	if input.CustomerInfo != nil {
		metadata["customerEmail"] = input.CustomerInfo.Email
		metadata["customerName"] = input.CustomerInfo.FullName
	}

	intent, err := s.gateway.CreateIntent(ctx, service.CreateIntentParams{
		AmountSmallestUnit: toSmallestUnit(input.Amount),
		Currency:           currency,
		Metadata:           metadata,
	})
	if err != nil {
		if errors.Is(err, service.ErrGatewayNotConfigured) {
			return nil, domainerrors.ErrPaymentUnavailable
		}

		return nil, errors.Wrap(err, "failed to create payment intent")
	}

	return &usecase.PaymentIntentResult{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}

// ConfirmPayment verifies the authorization, persists the order and adjusts
// stock per line item. The per-item loop is not transactional: a store
// failure mid-loop leaves the order persisted and earlier items decremented.
func (s *checkoutService) ConfirmPayment(ctx context.Context, input usecase.ConfirmPaymentInput) (*entity.Order, error) {
	if input.PaymentIntentID == "" || len(input.CartItems) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("paymentIntentId and cartItems are required")
	}

	intent, err := s.gateway.RetrieveIntent(ctx, input.PaymentIntentID)
	if err != nil {
		if errors.Is(err, service.ErrGatewayNotConfigured) {
			return nil, domainerrors.ErrPaymentUnavailable
		}

		return nil, errors.Wrap(err, "failed to retrieve payment intent")
	}

	if intent.Status != service.IntentStatusSucceeded {
		return nil, domainerrors.ErrPaymentNotCompleted
	}

	now := time.Now().UTC()
	order := &entity.Order{
		PaymentIntentID: input.PaymentIntentID,
		CustomerInfo:    input.CustomerInfo,
		Items:           input.CartItems,
		OrderTotal:      input.OrderTotal,
		PaymentStatus:   entity.PaymentStatusPaid,
		OrderStatus:     entity.OrderStatusConfirmed,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	for _, item := range input.CartItems {
		if err := s.adjustStock(ctx, item); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// adjustStock decrements the medicine's stock for one line item, then clamps
// stock to exactly zero when the decrement drove it to or below zero.
func (s *checkoutService) adjustStock(ctx context.Context, item entity.LineItem) error {
	id := item.MedicineRef()

	if err := s.medicines.DecrementStock(ctx, id, item.Quantity); err != nil {
		return errors.Wrapf(err, "failed to decrement stock for medicine %s", id)
	}

	medicine, err := s.medicines.FindMedicineByID(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "failed to re-read medicine %s", id)
	}

	if medicine.StockQuantity <= 0 {
		if err := s.medicines.ClearStock(ctx, id); err != nil {
			return errors.Wrapf(err, "failed to clear stock for medicine %s", id)
		}
	}

	return nil
}

func (s *checkoutService) defaultCurrency() string {
	if s.config.Stripe != nil && s.config.Stripe.DefaultCurrency != "" {
		return s.config.Stripe.DefaultCurrency
	}

	return defaultCurrency
}

// toSmallestUnit converts a decimal currency amount to the smallest currency
// unit, rounding to the nearest integer.
func toSmallestUnit(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
