package handler

import (
	"log/slog"
	"net/http"

	"medistore/internal/delivery/http/response"
	"medistore/internal/domain/entity"
	"medistore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for the payment workflow handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

type createPaymentIntentRequest struct {
	Amount       float64              `json:"amount"`
	Currency     string               `json:"currency"`
	CustomerInfo *entity.CustomerInfo `json:"customerInfo"`
	CartItems    []entity.LineItem    `json:"cartItems"`
}

// CreatePaymentIntent opens a payment authorization for the cart total.
func (h *CheckoutHandler) CreatePaymentIntent(c echo.Context) error {
	var req createPaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment intent input")
	}

	result, err := h.uc.CreatePaymentIntent(c.Request().Context(), usecase.PaymentIntentInput{
		Amount:       req.Amount,
		Currency:     req.Currency,
		CustomerInfo: req.CustomerInfo,
		CartItems:    req.CartItems,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Payment intent created")
}

type confirmPaymentRequest struct {
	PaymentIntentID string              `json:"paymentIntentId"`
	CustomerInfo    entity.CustomerInfo `json:"customerInfo"`
	CartItems       []entity.LineItem   `json:"cartItems"`
	OrderTotal      float64             `json:"orderTotal"`
}

// ConfirmPayment finalizes a checkout after the client-side payment flow.
func (h *CheckoutHandler) ConfirmPayment(c echo.Context) error {
	var req confirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment confirmation input")
	}

	order, err := h.uc.ConfirmPayment(c.Request().Context(), usecase.ConfirmPaymentInput{
		PaymentIntentID: req.PaymentIntentID,
		CustomerInfo:    req.CustomerInfo,
		CartItems:       req.CartItems,
		OrderTotal:      req.OrderTotal,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order confirmed successfully")
}
