package handler

import (
	"log/slog"
	"net/http"

	"medistore/internal/delivery/http/response"
	"medistore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order history handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListOrdersByCustomer lists a customer's orders, newest first.
func (h *OrderHandler) ListOrdersByCustomer(c echo.Context) error {
	orders, err := h.uc.GetOrdersByCustomer(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// ListOrders lists every order, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.GetAllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}
