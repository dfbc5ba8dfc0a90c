package handler

import (
	"log/slog"
	"net/http"

	"medistore/internal/delivery/http/response"
	"medistore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SellerHandler holds dependencies for seller payment reporting handlers.
type SellerHandler struct {
	uc     usecase.SellerUsecase
	logger *slog.Logger
}

// NewSellerHandler is the constructor for SellerHandler, injected by Fx.
func NewSellerHandler(uc usecase.SellerUsecase, logger *slog.Logger) *SellerHandler {
	return &SellerHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetPaymentHistory lists a seller's matched orders with commission applied.
func (h *SellerHandler) GetPaymentHistory(c echo.Context) error {
	history, err := h.uc.GetPaymentHistory(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history, "")
}

// GetPaymentStats aggregates a seller's matched orders into summary figures.
func (h *SellerHandler) GetPaymentStats(c echo.Context) error {
	stats, err := h.uc.GetPaymentStats(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
