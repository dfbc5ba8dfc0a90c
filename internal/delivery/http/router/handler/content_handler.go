package handler

import (
	"log/slog"
	"net/http"

	"medistore/internal/delivery/http/response"
	"medistore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler holds dependencies for informational content handlers.
type ContentHandler struct {
	uc     usecase.ContentUsecase
	logger *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListHealthBlogs lists all health blogs, newest first.
func (h *ContentHandler) ListHealthBlogs(c echo.Context) error {
	blogs, err := h.uc.GetHealthBlogs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, blogs, "")
}

// ListCompanies lists all pharmaceutical companies.
func (h *ContentHandler) ListCompanies(c echo.Context) error {
	companies, err := h.uc.GetCompanies(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, companies, "")
}

// ListCategories lists all medicine categories.
func (h *ContentHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.GetCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}
