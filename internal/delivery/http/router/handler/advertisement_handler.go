package handler

import (
	"log/slog"
	"net/http"

	"medistore/internal/delivery/http/response"
	"medistore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdvertisementHandler holds dependencies for advertisement lifecycle
// handlers.
type AdvertisementHandler struct {
	uc     usecase.AdvertisementUsecase
	logger *slog.Logger
}

// NewAdvertisementHandler is the constructor for AdvertisementHandler,
// injected by Fx.
func NewAdvertisementHandler(uc usecase.AdvertisementUsecase, logger *slog.Logger) *AdvertisementHandler {
	return &AdvertisementHandler{
		uc:     uc,
		logger: logger,
	}
}

type createAdvertisementRequest struct {
	MedicineID  string  `json:"medicineId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	SellerEmail string  `json:"sellerEmail"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Cost        float64 `json:"cost"`
}

// CreateAdvertisement submits a new advertisement request.
func (h *AdvertisementHandler) CreateAdvertisement(c echo.Context) error {
	var req createAdvertisementRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid advertisement input")
	}

	ad, err := h.uc.CreateAdvertisement(c.Request().Context(), usecase.CreateAdvertisementInput{
		MedicineID:  req.MedicineID,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		SellerEmail: req.SellerEmail,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Cost:        req.Cost,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ad, "Advertisement submitted successfully")
}

// ListAdvertisementsBySeller lists a seller's requests, newest first.
func (h *AdvertisementHandler) ListAdvertisementsBySeller(c echo.Context) error {
	ads, err := h.uc.GetAdvertisementsBySeller(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ads, "")
}

// ListAdvertisements lists every request, newest first.
func (h *AdvertisementHandler) ListAdvertisements(c echo.Context) error {
	ads, err := h.uc.GetAllAdvertisements(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ads, "")
}

// UpdateAdvertisement merges a partial edit into a request.
func (h *AdvertisementHandler) UpdateAdvertisement(c echo.Context) error {
	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid advertisement input")
	}

	ad, err := h.uc.UpdateAdvertisement(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ad, "Advertisement updated successfully")
}

type updateAdStatusRequest struct {
	Status    string `json:"status"`
	AdminNote string `json:"adminNote"`
}

// UpdateAdvertisementStatus transitions a request through admin review.
func (h *AdvertisementHandler) UpdateAdvertisementStatus(c echo.Context) error {
	var req updateAdStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	ad, err := h.uc.UpdateAdvertisementStatus(c.Request().Context(), c.Param("id"), req.Status, req.AdminNote)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ad, "Advertisement status updated")
}

// DeleteAdvertisement removes a request.
func (h *AdvertisementHandler) DeleteAdvertisement(c echo.Context) error {
	if err := h.uc.DeleteAdvertisement(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Advertisement deleted successfully")
}

// ListActiveSlider lists advertisements live today for the storefront slider.
func (h *AdvertisementHandler) ListActiveSlider(c echo.Context) error {
	ads, err := h.uc.GetActiveSlider(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ads, "")
}
