package handler

import (
	"log/slog"
	"net/http"

	"medistore/internal/delivery/http/response"
	"medistore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MedicineHandler holds dependencies for catalog-related handlers.
type MedicineHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewMedicineHandler is the constructor for MedicineHandler, injected by Fx.
func NewMedicineHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *MedicineHandler {
	return &MedicineHandler{
		uc:     uc,
		logger: logger,
	}
}

type medicineRequest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	PricePerUnit  float64 `json:"pricePerUnit"`
	Discount      float64 `json:"discount"`
	StockQuantity int64   `json:"stockQuantity"`
	SellerEmail   string  `json:"sellerEmail"`
	Banner        bool    `json:"banner"`
}

// CreateMedicine handles a seller's new listing request.
func (h *MedicineHandler) CreateMedicine(c echo.Context) error {
	var req medicineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid medicine input")
	}

	medicine, err := h.uc.CreateMedicine(c.Request().Context(), usecase.CreateMedicineInput{
		Name:          req.Name,
		Category:      req.Category,
		PricePerUnit:  req.PricePerUnit,
		Discount:      req.Discount,
		StockQuantity: req.StockQuantity,
		SellerEmail:   req.SellerEmail,
		Banner:        req.Banner,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, medicine, "Medicine created successfully")
}

// GetMedicine handles a single listing lookup.
func (h *MedicineHandler) GetMedicine(c echo.Context) error {
	medicine, err := h.uc.GetMedicine(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicine, "")
}

// ListMedicines handles the full catalog listing.
func (h *MedicineHandler) ListMedicines(c echo.Context) error {
	medicines, err := h.uc.GetAllMedicines(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicines, "")
}

// ListMedicinesBySeller handles a seller's own catalog listing.
func (h *MedicineHandler) ListMedicinesBySeller(c echo.Context) error {
	medicines, err := h.uc.GetMedicinesBySeller(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicines, "")
}

// ListBannerMedicines handles the storefront banner slider listing.
func (h *MedicineHandler) ListBannerMedicines(c echo.Context) error {
	medicines, err := h.uc.GetBannerMedicines(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicines, "")
}

// UpdateMedicine handles a seller's listing edit.
func (h *MedicineHandler) UpdateMedicine(c echo.Context) error {
	var req medicineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid medicine input")
	}

	medicine, err := h.uc.UpdateMedicine(c.Request().Context(), c.Param("id"), usecase.UpdateMedicineInput{
		Name:          req.Name,
		Category:      req.Category,
		PricePerUnit:  req.PricePerUnit,
		Discount:      req.Discount,
		StockQuantity: req.StockQuantity,
		Banner:        req.Banner,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicine, "Medicine updated successfully")
}

// DeleteMedicine handles a listing removal.
func (h *MedicineHandler) DeleteMedicine(c echo.Context) error {
	if err := h.uc.DeleteMedicine(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Medicine deleted successfully")
}
