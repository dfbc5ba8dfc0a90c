package usecase

import (
	"context"

	"medistore/internal/domain/entity"
)

// CreateMedicineInput carries a seller's new listing. Name and PricePerUnit
// are required; derived pricing and stock fields are computed, never taken
// from the client.
type CreateMedicineInput struct {
	Name          string
	Category      string
	PricePerUnit  float64
	Discount      float64
	StockQuantity int64
	SellerEmail   string
	Banner        bool
}

// UpdateMedicineInput carries a seller's edit of an existing listing.
type UpdateMedicineInput struct {
	Name          string
	Category      string
	PricePerUnit  float64
	Discount      float64
	StockQuantity int64
	Banner        bool
}

// CatalogUsecase defines the medicine catalog operations.
type CatalogUsecase interface {
	// CreateMedicine lists a new medicine with derived fields computed.
	CreateMedicine(ctx context.Context, input CreateMedicineInput) (*entity.Medicine, error)

	// GetMedicine retrieves a single listing.
	GetMedicine(ctx context.Context, id string) (*entity.Medicine, error)

	// GetAllMedicines lists the whole catalog.
	GetAllMedicines(ctx context.Context) ([]*entity.Medicine, error)

	// GetMedicinesBySeller lists a seller's medicines.
	GetMedicinesBySeller(ctx context.Context, sellerEmail string) ([]*entity.Medicine, error)

	// GetBannerMedicines lists medicines flagged for the storefront banner.
	GetBannerMedicines(ctx context.Context) ([]*entity.Medicine, error)

	// UpdateMedicine applies a seller edit and recomputes derived fields.
	UpdateMedicine(ctx context.Context, id string, input UpdateMedicineInput) (*entity.Medicine, error)

	// DeleteMedicine removes a listing.
	DeleteMedicine(ctx context.Context, id string) error
}
