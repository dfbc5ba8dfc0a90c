package impl

import (
	"context"
	"time"

	"medistore/internal/domain/entity"
	domainerrors "medistore/internal/domain/errors"
	"medistore/internal/domain/repository"
	"medistore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	medicines repository.MedicineRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Medicines repository.MedicineRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		medicines: params.Medicines,
	}
}

// CreateMedicine lists a new medicine. Derived pricing and stock fields are
// computed here, never taken from the client.
func (s *catalogService) CreateMedicine(ctx context.Context, input usecase.CreateMedicineInput) (*entity.Medicine, error) {
	if input.Name == "" || input.PricePerUnit <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and a positive pricePerUnit are required")
	}

	now := time.Now().UTC()
	medicine := &entity.Medicine{
		Name:          input.Name,
		Category:      input.Category,
		PricePerUnit:  input.PricePerUnit,
		Discount:      input.Discount,
		StockQuantity: input.StockQuantity,
		SellerEmail:   input.SellerEmail,
		Banner:        input.Banner,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	medicine.RecomputeDerived()

	if err := s.medicines.CreateMedicine(ctx, medicine); err != nil {
		return nil, errors.Wrap(err, "failed to create medicine")
	}

	return medicine, nil
}

// GetMedicine retrieves a single listing.
func (s *catalogService) GetMedicine(ctx context.Context, id string) (*entity.Medicine, error) {
	medicine, err := s.medicines.FindMedicineByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, domainerrors.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to find medicine by ID")
	}

	return medicine, nil
}

// GetAllMedicines lists the whole catalog.
func (s *catalogService) GetAllMedicines(ctx context.Context) ([]*entity.Medicine, error) {
	medicines, err := s.medicines.FindAllMedicines(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find medicines")
	}

	return medicines, nil
}

// GetMedicinesBySeller lists a seller's medicines.
func (s *catalogService) GetMedicinesBySeller(ctx context.Context, sellerEmail string) ([]*entity.Medicine, error) {
	if sellerEmail == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("seller email is required")
	}

	medicines, err := s.medicines.FindMedicinesBySeller(ctx, sellerEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find medicines by seller")
	}

	return medicines, nil
}

// GetBannerMedicines lists medicines flagged for the storefront banner.
func (s *catalogService) GetBannerMedicines(ctx context.Context) ([]*entity.Medicine, error) {
	medicines, err := s.medicines.FindBannerMedicines(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find banner medicines")
	}

	return medicines, nil
}

// UpdateMedicine applies a seller edit and recomputes the derived fields so
// they can never go stale relative to their sources.
func (s *catalogService) UpdateMedicine(ctx context.Context, id string, input usecase.UpdateMedicineInput) (*entity.Medicine, error) {
	if input.Name == "" || input.PricePerUnit <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and a positive pricePerUnit are required")
	}

	medicine, err := s.medicines.FindMedicineByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, domainerrors.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to find medicine by ID")
	}

	medicine.Name = input.Name
	medicine.Category = input.Category
	medicine.PricePerUnit = input.PricePerUnit
	medicine.Discount = input.Discount
	medicine.StockQuantity = input.StockQuantity
	medicine.Banner = input.Banner
	medicine.RecomputeDerived()

	if err := s.medicines.UpdateMedicine(ctx, medicine); err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, domainerrors.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to update medicine")
	}

	return medicine, nil
}

// DeleteMedicine removes a listing.
func (s *catalogService) DeleteMedicine(ctx context.Context, id string) error {
	if err := s.medicines.DeleteMedicine(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return domainerrors.ErrMedicineNotFound
		}

		return errors.Wrap(err, "failed to delete medicine")
	}

	return nil
}
