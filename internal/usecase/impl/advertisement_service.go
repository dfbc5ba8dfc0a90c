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

type advertisementService struct {
	ads repository.AdvertisementRepository
}

// AdvertisementServiceParams holds dependencies for AdvertisementService, injected by Fx.
type AdvertisementServiceParams struct {
	fx.In

	Ads repository.AdvertisementRepository
}

// NewAdvertisementService creates a new advertisement lifecycle service instance
func NewAdvertisementService(params AdvertisementServiceParams) usecase.AdvertisementUsecase {
	return &advertisementService{
		ads: params.Ads,
	}
}

// CreateAdvertisement submits a new request with status pending and all
// engagement counters zeroed.
func (s *advertisementService) CreateAdvertisement(ctx context.Context, input usecase.CreateAdvertisementInput) (*entity.Advertisement, error) {
	if input.MedicineID == "" || input.Title == "" || input.SellerEmail == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("medicineId, title and sellerEmail are required")
	}

	now := time.Now().UTC()
	ad := &entity.Advertisement{
		MedicineID:  input.MedicineID,
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		SellerEmail: input.SellerEmail,
		Status:      entity.AdStatusPending,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Cost:        input.Cost,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.ads.CreateAdvertisement(ctx, ad); err != nil {
		return nil, errors.Wrap(err, "failed to create advertisement")
	}

	return ad, nil
}

// GetAdvertisementsBySeller lists a seller's requests, newest first.
func (s *advertisementService) GetAdvertisementsBySeller(ctx context.Context, sellerEmail string) ([]*entity.Advertisement, error) {
	if sellerEmail == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("seller email is required")
	}

	ads, err := s.ads.FindAdvertisementsBySeller(ctx, sellerEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find advertisements by seller")
	}

	return ads, nil
}

// GetAllAdvertisements lists every request, newest first.
func (s *advertisementService) GetAllAdvertisements(ctx context.Context) ([]*entity.Advertisement, error) {
	ads, err := s.ads.FindAllAdvertisements(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find advertisements")
	}

	return ads, nil
}

// UpdateAdvertisement merges arbitrary fields into a request. The identifier
// field is stripped so a client cannot overwrite it.
func (s *advertisementService) UpdateAdvertisement(ctx context.Context, id string, fields map[string]any) (*entity.Advertisement, error) {
	delete(fields, "_id")
	delete(fields, "id")

	if len(fields) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no fields to update")
	}

	if err := s.ads.UpdateAdvertisementFields(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrAdvertisementNotFound) {
			return nil, domainerrors.ErrAdvertisementNotFound
		}

		return nil, errors.Wrap(err, "failed to update advertisement")
	}

	return s.findAdvertisement(ctx, id)
}

// UpdateAdvertisementStatus transitions a request's status with an admin
// note. The status is validated against the closed set; free-form strings are
// rejected.
func (s *advertisementService) UpdateAdvertisementStatus(ctx context.Context, id string, status string, adminNote string) (*entity.Advertisement, error) {
	adStatus := entity.AdvertisementStatus(status)
	if !adStatus.Valid() {
		return nil, domainerrors.ErrInvalidAdStatus
	}

	if err := s.ads.UpdateAdvertisementStatus(ctx, id, adStatus, adminNote); err != nil {
		if errors.Is(err, repository.ErrAdvertisementNotFound) {
			return nil, domainerrors.ErrAdvertisementNotFound
		}

		return nil, errors.Wrap(err, "failed to update advertisement status")
	}

	return s.findAdvertisement(ctx, id)
}

// DeleteAdvertisement removes a request.
func (s *advertisementService) DeleteAdvertisement(ctx context.Context, id string) error {
	if err := s.ads.DeleteAdvertisement(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAdvertisementNotFound) {
			return domainerrors.ErrAdvertisementNotFound
		}

		return errors.Wrap(err, "failed to delete advertisement")
	}

	return nil
}

// GetActiveSlider lists requests live today: approved or active, with today
// inside their inclusive date window.
func (s *advertisementService) GetActiveSlider(ctx context.Context) ([]*entity.Advertisement, error) {
	today := time.Now().Format(entity.AdDateLayout)

	ads, err := s.ads.FindActiveAdvertisements(ctx, today)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active advertisements")
	}

	return ads, nil
}

func (s *advertisementService) findAdvertisement(ctx context.Context, id string) (*entity.Advertisement, error) {
	ad, err := s.ads.FindAdvertisementByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdvertisementNotFound) {
			return nil, domainerrors.ErrAdvertisementNotFound
		}

		return nil, errors.Wrap(err, "failed to find advertisement by ID")
	}

	return ad, nil
}
