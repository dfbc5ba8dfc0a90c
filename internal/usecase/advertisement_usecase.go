package usecase

import (
	"context"

	"medistore/internal/domain/entity"
)

// CreateAdvertisementInput carries a seller's request to feature a medicine.
type CreateAdvertisementInput struct {
	MedicineID  string
	Title       string
	Description string
	Image       string
	SellerEmail string
	StartDate   string
	EndDate     string
	Cost        float64
}

// AdvertisementUsecase defines the advertisement request lifecycle.
type AdvertisementUsecase interface {
	// CreateAdvertisement submits a new request with status pending and all
	// engagement counters zeroed.
	CreateAdvertisement(ctx context.Context, input CreateAdvertisementInput) (*entity.Advertisement, error)

	// GetAdvertisementsBySeller lists a seller's requests, newest first.
	GetAdvertisementsBySeller(ctx context.Context, sellerEmail string) ([]*entity.Advertisement, error)

	// GetAllAdvertisements lists every request, newest first.
	GetAllAdvertisements(ctx context.Context) ([]*entity.Advertisement, error)

	// UpdateAdvertisement merges arbitrary fields into a request; the
	// identifier field is stripped so it cannot be overwritten.
	UpdateAdvertisement(ctx context.Context, id string, fields map[string]any) (*entity.Advertisement, error)

	// UpdateAdvertisementStatus transitions a request's status with an admin
	// note. The status must belong to the closed set.
	UpdateAdvertisementStatus(ctx context.Context, id string, status string, adminNote string) (*entity.Advertisement, error)

	// DeleteAdvertisement removes a request.
	DeleteAdvertisement(ctx context.Context, id string) error

	// GetActiveSlider lists requests live today: approved or active, with
	// today inside their inclusive date window.
	GetActiveSlider(ctx context.Context) ([]*entity.Advertisement, error)
}
