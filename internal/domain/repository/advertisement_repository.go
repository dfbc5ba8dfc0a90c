package repository

import (
	"context"

	"medistore/internal/domain/entity"
	"medistore/internal/errors"
)

// ErrAdvertisementNotFound is returned when an advertisement request is not found.
var ErrAdvertisementNotFound = errors.New("advertisement not found")

// AdvertisementRepository defines the interface for advertisement-request
// store operations.
type AdvertisementRepository interface {
	// CreateAdvertisement persists a new advertisement request.
	CreateAdvertisement(ctx context.Context, ad *entity.Advertisement) error

	// FindAdvertisementByID retrieves an advertisement request by identifier.
	FindAdvertisementByID(ctx context.Context, id string) (*entity.Advertisement, error)

	// FindAdvertisementsBySeller retrieves a seller's requests, newest first.
	FindAdvertisementsBySeller(ctx context.Context, sellerEmail string) ([]*entity.Advertisement, error)

	// FindAllAdvertisements retrieves every request, newest first.
	FindAllAdvertisements(ctx context.Context) ([]*entity.Advertisement, error)

	// FindActiveAdvertisements retrieves requests whose status is approved or
	// active and whose inclusive date window contains the given calendar date
	// (entity.AdDateLayout).
	FindActiveAdvertisements(ctx context.Context, date string) ([]*entity.Advertisement, error)

	// UpdateAdvertisementFields merges arbitrary fields into a request. The
	// identifier field is stripped by the caller; updatedAt is stamped by the
	// implementation.
	UpdateAdvertisementFields(ctx context.Context, id string, fields map[string]any) error

	// UpdateAdvertisementStatus sets status, admin note and review timestamps.
	UpdateAdvertisementStatus(ctx context.Context, id string, status entity.AdvertisementStatus, adminNote string) error

	// DeleteAdvertisement removes a request by identifier.
	DeleteAdvertisement(ctx context.Context, id string) error
}
