package repository

import (
	"context"

	"medistore/internal/domain/entity"
	"medistore/internal/errors"
)

// ErrMedicineNotFound is returned when a medicine is not found.
var ErrMedicineNotFound = errors.New("medicine not found")

// MedicineRepository defines the interface for medicine-related store
// operations. DecrementStock and ClearStock are the two halves of the
// order-confirmation stock adjustment; each is atomic at the document level
// but the pair is not atomic together.
type MedicineRepository interface {
	// CreateMedicine persists a new medicine listing.
	CreateMedicine(ctx context.Context, medicine *entity.Medicine) error

	// FindMedicineByID retrieves a medicine by its identifier.
	FindMedicineByID(ctx context.Context, id string) (*entity.Medicine, error)

	// FindAllMedicines retrieves every medicine listing.
	FindAllMedicines(ctx context.Context) ([]*entity.Medicine, error)

	// FindMedicinesBySeller retrieves all medicines listed by a seller.
	FindMedicinesBySeller(ctx context.Context, sellerEmail string) ([]*entity.Medicine, error)

	// FindBannerMedicines retrieves medicines flagged for the banner slider.
	FindBannerMedicines(ctx context.Context) ([]*entity.Medicine, error)

	// UpdateMedicine overwrites the mutable fields of an existing listing.
	UpdateMedicine(ctx context.Context, medicine *entity.Medicine) error

	// DeleteMedicine removes a listing by its identifier.
	DeleteMedicine(ctx context.Context, id string) error

	// DecrementStock atomically decreases the stock quantity by the ordered
	// amount and marks the medicine in stock.
	DecrementStock(ctx context.Context, id string, quantity int64) error

	// ClearStock forces stock quantity to zero and marks the medicine out of
	// stock. Used to clamp after a decrement drove the quantity to or below
	// zero.
	ClearStock(ctx context.Context, id string) error
}
