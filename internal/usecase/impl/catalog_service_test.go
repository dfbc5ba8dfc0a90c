package impl

import (
	"context"
	"testing"

	"medistore/internal/domain/entity"
	domainerrors "medistore/internal/domain/errors"
	"medistore/internal/domain/repository"
	mockRepo "medistore/internal/mocks/repository"
	"medistore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(t *testing.T) (*mockRepo.MockMedicineRepository, usecase.CatalogUsecase) {
	mockMedicines := mockRepo.NewMockMedicineRepository(t)
	svc := NewCatalogService(CatalogServiceParams{Medicines: mockMedicines})

	return mockMedicines, svc
}

func TestCatalogService_CreateMedicine_ComputesDerivedFields(t *testing.T) {
	mockMedicines, svc := newCatalogFixture(t)
	ctx := context.Background()

	mockMedicines.EXPECT().
		CreateMedicine(ctx, mock.AnythingOfType("*entity.Medicine")).
		Run(func(ctx context.Context, medicine *entity.Medicine) {
			medicine.ID = "med-1"
		}).
		Return(nil)

	medicine, err := svc.CreateMedicine(ctx, usecase.CreateMedicineInput{
		Name:          "Paracetamol 500mg",
		Category:      "painkiller",
		PricePerUnit:  100.00,
		Discount:      25,
		StockQuantity: 40,
		SellerEmail:   "seller@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "med-1", medicine.ID)
	assert.Equal(t, 75.00, medicine.DiscountPrice)
	assert.True(t, medicine.InStock)
}

func TestCatalogService_CreateMedicine_ZeroStockIsOutOfStock(t *testing.T) {
	mockMedicines, svc := newCatalogFixture(t)
	ctx := context.Background()

	mockMedicines.EXPECT().
		CreateMedicine(ctx, mock.AnythingOfType("*entity.Medicine")).
		Return(nil)

	medicine, err := svc.CreateMedicine(ctx, usecase.CreateMedicineInput{
		Name:         "Backordered syrup",
		PricePerUnit: 12.00,
	})
	require.NoError(t, err)

	assert.False(t, medicine.InStock)
	assert.Equal(t, 12.00, medicine.DiscountPrice)
}

func TestCatalogService_CreateMedicine_RequiresNameAndPrice(t *testing.T) {
	_, svc := newCatalogFixture(t)

	_, err := svc.CreateMedicine(context.Background(), usecase.CreateMedicineInput{Name: "Free sample"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCatalogService_UpdateMedicine_RecomputesDerivedFields(t *testing.T) {
	mockMedicines, svc := newCatalogFixture(t)
	ctx := context.Background()

	mockMedicines.EXPECT().
		FindMedicineByID(ctx, "med-1").
		Return(&entity.Medicine{
			ID:            "med-1",
			Name:          "Paracetamol 500mg",
			PricePerUnit:  100.00,
			Discount:      25,
			DiscountPrice: 75.00,
			StockQuantity: 40,
			InStock:       true,
		}, nil)

	mockMedicines.EXPECT().
		UpdateMedicine(ctx, mock.AnythingOfType("*entity.Medicine")).
		Return(nil)

	// Discount removed and stock sold out: both derived fields must follow.
	medicine, err := svc.UpdateMedicine(ctx, "med-1", usecase.UpdateMedicineInput{
		Name:          "Paracetamol 500mg",
		PricePerUnit:  80.00,
		Discount:      0,
		StockQuantity: 0,
	})
	require.NoError(t, err)

	assert.Equal(t, 80.00, medicine.DiscountPrice)
	assert.False(t, medicine.InStock)
}

func TestCatalogService_GetMedicine_UnknownID(t *testing.T) {
	mockMedicines, svc := newCatalogFixture(t)
	ctx := context.Background()

	mockMedicines.EXPECT().
		FindMedicineByID(ctx, "med-missing").
		Return(nil, repository.ErrMedicineNotFound)

	_, err := svc.GetMedicine(ctx, "med-missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMedicineNotFound)
}

func TestCatalogService_DeleteMedicine_UnknownID(t *testing.T) {
	mockMedicines, svc := newCatalogFixture(t)
	ctx := context.Background()

	mockMedicines.EXPECT().
		DeleteMedicine(ctx, "med-missing").
		Return(repository.ErrMedicineNotFound)

	err := svc.DeleteMedicine(ctx, "med-missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMedicineNotFound)
}
