package impl

import (
	"context"
	"testing"
	"time"

	"medistore/internal/domain/entity"
	domainerrors "medistore/internal/domain/errors"
	"medistore/internal/domain/repository"
	mockRepo "medistore/internal/mocks/repository"
	"medistore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdvertisementFixture(t *testing.T) (*mockRepo.MockAdvertisementRepository, usecase.AdvertisementUsecase) {
	mockAds := mockRepo.NewMockAdvertisementRepository(t)
	svc := NewAdvertisementService(AdvertisementServiceParams{Ads: mockAds})

	return mockAds, svc
}

func TestAdvertisementService_CreateAdvertisement_StartsPendingWithZeroCounters(t *testing.T) {
	mockAds, svc := newAdvertisementFixture(t)
	ctx := context.Background()

	mockAds.EXPECT().
		CreateAdvertisement(ctx, mock.AnythingOfType("*entity.Advertisement")).
		Run(func(ctx context.Context, ad *entity.Advertisement) {
			ad.ID = "ad-1"
		}).
		Return(nil)

	ad, err := svc.CreateAdvertisement(ctx, usecase.CreateAdvertisementInput{
		MedicineID:  "med-1",
		Title:       "Spring promotion",
		SellerEmail: "seller@example.com",
		StartDate:   "2026-03-01",
		EndDate:     "2026-03-31",
		Cost:        50.00,
	})
	require.NoError(t, err)

	assert.Equal(t, "ad-1", ad.ID)
	assert.Equal(t, entity.AdStatusPending, ad.Status)
	assert.Zero(t, ad.Clicks)
	assert.Zero(t, ad.Impressions)
	assert.Zero(t, ad.Conversions)
	assert.Nil(t, ad.ReviewedAt)
}

func TestAdvertisementService_CreateAdvertisement_RequiresCoreFields(t *testing.T) {
	_, svc := newAdvertisementFixture(t)

	_, err := svc.CreateAdvertisement(context.Background(), usecase.CreateAdvertisementInput{Title: "No medicine"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAdvertisementService_UpdateAdvertisement_StripsIdentifierFields(t *testing.T) {
	mockAds, svc := newAdvertisementFixture(t)
	ctx := context.Background()

	mockAds.EXPECT().
		UpdateAdvertisementFields(ctx, "ad-1", map[string]any{"title": "New title"}).
		Return(nil)
	mockAds.EXPECT().
		FindAdvertisementByID(ctx, "ad-1").
		Return(&entity.Advertisement{ID: "ad-1", Title: "New title"}, nil)

	ad, err := svc.UpdateAdvertisement(ctx, "ad-1", map[string]any{
		"_id":   "spoofed",
		"id":    "spoofed",
		"title": "New title",
	})
	require.NoError(t, err)
	assert.Equal(t, "New title", ad.Title)
}

func TestAdvertisementService_UpdateAdvertisement_RejectsEmptyUpdate(t *testing.T) {
	_, svc := newAdvertisementFixture(t)

	_, err := svc.UpdateAdvertisement(context.Background(), "ad-1", map[string]any{"_id": "only-the-id"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAdvertisementService_UpdateAdvertisement_UnknownID(t *testing.T) {
	mockAds, svc := newAdvertisementFixture(t)
	ctx := context.Background()

	mockAds.EXPECT().
		UpdateAdvertisementFields(ctx, "ad-missing", map[string]any{"title": "x"}).
		Return(repository.ErrAdvertisementNotFound)

	_, err := svc.UpdateAdvertisement(ctx, "ad-missing", map[string]any{"title": "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAdvertisementNotFound)
}

func TestAdvertisementService_UpdateAdvertisementStatus_RejectsUnknownStatus(t *testing.T) {
	_, svc := newAdvertisementFixture(t)

	_, err := svc.UpdateAdvertisementStatus(context.Background(), "ad-1", "archived", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAdStatus)
}

func TestAdvertisementService_UpdateAdvertisementStatus_Approves(t *testing.T) {
	mockAds, svc := newAdvertisementFixture(t)
	ctx := context.Background()

	reviewedAt := time.Now().UTC()
	mockAds.EXPECT().
		UpdateAdvertisementStatus(ctx, "ad-1", entity.AdStatusApproved, "Looks good").
		Return(nil)
	mockAds.EXPECT().
		FindAdvertisementByID(ctx, "ad-1").
		Return(&entity.Advertisement{
			ID:         "ad-1",
			Status:     entity.AdStatusApproved,
			AdminNote:  "Looks good",
			ReviewedAt: &reviewedAt,
		}, nil)

	ad, err := svc.UpdateAdvertisementStatus(ctx, "ad-1", "approved", "Looks good")
	require.NoError(t, err)
	assert.Equal(t, entity.AdStatusApproved, ad.Status)
	assert.Equal(t, "Looks good", ad.AdminNote)
	assert.NotNil(t, ad.ReviewedAt)
}

func TestAdvertisementService_GetActiveSlider_QueriesWithToday(t *testing.T) {
	mockAds, svc := newAdvertisementFixture(t)
	ctx := context.Background()

	today := time.Now().Format(entity.AdDateLayout)
	mockAds.EXPECT().
		FindActiveAdvertisements(ctx, today).
		Return([]*entity.Advertisement{
			{ID: "ad-1", Status: entity.AdStatusApproved, StartDate: "2020-01-01", EndDate: "2099-12-31"},
		}, nil)

	ads, err := svc.GetActiveSlider(ctx)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "ad-1", ads[0].ID)
}

func TestAdvertisementService_DeleteAdvertisement_UnknownID(t *testing.T) {
	mockAds, svc := newAdvertisementFixture(t)
	ctx := context.Background()

	mockAds.EXPECT().
		DeleteAdvertisement(ctx, "ad-missing").
		Return(repository.ErrAdvertisementNotFound)

	err := svc.DeleteAdvertisement(ctx, "ad-missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAdvertisementNotFound)
}
