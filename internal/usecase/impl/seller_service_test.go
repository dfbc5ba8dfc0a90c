package impl

import (
	"context"
	"testing"
	"time"

	"medistore/internal/domain/entity"
	domainerrors "medistore/internal/domain/errors"
	mockRepo "medistore/internal/mocks/repository"
	"medistore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSellerFixture(t *testing.T) (*mockRepo.MockOrderRepository, *mockRepo.MockMedicineRepository, usecase.SellerUsecase) {
	mockOrders := mockRepo.NewMockOrderRepository(t)
	mockMedicines := mockRepo.NewMockMedicineRepository(t)
	svc := NewSellerService(SellerServiceParams{
		Orders:    mockOrders,
		Medicines: mockMedicines,
	})

	return mockOrders, mockMedicines, svc
}

func TestSellerService_GetPaymentHistory_AppliesCommission(t *testing.T) {
	mockOrders, mockMedicines, svc := newSellerFixture(t)
	ctx := context.Background()

	mockMedicines.EXPECT().
		FindMedicinesBySeller(ctx, "seller@example.com").
		Return([]*entity.Medicine{{ID: "med-1", SellerEmail: "seller@example.com"}}, nil)

	createdAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	mockOrders.EXPECT().
		FindAllOrders(ctx).
		Return([]*entity.Order{
			{
				ID:            "order-1",
				CustomerInfo:  entity.CustomerInfo{Email: "buyer@example.com"},
				Items:         []entity.LineItem{{MedicineID: "med-1", Quantity: 4, UnitPrice: 25.00}},
				PaymentStatus: entity.PaymentStatusPaid,
				OrderStatus:   entity.OrderStatusConfirmed,
				CreatedAt:     createdAt,
			},
		}, nil)

	rows, err := svc.GetPaymentHistory(ctx, "seller@example.com")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "order-1", rows[0].OrderID)
	assert.Equal(t, "buyer@example.com", rows[0].CustomerEmail)
	assert.Equal(t, 1, rows[0].ItemCount)
	assert.Equal(t, 100.00, rows[0].GrossAmount)
	assert.Equal(t, 10.00, rows[0].Commission)
	assert.Equal(t, 90.00, rows[0].NetAmount)
	assert.Equal(t, usecase.PaymentClassCompleted, rows[0].Status)
	assert.Equal(t, createdAt.Format(time.RFC3339), rows[0].CreatedAt)
}

func TestSellerService_GetPaymentHistory_SkipsOtherSellersOrders(t *testing.T) {
	mockOrders, mockMedicines, svc := newSellerFixture(t)
	ctx := context.Background()

	mockMedicines.EXPECT().
		FindMedicinesBySeller(ctx, "seller@example.com").
		Return([]*entity.Medicine{{ID: "med-1"}}, nil)

	mockOrders.EXPECT().
		FindAllOrders(ctx).
		Return([]*entity.Order{
			{
				ID:            "order-other",
				Items:         []entity.LineItem{{MedicineID: "med-99", Quantity: 1, UnitPrice: 10.00}},
				PaymentStatus: entity.PaymentStatusPaid,
			},
			{
				ID: "order-mixed",
				Items: []entity.LineItem{
					{MedicineID: "med-99", Quantity: 1, UnitPrice: 10.00},
					{MedicineID: "med-1", Quantity: 2, UnitPrice: 7.50},
				},
				PaymentStatus: entity.PaymentStatusPaid,
			},
		}, nil)

	rows, err := svc.GetPaymentHistory(ctx, "seller@example.com")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Only the seller's own line items contribute to the gross amount.
	assert.Equal(t, "order-mixed", rows[0].OrderID)
	assert.Equal(t, 1, rows[0].ItemCount)
	assert.Equal(t, 15.00, rows[0].GrossAmount)
}

func TestSellerService_GetPaymentHistory_MatchesLegacyItemReference(t *testing.T) {
	mockOrders, mockMedicines, svc := newSellerFixture(t)
	ctx := context.Background()

	mockMedicines.EXPECT().
		FindMedicinesBySeller(ctx, "seller@example.com").
		Return([]*entity.Medicine{{ID: "med-1"}}, nil)

	mockOrders.EXPECT().
		FindAllOrders(ctx).
		Return([]*entity.Order{
			{
				ID:            "order-legacy",
				Items:         []entity.LineItem{{ItemID: "med-1", Quantity: 1, UnitPrice: 20.00}},
				PaymentStatus: entity.PaymentStatusPaid,
			},
		}, nil)

	rows, err := svc.GetPaymentHistory(ctx, "seller@example.com")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 20.00, rows[0].GrossAmount)
}

func TestSellerService_GetPaymentHistory_ClassifiesStatuses(t *testing.T) {
	mockOrders, mockMedicines, svc := newSellerFixture(t)
	ctx := context.Background()

	mockMedicines.EXPECT().
		FindMedicinesBySeller(ctx, "seller@example.com").
		Return([]*entity.Medicine{{ID: "med-1"}}, nil)

	item := entity.LineItem{MedicineID: "med-1", Quantity: 1, UnitPrice: 10.00}
	mockOrders.EXPECT().
		FindAllOrders(ctx).
		Return([]*entity.Order{
			{ID: "o-paid", Items: []entity.LineItem{item}, PaymentStatus: entity.PaymentStatusPaid, OrderStatus: entity.OrderStatusConfirmed},
			{ID: "o-cancelled", Items: []entity.LineItem{item}, PaymentStatus: "unpaid", OrderStatus: entity.OrderStatusCancelled},
			{ID: "o-failed", Items: []entity.LineItem{item}, PaymentStatus: "unpaid", OrderStatus: entity.OrderStatusFailed},
			{ID: "o-open", Items: []entity.LineItem{item}, PaymentStatus: "unpaid", OrderStatus: "processing"},
		}, nil)

	rows, err := svc.GetPaymentHistory(ctx, "seller@example.com")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, usecase.PaymentClassCompleted, rows[0].Status)
	assert.Equal(t, usecase.PaymentClassFailed, rows[1].Status)
	assert.Equal(t, usecase.PaymentClassFailed, rows[2].Status)
	assert.Equal(t, usecase.PaymentClassPending, rows[3].Status)
}

func TestSellerService_GetPaymentHistory_RequiresEmail(t *testing.T) {
	_, _, svc := newSellerFixture(t)

	_, err := svc.GetPaymentHistory(context.Background(), "")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestSellerService_GetPaymentStats_CountsEveryNonPaidOrderAsPending(t *testing.T) {
	mockOrders, mockMedicines, svc := newSellerFixture(t)
	ctx := context.Background()

	mockMedicines.EXPECT().
		FindMedicinesBySeller(ctx, "seller@example.com").
		Return([]*entity.Medicine{{ID: "med-1"}}, nil)

	item := entity.LineItem{MedicineID: "med-1", Quantity: 1, UnitPrice: 100.00}
	mockOrders.EXPECT().
		FindAllOrders(ctx).
		Return([]*entity.Order{
			{ID: "o-paid", Items: []entity.LineItem{item}, PaymentStatus: entity.PaymentStatusPaid, OrderStatus: entity.OrderStatusConfirmed},
			// The history endpoint classifies a cancelled order as failed;
			// the stats count it as pending.
			{ID: "o-cancelled", Items: []entity.LineItem{item}, PaymentStatus: "unpaid", OrderStatus: entity.OrderStatusCancelled},
		}, nil)

	stats, err := svc.GetPaymentStats(ctx, "seller@example.com")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalPayments)
	assert.Equal(t, 1, stats.CompletedPayments)
	assert.Equal(t, 1, stats.PendingPayments)
	assert.Equal(t, 90.00, stats.TotalEarnings)
	assert.Equal(t, 10.00, stats.TotalCommissions)
}

func TestSellerService_GetPaymentStats_EmptyWhenNoMatches(t *testing.T) {
	mockOrders, mockMedicines, svc := newSellerFixture(t)
	ctx := context.Background()

	mockMedicines.EXPECT().
		FindMedicinesBySeller(ctx, "seller@example.com").
		Return(nil, nil)

	mockOrders.EXPECT().
		FindAllOrders(ctx).
		Return([]*entity.Order{
			{ID: "o-1", Items: []entity.LineItem{{MedicineID: "med-99", Quantity: 1, UnitPrice: 10.00}}, PaymentStatus: entity.PaymentStatusPaid},
		}, nil)

	stats, err := svc.GetPaymentStats(ctx, "seller@example.com")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalPayments)
	assert.Equal(t, 0.0, stats.TotalEarnings)
}
