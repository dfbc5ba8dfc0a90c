package impl

import (
	"context"
	"testing"

	"medistore/config"
	"medistore/internal/domain/entity"
	domainerrors "medistore/internal/domain/errors"
	"medistore/internal/domain/service"
	mockRepo "medistore/internal/mocks/repository"
	mockSvc "medistore/internal/mocks/service"
	"medistore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCheckoutFixture(t *testing.T) (*mockSvc.MockPaymentGateway, *mockRepo.MockOrderRepository, *mockRepo.MockMedicineRepository, usecase.CheckoutUsecase) {
	mockGateway := mockSvc.NewMockPaymentGateway(t)
	mockOrders := mockRepo.NewMockOrderRepository(t)
	mockMedicines := mockRepo.NewMockMedicineRepository(t)
	svc := NewCheckoutService(CheckoutServiceParams{
		Gateway:   mockGateway,
		Orders:    mockOrders,
		Medicines: mockMedicines,
		Config:    &config.Config{},
	})

	return mockGateway, mockOrders, mockMedicines, svc
}

func TestCheckoutService_CreatePaymentIntent_ConvertsAmountToSmallestUnit(t *testing.T) {
	mockGateway, _, _, svc := newCheckoutFixture(t)
	ctx := context.Background()

	mockGateway.EXPECT().
		CreateIntent(ctx, service.CreateIntentParams{
			AmountSmallestUnit: 4999,
			Currency:           "usd",
			Metadata: map[string]string{
				"itemCount":     "2",
				"orderType":     "medicine_purchase",
				"customerEmail": "buyer@example.com",
				"customerName":  "Buyer One",
			},
		}).
		Return(&service.PaymentIntent{ID: "pi_123", ClientSecret: "secret_123", Status: "requires_payment_method"}, nil)

	result, err := svc.CreatePaymentIntent(ctx, usecase.PaymentIntentInput{
		Amount: 49.99,
		CustomerInfo: &entity.CustomerInfo{
			Email:    "buyer@example.com",
			FullName: "Buyer One",
		},
		CartItems: []entity.LineItem{
			{MedicineID: "med-1", Quantity: 1, UnitPrice: 19.99},
			{MedicineID: "med-2", Quantity: 2, UnitPrice: 15.00},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_123", result.PaymentIntentID)
	assert.Equal(t, "secret_123", result.ClientSecret)
}

func TestCheckoutService_CreatePaymentIntent_RejectsNonPositiveAmount(t *testing.T) {
	_, _, _, svc := newCheckoutFixture(t)

	result, err := svc.CreatePaymentIntent(context.Background(), usecase.PaymentIntentInput{Amount: 0})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
}

func TestCheckoutService_CreatePaymentIntent_GatewayNotConfigured(t *testing.T) {
	mockGateway, _, _, svc := newCheckoutFixture(t)
	ctx := context.Background()

	mockGateway.EXPECT().
		CreateIntent(ctx, mock.AnythingOfType("service.CreateIntentParams")).
		Return(nil, service.ErrGatewayNotConfigured)

	result, err := svc.CreatePaymentIntent(ctx, usecase.PaymentIntentInput{Amount: 10})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentUnavailable)
}

func TestCheckoutService_ConfirmPayment_RejectsUnverifiedIntent(t *testing.T) {
	mockGateway, _, _, svc := newCheckoutFixture(t)
	ctx := context.Background()

	mockGateway.EXPECT().
		RetrieveIntent(ctx, "pi_123").
		Return(&service.PaymentIntent{ID: "pi_123", Status: "requires_payment_method"}, nil)

	order, err := svc.ConfirmPayment(ctx, usecase.ConfirmPaymentInput{
		PaymentIntentID: "pi_123",
		CartItems:       []entity.LineItem{{MedicineID: "med-1", Quantity: 1}},
	})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotCompleted)
	// No order or stock expectations were registered: any write would fail the test.
}

func TestCheckoutService_ConfirmPayment_RequiresIntentAndItems(t *testing.T) {
	_, _, _, svc := newCheckoutFixture(t)

	_, err := svc.ConfirmPayment(context.Background(), usecase.ConfirmPaymentInput{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCheckoutService_ConfirmPayment_PersistsOrderAndAdjustsStock(t *testing.T) {
	mockGateway, mockOrders, mockMedicines, svc := newCheckoutFixture(t)
	ctx := context.Background()

	mockGateway.EXPECT().
		RetrieveIntent(ctx, "pi_ok").
		Return(&service.PaymentIntent{ID: "pi_ok", Status: service.IntentStatusSucceeded}, nil)

	mockOrders.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = "order-1"
		}).
		Return(nil)

	mockMedicines.EXPECT().
		DecrementStock(ctx, "med-1", int64(2)).
		Return(nil)
	mockMedicines.EXPECT().
		FindMedicineByID(ctx, "med-1").
		Return(&entity.Medicine{ID: "med-1", StockQuantity: 5, InStock: true}, nil)

	order, err := svc.ConfirmPayment(ctx, usecase.ConfirmPaymentInput{
		PaymentIntentID: "pi_ok",
		CustomerInfo:    entity.CustomerInfo{Email: "buyer@example.com"},
		CartItems:       []entity.LineItem{{MedicineID: "med-1", Quantity: 2, UnitPrice: 12.50}},
		OrderTotal:      25.00,
	})
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, entity.PaymentStatusPaid, order.PaymentStatus)
	assert.Equal(t, entity.OrderStatusConfirmed, order.OrderStatus)
	assert.Equal(t, 25.00, order.OrderTotal)
}

func TestCheckoutService_ConfirmPayment_ClampsStockAtZero(t *testing.T) {
	mockGateway, mockOrders, mockMedicines, svc := newCheckoutFixture(t)
	ctx := context.Background()

	mockGateway.EXPECT().
		RetrieveIntent(ctx, "pi_ok").
		Return(&service.PaymentIntent{ID: "pi_ok", Status: service.IntentStatusSucceeded}, nil)

	mockOrders.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	// Buying the last 3 units drives the quantity to zero, which must clamp
	// the listing to out of stock.
	mockMedicines.EXPECT().
		DecrementStock(ctx, "med-1", int64(3)).
		Return(nil)
	mockMedicines.EXPECT().
		FindMedicineByID(ctx, "med-1").
		Return(&entity.Medicine{ID: "med-1", StockQuantity: 0, InStock: true}, nil)
	mockMedicines.EXPECT().
		ClearStock(ctx, "med-1").
		Return(nil)

	_, err := svc.ConfirmPayment(ctx, usecase.ConfirmPaymentInput{
		PaymentIntentID: "pi_ok",
		CartItems:       []entity.LineItem{{MedicineID: "med-1", Quantity: 3, UnitPrice: 5.00}},
		OrderTotal:      15.00,
	})
	require.NoError(t, err)
}

func TestCheckoutService_ConfirmPayment_MatchesLegacyItemReference(t *testing.T) {
	mockGateway, mockOrders, mockMedicines, svc := newCheckoutFixture(t)
	ctx := context.Background()

	mockGateway.EXPECT().
		RetrieveIntent(ctx, "pi_ok").
		Return(&service.PaymentIntent{ID: "pi_ok", Status: service.IntentStatusSucceeded}, nil)

	mockOrders.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	mockMedicines.EXPECT().
		DecrementStock(ctx, "med-legacy", int64(1)).
		Return(nil)
	mockMedicines.EXPECT().
		FindMedicineByID(ctx, "med-legacy").
		Return(&entity.Medicine{ID: "med-legacy", StockQuantity: 4, InStock: true}, nil)

	_, err := svc.ConfirmPayment(ctx, usecase.ConfirmPaymentInput{
		PaymentIntentID: "pi_ok",
		CartItems:       []entity.LineItem{{ItemID: "med-legacy", Quantity: 1, UnitPrice: 9.99}},
		OrderTotal:      9.99,
	})
	require.NoError(t, err)
}

func TestToSmallestUnit_RoundsToNearestInteger(t *testing.T) {
	assert.Equal(t, int64(1000), toSmallestUnit(10.00))
	assert.Equal(t, int64(1999), toSmallestUnit(19.99))
	assert.Equal(t, int64(1), toSmallestUnit(0.005))
	assert.Equal(t, int64(10), toSmallestUnit(0.0999999999))
}
