package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medistore/config"
	"medistore/internal/delivery/http/middleware"
	"medistore/internal/domain/service"
	mockRepo "medistore/internal/mocks/repository"
	mockSvc "medistore/internal/mocks/service"
	"medistore/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCheckoutTestServer(t *testing.T, gateway *mockSvc.MockPaymentGateway, orders *mockRepo.MockOrderRepository, medicines *mockRepo.MockMedicineRepository) *echo.Echo {
	svc := impl.NewCheckoutService(impl.CheckoutServiceParams{
		Gateway:   gateway,
		Orders:    orders,
		Medicines: medicines,
		Config:    &config.Config{},
	})
	h := NewCheckoutHandler(svc, slog.Default())

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.Default()).HandleHTTPError
	e.POST("/api/create-payment-intent", h.CreatePaymentIntent)
	e.POST("/api/confirm-payment", h.ConfirmPayment)

	return e
}

func TestCheckoutHandler_CreatePaymentIntent_Integration(t *testing.T) {
	gateway := mockSvc.NewMockPaymentGateway(t)
	orders := mockRepo.NewMockOrderRepository(t)
	medicines := mockRepo.NewMockMedicineRepository(t)
	e := newCheckoutTestServer(t, gateway, orders, medicines)

	gateway.EXPECT().
		CreateIntent(mock.Anything, mock.AnythingOfType("service.CreateIntentParams")).
		Return(&service.PaymentIntent{ID: "pi_123", ClientSecret: "secret_123", Status: "requires_payment_method"}, nil)

	body := `{"amount": 49.99, "cartItems": [{"medicineId": "med-1", "quantity": 1, "price": 49.99}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"clientSecret":"secret_123"`)
	assert.Contains(t, rec.Body.String(), `"paymentIntentId":"pi_123"`)
}

func TestCheckoutHandler_CreatePaymentIntent_InvalidAmount(t *testing.T) {
	gateway := mockSvc.NewMockPaymentGateway(t)
	orders := mockRepo.NewMockOrderRepository(t)
	medicines := mockRepo.NewMockMedicineRepository(t)
	e := newCheckoutTestServer(t, gateway, orders, medicines)

	body := `{"amount": 0}`
	req := httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"INVALID_AMOUNT"`)
}

func TestCheckoutHandler_CreatePaymentIntent_GatewayUnavailable(t *testing.T) {
	gateway := mockSvc.NewMockPaymentGateway(t)
	orders := mockRepo.NewMockOrderRepository(t)
	medicines := mockRepo.NewMockMedicineRepository(t)
	e := newCheckoutTestServer(t, gateway, orders, medicines)

	gateway.EXPECT().
		CreateIntent(mock.Anything, mock.AnythingOfType("service.CreateIntentParams")).
		Return(nil, service.ErrGatewayNotConfigured)

	body := `{"amount": 10.00}`
	req := httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"PAYMENT_UNAVAILABLE"`)
}

func TestCheckoutHandler_ConfirmPayment_PaymentNotCompleted(t *testing.T) {
	gateway := mockSvc.NewMockPaymentGateway(t)
	orders := mockRepo.NewMockOrderRepository(t)
	medicines := mockRepo.NewMockMedicineRepository(t)
	e := newCheckoutTestServer(t, gateway, orders, medicines)

	gateway.EXPECT().
		RetrieveIntent(mock.Anything, "pi_123").
		Return(&service.PaymentIntent{ID: "pi_123", Status: "requires_payment_method"}, nil)

	body := `{"paymentIntentId": "pi_123", "cartItems": [{"medicineId": "med-1", "quantity": 1, "price": 5.00}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/confirm-payment", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"PAYMENT_NOT_COMPLETED"`)
}
