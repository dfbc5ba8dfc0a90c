package impl

import (
	"context"

	"medistore/internal/domain/entity"
	domainerrors "medistore/internal/domain/errors"
	"medistore/internal/domain/repository"
	"medistore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	orders repository.OrderRepository
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Orders repository.OrderRepository
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orders: params.Orders,
	}
}

// GetOrdersByCustomer lists a customer's orders, newest first.
func (s *orderService) GetOrdersByCustomer(ctx context.Context, email string) ([]*entity.Order, error) {
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("customer email is required")
	}

	orders, err := s.orders.FindOrdersByCustomer(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by customer")
	}

	return orders, nil
}

// GetAllOrders lists every order, newest first.
func (s *orderService) GetAllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orders.FindAllOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	return orders, nil
}
