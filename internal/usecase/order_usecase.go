package usecase

import (
	"context"

	"medistore/internal/domain/entity"
)

// OrderUsecase defines read access to the order history.
type OrderUsecase interface {
	// GetOrdersByCustomer lists a customer's orders, newest first.
	GetOrdersByCustomer(ctx context.Context, email string) ([]*entity.Order, error)

	// GetAllOrders lists every order, newest first.
	GetAllOrders(ctx context.Context) ([]*entity.Order, error)
}
