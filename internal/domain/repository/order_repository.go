package repository

import (
	"context"

	"medistore/internal/domain/entity"
)

// OrderRepository defines the interface for order-related store operations.
// Orders are append-only; there is no delete.
type OrderRepository interface {
	// CreateOrder persists a confirmed order and fills in its store-assigned
	// identifier.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrdersByCustomer retrieves all orders for a customer email, newest
	// first.
	FindOrdersByCustomer(ctx context.Context, email string) ([]*entity.Order, error)

	// FindAllOrders retrieves every order, newest first.
	FindAllOrders(ctx context.Context) ([]*entity.Order, error)
}
