package impl

import (
	"context"
	"math"
	"time"

	"medistore/internal/domain/entity"
	domainerrors "medistore/internal/domain/errors"
	"medistore/internal/domain/repository"
	"medistore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// commissionRate is the platform's fixed cut of a seller's gross sale amount.
const commissionRate = 0.10

type sellerService struct {
	orders    repository.OrderRepository
	medicines repository.MedicineRepository
}

// SellerServiceParams holds dependencies for SellerService, injected by Fx.
type SellerServiceParams struct {
	fx.In

	Orders    repository.OrderRepository
	Medicines repository.MedicineRepository
}

// NewSellerService creates a new seller reporting service instance
func NewSellerService(params SellerServiceParams) usecase.SellerUsecase {
	return &sellerService{
		orders:    params.Orders,
		medicines: params.Medicines,
	}
}

// GetPaymentHistory returns one row per order containing at least one of the
// seller's medicines, newest first.
func (s *sellerService) GetPaymentHistory(ctx context.Context, sellerEmail string) ([]usecase.PaymentHistoryRow, error) {
	if sellerEmail == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("seller email is required")
	}

	matched, err := s.matchOrders(ctx, sellerEmail)
	if err != nil {
		return nil, err
	}

	rows := make([]usecase.PaymentHistoryRow, 0, len(matched))
	for _, m := range matched {
		commission := round2(m.gross * commissionRate)
		gross := round2(m.gross)

		rows = append(rows, usecase.PaymentHistoryRow{
			OrderID:       m.order.ID,
			CustomerEmail: m.order.CustomerInfo.Email,
			ItemCount:     m.itemCount,
			GrossAmount:   gross,
			Commission:    commission,
			NetAmount:     round2(gross - commission),
			Status:        classifyPayment(m.order),
			CreatedAt:     m.order.CreatedAt.Format(time.RFC3339),
		})
	}

	return rows, nil
}

// GetPaymentStats aggregates the seller's matched orders into summary
// statistics. Every non-paid order counts as pending here, including failed
// and cancelled ones; the history endpoint classifies those as failed. The
// asymmetry is intentional.
func (s *sellerService) GetPaymentStats(ctx context.Context, sellerEmail string) (*usecase.PaymentStats, error) {
	if sellerEmail == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("seller email is required")
	}

	matched, err := s.matchOrders(ctx, sellerEmail)
	if err != nil {
		return nil, err
	}

	stats := &usecase.PaymentStats{}
	for _, m := range matched {
		stats.TotalPayments++

		if m.order.PaymentStatus == entity.PaymentStatusPaid {
			commission := m.gross * commissionRate
			stats.TotalEarnings += m.gross - commission
			stats.TotalCommissions += commission
			stats.CompletedPayments++
		} else {
			stats.PendingPayments++
		}
	}

	stats.TotalEarnings = round2(stats.TotalEarnings)
	stats.TotalCommissions = round2(stats.TotalCommissions)

	return stats, nil
}

// matchedOrder pairs an order with the seller's share of it.
type matchedOrder struct {
	order     *entity.Order
	gross     float64
	itemCount int
}

// matchOrders scans the full order history and keeps orders with at least one
// line item referencing one of the seller's medicines. Line items are matched
// by either of the two product-reference field shapes.
func (s *sellerService) matchOrders(ctx context.Context, sellerEmail string) ([]matchedOrder, error) {
	medicines, err := s.medicines.FindMedicinesBySeller(ctx, sellerEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find medicines by seller")
	}

	sellerIDs := make(map[string]struct{}, len(medicines))
	for _, medicine := range medicines {
		sellerIDs[medicine.ID] = struct{}{}
	}

	orders, err := s.orders.FindAllOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	matched := make([]matchedOrder, 0)
	for _, order := range orders {
		var gross float64
		var itemCount int

		for _, item := range order.Items {
			if _, ok := sellerIDs[item.MedicineRef()]; !ok {
				continue
			}
			gross += item.UnitPrice * float64(item.Quantity)
			itemCount++
		}

		if itemCount == 0 {
			continue
		}

		matched = append(matched, matchedOrder{order: order, gross: gross, itemCount: itemCount})
	}

	return matched, nil
}

// classifyPayment maps an order onto the three-way history classification.
func classifyPayment(order *entity.Order) string {
	switch {
	case order.PaymentStatus == entity.PaymentStatusPaid:
		return usecase.PaymentClassCompleted
	case order.OrderStatus == entity.OrderStatusCancelled || order.OrderStatus == entity.OrderStatusFailed:
		return usecase.PaymentClassFailed
	default:
		return usecase.PaymentClassPending
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
