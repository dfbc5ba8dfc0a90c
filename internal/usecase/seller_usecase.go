package usecase

import "context"

// Payment classification values used by the seller payment history.
const (
	PaymentClassCompleted = "completed"
	PaymentClassFailed    = "failed"
	PaymentClassPending   = "pending"
)

// PaymentHistoryRow is one order in a seller's payment history: the seller's
// own line items aggregated, with the platform commission taken off.
type PaymentHistoryRow struct {
	OrderID       string  `json:"orderId"`
	CustomerEmail string  `json:"customerEmail"`
	ItemCount     int     `json:"itemCount"`
	GrossAmount   float64 `json:"grossAmount"`
	Commission    float64 `json:"commission"`
	NetAmount     float64 `json:"netAmount"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

// PaymentStats summarizes a seller's earnings. Unlike the history rows,
// pendingPayments counts every non-paid order, including failed and cancelled
// ones.
type PaymentStats struct {
	TotalEarnings     float64 `json:"totalEarnings"`
	TotalCommissions  float64 `json:"totalCommissions"`
	CompletedPayments int     `json:"completedPayments"`
	PendingPayments   int     `json:"pendingPayments"`
	TotalPayments     int     `json:"totalPayments"`
}

// SellerUsecase defines the seller payment reporting operations. Both scan
// the full order history against the seller's medicine set on every request.
type SellerUsecase interface {
	// GetPaymentHistory returns one row per order containing at least one of
	// the seller's medicines, newest first.
	GetPaymentHistory(ctx context.Context, sellerEmail string) ([]PaymentHistoryRow, error)

	// GetPaymentStats aggregates the same matched-order set into summary
	// statistics.
	GetPaymentStats(ctx context.Context, sellerEmail string) (*PaymentStats, error)
}
