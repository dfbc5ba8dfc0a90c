package entity

import "time"

// Payment and order status values. Orders are written with PaymentStatusPaid
// and OrderStatusConfirmed once the gateway reports a succeeded intent; only
// the status fields change afterwards.
const (
	PaymentStatusPaid = "paid"

	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"
	OrderStatusFailed    = "failed"
)

// CustomerInfo is the buyer snapshot embedded in an order.
type CustomerInfo struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// LineItem is one entry in an order's item list. MedicineID references the
// purchased medicine; ItemID is the legacy field name older clients send for
// the same reference, so seller matching checks both.
type LineItem struct {
	MedicineID string  `json:"medicineId,omitempty"`
	ItemID     string  `json:"_id,omitempty"`
	Name       string  `json:"name,omitempty"`
	Quantity   int64   `json:"quantity"`
	UnitPrice  float64 `json:"price"`
}

// MedicineRef returns the product reference of the line item, preferring the
// current field name over the legacy one.
func (li LineItem) MedicineRef() string {
	if li.MedicineID != "" {
		return li.MedicineID
	}

	return li.ItemID
}

// Order is a confirmed purchase. It is created only after its payment intent
// has been observed in a succeeded state and is append-only except for status
// transitions.
type Order struct {
	ID              string       `json:"_id,omitempty"`
	PaymentIntentID string       `json:"paymentIntentId"`
	CustomerInfo    CustomerInfo `json:"customerInfo"`
	Items           []LineItem   `json:"items"`
	OrderTotal      float64      `json:"orderTotal"` // Decimal currency units.
	PaymentStatus   string       `json:"paymentStatus"`
	OrderStatus     string       `json:"orderStatus"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}
