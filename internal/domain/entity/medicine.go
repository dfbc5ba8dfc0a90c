package entity

import "time"

// Medicine is a product listed by a seller. DiscountPrice and InStock are
// derived from PricePerUnit/Discount and StockQuantity; they are recomputed
// through RecomputeDerived whenever a source field changes and must never be
// stale relative to it.
type Medicine struct {
	ID            string    `json:"_id,omitempty"`
	Name          string    `json:"name"`
	Category      string    `json:"category,omitempty"`
	PricePerUnit  float64   `json:"pricePerUnit"`           // Unit price in decimal currency units.
	Discount      float64   `json:"discount"`               // Discount percentage, 0-100.
	DiscountPrice float64   `json:"discountPrice"`          // Derived: PricePerUnit * (1 - Discount/100).
	StockQuantity int64     `json:"stockQuantity"`
	InStock       bool      `json:"inStock"`                // Derived: StockQuantity > 0.
	SellerEmail   string    `json:"sellerEmail,omitempty"`
	Banner        bool      `json:"banner"`                 // Eligible for the storefront banner slider.
	Rating        float64   `json:"rating,omitempty"`
	ReviewCount   int64     `json:"reviewCount,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RecomputeDerived refreshes DiscountPrice and InStock from their source
// fields. Callers mutate PricePerUnit, Discount or StockQuantity and then
// invoke this before persisting.
func (m *Medicine) RecomputeDerived() {
	m.DiscountPrice = m.PricePerUnit * (1 - m.Discount/100)
	m.InStock = m.StockQuantity > 0
}
