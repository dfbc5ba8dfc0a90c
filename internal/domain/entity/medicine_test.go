package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedicine_RecomputeDerived(t *testing.T) {
	tests := []struct {
		name          string
		price         float64
		discount      float64
		stock         int64
		wantDiscount  float64
		wantInStock   bool
	}{
		{"no discount", 100, 0, 5, 100, true},
		{"quarter off", 100, 25, 5, 75, true},
		{"full discount", 100, 100, 5, 0, true},
		{"sold out", 50, 10, 0, 45, false},
		{"negative stock clamps to out of stock", 50, 0, -3, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Medicine{PricePerUnit: tt.price, Discount: tt.discount, StockQuantity: tt.stock}
			m.RecomputeDerived()

			assert.InDelta(t, tt.wantDiscount, m.DiscountPrice, 1e-9)
			assert.Equal(t, tt.wantInStock, m.InStock)
		})
	}
}
