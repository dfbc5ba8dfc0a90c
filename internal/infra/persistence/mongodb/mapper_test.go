package mongodb

import (
	"testing"
	"time"

	"medistore/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The store assigns ObjectIDs on insert, so a document mapped down and back
// comes out with the zero identifier. Every other field must survive the
// round trip unchanged.

func TestMedicineMapping_RoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	medicine := &entity.Medicine{
		Name:          "Napa Extra",
		Category:      "Tablet",
		PricePerUnit:  12.5,
		Discount:      20,
		DiscountPrice: 10,
		StockQuantity: 40,
		InStock:       true,
		SellerEmail:   "seller@pharma.example",
		Banner:        true,
		Rating:        4.5,
		ReviewCount:   12,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	got := toMedicineDomain(fromMedicineDomain(medicine))

	want := *medicine
	want.ID = primitive.NilObjectID.Hex()
	assert.Equal(t, &want, got)
}

func TestUserMapping_RoundTrip(t *testing.T) {
	user := &entity.User{
		Email:     "buyer@example.com",
		Name:      "Rahim Uddin",
		Role:      entity.RoleCustomer,
		CreatedAt: time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC),
	}

	got := toUserDomain(fromUserDomain(user))

	want := *user
	want.ID = primitive.NilObjectID.Hex()
	assert.Equal(t, &want, got)
}

func TestOrderMapping_RoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 15, 0, 0, time.UTC)
	order := &entity.Order{
		PaymentIntentID: "pi_1AbCd",
		CustomerInfo: entity.CustomerInfo{
			Email:    "buyer@example.com",
			FullName: "Rahim Uddin",
			Phone:    "+8801700000000",
			Address:  "Dhaka",
		},
		Items: []entity.LineItem{
			{MedicineID: "med-1", Name: "Napa Extra", Quantity: 2, UnitPrice: 12.5},
			{ItemID: "med-2", Name: "Seclo", Quantity: 1, UnitPrice: 8},
		},
		OrderTotal:    33,
		PaymentStatus: entity.PaymentStatusPaid,
		OrderStatus:   entity.OrderStatusConfirmed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	got := toOrderDomain(fromOrderDomain(order))

	want := *order
	want.ID = primitive.NilObjectID.Hex()
	assert.Equal(t, &want, got)
}

func TestAdvertisementMapping_RoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 3, 14, 0, 0, 0, time.UTC)
	reviewed := now.Add(time.Hour)
	ad := &entity.Advertisement{
		MedicineID:  "med-1",
		Title:       "Monsoon fever relief",
		Description: "Featured paracetamol listing",
		Image:       "https://cdn.example.com/ads/napa.png",
		SellerEmail: "seller@pharma.example",
		Status:      entity.AdStatusApproved,
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-30",
		Clicks:      3,
		Impressions: 120,
		Conversions: 1,
		Cost:        49.99,
		AdminNote:   "approved for june",
		CreatedAt:   now,
		ReviewedAt:  &reviewed,
		UpdatedAt:   now,
	}

	got := toAdvertisementDomain(fromAdvertisementDomain(ad))

	want := *ad
	want.ID = primitive.NilObjectID.Hex()
	assert.Equal(t, &want, got)
}
