package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MedicineModel mirrors the 'medicines' collection. discountPrice and inStock
// are stored denormalized; the use case layer recomputes them before every
// write that touches their source fields.
type MedicineModel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Category      string             `bson:"category,omitempty"`
	PricePerUnit  float64            `bson:"pricePerUnit"`
	Discount      float64            `bson:"discount"`
	DiscountPrice float64            `bson:"discountPrice"`
	StockQuantity int64              `bson:"stockQuantity"`
	InStock       bool               `bson:"inStock"`
	SellerEmail   string             `bson:"sellerEmail,omitempty"`
	Banner        bool               `bson:"banner"`
	Rating        float64            `bson:"rating"`
	ReviewCount   int64              `bson:"reviewCount"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

// CollectionName returns the collection this model persists in.
func (MedicineModel) CollectionName() string {
	return "medicines"
}
