package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdvertisementModel mirrors the 'advertisements' collection. startDate and
// endDate are calendar-date strings (YYYY-MM-DD) compared lexicographically
// by the active-slider query.
type AdvertisementModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	MedicineID  string             `bson:"medicineId"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Image       string             `bson:"image,omitempty"`
	SellerEmail string             `bson:"sellerEmail"`
	Status      string             `bson:"status"`
	StartDate   string             `bson:"startDate,omitempty"`
	EndDate     string             `bson:"endDate,omitempty"`
	Clicks      int64              `bson:"clicks"`
	Impressions int64              `bson:"impressions"`
	Conversions int64              `bson:"conversions"`
	Cost        float64            `bson:"cost"`
	AdminNote   string             `bson:"adminNote,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	ReviewedAt  *time.Time         `bson:"reviewedAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// CollectionName returns the collection this model persists in.
func (AdvertisementModel) CollectionName() string {
	return "advertisements"
}
