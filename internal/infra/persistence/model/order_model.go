package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerInfoModel is the buyer snapshot embedded in an order document.
type CustomerInfoModel struct {
	Email    string `bson:"email"`
	FullName string `bson:"fullName,omitempty"`
	Phone    string `bson:"phone,omitempty"`
	Address  string `bson:"address,omitempty"`
}

// LineItemModel is one element of an order's items array. Older clients sent
// the medicine reference under the element's own _id field; newer ones send
// medicineId. Both are kept so seller matching can tolerate either shape.
type LineItemModel struct {
	MedicineID string  `bson:"medicineId,omitempty"`
	ItemID     string  `bson:"_id,omitempty"`
	Name       string  `bson:"name,omitempty"`
	Quantity   int64   `bson:"quantity"`
	UnitPrice  float64 `bson:"price"`
}

// OrderModel mirrors the 'orders' collection. Amounts are decimal currency
// units; the smallest-unit integer form exists only at the gateway boundary.
type OrderModel struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	PaymentIntentID string             `bson:"paymentIntentId"`
	CustomerInfo    CustomerInfoModel  `bson:"customerInfo"`
	Items           []LineItemModel    `bson:"items"`
	OrderTotal      float64            `bson:"orderTotal"`
	PaymentStatus   string             `bson:"paymentStatus"`
	OrderStatus     string             `bson:"orderStatus"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

// CollectionName returns the collection this model persists in.
func (OrderModel) CollectionName() string {
	return "orders"
}
