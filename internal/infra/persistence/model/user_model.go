// Package model contains the bson document shapes stored in MongoDB. Every
// document is deserialized into one of these explicit types at the store
// boundary; unknown shapes are rejected by the driver instead of leaking
// untyped maps into the domain.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel mirrors the 'users' collection. The email field carries a unique
// index; MongoDB assigns the ObjectID.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name,omitempty"`
	Role      string             `bson:"role"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// CollectionName returns the collection this model persists in.
func (UserModel) CollectionName() string {
	return "users"
}
