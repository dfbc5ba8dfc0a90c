package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HealthBlogModel mirrors the 'healthBlogs' collection.
type HealthBlogModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content,omitempty"`
	Author    string             `bson:"author,omitempty"`
	Image     string             `bson:"image,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// CollectionName returns the collection this model persists in.
func (HealthBlogModel) CollectionName() string {
	return "healthBlogs"
}

// CompanyModel mirrors the 'companies' collection.
type CompanyModel struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Logo    string             `bson:"logo,omitempty"`
	Website string             `bson:"website,omitempty"`
}

// CollectionName returns the collection this model persists in.
func (CompanyModel) CollectionName() string {
	return "companies"
}

// CategoryModel mirrors the 'categories' collection.
type CategoryModel struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Image string             `bson:"image,omitempty"`
	Count int64              `bson:"count"`
}

// CollectionName returns the collection this model persists in.
func (CategoryModel) CollectionName() string {
	return "categories"
}
