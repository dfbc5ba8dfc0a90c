package mongodb

import (
	"context"

	"medistore/internal/domain/entity"
	"medistore/internal/domain/repository"
	"medistore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// contentRepository implements the repository.ContentRepository interface.
type contentRepository struct {
	blogs      *mongo.Collection
	companies  *mongo.Collection
	categories *mongo.Collection
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(db *mongo.Database) repository.ContentRepository {
	return &contentRepository{
		blogs:      db.Collection(model.HealthBlogModel{}.CollectionName()),
		companies:  db.Collection(model.CompanyModel{}.CollectionName()),
		categories: db.Collection(model.CategoryModel{}.CollectionName()),
	}
}

// FindHealthBlogs retrieves all health blogs, newest first.
func (repo *contentRepository) FindHealthBlogs(ctx context.Context) ([]*entity.HealthBlog, error) {
	cursor, err := repo.blogs.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find health blogs")
	}

	var blogModels []*model.HealthBlogModel
	if err := cursor.All(ctx, &blogModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode health blogs")
	}

	blogs := make([]*entity.HealthBlog, 0, len(blogModels))
	for _, blogM := range blogModels {
		blogs = append(blogs, &entity.HealthBlog{
			ID:        blogM.ID.Hex(),
			Title:     blogM.Title,
			Content:   blogM.Content,
			Author:    blogM.Author,
			Image:     blogM.Image,
			CreatedAt: blogM.CreatedAt,
		})
	}

	return blogs, nil
}

// FindCompanies retrieves all listed companies.
func (repo *contentRepository) FindCompanies(ctx context.Context) ([]*entity.Company, error) {
	cursor, err := repo.companies.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find companies")
	}

	var companyModels []*model.CompanyModel
	if err := cursor.All(ctx, &companyModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode companies")
	}

	companies := make([]*entity.Company, 0, len(companyModels))
	for _, companyM := range companyModels {
		companies = append(companies, &entity.Company{
			ID:      companyM.ID.Hex(),
			Name:    companyM.Name,
			Logo:    companyM.Logo,
			Website: companyM.Website,
		})
	}

	return companies, nil
}

// FindCategories retrieves all medicine categories.
func (repo *contentRepository) FindCategories(ctx context.Context) ([]*entity.Category, error) {
	cursor, err := repo.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}

	var categoryModels []*model.CategoryModel
	if err := cursor.All(ctx, &categoryModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, &entity.Category{
			ID:    categoryM.ID.Hex(),
			Name:  categoryM.Name,
			Image: categoryM.Image,
			Count: categoryM.Count,
		})
	}

	return categories, nil
}
