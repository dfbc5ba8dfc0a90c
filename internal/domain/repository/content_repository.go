package repository

import (
	"context"

	"medistore/internal/domain/entity"
)

// ContentRepository defines read access to the informational collections
// (health blogs, companies, categories). These are read-mostly records
// maintained outside the storefront API.
type ContentRepository interface {
	// FindHealthBlogs retrieves all health blogs, newest first.
	FindHealthBlogs(ctx context.Context) ([]*entity.HealthBlog, error)

	// FindCompanies retrieves all listed companies.
	FindCompanies(ctx context.Context) ([]*entity.Company, error)

	// FindCategories retrieves all medicine categories.
	FindCategories(ctx context.Context) ([]*entity.Category, error)
}
