package usecase

import (
	"context"

	"medistore/internal/domain/entity"
)

// ContentUsecase defines read access to the informational content.
type ContentUsecase interface {
	// GetHealthBlogs lists all health blogs, newest first.
	GetHealthBlogs(ctx context.Context) ([]*entity.HealthBlog, error)

	// GetCompanies lists all companies.
	GetCompanies(ctx context.Context) ([]*entity.Company, error)

	// GetCategories lists all medicine categories.
	GetCategories(ctx context.Context) ([]*entity.Category, error)
}
