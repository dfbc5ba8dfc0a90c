package impl

import (
	"context"

	"medistore/internal/domain/entity"
	"medistore/internal/domain/repository"
	"medistore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type contentService struct {
	content repository.ContentRepository
}

// ContentServiceParams holds dependencies for ContentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	Content repository.ContentRepository
}

// NewContentService creates a new content service instance
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		content: params.Content,
	}
}

func (s *contentService) GetHealthBlogs(ctx context.Context) ([]*entity.HealthBlog, error) {
	blogs, err := s.content.FindHealthBlogs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find health blogs")
	}

	return blogs, nil
}

func (s *contentService) GetCompanies(ctx context.Context) ([]*entity.Company, error) {
	companies, err := s.content.FindCompanies(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find companies")
	}

	return companies, nil
}

func (s *contentService) GetCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.content.FindCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}

	return categories, nil
}
