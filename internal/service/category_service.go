//go:generate mockery --name CategoryService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"log/slog"

	"go_trivia_api/internal/middleware"
	"go_trivia_api/internal/model"
	"go_trivia_api/internal/repository"

	"gorm.io/gorm"
)

type CategoryService interface {
	ListCategories(ctx context.Context) (model.CategoryMap, error)
}

type categoryService struct {
	db           *gorm.DB
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(db *gorm.DB, categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{
		db:           db,
		categoryRepo: categoryRepo,
	}
}

func (s *categoryService) ListCategories(ctx context.Context) (model.CategoryMap, error) {
	categories, err := s.categoryRepo.FindAll(ctx, s.db)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list categories", slog.Any("error", err))
		return nil, model.ErrUnprocessable
	}
	return model.NewCategoryMap(categories), nil
}
