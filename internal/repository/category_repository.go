//go:generate mockery --name CategoryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_trivia_api/internal/middleware"
	"go_trivia_api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// カテゴリはAPIからは読み取り専用。EnsureExists は seed コマンド専用。
type CategoryRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Category, error)
	Exists(ctx context.Context, db *gorm.DB, categoryID int) (bool, error)
	EnsureExists(ctx context.Context, tx *gorm.DB, categories []*model.Category) error
}

type gormCategoryRepository struct{}

func NewGormCategoryRepository() CategoryRepository {
	return &gormCategoryRepository{}
}

// FindAll は type の昇順でカテゴリを返します。
func (r *gormCategoryRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Category, error) {
	logger := middleware.GetLogger(ctx)
	var categories []*model.Category
	result := db.WithContext(ctx).Order("type ASC").Find(&categories)
	if result.Error != nil {
		logger.Error("Error finding categories in DB", "error", result.Error)
		return nil, fmt.Errorf("gormCategoryRepository.FindAll: %w", result.Error)
	}
	return categories, nil
}

func (r *gormCategoryRepository) Exists(ctx context.Context, db *gorm.DB, categoryID int) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", categoryID).Count(&count)
	if result.Error != nil {
		logger.Error("Error checking category existence in DB",
			"error", result.Error,
			"category", categoryID,
		)
		return false, fmt.Errorf("gormCategoryRepository.Exists: %w", result.Error)
	}
	return count > 0, nil
}

// EnsureExists はカテゴリを登録します。同じ id が既にあれば何もしない。
func (r *gormCategoryRepository) EnsureExists(ctx context.Context, tx *gorm.DB, categories []*model.Category) error {
	if len(categories) == 0 {
		return nil
	}
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&categories)
	if result.Error != nil {
		logger.Error("Error seeding categories in DB", "error", result.Error)
		return fmt.Errorf("gormCategoryRepository.EnsureExists: %w", result.Error)
	}
	logger.Debug("Categories ensured", "requested", len(categories), "inserted", result.RowsAffected)
	return nil
}
