//go:generate mockery --name QuestionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go_trivia_api/internal/middleware"
	"go_trivia_api/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL の外部キー制約違反
const pgForeignKeyViolation = "23503"

// 一覧系はすべて id 昇順で返す (ページングの結果を安定させるため)
type QuestionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, question *model.Question) error
	FindByID(ctx context.Context, db *gorm.DB, questionID int) (*model.Question, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Question, error)
	FindByCategory(ctx context.Context, db *gorm.DB, categoryID int) ([]*model.Question, error)
	Search(ctx context.Context, db *gorm.DB, term string) ([]*model.Question, error)
	FindQuizCandidates(ctx context.Context, db *gorm.DB, categoryID int, excludeIDs []int) ([]*model.Question, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, questionID int) error
}

type gormQuestionRepository struct{}

func NewGormQuestionRepository() QuestionRepository {
	return &gormQuestionRepository{}
}

func (r *gormQuestionRepository) Create(ctx context.Context, tx *gorm.DB, question *model.Question) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Omit("CategoryRef").Create(question)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			logger.Warn("Foreign key violation on create question",
				"error", result.Error,
				"category", question.Category,
			)
			return fmt.Errorf("gormQuestionRepository.Create: unknown category %d: %w", question.Category, model.ErrUnprocessable)
		}
		logger.Error("Error creating question in DB",
			"error", result.Error,
			"category", question.Category,
		)
		return fmt.Errorf("gormQuestionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormQuestionRepository) FindByID(ctx context.Context, db *gorm.DB, questionID int) (*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	var question model.Question
	result := db.WithContext(ctx).Where("id = ?", questionID).First(&question)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding question by ID in DB",
			"error", result.Error,
			"question_id", questionID,
		)
		return nil, fmt.Errorf("gormQuestionRepository.FindByID: %w", result.Error)
	}
	return &question, nil
}

func (r *gormQuestionRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	var questions []*model.Question
	result := db.WithContext(ctx).Order("id ASC").Find(&questions)
	if result.Error != nil {
		logger.Error("Error finding questions in DB", "error", result.Error)
		return nil, fmt.Errorf("gormQuestionRepository.FindAll: %w", result.Error)
	}
	return questions, nil
}

func (r *gormQuestionRepository) FindByCategory(ctx context.Context, db *gorm.DB, categoryID int) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	var questions []*model.Question
	result := db.WithContext(ctx).Where("category = ?", categoryID).Order("id ASC").Find(&questions)
	if result.Error != nil {
		logger.Error("Error finding questions by category in DB",
			"error", result.Error,
			"category", categoryID,
		)
		return nil, fmt.Errorf("gormQuestionRepository.FindByCategory: %w", result.Error)
	}
	return questions, nil
}

// Search は問題文に term を含む問題を大文字小文字を区別せずに返します。
// % と _ はワイルドカードとして解釈させない。
func (r *gormQuestionRepository) Search(ctx context.Context, db *gorm.DB, term string) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	var questions []*model.Question
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	result := db.WithContext(ctx).
		Where(`LOWER(question) LIKE ? ESCAPE '\'`, pattern).
		Order("id ASC").
		Find(&questions)
	if result.Error != nil {
		logger.Error("Error searching questions in DB",
			"error", result.Error,
			"search_term", term,
		)
		return nil, fmt.Errorf("gormQuestionRepository.Search: %w", result.Error)
	}
	return questions, nil
}

// FindQuizCandidates はクイズの出題候補を返します。
// categoryID が model.AllCategoriesID なら全カテゴリが対象。
func (r *gormQuestionRepository) FindQuizCandidates(ctx context.Context, db *gorm.DB, categoryID int, excludeIDs []int) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	var questions []*model.Question
	query := db.WithContext(ctx).Model(&model.Question{})
	if categoryID != model.AllCategoriesID {
		query = query.Where("category = ?", categoryID)
	}
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	result := query.Order("id ASC").Find(&questions)
	if result.Error != nil {
		logger.Error("Error finding quiz candidates in DB",
			"error", result.Error,
			"category", categoryID,
			"excluded", len(excludeIDs),
		)
		return nil, fmt.Errorf("gormQuestionRepository.FindQuizCandidates: %w", result.Error)
	}
	return questions, nil
}

func (r *gormQuestionRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Question{}).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting questions in DB", "error", result.Error)
		return 0, fmt.Errorf("gormQuestionRepository.Count: %w", result.Error)
	}
	return count, nil
}

func (r *gormQuestionRepository) Delete(ctx context.Context, tx *gorm.DB, questionID int) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Delete(&model.Question{}, questionID)
	if result.Error != nil {
		logger.Error("Error deleting question in DB",
			"error", result.Error,
			"question_id", questionID,
		)
		return fmt.Errorf("gormQuestionRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
