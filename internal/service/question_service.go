//go:generate mockery --name QuestionService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go_trivia_api/internal/config"
	"go_trivia_api/internal/middleware"
	"go_trivia_api/internal/model"
	"go_trivia_api/internal/repository"

	"gorm.io/gorm"
)

type QuestionService interface {
	ListQuestions(ctx context.Context, page int) (*model.QuestionPage, model.CategoryMap, error)
	DeleteQuestion(ctx context.Context, questionID, page int) (*model.QuestionPage, error)
	CreateQuestion(ctx context.Context, req *model.CreateQuestionRequest) (*model.Question, error)
	SearchQuestions(ctx context.Context, term string) (*model.QuestionPage, error)
	ListQuestionsByCategory(ctx context.Context, categoryID, page int) (*model.QuestionPage, error)
}

type questionService struct {
	db           *gorm.DB // トランザクション用にDB接続を持つ
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

func NewQuestionService(db *gorm.DB, questionRepo repository.QuestionRepository, categoryRepo repository.CategoryRepository) QuestionService {
	return &questionService{
		db:           db,
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// ListQuestions は全問題の page ページ目とカテゴリ一覧を返します。
func (s *questionService) ListQuestions(ctx context.Context, page int) (*model.QuestionPage, model.CategoryMap, error) {
	logger := middleware.GetLogger(ctx)

	questions, err := s.questionRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list questions", slog.Any("error", err))
		return nil, nil, model.ErrUnprocessable
	}
	categories, err := s.categoryRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list categories for questions", slog.Any("error", err))
		return nil, nil, model.ErrUnprocessable
	}

	return &model.QuestionPage{
		Questions:      Paginate(questions, page, config.QuestionsPerPage),
		TotalQuestions: int64(len(questions)),
	}, model.NewCategoryMap(categories), nil
}

// DeleteQuestion は問題を削除し、削除後の一覧の page ページ目を返します。
func (s *questionService) DeleteQuestion(ctx context.Context, questionID, page int) (*model.QuestionPage, error) {
	logger := middleware.GetLogger(ctx).With(slog.Int("question_id", questionID))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認
		if _, err := s.questionRepo.FindByID(ctx, tx, questionID); err != nil {
			return err
		}
		// 2. 削除
		return s.questionRepo.Delete(ctx, tx, questionID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Question to delete not found")
			return nil, model.ErrNotFound
		}
		logger.Error("Transaction failed for DeleteQuestion", slog.Any("error", err))
		return nil, model.ErrUnprocessable
	}

	remaining, err := s.questionRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list questions after delete", slog.Any("error", err))
		return nil, model.ErrUnprocessable
	}

	logger.Info("Question deleted")
	return &model.QuestionPage{
		Questions:      Paginate(remaining, page, config.QuestionsPerPage),
		TotalQuestions: int64(len(remaining)),
	}, nil
}

// CreateQuestion は問題を登録します。category は既存のカテゴリでなければならない。
func (s *questionService) CreateQuestion(ctx context.Context, req *model.CreateQuestionRequest) (*model.Question, error) {
	logger := middleware.GetLogger(ctx)

	if req == nil || req.Category == nil || req.Difficulty == nil ||
		strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		return nil, model.ErrUnprocessable
	}

	question := &model.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   *req.Category,
		Difficulty: *req.Difficulty,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. カテゴリの存在確認
		exists, err := s.categoryRepo.Exists(ctx, tx, question.Category)
		if err != nil {
			return err
		}
		if !exists {
			return model.NewAppError("UNKNOWN_CATEGORY", "", "category", model.ErrUnprocessable)
		}
		// 2. 登録 (IDはストアが採番)
		return s.questionRepo.Create(ctx, tx, question)
	})
	if err != nil {
		if errors.Is(err, model.ErrUnprocessable) {
			logger.Warn("Question rejected", slog.Any("error", err), slog.Int("category", question.Category))
		} else {
			logger.Error("Transaction failed for CreateQuestion", slog.Any("error", err))
		}
		return nil, model.ErrUnprocessable
	}

	logger.Info("Question created", slog.Int("question_id", question.ID))
	return question, nil
}

// SearchQuestions は問題文に term を含む問題をすべて返します (ページングなし)。
// TotalQuestions は検索結果ではなく全問題数。空白だけの term も通常の検索語として扱う。
func (s *questionService) SearchQuestions(ctx context.Context, term string) (*model.QuestionPage, error) {
	logger := middleware.GetLogger(ctx)

	if term == "" {
		return nil, model.ErrNotFound
	}

	questions, err := s.questionRepo.Search(ctx, s.db, term)
	if err != nil {
		logger.Error("Failed to search questions", slog.Any("error", err))
		return nil, model.ErrUnprocessable
	}
	total, err := s.questionRepo.Count(ctx, s.db)
	if err != nil {
		logger.Error("Failed to count questions", slog.Any("error", err))
		return nil, model.ErrUnprocessable
	}

	if questions == nil {
		questions = []*model.Question{}
	}
	return &model.QuestionPage{Questions: questions, TotalQuestions: total}, nil
}

// ListQuestionsByCategory はカテゴリ内の問題の page ページ目を返します。
// TotalQuestions は全問題数。
func (s *questionService) ListQuestionsByCategory(ctx context.Context, categoryID, page int) (*model.QuestionPage, error) {
	logger := middleware.GetLogger(ctx).With(slog.Int("category", categoryID))

	exists, err := s.categoryRepo.Exists(ctx, s.db, categoryID)
	if err != nil {
		logger.Error("Failed to check category", slog.Any("error", err))
		return nil, model.ErrUnprocessable
	}
	if !exists {
		return nil, model.ErrNotFound
	}

	questions, err := s.questionRepo.FindByCategory(ctx, s.db, categoryID)
	if err != nil {
		logger.Error("Failed to list questions by category", slog.Any("error", err))
		return nil, model.ErrUnprocessable
	}
	total, err := s.questionRepo.Count(ctx, s.db)
	if err != nil {
		logger.Error("Failed to count questions", slog.Any("error", err))
		return nil, model.ErrUnprocessable
	}

	return &model.QuestionPage{
		Questions:      Paginate(questions, page, config.QuestionsPerPage),
		TotalQuestions: total,
	}, nil
}
