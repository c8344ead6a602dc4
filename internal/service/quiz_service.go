//go:generate mockery --name QuizService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"log/slog"
	"math/rand"

	"go_trivia_api/internal/middleware"
	"go_trivia_api/internal/model"
	"go_trivia_api/internal/repository"

	"gorm.io/gorm"
)

// Randomizer は出題候補から1問を選ぶための乱数源です。
type Randomizer interface {
	// Intn は [0, n) の整数を返す。n > 0。
	Intn(n int) int
}

type defaultRandomizer struct{}

func (defaultRandomizer) Intn(n int) int {
	return rand.Intn(n)
}

// DefaultRandomizer は math/rand のグローバル乱数源を使います (暗号用途ではない)。
func DefaultRandomizer() Randomizer {
	return defaultRandomizer{}
}

type QuizService interface {
	// NextQuestion は未出題の問題を1問返します。候補がなければ nil, nil。
	NextQuestion(ctx context.Context, req *model.QuizRequest) (*model.Question, error)
}

type quizService struct {
	db           *gorm.DB
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	rnd          Randomizer
}

func NewQuizService(db *gorm.DB, questionRepo repository.QuestionRepository, categoryRepo repository.CategoryRepository, rnd Randomizer) QuizService {
	if rnd == nil {
		rnd = DefaultRandomizer()
	}
	return &quizService{
		db:           db,
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		rnd:          rnd,
	}
}

func (s *quizService) NextQuestion(ctx context.Context, req *model.QuizRequest) (*model.Question, error) {
	logger := middleware.GetLogger(ctx)

	if req == nil || req.QuizCategory == nil || !req.QuizCategory.ID.Valid || req.QuizCategory.ID.Value < 0 {
		return nil, model.NewAppError("INVALID_QUIZ_CATEGORY", "", "quiz_category", model.ErrUnprocessable)
	}
	categoryID := req.QuizCategory.ID.Value
	logger = logger.With(slog.Int("category", categoryID), slog.Int("previous", len(req.PreviousQuestions)))

	if categoryID != model.AllCategoriesID {
		exists, err := s.categoryRepo.Exists(ctx, s.db, categoryID)
		if err != nil {
			logger.Error("Failed to check quiz category", slog.Any("error", err))
			return nil, model.ErrUnprocessable
		}
		if !exists {
			return nil, model.NewAppError("UNKNOWN_QUIZ_CATEGORY", "", "quiz_category", model.ErrUnprocessable)
		}
	}

	candidates, err := s.questionRepo.FindQuizCandidates(ctx, s.db, categoryID, req.PreviousQuestions)
	if err != nil {
		logger.Error("Failed to find quiz candidates", slog.Any("error", err))
		return nil, model.ErrUnprocessable
	}
	if len(candidates) == 0 {
		logger.Debug("No quiz question left")
		return nil, nil
	}

	picked := candidates[s.rnd.Intn(len(candidates))]
	logger.Debug("Quiz question picked", slog.Int("question_id", picked.ID), slog.Int("candidates", len(candidates)))
	return picked, nil
}
