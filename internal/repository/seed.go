package repository

import (
	"context"
	"fmt"
	"log/slog"

	"go_trivia_api/internal/middleware"
	"go_trivia_api/internal/model"

	"gorm.io/gorm"
)

// DefaultCategories は初期データとして登録するカテゴリ
func DefaultCategories() []*model.Category {
	return []*model.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}

// SampleQuestions は questions テーブルが空のときに登録するサンプル問題
func SampleQuestions() []*model.Question {
	return []*model.Question{
		{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
		{Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1},
		{Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
		{Question: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", Category: 5, Difficulty: 4},
		{Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Category: 6, Difficulty: 3},
		{Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: 6, Difficulty: 4},
		{Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", Category: 4, Difficulty: 2},
		{Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
		{Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: 3, Difficulty: 3},
		{Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Category: 3, Difficulty: 2},
		{Question: "Which Dutch graphic artist-initials M C was a creator of optical illusions?", Answer: "Escher", Category: 2, Difficulty: 1},
		{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
		{Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Category: 2, Difficulty: 4},
		{Question: "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", Answer: "Jackson Pollock", Category: 2, Difficulty: 2},
		{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
		{Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: 1, Difficulty: 4},
		{Question: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", Category: 4, Difficulty: 4},
	}
}

// SeedResult は Seed で実際に登録した件数
type SeedResult struct {
	Categories int
	Questions  int
}

// Seed はスキーマを作成し、カテゴリとサンプル問題を登録します。
// カテゴリは既存の id を残し、問題はテーブルが空のときだけ登録する。
func Seed(ctx context.Context, db *gorm.DB, categoryRepo CategoryRepository, questionRepo QuestionRepository) (*SeedResult, error) {
	logger := middleware.GetLogger(ctx)

	if err := Migrate(ctx, db); err != nil {
		return nil, err
	}

	result := &SeedResult{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var before int64
		if err := tx.Model(&model.Category{}).Count(&before).Error; err != nil {
			return err
		}
		if err := categoryRepo.EnsureExists(ctx, tx, DefaultCategories()); err != nil {
			return err
		}
		var after int64
		if err := tx.Model(&model.Category{}).Count(&after).Error; err != nil {
			return err
		}
		result.Categories = int(after - before)

		count, err := questionRepo.Count(ctx, tx)
		if err != nil {
			return err
		}
		if count > 0 {
			logger.Info("Questions already present, skipping sample questions", slog.Int64("count", count))
			return nil
		}
		for _, q := range SampleQuestions() {
			if err := questionRepo.Create(ctx, tx, q); err != nil {
				return err
			}
			result.Questions++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("repository.Seed: %w", err)
	}
	return result, nil
}
