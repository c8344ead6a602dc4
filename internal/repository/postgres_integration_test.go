//go:build integration

// postgres_integration_test.go
// 実際の PostgreSQL コンテナ (dockertest) に対してリポジトリを検証する。
// 実行: go test -tags=integration ./internal/repository/...
package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_trivia_api/internal/model"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type PostgresRepositoryTestSuite struct {
	suite.Suite
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB

	questionRepo QuestionRepository
	categoryRepo CategoryRepository
}

func (s *PostgresRepositoryTestSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	s.Require().NoError(err, "Could not construct pool")
	pool.MaxWait = 120 * time.Second
	s.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=trivia_test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	s.Require().NoError(err, "Could not start PostgreSQL resource")
	s.resource = resource

	databaseURL := fmt.Sprintf("postgres://user:secret@%s/trivia_test?sslmode=disable", resource.GetHostPort("5432/tcp"))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err = pool.Retry(func() error {
		db, err := NewDB(databaseURL, logger)
		if err != nil {
			return err
		}
		s.db = db
		return nil
	})
	s.Require().NoError(err, "Could not connect to PostgreSQL container")

	s.Require().NoError(Migrate(context.Background(), s.db))
	s.questionRepo = NewGormQuestionRepository()
	s.categoryRepo = NewGormCategoryRepository()
}

func (s *PostgresRepositoryTestSuite) TearDownSuite() {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if s.pool != nil && s.resource != nil {
		s.NoError(s.pool.Purge(s.resource))
	}
}

func (s *PostgresRepositoryTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE questions, categories RESTART IDENTITY CASCADE").Error)
	s.Require().NoError(s.categoryRepo.EnsureExists(context.Background(), s.db, DefaultCategories()))
}

func (s *PostgresRepositoryTestSuite) TestCreate_ForeignKeyViolation() {
	ctx := context.Background()
	q := &model.Question{Question: "Orphan?", Answer: "Yes", Category: 999, Difficulty: 1}

	err := s.questionRepo.Create(ctx, s.db, q)
	s.ErrorIs(err, model.ErrUnprocessable)

	count, err := s.questionRepo.Count(ctx, s.db)
	s.Require().NoError(err)
	s.Equal(int64(0), count)
}

func (s *PostgresRepositoryTestSuite) TestCreate_AssignsFreshIDs() {
	ctx := context.Background()
	first := &model.Question{Question: "One", Answer: "1", Category: 1, Difficulty: 1}
	second := &model.Question{Question: "Two", Answer: "2", Category: 1, Difficulty: 1}

	s.Require().NoError(s.questionRepo.Create(ctx, s.db, first))
	s.Require().NoError(s.questionRepo.Create(ctx, s.db, second))
	s.NotZero(first.ID)
	s.Greater(second.ID, first.ID)
}

func (s *PostgresRepositoryTestSuite) TestSearch_EscapesWildcards() {
	ctx := context.Background()
	for _, text := range []string{"Is 100% of a cake whole?", "What is 100 percent?", "snake_case naming", "snakeXcase naming"} {
		s.Require().NoError(s.questionRepo.Create(ctx, s.db, &model.Question{Question: text, Answer: "a", Category: 1, Difficulty: 1}))
	}

	got, err := s.questionRepo.Search(ctx, s.db, "100%")
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("Is 100% of a cake whole?", got[0].Question)

	got, err = s.questionRepo.Search(ctx, s.db, "SNAKE_")
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("snake_case naming", got[0].Question)
}

func (s *PostgresRepositoryTestSuite) TestSearch_NonASCIICaseInsensitive() {
	ctx := context.Background()
	for _, text := range []string{"Who sang Non, je ne regrette rien? (Édith Piaf)", "Where is Straße 17?", "Plain ascii question"} {
		s.Require().NoError(s.questionRepo.Create(ctx, s.db, &model.Question{Question: text, Answer: "a", Category: 1, Difficulty: 1}))
	}

	got, err := s.questionRepo.Search(ctx, s.db, "éDITH")
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Contains(got[0].Question, "Édith")

	got, err = s.questionRepo.Search(ctx, s.db, "STRAßE")
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("Where is Straße 17?", got[0].Question)
}

func (s *PostgresRepositoryTestSuite) TestFindQuizCandidates_ExcludesPrevious() {
	ctx := context.Background()
	var ids []int
	for i := 0; i < 3; i++ {
		q := &model.Question{Question: fmt.Sprintf("q%d", i), Answer: "a", Category: 2, Difficulty: 1}
		s.Require().NoError(s.questionRepo.Create(ctx, s.db, q))
		ids = append(ids, q.ID)
	}

	got, err := s.questionRepo.FindQuizCandidates(ctx, s.db, 2, ids[:2])
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(ids[2], got[0].ID)

	got, err = s.questionRepo.FindQuizCandidates(ctx, s.db, model.AllCategoriesID, ids)
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *PostgresRepositoryTestSuite) TestPing() {
	s.NoError(Ping(context.Background(), s.db))
}

func TestPostgresRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresRepositoryTestSuite))
}
