// internal/handlers/router.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"go_trivia_api/internal/config"
	"go_trivia_api/internal/middleware"
	"go_trivia_api/internal/webutil"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Handlers はルーターに登録するハンドラ一式
type Handlers struct {
	Category *CategoryHandler
	Question *QuestionHandler
	Quiz     *QuizHandler
	Health   *HealthHandler
}

// NewRouter はミドルウェアとルートを設定した chi ルーターを返します。
func NewRouter(logger *slog.Logger, corsCfg config.CORSConfig, h Handlers) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   corsCfg.AllowedOrigins,
		AllowedMethods:   corsCfg.AllowedMethods,
		AllowedHeaders:   corsCfg.AllowedHeaders,
		ExposedHeaders:   corsCfg.ExposedHeaders,
		AllowCredentials: corsCfg.AllowCredentials,
		MaxAge:           corsCfg.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(middleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// 未定義ルート・メソッド違いも共通のエラー形式で返す
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		webutil.RespondWithStatus(w, http.StatusNotFound, "", middleware.GetLogger(r.Context()))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		webutil.RespondWithStatus(w, http.StatusMethodNotAllowed, "", middleware.GetLogger(r.Context()))
	})

	// Category routes
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.Category.GetCategories)
		r.Get("/{category_id}/questions", h.Question.GetQuestionsByCategory)
	})

	// Question routes
	r.Route("/questions", func(r chi.Router) {
		r.Get("/", h.Question.GetQuestions)
		r.Post("/", h.Question.PostQuestion)
		r.Post("/search", h.Question.SearchQuestions)
		r.Delete("/{question_id}", h.Question.DeleteQuestion)
	})
	r.Post("/search", h.Question.SearchQuestions)

	// Quiz routes
	r.Post("/quizzes", h.Quiz.PostQuiz)

	// Health Check
	if h.Health != nil {
		r.Get("/health", h.Health.GetHealth)
	}

	return r
}
