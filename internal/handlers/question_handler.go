// internal/handlers/question_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"go_trivia_api/internal/model"
	"go_trivia_api/internal/service"
	"go_trivia_api/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type QuestionHandler struct {
	service service.QuestionService
	logger  *slog.Logger
}

func NewQuestionHandler(s service.QuestionService, logger *slog.Logger) *QuestionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuestionHandler{
		service: s,
		logger:  logger,
	}
}

// GetQuestions は問題一覧の1ページ分とカテゴリ一覧を返すハンドラ
func (h *QuestionHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	page := service.ParsePage(r.URL.Query().Get("page"))
	logger := h.logger.With(slog.String("handler", "GetQuestions"), slog.Int("page", page))

	result, categories, err := h.service.ListQuestions(r.Context(), page)
	if err != nil {
		logger.Error("Error listing questions in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Questions listed successfully",
		slog.Int("count", len(result.Questions)),
		slog.Int64("total", result.TotalQuestions),
	)
	webutil.RespondWithJSON(w, http.StatusOK, model.QuestionsResponse{
		Success:         true,
		Questions:       nonNilQuestions(result.Questions),
		Categories:      categories,
		TotalQuestions:  result.TotalQuestions,
		CurrentCategory: nil,
	}, logger)
}

// DeleteQuestion は問題を削除し、削除後の一覧を返すハンドラ
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteQuestion"))

	questionID, ok := parseIDParam(w, r, "question_id", logger)
	if !ok {
		return
	}
	page := service.ParsePage(r.URL.Query().Get("page"))
	logger = logger.With(slog.Int("question_id", questionID))

	result, err := h.service.DeleteQuestion(r.Context(), questionID, page)
	if err != nil {
		logger.Warn("Error deleting question in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Question deleted successfully")
	webutil.RespondWithJSON(w, http.StatusOK, model.DeleteQuestionResponse{
		Success:        true,
		Deleted:        questionID,
		Questions:      nonNilQuestions(result.Questions),
		TotalQuestions: result.TotalQuestions,
	}, logger)
}

// PostQuestion は問題を新規作成するハンドラ
// 入力の不備はすべて 422 で返し、フィールドの詳細はログにだけ残す。
func (h *QuestionHandler) PostQuestion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostQuestion"))

	var req model.CreateQuestionRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "", "", model.ErrUnprocessable)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", webutil.ValidationMessages(err)))
			appErr := model.NewAppError("VALIDATION_ERROR", "", validationErrors[0].Field(), model.ErrUnprocessable)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	question, err := h.service.CreateQuestion(r.Context(), &req)
	if err != nil {
		logger.Warn("Error creating question in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Question created successfully", slog.Int("question_id", question.ID))
	webutil.RespondWithJSON(w, http.StatusOK, model.CreateQuestionResponse{
		Success: true,
		Created: question.ID,
	}, logger)
}

// SearchQuestions は問題文の部分一致検索を行うハンドラ
func (h *QuestionHandler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SearchQuestions"))

	var req model.SearchQuestionsRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("search_term", req.SearchTerm))

	result, err := h.service.SearchQuestions(r.Context(), req.SearchTerm)
	if err != nil {
		logger.Info("Search rejected", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Questions searched successfully", slog.Int("count", len(result.Questions)))
	webutil.RespondWithJSON(w, http.StatusOK, model.SearchQuestionsResponse{
		Success:        true,
		Questions:      nonNilQuestions(result.Questions),
		TotalQuestions: result.TotalQuestions,
	}, logger)
}

// GetQuestionsByCategory はカテゴリ内の問題の1ページ分を返すハンドラ
func (h *QuestionHandler) GetQuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuestionsByCategory"))

	categoryID, ok := parseIDParam(w, r, "category_id", logger)
	if !ok {
		return
	}
	page := service.ParsePage(r.URL.Query().Get("page"))
	logger = logger.With(slog.Int("category", categoryID), slog.Int("page", page))

	result, err := h.service.ListQuestionsByCategory(r.Context(), categoryID, page)
	if err != nil {
		logger.Warn("Error listing questions by category in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Questions by category listed successfully", slog.Int("count", len(result.Questions)))
	webutil.RespondWithJSON(w, http.StatusOK, model.CategoryQuestionsResponse{
		Success:         true,
		Questions:       nonNilQuestions(result.Questions),
		CurrentCategory: categoryID,
		TotalQuestions:  result.TotalQuestions,
	}, logger)
}

// parseIDParam はパスパラメータを整数IDとして取り出します。
// 整数でなければ 404 を書き込み false を返す。
func parseIDParam(w http.ResponseWriter, r *http.Request, name string, logger *slog.Logger) (int, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("Invalid ID format in URL", slog.String(name, raw), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "", name, model.ErrNotFound)
		webutil.HandleError(w, logger, appErr)
		return 0, false
	}
	return id, true
}

func nonNilQuestions(questions []*model.Question) []*model.Question {
	if questions == nil {
		return []*model.Question{}
	}
	return questions
}
