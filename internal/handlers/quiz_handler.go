// internal/handlers/quiz_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_trivia_api/internal/model"
	"go_trivia_api/internal/service"
	"go_trivia_api/internal/webutil"
)

type QuizHandler struct {
	service service.QuizService
	logger  *slog.Logger
}

func NewQuizHandler(s service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		service: s,
		logger:  logger,
	}
}

// PostQuiz はクイズの次の1問を返すハンドラ
// 出題できる問題が残っていなければ question: false を返す。
func (h *QuizHandler) PostQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostQuiz"))

	var req model.QuizRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	question, err := h.service.NextQuestion(r.Context(), &req)
	if err != nil {
		logger.Warn("Error picking quiz question in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if question == nil {
		logger.Info("Quiz exhausted", slog.Int("previous", len(req.PreviousQuestions)))
	} else {
		logger.Info("Quiz question served", slog.Int("question_id", question.ID))
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewQuizResponse(question), logger)
}
