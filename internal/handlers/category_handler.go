// internal/handlers/category_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_trivia_api/internal/model"
	"go_trivia_api/internal/service"
	"go_trivia_api/internal/webutil"
)

type CategoryHandler struct {
	service service.CategoryService
	logger  *slog.Logger
}

func NewCategoryHandler(s service.CategoryService, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryHandler{
		service: s,
		logger:  logger,
	}
}

// GetCategories はカテゴリ一覧を {id: type} 形式で返すハンドラ
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCategories"))

	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		logger.Error("Error listing categories in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Categories listed successfully", slog.Int("count", len(categories)))
	webutil.RespondWithJSON(w, http.StatusOK, model.CategoriesResponse{
		Success:    true,
		Categories: categories,
	}, logger)
}
