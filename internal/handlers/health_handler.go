// internal/handlers/health_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_trivia_api/internal/middleware"
	"go_trivia_api/internal/repository"

	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// GetHealth はDB接続を確認し、問題なければ 200 OK を返します。
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	if err := repository.Ping(r.Context(), h.db); err != nil {
		logger.Error("Health check failed: could not ping DB", slog.Any("error", err))
		http.Error(w, "Health check failed", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
