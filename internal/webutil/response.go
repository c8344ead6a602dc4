// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go_trivia_api/internal/model"
)

// statusMessages はクライアントに返す汎用メッセージ。
// ストアや内部エラーの文字列はレスポンスに含めない。
var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

// HandleError はエラーを解釈し、共通形式のJSONエラーレスポンスを返します。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	message := statusMessages[statusCode]
	var appErr *model.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}
	if statusCode == http.StatusInternalServerError {
		// 予期せぬエラーはログにだけ詳細を残す
		logger.Error("Unhandled error", slog.Any("error", err))
		message = statusMessages[http.StatusInternalServerError]
	}

	RespondWithStatus(w, statusCode, message, logger)
}

// RespondWithStatus はステータスコードだけで決まるエラーレスポンスを返します。
// ルーターの NotFound / MethodNotAllowed からも使います。
func RespondWithStatus(w http.ResponseWriter, statusCode int, message string, logger *slog.Logger) {
	if message == "" {
		message = statusMessages[statusCode]
	}
	RespondWithJSON(w, statusCode, model.APIErrorResponse{
		Success: false,
		Error:   statusCode,
		Message: message,
	}, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"error":500,"message":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
