package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"go_trivia_api/internal/model"
	"go_trivia_api/internal/webutil"
)

// Recoverer は chi の Recoverer と同じ役割で、パニックを共通のJSONエラー(500)に変換します。
// ロガーを利用するため LoggingMiddleware より後に登録してください。
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				// net/http にそのまま処理させる
				panic(rvr)
			}

			logger := GetLogger(r.Context())
			logger.Error("Panic recovered in HTTP handler",
				slog.Any("panic", rvr),
				slog.String("stack", string(debug.Stack())),
			)
			if r.Header.Get("Connection") != "Upgrade" {
				webutil.HandleError(w, logger, model.ErrInternalServer)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
