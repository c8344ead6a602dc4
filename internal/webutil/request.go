package webutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go_trivia_api/internal/model"
)

// maxRequestBodyBytes はJSONボディの上限
const maxRequestBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。
// 失敗時は model.ErrInvalidInput をラップしたエラーを返します。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return fmt.Errorf("empty request body: %w", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if err == io.EOF {
			return fmt.Errorf("empty request body: %w", model.ErrInvalidInput)
		}
		return fmt.Errorf("decode json body: %v: %w", err, model.ErrInvalidInput)
	}
	return nil
}
