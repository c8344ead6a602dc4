// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_trivia_api/internal/config"
	"go_trivia_api/internal/handlers"
	"go_trivia_api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger はテスト中のログ出力を捨てるロガー
var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func testCORSConfig() config.CORSConfig {
	return config.CORSConfig{
		AllowedOrigins: config.DefaultCORSAllowedOrigins,
		AllowedMethods: config.DefaultCORSAllowedMethods,
		AllowedHeaders: config.DefaultCORSAllowedHeaders,
		MaxAge:         config.DefaultCORSMaxAge,
	}
}

func newTestRouter(h handlers.Handlers) http.Handler {
	return handlers.NewRouter(testLogger, testCORSConfig(), h)
}

// doRequest はルーターにリクエストを送り、レスポンスを返します。
// body が string の場合はそのまま送る (不正なJSONのテスト用)。
func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			reqBody = strings.NewReader(s)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBody = bytes.NewBuffer(b)
		}
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeBody はレスポンスボディを dst にデコードします。
func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), dst), "body: %s", rr.Body.String())
}

// assertErrorEnvelope は共通のエラー形式とステータスコードを検証します。
func assertErrorEnvelope(t *testing.T, rr *httptest.ResponseRecorder, wantStatus int) {
	t.Helper()
	assert.Equal(t, wantStatus, rr.Code, "body: %s", rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var errResp model.APIErrorResponse
	decodeBody(t, rr, &errResp)
	assert.False(t, errResp.Success)
	assert.Equal(t, wantStatus, errResp.Error)
	assert.NotEmpty(t, errResp.Message)
}

// questionsJSON は questions 配列だけを取り出すためのレスポンス型
type questionsJSON struct {
	Success         bool              `json:"success"`
	Questions       []*model.Question `json:"questions"`
	TotalQuestions  int64             `json:"total_questions"`
	CurrentCategory *int              `json:"current_category"`
	Categories      map[string]string `json:"categories"`
	Deleted         int               `json:"deleted"`
	Created         int               `json:"created"`
}

func questionIDs(questions []*model.Question) []int {
	ids := make([]int, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}
