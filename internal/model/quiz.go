// internal/model/quiz.go
package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// AllCategoriesID は「全カテゴリから出題」を表すカテゴリID
const AllCategoriesID = 0

// QuizRequest はクイズ1ターン分のリクエスト。
// セッション状態はクライアントが保持し、毎回送ってくる。
type QuizRequest struct {
	PreviousQuestions []int            `json:"previous_questions"`
	QuizCategory      *QuizCategoryRef `json:"quiz_category"`
}

type QuizCategoryRef struct {
	ID   QuizCategoryID `json:"id"`
	Type string         `json:"type,omitempty"`
}

// UnmarshalJSON はオブジェクト以外 (数値・文字列など) や型の合わない中身を
// デコードエラーにせず、ID が無効な参照として受け取ります。
func (r *QuizCategoryRef) UnmarshalJSON(b []byte) error {
	*r = QuizCategoryRef{}
	if !strings.HasPrefix(strings.TrimSpace(string(b)), "{") {
		return nil
	}
	type plain QuizCategoryRef
	var decoded plain
	if err := json.Unmarshal(b, &decoded); err != nil {
		return nil
	}
	*r = QuizCategoryRef(decoded)
	return nil
}

// QuizCategoryID は数値と数値文字列 ("1") の両方を受け付けます。
// 解釈できない値はデコードエラーにせず Valid=false として扱います。
type QuizCategoryID struct {
	Value int
	Valid bool
}

func (c *QuizCategoryID) UnmarshalJSON(b []byte) error {
	c.Value, c.Valid = 0, false
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}
	raw = strings.TrimSpace(strings.Trim(raw, `"`))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	c.Value, c.Valid = n, true
	return nil
}

func (c QuizCategoryID) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(c.Value)), nil
}

// QuizResponse の question は問題オブジェクト、または出題できる問題がない場合 false
type QuizResponse struct {
	Success  bool `json:"success"`
	Question any  `json:"question"`
}

func NewQuizResponse(q *Question) QuizResponse {
	if q == nil {
		return QuizResponse{Success: true, Question: false}
	}
	return QuizResponse{Success: true, Question: q}
}
