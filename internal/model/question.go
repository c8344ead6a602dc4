// internal/model/question.go
package model

// Question はトリビアの問題を表します
type Question struct {
	ID         int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Question   string `gorm:"not null" json:"question"`
	Answer     string `gorm:"not null" json:"answer"`
	Category   int    `gorm:"not null;index" json:"category"` // categories.id
	Difficulty int    `gorm:"not null" json:"difficulty"`

	// 関連 (外部キー制約の生成用)
	CategoryRef *Category `gorm:"foreignKey:Category;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}

// 問題作成リクエストDTO
// 数値フィールドはポインタにして「未指定」と「0」を区別する
type CreateQuestionRequest struct {
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Category   *int   `json:"category" validate:"required,min=1"`
	Difficulty *int   `json:"difficulty" validate:"required"`
}

// 検索リクエストDTO
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuestionPage はページングされた問題一覧とその母集団の件数
type QuestionPage struct {
	Questions      []*Question
	TotalQuestions int64
}

// --- レスポンスDTO ---

type QuestionsResponse struct {
	Success         bool        `json:"success"`
	Questions       []*Question `json:"questions"`
	Categories      CategoryMap `json:"categories"`
	TotalQuestions  int64       `json:"total_questions"`
	CurrentCategory *int        `json:"current_category"`
}

type DeleteQuestionResponse struct {
	Success        bool        `json:"success"`
	Deleted        int         `json:"deleted"`
	Questions      []*Question `json:"questions"`
	TotalQuestions int64       `json:"total_questions"`
}

type CreateQuestionResponse struct {
	Success bool `json:"success"`
	Created int  `json:"created"`
}

type SearchQuestionsResponse struct {
	Success        bool        `json:"success"`
	Questions      []*Question `json:"questions"`
	TotalQuestions int64       `json:"total_questions"`
}

type CategoryQuestionsResponse struct {
	Success         bool        `json:"success"`
	Questions       []*Question `json:"questions"`
	CurrentCategory int         `json:"current_category"`
	TotalQuestions  int64       `json:"total_questions"`
}
