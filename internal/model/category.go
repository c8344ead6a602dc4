// internal/model/category.go
package model

// Category は問題のカテゴリ (APIからは読み取り専用)
type Category struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Type string `gorm:"not null;uniqueIndex" json:"type"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryMap は {id: type} 形式でJSONに出力されるカテゴリ一覧
type CategoryMap map[int]string

// NewCategoryMap はカテゴリのスライスを CategoryMap に変換します。
func NewCategoryMap(categories []*Category) CategoryMap {
	m := make(CategoryMap, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}

type CategoriesResponse struct {
	Success    bool        `json:"success"`
	Categories CategoryMap `json:"categories"`
}
