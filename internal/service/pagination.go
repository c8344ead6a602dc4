package service

import (
	"strconv"
	"strings"
)

// Paginate は items の page ページ目 (1始まり) を返します。
// 範囲外のページは空スライスを返し、エラーにはしない。
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		return []T{}
	}
	// 掛け算の前に総ページ数と比較する (大きな page でのオーバーフロー防止)
	totalPages := (len(items) + size - 1) / size
	if page-1 >= totalPages {
		return []T{}
	}
	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// ParsePage はクエリパラメータ page を解釈します。未指定・不正値・1未満は 1。
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
