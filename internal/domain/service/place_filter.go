package service

import (
	"strings"

	"MeshiGacha-App/internal/domain/model"
)

// PlaceFilter 検索結果がユーザーの条件に合致するかを判定する
type PlaceFilter struct{}

// NewPlaceFilter PlaceFilterの新しいインスタンスを作成
func NewPlaceFilter() *PlaceFilter {
	return &PlaceFilter{}
}

// IsRelevant 店舗が条件に合致するかを判定する
//   - 営業中でない店舗は常に除外する
//   - キーワードが空なら営業中の店舗は全て通す
//   - それ以外は店名・カテゴリタグ・住所のいずれかに
//     大文字小文字を無視した部分一致を要求する（最初の一致で打ち切り）
func (f *PlaceFilter) IsRelevant(place *model.Place, keyword string) bool {
	if !place.IsOperational() {
		return false
	}

	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return true
	}

	if strings.Contains(strings.ToLower(place.Name), kw) {
		return true
	}
	for _, t := range place.Types {
		if strings.Contains(strings.ToLower(t), kw) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(place.Vicinity), kw)
}
