package service

import (
	"strings"

	"MeshiGacha-App/internal/domain/model"
)

// SearchRequestBuilder キーワードから検索リクエストを組み立てる
// 位置と半径は呼び出し側が埋める
type SearchRequestBuilder struct{}

// NewSearchRequestBuilder SearchRequestBuilderの新しいインスタンスを作成
func NewSearchRequestBuilder() *SearchRequestBuilder {
	return &SearchRequestBuilder{}
}

// Build トリム済みキーワードに応じた検索リクエスト一覧を生成する
//   - 空キーワード: キーワードなしのレストラン検索（最も広い検索）
//   - 鍋料理キーワード: 固定クエリで評価順検索
//   - その他: キーワード + 固定サフィックスで評価順検索
//
// 評価順検索は距離的なカバー範囲が狭くなりうるが、
// パイプラインが再ランク付けと抽選を行うため許容している
func (b *SearchRequestBuilder) Build(keyword string) []*model.SearchRequest {
	kw := strings.TrimSpace(keyword)

	switch {
	case kw == "":
		return []*model.SearchRequest{
			{Type: model.PlaceTypeRestaurant},
		}
	case strings.Contains(strings.ToLower(kw), model.HotPotKeyword):
		return []*model.SearchRequest{
			{
				Type:    model.PlaceTypeRestaurant,
				Keyword: model.HotPotQuery,
				RankBy:  model.RankByRating,
			},
		}
	default:
		return []*model.SearchRequest{
			{
				Type:    model.PlaceTypeRestaurant,
				Keyword: kw + model.KeywordSuffix,
				RankBy:  model.RankByRating,
			},
		}
	}
}
