package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MeshiGacha-App/internal/domain/model"
)

func TestSearchRequestBuilder_Build(t *testing.T) {
	builder := NewSearchRequestBuilder()

	t.Run("空キーワードはキーワードなしの検索1件", func(t *testing.T) {
		requests := builder.Build("")

		require.Len(t, requests, 1)
		assert.Equal(t, model.PlaceTypeRestaurant, requests[0].Type)
		assert.Empty(t, requests[0].Keyword)
		assert.Empty(t, requests[0].RankBy)
	})

	t.Run("空白だけのキーワードも空扱い", func(t *testing.T) {
		requests := builder.Build("   ")

		require.Len(t, requests, 1)
		assert.Empty(t, requests[0].Keyword)
	})

	t.Run("鍋料理キーワードは固定クエリで評価順検索", func(t *testing.T) {
		requests := builder.Build("hot pot")

		require.Len(t, requests, 1)
		assert.Equal(t, model.HotPotQuery, requests[0].Keyword)
		assert.Equal(t, model.RankByRating, requests[0].RankBy)
	})

	t.Run("鍋料理キーワードは大文字小文字を区別しない", func(t *testing.T) {
		requests := builder.Build("Hot Pot near me")

		require.Len(t, requests, 1)
		assert.Equal(t, model.HotPotQuery, requests[0].Keyword)
	})

	t.Run("その他のキーワードはサフィックス付きで評価順検索", func(t *testing.T) {
		requests := builder.Build("ramen")

		require.Len(t, requests, 1)
		assert.Equal(t, "ramen restaurant", requests[0].Keyword)
		assert.Equal(t, model.RankByRating, requests[0].RankBy)
	})

	t.Run("位置と半径は呼び出し側が埋めるため未設定", func(t *testing.T) {
		requests := builder.Build("sushi")

		require.Len(t, requests, 1)
		assert.True(t, requests[0].Location.IsZero())
		assert.Zero(t, requests[0].Radius)
	})
}
