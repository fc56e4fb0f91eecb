package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchOptions_Clamp(t *testing.T) {
	t.Run("ゼロ値はデフォルト値になる", func(t *testing.T) {
		opts := SearchOptions{}
		opts.Clamp()
		assert.Equal(t, DefaultResultCount, opts.Count)
		assert.Equal(t, DefaultSearchRadius, opts.Radius)
	})

	t.Run("範囲内の値はそのまま", func(t *testing.T) {
		opts := SearchOptions{Count: 5, Radius: 2000}
		opts.Clamp()
		assert.Equal(t, 5, opts.Count)
		assert.Equal(t, 2000, opts.Radius)
	})

	t.Run("件数は1〜10に収められる", func(t *testing.T) {
		over := SearchOptions{Count: 20, Radius: 1000}
		over.Clamp()
		assert.Equal(t, MaxResultCount, over.Count)

		under := SearchOptions{Count: -1, Radius: 1000}
		under.Clamp()
		assert.Equal(t, MinResultCount, under.Count)
	})

	t.Run("半径は500〜5000mに収められる", func(t *testing.T) {
		over := SearchOptions{Count: 3, Radius: 100000}
		over.Clamp()
		assert.Equal(t, MaxSearchRadius, over.Radius)

		under := SearchOptions{Count: 3, Radius: 100}
		under.Clamp()
		assert.Equal(t, MinSearchRadius, under.Radius)
	})
}
