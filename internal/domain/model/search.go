package model

// SearchRequest プロバイダへの1回分の検索リクエスト
// 構築後は変更しない
type SearchRequest struct {
	Type     string `json:"type"`              // 常に restaurant
	Keyword  string `json:"keyword,omitempty"` // 検索キーワード（未指定の場合は空）
	RankBy   string `json:"rankby,omitempty"`  // rating指定で評価順
	Location LatLng `json:"location"`          // 検索の中心座標
	Radius   int    `json:"radius"`            // 検索半径（メートル）
}

// SearchOptions ユーザーが指定する検索条件
type SearchOptions struct {
	Keyword string `json:"keyword"`
	Radius  int    `json:"radius"` // メートル
	Count   int    `json:"count"`  // 抽選する件数
}

// Clamp 検索条件を許容範囲に収める
// ゼロ値はデフォルト値として扱う
func (o *SearchOptions) Clamp() {
	if o.Count == 0 {
		o.Count = DefaultResultCount
	}
	if o.Radius == 0 {
		o.Radius = DefaultSearchRadius
	}

	if o.Count < MinResultCount {
		o.Count = MinResultCount
	}
	if o.Count > MaxResultCount {
		o.Count = MaxResultCount
	}
	if o.Radius < MinSearchRadius {
		o.Radius = MinSearchRadius
	}
	if o.Radius > MaxSearchRadius {
		o.Radius = MaxSearchRadius
	}
}

// SearchResult 検索1回分の結果
type SearchResult struct {
	SearchID    string                `json:"search_id,omitempty"`
	Restaurants []*SelectedRestaurant `json:"restaurants"`
	NoResults   bool                  `json:"no_results"` // 条件に合う店舗が見つからなかった（前回の結果は保持される）
	Stale       bool                  `json:"stale"`      // 完了時点で既に新しい検索が始まっていた
}
