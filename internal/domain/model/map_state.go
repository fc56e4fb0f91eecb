package model

// MarkerKind マーカーの種別
const (
	MarkerKindRestaurant      = "restaurant"
	MarkerKindCurrentLocation = "current_location"
)

// マーカーの重なり順。現在地マーカーは常に最前面に表示する
const (
	RestaurantMarkerZIndex      = 1
	CurrentLocationMarkerZIndex = 100
)

// Marker 地図上のマーカー1つを表すモデル
// レストランまたは現在地のどちらかに1:1で対応する
type Marker struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	PlaceID  string `json:"place_id,omitempty"` // 現在地マーカーの場合は空
	Title    string `json:"title"`
	Position LatLng `json:"position"`
	ZIndex   int    `json:"z_index"`
}

// BoundingBox 全マーカーを覆う矩形領域
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// Viewport 地図の表示領域
type Viewport struct {
	Center LatLng       `json:"center"`
	Zoom   float64      `json:"zoom"`
	Bounds *BoundingBox `json:"bounds,omitempty"`
}

// MapState 地図クライアントへ配信するマーカー・表示領域のスナップショット
type MapState struct {
	Markers         []*Marker `json:"markers"`
	CurrentLocation *Marker   `json:"current_location,omitempty"`
	OpenPopoverID   string    `json:"open_popover_id,omitempty"` // 開いているポップオーバーは常に最大1つ
	Viewport        Viewport  `json:"viewport"`
}
