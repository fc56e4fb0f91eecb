package model

// LatLng 緯度経度を表す基本的な型
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsZero 座標が未設定かどうかを判定する
func (l LatLng) IsZero() bool {
	return l.Lat == 0 && l.Lng == 0
}

// BusinessStatus Places APIが返す営業状態
const (
	BusinessStatusOperational       = "OPERATIONAL"
	BusinessStatusClosedTemporarily = "CLOSED_TEMPORARILY"
	BusinessStatusClosedPermanently = "CLOSED_PERMANENTLY"
)

// Place Places APIの検索結果1件を表すモデル
type Place struct {
	PlaceID        string   `json:"place_id"`         // プロバイダ全体でユニークなID
	Name           string   `json:"name"`             // 店名
	Rating         *float64 `json:"rating,omitempty"` // 評価値（未評価の場合はnil）
	BusinessStatus string   `json:"business_status"`  // 営業状態
	Types          []string `json:"types"`            // カテゴリタグ
	Vicinity       string   `json:"vicinity"`         // 住所文字列
	Geometry       Geometry `json:"geometry"`         // 位置情報
}

// Geometry Places APIのgeometryフィールドに対応する構造体
type Geometry struct {
	Location LatLng `json:"location"`
}

// ToLatLng Placeの位置情報をLatLng型に変換
func (p *Place) ToLatLng() LatLng {
	return p.Geometry.Location
}

// IsOperational 営業中かどうかをチェック
func (p *Place) IsOperational() bool {
	return p.BusinessStatus == BusinessStatusOperational
}

// HasRating 評価値が設定されているかチェック
func (p *Place) HasRating() bool {
	return p.Rating != nil
}

// GetRating 評価値が存在する場合は値を、存在しない場合は0を返す
func (p *Place) GetRating() float64 {
	if p.Rating != nil {
		return *p.Rating
	}
	return 0
}

// PlaceDetails 選択された店舗にだけ取得する詳細情報
type PlaceDetails struct {
	PlaceID                      string        `json:"place_id"`
	Name                         string        `json:"name"`
	FormattedPhoneNumber         string        `json:"formatted_phone_number,omitempty"`
	Website                      string        `json:"website,omitempty"`
	OpeningHours                 *OpeningHours `json:"opening_hours,omitempty"`
	Rating                       *float64      `json:"rating,omitempty"`
	UserRatingsTotal             int           `json:"user_ratings_total,omitempty"`
	Reviews                      []PlaceReview `json:"reviews,omitempty"`
	WheelchairAccessibleEntrance *bool         `json:"wheelchair_accessible_entrance,omitempty"`
}

// OpeningHours 営業時間情報
type OpeningHours struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

// PlaceReview 口コミの要約情報
type PlaceReview struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
}

// SelectedRestaurant 抽選結果の1件（検索結果 + 詳細 + 距離）
type SelectedRestaurant struct {
	Place
	Details        *PlaceDetails `json:"details"`                 // 詳細取得に失敗した場合はnil
	DistanceMeters *float64      `json:"distance_meters"`         // 現在地からの直線距離（位置不明の場合はnil）
	DistanceText   string        `json:"distance_text,omitempty"` // 表示用の距離文字列
}
