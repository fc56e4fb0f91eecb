package model

// 検索パラメータの許容範囲
const (
	MinResultCount = 1
	MaxResultCount = 10

	MinSearchRadius = 500  // メートル
	MaxSearchRadius = 5000 // メートル

	DefaultResultCount  = 3
	DefaultSearchRadius = 1000 // メートル
)

// QualityFloorRating 抽選対象に入るための最低評価値
const QualityFloorRating = 3.5

// PlaceTypeRestaurant Places APIに渡す検索タイプ
const PlaceTypeRestaurant = "restaurant"

// キーワード検索の定数
const (
	// KeywordSuffix キーワード検索時に付加する固定サフィックス
	KeywordSuffix = " restaurant"

	// HotPotKeyword 鍋料理の専用シナリオを発動させるキーワード
	HotPotKeyword = "hot pot"

	// HotPotQuery 鍋料理シナリオで実際に投げる検索クエリ
	HotPotQuery = "hot pot restaurant"
)

// RankByRating 距離順ではなく評価順での検索を指定する
const RankByRating = "rating"

// DefaultLocation 位置情報の取得に失敗した場合のフォールバック座標（高雄市）
func DefaultLocation() LatLng {
	return LatLng{Lat: 22.6247, Lng: 120.3578}
}

// DetailFields 詳細取得時にプロバイダへ要求する固定フィールドセット
func DetailFields() []string {
	return []string{
		"place_id",
		"name",
		"formatted_phone_number",
		"website",
		"opening_hours",
		"rating",
		"user_ratings_total",
		"reviews",
		"wheelchair_accessible_entrance",
	}
}
