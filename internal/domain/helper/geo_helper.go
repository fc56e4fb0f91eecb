package helper

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"MeshiGacha-App/internal/domain/model"
)

// Distance 2地点間の大圏距離を計算する（メートル）
func Distance(a, b model.LatLng) float64 {
	p1 := orb.Point{a.Lng, a.Lat}
	p2 := orb.Point{b.Lng, b.Lat}
	return geo.DistanceHaversine(p1, p2)
}

// FormatDistance 距離を表示用の文字列に変換する
// 1km未満はメートル（整数）、それ以上はkm（小数1桁）
// 単位の判定は丸め後の値で行い、メートル表記が4桁になることはない
func FormatDistance(meters float64) string {
	rounded := int(math.Round(meters))
	if rounded < 1000 {
		return fmt.Sprintf("%dm", rounded)
	}
	return fmt.Sprintf("%.1fkm", meters/1000)
}

// DedupByPlaceID place_idで重複を除去する
// 複数リクエストの結果が重なった場合、後に出現したレコードの内容を採用する
// （位置は先に出現した順を維持する）
func DedupByPlaceID(places []*model.Place) []*model.Place {
	result := make([]*model.Place, 0, len(places))
	indexByID := make(map[string]int, len(places))
	for _, p := range places {
		if p == nil {
			continue
		}
		if i, ok := indexByID[p.PlaceID]; ok {
			result[i] = p
			continue
		}
		indexByID[p.PlaceID] = len(result)
		result = append(result, p)
	}
	return result
}

// FilterByQualityFloor 最低評価値を満たす店舗のみを抽出する
// 未評価の店舗は決定性のため明示的に除外する
func FilterByQualityFloor(places []*model.Place, floor float64) []*model.Place {
	var qualified []*model.Place
	for _, p := range places {
		if p.HasRating() && p.GetRating() >= floor {
			qualified = append(qualified, p)
		}
	}
	return qualified
}

// SortByRatingDesc 評価の高い順に店舗スライスをソートする
func SortByRatingDesc(places []*model.Place) {
	sort.SliceStable(places, func(i, j int) bool {
		return places[i].GetRating() > places[j].GetRating()
	})
}

// DesirablePool 評価順にソート済みのスライスから上位半分（切り上げ）を取得する
// 常に最高評価だけを選ばないよう、抽選対象を品質側に偏らせる
func DesirablePool(sorted []*model.Place) []*model.Place {
	if len(sorted) == 0 {
		return nil
	}
	half := (len(sorted) + 1) / 2
	return sorted[:half]
}

// SamplePlaces 候補プールを一様にシャッフルして先頭count件を取得する
// プールがcountより小さい場合は全件を返す（埋め合わせはしない）
func SamplePlaces(pool []*model.Place, count int, rng *rand.Rand) []*model.Place {
	shuffled := make([]*model.Place, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
