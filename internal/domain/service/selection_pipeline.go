package service

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"MeshiGacha-App/internal/domain/helper"
	"MeshiGacha-App/internal/domain/model"
	"MeshiGacha-App/internal/domain/repository"
)

// SelectionPipeline 検索結果の統合から抽選・詳細取得までを担う中核サービス
//
// 処理順序:
//  1. キーワードから検索リクエストを構築
//  2. 全リクエストを並行実行（失敗したリクエストは空の結果として扱う）
//  3. 結果を連結してplace_idで重複除去（後勝ち）
//  4. 関連性フィルタを適用
//  5. フィルタ後が空なら中断（結果なし。前回の選択は呼び出し側が保持する）
//  6. 最低評価値未満を除外して評価の高い順にソート
//  7. 上位半分（切り上げ）を抽選プールとする
//  8. プールを一様シャッフルして先頭count件を抽選
//  9. 抽選された各店舗について詳細と距離を並行取得
//
// 全行程を通してサブリクエストの失敗はエラーとして伝播させない
type SelectionPipeline struct {
	provider repository.PlacesProvider
	builder  *SearchRequestBuilder
	filter   *PlaceFilter

	// rand.Randはスレッドセーフではないためロックで保護する
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewSelectionPipeline SelectionPipelineの新しいインスタンスを作成
func NewSelectionPipeline(provider repository.PlacesProvider) *SelectionPipeline {
	return NewSelectionPipelineWithRand(provider, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSelectionPipelineWithRand 乱数源を指定してインスタンスを作成（テスト用）
func NewSelectionPipelineWithRand(provider repository.PlacesProvider, rng *rand.Rand) *SelectionPipeline {
	return &SelectionPipeline{
		provider: provider,
		builder:  NewSearchRequestBuilder(),
		filter:   NewPlaceFilter(),
		rng:      rng,
	}
}

// Select 条件に合う店舗をcount件まで抽選する
// 候補が見つからなかった場合は空スライスを返す（エラーにはしない）
func (p *SelectionPipeline) Select(ctx context.Context, keyword string, radius int, origin model.LatLng, count int) ([]*model.SelectedRestaurant, error) {
	// Step 1: 検索リクエストを構築
	requests := p.builder.Build(keyword)
	for _, req := range requests {
		req.Location = origin
		req.Radius = radius
	}

	// Step 2: 全リクエストを並行実行して全件揃うまで待つ
	candidates := p.searchAll(ctx, requests)

	// Step 3: place_idで重複除去（後のリクエストの内容が勝つ）
	deduped := helper.DedupByPlaceID(candidates)

	// Step 4: 関連性フィルタ
	var relevant []*model.Place
	for _, place := range deduped {
		if p.filter.IsRelevant(place, keyword) {
			relevant = append(relevant, place)
		}
	}

	// Step 5: 候補ゼロなら中断
	if len(relevant) == 0 {
		log.Printf("⚠️  条件に合う店舗が見つかりませんでした (keyword=%q)", keyword)
		return nil, nil
	}

	// Step 6-7: 最低評価値でふるいにかけ、評価順上位半分を抽選プールとする
	qualified := helper.FilterByQualityFloor(relevant, model.QualityFloorRating)
	helper.SortByRatingDesc(qualified)
	pool := helper.DesirablePool(qualified)
	if len(pool) == 0 {
		log.Printf("⚠️  評価%.1f以上の店舗が見つかりませんでした (keyword=%q)", model.QualityFloorRating, keyword)
		return nil, nil
	}

	// Step 8: 一様シャッフルして抽選
	p.rngMu.Lock()
	sampled := helper.SamplePlaces(pool, count, p.rng)
	p.rngMu.Unlock()

	// Step 9: 詳細と距離を並行取得
	return p.enrich(ctx, origin, sampled), nil
}

// searchAll 複数の検索リクエストを並行実行して結果を連結する
// 各リクエストは独立しており、失敗は空の結果として回収する
func (p *SelectionPipeline) searchAll(ctx context.Context, requests []*model.SearchRequest) []*model.Place {
	type searchResult struct {
		index  int
		places []*model.Place
	}

	results := make(chan searchResult, len(requests))
	var wg sync.WaitGroup

	for i, req := range requests {
		wg.Add(1)
		go func(index int, req *model.SearchRequest) {
			defer wg.Done()
			places, err := p.provider.NearbySearch(ctx, req)
			if err != nil {
				// サブリクエストの失敗は空の結果として扱い、中断しない
				log.Printf("⚠️  検索リクエスト%d失敗: %v", index, err)
				places = nil
			}
			results <- searchResult{index: index, places: places}
		}(i, req)
	}

	// 別のgoroutineでwaitしてチャンネルを閉じる
	go func() {
		wg.Wait()
		close(results)
	}()

	// 重複除去の後勝ち規則を決定的にするため、リクエスト順に連結する
	ordered := make([][]*model.Place, len(requests))
	for r := range results {
		ordered[r.index] = r.places
	}

	var all []*model.Place
	for _, places := range ordered {
		all = append(all, places...)
	}
	return all
}

// enrich 抽選された各店舗の詳細と現在地からの距離を並行取得する
// 詳細取得の失敗はそのエントリのdetails=nilとして回収し、除外はしない
func (p *SelectionPipeline) enrich(ctx context.Context, origin model.LatLng, sampled []*model.Place) []*model.SelectedRestaurant {
	selected := make([]*model.SelectedRestaurant, len(sampled))
	var wg sync.WaitGroup

	for i, place := range sampled {
		wg.Add(1)
		go func(index int, place *model.Place) {
			defer wg.Done()

			restaurant := &model.SelectedRestaurant{Place: *place}

			details, err := p.provider.GetDetails(ctx, place.PlaceID)
			if err != nil {
				log.Printf("⚠️  詳細取得失敗 (place_id=%s): %v", place.PlaceID, err)
			} else {
				restaurant.Details = details
			}

			if loc := place.ToLatLng(); !loc.IsZero() && !origin.IsZero() {
				distance := helper.Distance(origin, loc)
				restaurant.DistanceMeters = &distance
				restaurant.DistanceText = helper.FormatDistance(distance)
			}

			selected[index] = restaurant
		}(i, place)
	}

	wg.Wait()
	return selected
}
