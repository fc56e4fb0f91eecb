package application

import (
	"context"
	"log"

	"github.com/google/uuid"

	"MeshiGacha-App/internal/domain/model"
	"MeshiGacha-App/internal/domain/service"
)

// RestaurantService 店舗抽選に関するビジネスロジックを提供するサービス
type RestaurantService interface {
	// ResolveLocation 現在地を解決して地図に反映する（失敗しない）
	ResolveLocation(ctx context.Context) model.LatLng

	// Search 条件に合う店舗を抽選して選択リストを置き換える
	Search(ctx context.Context, opts model.SearchOptions) (*model.SearchResult, error)

	// CurrentSelection 現在の選択リストを取得
	CurrentSelection() []*model.SelectedRestaurant

	// Location 解決済みの現在地と位置準備完了フラグを取得
	Location() (model.LatLng, bool)
}

// restaurantServiceImpl RestaurantServiceの実装
type restaurantServiceImpl struct {
	pipeline   *service.SelectionPipeline
	resolver   *service.GeolocationResolver
	markerSync *service.MarkerSyncService
	state      *model.ViewState
}

// NewRestaurantService RestaurantServiceの新しいインスタンスを作成
func NewRestaurantService(
	pipeline *service.SelectionPipeline,
	resolver *service.GeolocationResolver,
	markerSync *service.MarkerSyncService,
	state *model.ViewState,
) RestaurantService {
	return &restaurantServiceImpl{
		pipeline:   pipeline,
		resolver:   resolver,
		markerSync: markerSync,
		state:      state,
	}
}

// ResolveLocation 現在地を解決し、現在地マーカーを更新する
func (s *restaurantServiceImpl) ResolveLocation(ctx context.Context) model.LatLng {
	location := s.resolver.Resolve(ctx)
	s.markerSync.UpdateCurrentLocation(location)
	return location
}

// Search 抽選を実行する
// 結果が空の場合は前回の選択をそのまま保持する
// 完了時点で新しい検索が始まっていた場合、結果は破棄される
func (s *restaurantServiceImpl) Search(ctx context.Context, opts model.SearchOptions) (*model.SearchResult, error) {
	opts.Clamp()

	origin := s.ResolveLocation(ctx)

	searchID := uuid.New().String()
	s.state.BeginSearch(searchID)

	log.Printf("🎲 店舗抽選開始 (keyword=%q, radius=%dm, count=%d)", opts.Keyword, opts.Radius, opts.Count)

	selection, err := s.pipeline.Select(ctx, opts.Keyword, opts.Radius, origin, opts.Count)
	if err != nil {
		return nil, err
	}

	if len(selection) == 0 {
		// 非破壊的な失敗: 前回表示していた結果は消さない
		return &model.SearchResult{
			SearchID:    searchID,
			Restaurants: s.state.Selection(),
			NoResults:   true,
		}, nil
	}

	// マーカー同期はコミットと同じクリティカルセクションで行う
	// コミット後に別の世代の同期が割り込むと、マーカーと選択リストが
	// 別々の検索結果を指してしまう
	committed := s.state.CommitSelection(searchID, selection, func() {
		s.markerSync.SyncSelection(selection, origin)
	})
	if !committed {
		// 完了前に新しい検索が始まっていたため、この結果は破棄する
		log.Printf("⚠️  古い検索結果を破棄しました (search_id=%s)", searchID)
		return &model.SearchResult{
			SearchID:    searchID,
			Restaurants: s.state.Selection(),
			Stale:       true,
		}, nil
	}

	log.Printf("✅ %d件の店舗を抽選しました", len(selection))
	return &model.SearchResult{
		SearchID:    searchID,
		Restaurants: selection,
	}, nil
}

// CurrentSelection 現在の選択リストを取得
func (s *restaurantServiceImpl) CurrentSelection() []*model.SelectedRestaurant {
	return s.state.Selection()
}

// Location 解決済みの現在地と位置準備完了フラグを取得
func (s *restaurantServiceImpl) Location() (model.LatLng, bool) {
	return s.state.Location()
}
