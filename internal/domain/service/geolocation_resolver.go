package service

import (
	"context"
	"log"
	"sync"
	"time"

	"MeshiGacha-App/internal/domain/model"
	"MeshiGacha-App/internal/domain/repository"
)

// geolocationTimeout 位置取得を諦めてフォールバックするまでの時間
const geolocationTimeout = 10 * time.Second

// GeolocationResolver 現在地を解決するサービス
// 取得に失敗しても必ず座標を返す（失敗時は固定のデフォルト座標）
type GeolocationResolver struct {
	provider repository.GeolocationProvider
	fallback model.LatLng
	state    *model.ViewState

	once     sync.Once
	resolved model.LatLng
}

// NewGeolocationResolver GeolocationResolverの新しいインスタンスを作成
func NewGeolocationResolver(provider repository.GeolocationProvider, fallback model.LatLng, state *model.ViewState) *GeolocationResolver {
	return &GeolocationResolver{
		provider: provider,
		fallback: fallback,
		state:    state,
	}
}

// Resolve 現在地を解決する。失敗することはない
// 解決は1プロセスにつき1回だけ行い、以降は同じ座標を返す
// 成功・失敗どちらの経路でも位置準備完了フラグは一度だけ更新される
func (r *GeolocationResolver) Resolve(ctx context.Context) model.LatLng {
	r.once.Do(func() {
		timeoutCtx, cancel := context.WithTimeout(ctx, geolocationTimeout)
		defer cancel()

		location, err := r.provider.CurrentPosition(timeoutCtx)
		if err != nil {
			log.Printf("⚠️  現在地の取得に失敗したためデフォルト座標を使用します: %v", err)
			location = r.fallback
		}

		r.resolved = location
		r.state.SetLocation(location)
	})
	return r.resolved
}
