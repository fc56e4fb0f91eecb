package repository

import (
	"context"

	"MeshiGacha-App/internal/domain/model"
)

// GeolocationProvider 現在地の取得を抽象化するインターフェース
type GeolocationProvider interface {
	// CurrentPosition 現在地の座標を取得する
	CurrentPosition(ctx context.Context) (model.LatLng, error)
}
