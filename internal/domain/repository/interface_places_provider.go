package repository

import (
	"context"

	"MeshiGacha-App/internal/domain/model"
)

// PlacesProvider 店舗検索プロバイダへのアクセスを抽象化するインターフェース
type PlacesProvider interface {
	// NearbySearch 周辺の店舗を検索する
	// プロバイダが結果なしを返した場合は空スライスを返す
	NearbySearch(ctx context.Context, req *model.SearchRequest) ([]*model.Place, error)

	// GetDetails 指定されたplace_idの詳細情報を取得する
	GetDetails(ctx context.Context, placeID string) (*model.PlaceDetails, error)
}
