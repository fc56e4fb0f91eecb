package service

import (
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"MeshiGacha-App/internal/domain/model"
)

const (
	// boundsPadding 表示領域の端にマーカーが重ならないようにするための余白（度）
	boundsPadding = 0.001

	// zoomOutMargin fit-bounds後に引くズーム量
	zoomOutMargin = 0.5

	minZoom     = 3.0
	maxZoom     = 18.0
	defaultZoom = 15.0
)

// MapStateBroadcaster 地図状態のスナップショットを購読者へ配信する
type MapStateBroadcaster interface {
	BroadcastMapState(state *model.MapState)
}

// MarkerSyncService 選択リストと地図マーカーの整合を取るサービス
// マーカーの生成・破棄・表示領域の再計算を一手に担う
type MarkerSyncService struct {
	mu sync.Mutex

	markers       []*model.Marker
	current       *model.Marker
	openPopoverID string
	viewport      model.Viewport

	broadcaster MapStateBroadcaster // nilの場合は配信しない
}

// NewMarkerSyncService MarkerSyncServiceの新しいインスタンスを作成
func NewMarkerSyncService(broadcaster MapStateBroadcaster) *MarkerSyncService {
	return &MarkerSyncService{
		broadcaster: broadcaster,
		viewport: model.Viewport{
			Center: model.DefaultLocation(),
			Zoom:   defaultZoom,
		},
	}
}

// SyncSelection 選択リストに合わせてマーカーを全破棄・全再生成する
// 営業中でない店舗はここでも防御的に除外する
// 選択が空の場合は表示領域を変更しない
func (m *MarkerSyncService) SyncSelection(selection []*model.SelectedRestaurant, currentLocation model.LatLng) *model.MapState {
	m.mu.Lock()
	defer m.mu.Unlock()

	// 既存のレストランマーカーを全破棄。ポップオーバー状態もここで失われる
	m.markers = nil
	m.openPopoverID = ""

	for _, restaurant := range selection {
		if !restaurant.IsOperational() {
			continue
		}
		m.markers = append(m.markers, &model.Marker{
			ID:       uuid.New().String(),
			Kind:     model.MarkerKindRestaurant,
			PlaceID:  restaurant.PlaceID,
			Title:    restaurant.Name,
			Position: restaurant.ToLatLng(),
			ZIndex:   model.RestaurantMarkerZIndex,
		})
	}

	m.setCurrentLocationLocked(currentLocation)

	if len(m.markers) > 0 {
		m.fitBoundsLocked()
	}

	return m.publishLocked()
}

// UpdateCurrentLocation 現在地マーカーを再生成して地図の中心を合わせる
// 位置が変わっていない場合はマーカーも表示領域も変更しない
func (m *MarkerSyncService) UpdateCurrentLocation(location model.LatLng) *model.MapState {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && m.current.Position == location {
		return m.snapshotLocked()
	}

	m.setCurrentLocationLocked(location)
	m.viewport.Center = location

	return m.publishLocked()
}

// OpenPopover 指定マーカーのポップオーバーを開く
// 他のマーカーのポップオーバーは同時に閉じる
func (m *MarkerSyncService) OpenPopover(markerID string) (*model.MapState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.hasMarkerLocked(markerID) {
		return nil, fmt.Errorf("マーカーが見つかりません: %s", markerID)
	}
	m.openPopoverID = markerID

	return m.publishLocked(), nil
}

// ClosePopovers 開いているポップオーバーを全て閉じる
func (m *MarkerSyncService) ClosePopovers() *model.MapState {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.openPopoverID = ""
	return m.publishLocked()
}

// Snapshot 現在の地図状態のスナップショットを取得
func (m *MarkerSyncService) Snapshot() *model.MapState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// setCurrentLocationLocked 現在地マーカーを位置変更時にのみ再生成する
func (m *MarkerSyncService) setCurrentLocationLocked(location model.LatLng) {
	if m.current != nil && m.current.Position == location {
		return
	}
	m.current = &model.Marker{
		ID:       uuid.New().String(),
		Kind:     model.MarkerKindCurrentLocation,
		Title:    "現在地",
		Position: location,
		ZIndex:   model.CurrentLocationMarkerZIndex,
	}
}

// fitBoundsLocked 全レストランマーカーと現在地を覆う領域に表示を合わせ、
// 端が切れないよう固定マージン分だけズームを引く
func (m *MarkerSyncService) fitBoundsLocked() {
	first := m.markers[0].Position
	bound := orb.Bound{
		Min: orb.Point{first.Lng, first.Lat},
		Max: orb.Point{first.Lng, first.Lat},
	}
	for _, marker := range m.markers {
		bound = bound.Extend(orb.Point{marker.Position.Lng, marker.Position.Lat})
	}
	if m.current != nil {
		bound = bound.Extend(orb.Point{m.current.Position.Lng, m.current.Position.Lat})
	}
	bound = bound.Pad(boundsPadding)

	center := bound.Center()
	m.viewport.Center = model.LatLng{Lat: center.Lat(), Lng: center.Lon()}
	m.viewport.Bounds = &model.BoundingBox{
		MinLat: bound.Min.Lat(),
		MinLng: bound.Min.Lon(),
		MaxLat: bound.Max.Lat(),
		MaxLng: bound.Max.Lon(),
	}
	m.viewport.Zoom = zoomForBound(bound) - zoomOutMargin
	if m.viewport.Zoom < minZoom {
		m.viewport.Zoom = minZoom
	}
}

// zoomForBound 領域の大きさから表示に必要なズームレベルを概算する
func zoomForBound(bound orb.Bound) float64 {
	latSpan := bound.Max.Lat() - bound.Min.Lat()
	lngSpan := bound.Max.Lon() - bound.Min.Lon()
	span := math.Max(latSpan, lngSpan)
	if span <= 0 {
		return maxZoom
	}
	zoom := math.Floor(math.Log2(360 / span))
	if zoom > maxZoom {
		return maxZoom
	}
	if zoom < minZoom {
		return minZoom
	}
	return zoom
}

func (m *MarkerSyncService) hasMarkerLocked(markerID string) bool {
	if m.current != nil && m.current.ID == markerID {
		return true
	}
	for _, marker := range m.markers {
		if marker.ID == markerID {
			return true
		}
	}
	return false
}

func (m *MarkerSyncService) snapshotLocked() *model.MapState {
	markers := make([]*model.Marker, len(m.markers))
	copy(markers, m.markers)
	return &model.MapState{
		Markers:         markers,
		CurrentLocation: m.current,
		OpenPopoverID:   m.openPopoverID,
		Viewport:        m.viewport,
	}
}

func (m *MarkerSyncService) publishLocked() *model.MapState {
	state := m.snapshotLocked()
	if m.broadcaster != nil {
		m.broadcaster.BroadcastMapState(state)
	}
	return state
}
