package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MeshiGacha-App/internal/domain/model"
)

// recordingBroadcaster 配信されたスナップショットを記録するテスト用実装
type recordingBroadcaster struct {
	states []*model.MapState
}

func (b *recordingBroadcaster) BroadcastMapState(state *model.MapState) {
	b.states = append(b.states, state)
}

func selectedRestaurant(id, name string, status string, lat, lng float64) *model.SelectedRestaurant {
	return &model.SelectedRestaurant{
		Place: model.Place{
			PlaceID:        id,
			Name:           name,
			BusinessStatus: status,
			Geometry:       model.Geometry{Location: model.LatLng{Lat: lat, Lng: lng}},
		},
	}
}

var syncTestLocation = model.LatLng{Lat: 22.6247, Lng: 120.3578}

func TestMarkerSyncService_SyncSelection(t *testing.T) {
	t.Run("選択リストに合わせてマーカーを全再生成する", func(t *testing.T) {
		sync := NewMarkerSyncService(nil)

		first := sync.SyncSelection([]*model.SelectedRestaurant{
			selectedRestaurant("a", "店A", model.BusinessStatusOperational, 22.63, 120.36),
			selectedRestaurant("b", "店B", model.BusinessStatusOperational, 22.64, 120.37),
		}, syncTestLocation)
		require.Len(t, first.Markers, 2)

		second := sync.SyncSelection([]*model.SelectedRestaurant{
			selectedRestaurant("c", "店C", model.BusinessStatusOperational, 22.65, 120.38),
		}, syncTestLocation)
		require.Len(t, second.Markers, 1)
		assert.Equal(t, "c", second.Markers[0].PlaceID)

		// 破棄・再生成なので古いマーカーIDは引き継がれない
		assert.NotEqual(t, first.Markers[0].ID, second.Markers[0].ID)
	})

	t.Run("営業中でない店舗は防御的に除外される", func(t *testing.T) {
		sync := NewMarkerSyncService(nil)

		state := sync.SyncSelection([]*model.SelectedRestaurant{
			selectedRestaurant("open", "営業中", model.BusinessStatusOperational, 22.63, 120.36),
			selectedRestaurant("closed", "閉店", model.BusinessStatusClosedPermanently, 22.64, 120.37),
		}, syncTestLocation)

		require.Len(t, state.Markers, 1)
		assert.Equal(t, "open", state.Markers[0].PlaceID)
	})

	t.Run("現在地マーカーは常に最前面に表示される", func(t *testing.T) {
		sync := NewMarkerSyncService(nil)

		state := sync.SyncSelection([]*model.SelectedRestaurant{
			selectedRestaurant("a", "店A", model.BusinessStatusOperational, 22.63, 120.36),
		}, syncTestLocation)

		require.NotNil(t, state.CurrentLocation)
		assert.Equal(t, model.MarkerKindCurrentLocation, state.CurrentLocation.Kind)
		assert.Greater(t, state.CurrentLocation.ZIndex, state.Markers[0].ZIndex)
	})

	t.Run("表示領域は全マーカーと現在地を覆う", func(t *testing.T) {
		sync := NewMarkerSyncService(nil)

		state := sync.SyncSelection([]*model.SelectedRestaurant{
			selectedRestaurant("a", "店A", model.BusinessStatusOperational, 22.63, 120.36),
			selectedRestaurant("b", "店B", model.BusinessStatusOperational, 22.70, 120.40),
		}, syncTestLocation)

		require.NotNil(t, state.Viewport.Bounds)
		b := state.Viewport.Bounds
		assert.LessOrEqual(t, b.MinLat, syncTestLocation.Lat)
		assert.GreaterOrEqual(t, b.MaxLat, 22.70)
		assert.LessOrEqual(t, b.MinLng, syncTestLocation.Lng)
		assert.GreaterOrEqual(t, b.MaxLng, 120.40)
	})

	t.Run("選択が空なら表示領域は変更されない", func(t *testing.T) {
		sync := NewMarkerSyncService(nil)

		before := sync.SyncSelection([]*model.SelectedRestaurant{
			selectedRestaurant("a", "店A", model.BusinessStatusOperational, 22.63, 120.36),
		}, syncTestLocation)

		after := sync.SyncSelection(nil, syncTestLocation)

		assert.Empty(t, after.Markers)
		assert.Equal(t, before.Viewport, after.Viewport)
	})

	t.Run("スナップショットが購読者へ配信される", func(t *testing.T) {
		broadcaster := &recordingBroadcaster{}
		sync := NewMarkerSyncService(broadcaster)

		sync.SyncSelection([]*model.SelectedRestaurant{
			selectedRestaurant("a", "店A", model.BusinessStatusOperational, 22.63, 120.36),
		}, syncTestLocation)

		require.Len(t, broadcaster.states, 1)
		assert.Len(t, broadcaster.states[0].Markers, 1)
	})
}

func TestMarkerSyncService_Popover(t *testing.T) {
	t.Run("ポップオーバーは同時に1つしか開かない", func(t *testing.T) {
		sync := NewMarkerSyncService(nil)

		state := sync.SyncSelection([]*model.SelectedRestaurant{
			selectedRestaurant("a", "店A", model.BusinessStatusOperational, 22.63, 120.36),
			selectedRestaurant("b", "店B", model.BusinessStatusOperational, 22.64, 120.37),
		}, syncTestLocation)
		require.Len(t, state.Markers, 2)

		first, err := sync.OpenPopover(state.Markers[0].ID)
		require.NoError(t, err)
		assert.Equal(t, state.Markers[0].ID, first.OpenPopoverID)

		second, err := sync.OpenPopover(state.Markers[1].ID)
		require.NoError(t, err)
		assert.Equal(t, state.Markers[1].ID, second.OpenPopoverID)
	})

	t.Run("存在しないマーカーはエラー", func(t *testing.T) {
		sync := NewMarkerSyncService(nil)
		_, err := sync.OpenPopover("unknown")
		assert.Error(t, err)
	})

	t.Run("ClosePopoversで全て閉じる", func(t *testing.T) {
		sync := NewMarkerSyncService(nil)
		state := sync.SyncSelection([]*model.SelectedRestaurant{
			selectedRestaurant("a", "店A", model.BusinessStatusOperational, 22.63, 120.36),
		}, syncTestLocation)

		_, err := sync.OpenPopover(state.Markers[0].ID)
		require.NoError(t, err)

		closed := sync.ClosePopovers()
		assert.Empty(t, closed.OpenPopoverID)
	})

	t.Run("マーカー再生成でポップオーバー状態は失われる", func(t *testing.T) {
		sync := NewMarkerSyncService(nil)
		state := sync.SyncSelection([]*model.SelectedRestaurant{
			selectedRestaurant("a", "店A", model.BusinessStatusOperational, 22.63, 120.36),
		}, syncTestLocation)

		_, err := sync.OpenPopover(state.Markers[0].ID)
		require.NoError(t, err)

		resynced := sync.SyncSelection([]*model.SelectedRestaurant{
			selectedRestaurant("a", "店A", model.BusinessStatusOperational, 22.63, 120.36),
		}, syncTestLocation)
		assert.Empty(t, resynced.OpenPopoverID)
	})
}

func TestMarkerSyncService_UpdateCurrentLocation(t *testing.T) {
	sync := NewMarkerSyncService(nil)

	first := sync.UpdateCurrentLocation(model.LatLng{Lat: 22.62, Lng: 120.35})
	require.NotNil(t, first.CurrentLocation)

	second := sync.UpdateCurrentLocation(model.LatLng{Lat: 22.63, Lng: 120.36})
	require.NotNil(t, second.CurrentLocation)

	// 位置変更のたびにマーカーは再生成される
	assert.NotEqual(t, first.CurrentLocation.ID, second.CurrentLocation.ID)
	assert.Equal(t, model.LatLng{Lat: 22.63, Lng: 120.36}, second.Viewport.Center)
}

func TestMarkerSyncService_UpdateCurrentLocationUnchanged(t *testing.T) {
	broadcaster := &recordingBroadcaster{}
	sync := NewMarkerSyncService(broadcaster)

	first := sync.UpdateCurrentLocation(syncTestLocation)
	require.NotNil(t, first.CurrentLocation)
	require.Len(t, broadcaster.states, 1)

	// 同じ位置での更新はマーカーを再生成せず、配信も行わない
	second := sync.UpdateCurrentLocation(syncTestLocation)
	assert.Equal(t, first.CurrentLocation.ID, second.CurrentLocation.ID)
	assert.Equal(t, first.Viewport, second.Viewport)
	assert.Len(t, broadcaster.states, 1)
}
