package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"MeshiGacha-App/internal/domain/service"
)

// MapHandler 地図状態に関するHTTPハンドラー
type MapHandler struct {
	markerSync *service.MarkerSyncService
	hub        *MapStateHub
}

// NewMapHandler MapHandlerの新しいインスタンスを作成
func NewMapHandler(markerSync *service.MarkerSyncService, hub *MapStateHub) *MapHandler {
	return &MapHandler{
		markerSync: markerSync,
		hub:        hub,
	}
}

// GetState GET /api/map/state - 地図状態のスナップショットを取得
func (h *MapHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.markerSync.Snapshot())
}

// OpenPopover POST /api/map/markers/:id/popover - ポップオーバーを開く
// 他のマーカーのポップオーバーは同時に閉じられる
func (h *MapHandler) OpenPopover(c *gin.Context) {
	markerID := c.Param("id")
	if markerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "Marker ID is required",
		})
		return
	}

	state, err := h.markerSync.OpenPopover(markerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "marker_not_found",
			"message": "Marker not found: " + markerID,
		})
		return
	}

	c.JSON(http.StatusOK, state)
}

// ClosePopovers DELETE /api/map/popover - 開いているポップオーバーを閉じる
func (h *MapHandler) ClosePopovers(c *gin.Context) {
	c.JSON(http.StatusOK, h.markerSync.ClosePopovers())
}

// ServeWS GET /api/map/ws - 地図状態の変更を購読するWebSocket接続
func (h *MapHandler) ServeWS(c *gin.Context) {
	h.hub.Serve(c.Writer, c.Request, h.markerSync.Snapshot())
}
