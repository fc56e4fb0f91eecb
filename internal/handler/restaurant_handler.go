package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"MeshiGacha-App/internal/application"
	"MeshiGacha-App/internal/domain/model"
)

// RestaurantHandler 店舗抽選に関するHTTPハンドラー
type RestaurantHandler struct {
	restaurantService application.RestaurantService
}

// NewRestaurantHandler RestaurantHandlerの新しいインスタンスを作成
func NewRestaurantHandler(restaurantService application.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
	}
}

// Search POST /api/restaurants/search - 条件に合う店舗を抽選する
func (h *RestaurantHandler) Search(c *gin.Context) {
	var opts model.SearchOptions

	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	result, err := h.restaurantService.Search(c.Request.Context(), opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to search restaurants: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSelection GET /api/restaurants - 現在の選択リストを取得
func (h *RestaurantHandler) GetSelection(c *gin.Context) {
	restaurants := h.restaurantService.CurrentSelection()
	if restaurants == nil {
		restaurants = []*model.SelectedRestaurant{}
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurants": restaurants,
	})
}

// GetLocation GET /api/location - 解決済みの現在地を取得
func (h *RestaurantHandler) GetLocation(c *gin.Context) {
	location, ready := h.restaurantService.Location()

	c.JSON(http.StatusOK, gin.H{
		"location": location,
		"ready":    ready,
	})
}
