package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"MeshiGacha-App/internal/application"
	"MeshiGacha-App/internal/config"
	"MeshiGacha-App/internal/domain/model"
	"MeshiGacha-App/internal/domain/service"
	"MeshiGacha-App/internal/handler"
	"MeshiGacha-App/internal/infrastructure/geolocation"
	"MeshiGacha-App/internal/infrastructure/maps"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	if cfg.Google.APIKey == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数:")
		fmt.Println("  - GOOGLE_MAPS_API_KEY")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	// 依存関係の組み立て
	placesProvider := maps.NewGooglePlacesProvider(cfg.Google.APIKey)
	geoProvider := geolocation.NewGoogleGeolocationProvider(cfg.Google.APIKey)

	viewState := model.NewViewState()
	resolver := service.NewGeolocationResolver(geoProvider, cfg.DefaultLocation(), viewState)
	pipeline := service.NewSelectionPipeline(placesProvider)

	hub := handler.NewMapStateHub()
	go hub.Run()
	markerSync := service.NewMarkerSyncService(hub)

	restaurantService := application.NewRestaurantService(pipeline, resolver, markerSync, viewState)

	// 起動時に一度だけ現在地を解決する（失敗時はデフォルト座標）
	fmt.Println("Resolving current location...")
	location := restaurantService.ResolveLocation(context.Background())
	log.Printf("📍 現在地: (%.4f, %.4f)", location.Lat, location.Lng)

	// ルーティング
	restaurantHandler := handler.NewRestaurantHandler(restaurantService)
	mapHandler := handler.NewMapHandler(markerSync, hub)

	r := gin.Default()
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "healthy", "service": "MeshiGacha-App"})
		})
		api.GET("/location", restaurantHandler.GetLocation)
		api.POST("/restaurants/search", restaurantHandler.Search)
		api.GET("/restaurants", restaurantHandler.GetSelection)
		api.GET("/map/state", mapHandler.GetState)
		api.GET("/map/ws", mapHandler.ServeWS)
		api.POST("/map/markers/:id/popover", mapHandler.OpenPopover)
		api.DELETE("/map/popover", mapHandler.ClosePopovers)
	}

	fmt.Printf("MeshiGacha-App server starting on %s...\n", cfg.Server.Address)
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("サーバーの起動に失敗: %v", err)
	}
}
