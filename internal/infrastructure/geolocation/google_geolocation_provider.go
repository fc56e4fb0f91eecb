package geolocation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"MeshiGacha-App/internal/domain/model"
)

const defaultGeolocateBaseURL = "https://www.googleapis.com/geolocation/v1"

// GoogleGeolocationProvider はGoogle Geolocation APIを使用した現在地取得の実装
type GoogleGeolocationProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGoogleGeolocationProvider は新しいプロバイダを生成する
func NewGoogleGeolocationProvider(apiKey string) *GoogleGeolocationProvider {
	return &GoogleGeolocationProvider{
		apiKey:     apiKey,
		baseURL:    defaultGeolocateBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// CurrentPosition はGeolocation APIを呼び出して現在地の座標を取得する
func (g *GoogleGeolocationProvider) CurrentPosition(ctx context.Context) (model.LatLng, error) {
	reqURL := fmt.Sprintf("%s/geolocate?key=%s", g.baseURL, g.apiKey)

	body, err := json.Marshal(map[string]interface{}{"considerIp": true})
	if err != nil {
		return model.LatLng{}, fmt.Errorf("リクエストボディの構築に失敗: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(body))
	if err != nil {
		return model.LatLng{}, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return model.LatLng{}, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.LatLng{}, fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp geolocateResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return model.LatLng{}, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	return model.LatLng{Lat: apiResp.Location.Lat, Lng: apiResp.Location.Lng}, nil
}

// --- Geolocation APIのレスポンスをパースするための構造体 ---

type geolocateResponse struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
	Accuracy float64 `json:"accuracy"`
}
