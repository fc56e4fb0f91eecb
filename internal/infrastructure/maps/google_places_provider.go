package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"MeshiGacha-App/internal/domain/model"
)

const defaultPlacesBaseURL = "https://maps.googleapis.com/maps/api/place"

// Places APIのステータス。OK以外は一律「使える結果なし」として扱う
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// GooglePlacesProvider はGoogle Places APIを使用した店舗検索の実装
type GooglePlacesProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGooglePlacesProvider は新しいプロバイダを生成する
func NewGooglePlacesProvider(apiKey string) *GooglePlacesProvider {
	return &GooglePlacesProvider{
		apiKey:     apiKey,
		baseURL:    defaultPlacesBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NearbySearch はNearby Search APIを呼び出して周辺の店舗を取得する
// ステータスがZERO_RESULTSの場合はエラーにせず空スライスを返す
func (g *GooglePlacesProvider) NearbySearch(ctx context.Context, req *model.SearchRequest) ([]*model.Place, error) {
	reqURL := g.buildNearbySearchURL(req)

	httpReq, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp nearbySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	switch apiResp.Status {
	case statusOK:
		places := make([]*model.Place, 0, len(apiResp.Results))
		for _, result := range apiResp.Results {
			places = append(places, result.toPlace())
		}
		return places, nil
	case statusZeroResults:
		return nil, nil
	default:
		return nil, fmt.Errorf("Places APIエラー: %s (%s)", apiResp.Status, apiResp.ErrorMessage)
	}
}

// GetDetails はPlace Details APIを呼び出して詳細情報を取得する
func (g *GooglePlacesProvider) GetDetails(ctx context.Context, placeID string) (*model.PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", strings.Join(model.DetailFields(), ","))
	params.Set("key", g.apiKey)
	reqURL := fmt.Sprintf("%s/details/json?%s", g.baseURL, params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp placeDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	if apiResp.Status != statusOK {
		return nil, fmt.Errorf("Place Details APIエラー: %s (%s)", apiResp.Status, apiResp.ErrorMessage)
	}

	return apiResp.Result.toPlaceDetails(), nil
}

func (g *GooglePlacesProvider) buildNearbySearchURL(req *model.SearchRequest) string {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", req.Location.Lat, req.Location.Lng))
	params.Set("radius", fmt.Sprintf("%d", req.Radius))
	params.Set("type", req.Type)
	if req.Keyword != "" {
		params.Set("keyword", req.Keyword)
	}
	if req.RankBy != "" {
		params.Set("rankby", req.RankBy)
	}
	params.Set("key", g.apiKey)

	return fmt.Sprintf("%s/nearbysearch/json?%s", g.baseURL, params.Encode())
}

// --- Places APIのレスポンスをパースするための構造体 ---

type nearbySearchResponse struct {
	Results      []placeResult `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

type placeResult struct {
	PlaceID        string    `json:"place_id"`
	Name           string    `json:"name"`
	Rating         *float64  `json:"rating,omitempty"`
	BusinessStatus string    `json:"business_status"`
	Types          []string  `json:"types"`
	Vicinity       string    `json:"vicinity"`
	Geometry       geometry  `json:"geometry"`
}

type geometry struct {
	Location latLng `json:"location"`
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (r placeResult) toPlace() *model.Place {
	return &model.Place{
		PlaceID:        r.PlaceID,
		Name:           r.Name,
		Rating:         r.Rating,
		BusinessStatus: r.BusinessStatus,
		Types:          r.Types,
		Vicinity:       r.Vicinity,
		Geometry: model.Geometry{
			Location: model.LatLng{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
		},
	}
}

type placeDetailsResponse struct {
	Result       detailsResult `json:"result"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

type detailsResult struct {
	PlaceID                      string        `json:"place_id"`
	Name                         string        `json:"name"`
	FormattedPhoneNumber         string        `json:"formatted_phone_number"`
	Website                      string        `json:"website"`
	OpeningHours                 *openingHours `json:"opening_hours"`
	Rating                       *float64      `json:"rating"`
	UserRatingsTotal             int           `json:"user_ratings_total"`
	Reviews                      []review      `json:"reviews"`
	WheelchairAccessibleEntrance *bool         `json:"wheelchair_accessible_entrance"`
}

type openingHours struct {
	OpenNow     *bool    `json:"open_now"`
	WeekdayText []string `json:"weekday_text"`
}

type review struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
}

func (r detailsResult) toPlaceDetails() *model.PlaceDetails {
	details := &model.PlaceDetails{
		PlaceID:                      r.PlaceID,
		Name:                         r.Name,
		FormattedPhoneNumber:         r.FormattedPhoneNumber,
		Website:                      r.Website,
		Rating:                       r.Rating,
		UserRatingsTotal:             r.UserRatingsTotal,
		WheelchairAccessibleEntrance: r.WheelchairAccessibleEntrance,
	}
	if r.OpeningHours != nil {
		details.OpeningHours = &model.OpeningHours{
			OpenNow:     r.OpeningHours.OpenNow,
			WeekdayText: r.OpeningHours.WeekdayText,
		}
	}
	for _, rv := range r.Reviews {
		details.Reviews = append(details.Reviews, model.PlaceReview{
			AuthorName: rv.AuthorName,
			Rating:     rv.Rating,
			Text:       rv.Text,
		})
	}
	return details
}
