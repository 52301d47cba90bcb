package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"Lakbay-App/internal/domain/model"
)

// GoogleGeocodingProvider はGoogle Geocoding APIを使用した地名→座標変換の実装
type GoogleGeocodingProvider struct {
	apiKey     string
	httpClient *http.Client
}

// NewGoogleGeocodingProvider は新しいプロバイダを生成する
func NewGoogleGeocodingProvider(apiKey string) *GoogleGeocodingProvider {
	return &GoogleGeocodingProvider{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Geocode は地名を座標に変換する
// 見つからない場合は ok=false を返す（エラーにはしない）
func (g *GoogleGeocodingProvider) Geocode(ctx context.Context, placeName string) (model.LatLng, bool, error) {
	reqURL := g.buildURL(placeName)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return model.LatLng{}, false, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return model.LatLng{}, false, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.LatLng{}, false, fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp geocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return model.LatLng{}, false, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	// ZERO_RESULTS は「見つからない」であってエラーではない
	if apiResp.Status == "ZERO_RESULTS" || len(apiResp.Results) == 0 {
		return model.LatLng{}, false, nil
	}
	if apiResp.Status != "OK" {
		return model.LatLng{}, false, fmt.Errorf("Geocoding APIエラー: %s", apiResp.Status)
	}

	location := apiResp.Results[0].Geometry.Location
	return model.LatLng{Lat: location.Lat, Lng: location.Lng}, true, nil
}

func (g *GoogleGeocodingProvider) buildURL(placeName string) string {
	baseURL := "https://maps.googleapis.com/maps/api/geocode/json"
	params := url.Values{}
	params.Set("address", placeName)
	params.Set("region", "ph")
	params.Set("key", g.apiKey)
	return fmt.Sprintf("%s?%s", baseURL, params.Encode())
}

// --- Google Geocoding APIのレスポンスをパースするための構造体 ---

type geocodingResponse struct {
	Results []geocodingResult `json:"results"`
	Status  string            `json:"status"`
}
type geocodingResult struct {
	Geometry geocodingGeometry `json:"geometry"`
}
type geocodingGeometry struct {
	Location geocodingLatLng `json:"location"`
}
type geocodingLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
