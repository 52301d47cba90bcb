package hotels

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"Lakbay-App/internal/domain/model"
)

// SerpAPIHotelsProvider はSerpAPI (Google Hotels) を使用したホテル検索の実装
type SerpAPIHotelsProvider struct {
	apiKey     string
	httpClient *http.Client
}

// NewSerpAPIHotelsProvider は新しいプロバイダを生成する
func NewSerpAPIHotelsProvider(apiKey string) *SerpAPIHotelsProvider {
	return &SerpAPIHotelsProvider{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SearchHotels は目的地と日程でホテル候補を検索する
func (p *SerpAPIHotelsProvider) SearchHotels(ctx context.Context, destination string, checkIn, checkOut time.Time, guests int, budgetTier string) ([]model.HotelOption, error) {
	reqURL := p.buildURL(destination, checkIn, checkOut, guests, budgetTier)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ホテル検索APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ホテル検索APIがエラーステータスを返しました: %s", resp.Status)
	}

	var apiResp serpHotelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	var options []model.HotelOption
	for _, property := range apiResp.Properties {
		option := model.HotelOption{
			Name:          property.Name,
			Rating:        property.OverallRating,
			PricePerNight: float64(property.RatePerNight.ExtractedLowest),
			Location: model.LatLng{
				Lat: property.GPSCoordinates.Latitude,
				Lng: property.GPSCoordinates.Longitude,
			},
			Amenities: property.Amenities,
		}
		// 評価と価格の簡易スコア（評価重視）
		option.Score = scoreHotel(option)
		options = append(options, option)
	}

	return options, nil
}

// scoreHotel は評価と1泊料金からホテルのスコアを計算する
func scoreHotel(h model.HotelOption) float64 {
	score := h.Rating * 20 // 5点満点 → 100点満点
	if h.PricePerNight > 0 && h.PricePerNight < 2000 {
		score += 10 // 手頃な価格帯にボーナス
	}
	if score > 100 {
		score = 100
	}
	return score
}

func (p *SerpAPIHotelsProvider) buildURL(destination string, checkIn, checkOut time.Time, guests int, budgetTier string) string {
	baseURL := "https://serpapi.com/search"
	params := url.Values{}
	params.Set("engine", "google_hotels")
	params.Set("q", destination+" Philippines hotels")
	params.Set("check_in_date", checkIn.Format("2006-01-02"))
	params.Set("check_out_date", checkOut.Format("2006-01-02"))
	params.Set("adults", strconv.Itoa(guests))
	params.Set("currency", "PHP")
	if budgetTier == string(model.BudgetLuxury) {
		params.Set("hotel_class", "4,5")
	}
	params.Set("api_key", p.apiKey)
	return fmt.Sprintf("%s?%s", baseURL, params.Encode())
}

// --- SerpAPI Google Hotelsのレスポンスをパースするための構造体 ---

type serpHotelsResponse struct {
	Properties []serpHotelProperty `json:"properties"`
}
type serpHotelProperty struct {
	Name           string             `json:"name"`
	OverallRating  float64            `json:"overall_rating"`
	RatePerNight   serpRate           `json:"rate_per_night"`
	GPSCoordinates serpGPSCoordinates `json:"gps_coordinates"`
	Amenities      []string           `json:"amenities"`
}
type serpRate struct {
	ExtractedLowest int `json:"extracted_lowest"`
}
type serpGPSCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
