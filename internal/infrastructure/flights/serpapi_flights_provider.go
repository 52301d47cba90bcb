package flights

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

// SerpAPIFlightsProvider はSerpAPI (Google Flights) を使用したフライト検索の実装
type SerpAPIFlightsProvider struct {
	apiKey     string
	httpClient *http.Client
}

// NewSerpAPIFlightsProvider は新しいプロバイダを生成する
func NewSerpAPIFlightsProvider(apiKey string) *SerpAPIFlightsProvider {
	return &SerpAPIFlightsProvider{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SearchFlights は空港コードと日付でフライト候補を検索する
// 結果が0件でもエラーにはせず空スライスを返す
func (p *SerpAPIFlightsProvider) SearchFlights(ctx context.Context, originAirport, destAirport string, departDate time.Time, travelers int) ([]model.FlightOption, error) {
	reqURL := p.buildURL(originAirport, destAirport, departDate, travelers)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("フライト検索APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("フライト検索APIがエラーステータスを返しました: %s", resp.Status)
	}

	var apiResp serpFlightsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	var options []model.FlightOption
	for _, group := range [][]serpFlightResult{apiResp.BestFlights, apiResp.OtherFlights} {
		for _, result := range group {
			if len(result.Flights) == 0 {
				continue
			}
			first := result.Flights[0]
			last := result.Flights[len(result.Flights)-1]
			options = append(options, model.FlightOption{
				Airline:          first.Airline,
				FlightNumber:     first.FlightNumber,
				DepartureAirport: first.DepartureAirport.ID,
				ArrivalAirport:   last.ArrivalAirport.ID,
				DepartureTime:    first.DepartureAirport.Time,
				ArrivalTime:      last.ArrivalAirport.Time,
				DurationMinutes:  result.TotalDuration,
				Stops:            len(result.Flights) - 1,
				PricePHP:         float64(result.Price),
			})
		}
	}

	return options, nil
}

func (p *SerpAPIFlightsProvider) buildURL(origin, dest string, departDate time.Time, travelers int) string {
	baseURL := "https://serpapi.com/search"
	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("departure_id", origin)
	params.Set("arrival_id", dest)
	params.Set("outbound_date", departDate.Format("2006-01-02"))
	params.Set("adults", strconv.Itoa(travelers))
	params.Set("currency", "PHP")
	params.Set("type", "2") // 片道
	params.Set("api_key", p.apiKey)
	return fmt.Sprintf("%s?%s", baseURL, params.Encode())
}

// --- SerpAPI Google Flightsのレスポンスをパースするための構造体 ---

type serpFlightsResponse struct {
	BestFlights  []serpFlightResult `json:"best_flights"`
	OtherFlights []serpFlightResult `json:"other_flights"`
}
type serpFlightResult struct {
	Flights       []serpFlightLeg `json:"flights"`
	TotalDuration int             `json:"total_duration"`
	Price         int             `json:"price"`
}
type serpFlightLeg struct {
	DepartureAirport serpAirport `json:"departure_airport"`
	ArrivalAirport   serpAirport `json:"arrival_airport"`
	Airline          string      `json:"airline"`
	FlightNumber     string      `json:"flight_number"`
}
type serpAirport struct {
	ID   string `json:"id"`
	Time string `json:"time"`
}
