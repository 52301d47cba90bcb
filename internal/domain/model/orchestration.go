package model

import "time"

// TripPlanRequest 旅行プラン作成APIのリクエスト
// 複数のフィールド命名規則を許容する（古いクライアント互換）
type TripPlanRequest struct {
	Origin       string             `json:"origin"`
	Destination  string             `json:"destination"`
	StartDate    string             `json:"start_date"` // "2006-01-02" 形式
	EndDate      string             `json:"end_date"`
	Travelers    int                `json:"travelers"`
	NumTravelers int                `json:"num_travelers,omitempty"` // 旧フィールド名
	Budget       string             `json:"budget"`                  // cheap / moderate / luxury
	BudgetPHP    float64            `json:"budget_php,omitempty"`    // 金額での直接指定
	Preferences  *PreferenceProfile `json:"preferences"`
}

// TravelerCount いずれかのフィールドで指定された旅行者数を取得する
func (r *TripPlanRequest) TravelerCount() int {
	if r.Travelers > 0 {
		return r.Travelers
	}
	return r.NumTravelers
}

// FlightOption フライト検索の1候補
type FlightOption struct {
	Airline          string  `json:"airline"`
	FlightNumber     string  `json:"flight_number"`
	DepartureAirport string  `json:"departure_airport"`
	ArrivalAirport   string  `json:"arrival_airport"`
	DepartureTime    string  `json:"departure_time"`
	ArrivalTime      string  `json:"arrival_time"`
	DurationMinutes  int     `json:"duration_minutes"`
	Stops            int     `json:"stops"`
	PricePHP         float64 `json:"price_php"`
}

// HotelOption ホテル検索の1候補
type HotelOption struct {
	Name          string  `json:"name"`
	Rating        float64 `json:"rating"`
	PricePerNight float64 `json:"price_per_night"`
	Location      LatLng  `json:"location"`
	Amenities     []string `json:"amenities,omitempty"`
	Score         float64 `json:"score"` // 評価と価格から計算されたスコア
	IsPrimary     bool    `json:"is_primary"`
}

// CostBreakdown 費用の内訳（ペソ）
type CostBreakdown struct {
	Flights         float64 `json:"flights"`
	Hotels          float64 `json:"hotels"`
	GroundTransport float64 `json:"ground_transport"`
	Activities      float64 `json:"activities"`
	Total           float64 `json:"total"`
}

// SubsystemError 全体を中断させなかったサブシステムごとのエラー
type SubsystemError struct {
	Subsystem string `json:"subsystem"` // "flights", "hotels", "activities", "geocoding"
	Message   string `json:"message"`
}

// CompletionFlags 各サブ検索の完了フラグ
type CompletionFlags struct {
	FlightsSearched    bool `json:"flights_searched"`
	HotelsSearched     bool `json:"hotels_searched"`
	ItineraryOptimized bool `json:"itinerary_optimized"`
}

// TripPlanResult オーケストレーションのマージ済み最終結果
// 成功したサブ結果は常に含まれ、失敗はエラーリストとして添付される
type TripPlanResult struct {
	PlanID            string             `json:"plan_id,omitempty"`
	Success           bool               `json:"success"`
	Destination       string             `json:"destination"`
	Transport         *TransportDecision `json:"transport,omitempty"`
	SelectedFlight    *FlightOption      `json:"selected_flight,omitempty"`
	Flights           []FlightOption     `json:"flights,omitempty"`
	SelectedHotel     *HotelOption       `json:"selected_hotel,omitempty"`
	Hotels            []HotelOption      `json:"hotels,omitempty"`
	Itinerary         *OptimizedItinerary `json:"itinerary,omitempty"`
	OptimizationScore float64            `json:"optimization_score"`
	Costs             CostBreakdown      `json:"costs"`
	Errors            []SubsystemError   `json:"errors,omitempty"`
	Completion        CompletionFlags    `json:"completion"`
}

// AddError サブシステムのエラーを結果に記録する
func (r *TripPlanResult) AddError(subsystem string, err error) {
	if err == nil {
		return
	}
	r.Errors = append(r.Errors, SubsystemError{Subsystem: subsystem, Message: err.Error()})
}

// FirestoreTripPlan Firestoreに保存する旅行プランのドキュメント
type FirestoreTripPlan struct {
	Destination       string              `firestore:"destination"`
	Transport         *TransportDecision  `firestore:"transport"`
	SelectedFlight    *FlightOption       `firestore:"selected_flight"`
	SelectedHotel     *HotelOption        `firestore:"selected_hotel"`
	Itinerary         *OptimizedItinerary `firestore:"itinerary"`
	OptimizationScore float64             `firestore:"optimization_score"`
	Costs             CostBreakdown       `firestore:"costs"`
	ExpireAt          time.Time           `firestore:"expireAt"`
}

// ToFirestoreTripPlan TripPlanResult をFirestore保存用に変換する
func (r *TripPlanResult) ToFirestoreTripPlan(ttlHours int) *FirestoreTripPlan {
	return &FirestoreTripPlan{
		Destination:       r.Destination,
		Transport:         r.Transport,
		SelectedFlight:    r.SelectedFlight,
		SelectedHotel:     r.SelectedHotel,
		Itinerary:         r.Itinerary,
		OptimizationScore: r.OptimizationScore,
		Costs:             r.Costs,
		ExpireAt:          time.Now().Add(time.Duration(ttlHours) * time.Hour),
	}
}

// ToTripPlanResult Firestoreドキュメントから結果を復元する
func (f *FirestoreTripPlan) ToTripPlanResult(planID string) *TripPlanResult {
	return &TripPlanResult{
		PlanID:            planID,
		Success:           true,
		Destination:       f.Destination,
		Transport:         f.Transport,
		SelectedFlight:    f.SelectedFlight,
		SelectedHotel:     f.SelectedHotel,
		Itinerary:         f.Itinerary,
		OptimizationScore: f.OptimizationScore,
		Costs:             f.Costs,
	}
}
