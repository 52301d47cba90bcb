package model

// ConvenienceTier 陸路移動の実用性を4段階で表す
type ConvenienceTier string

const (
	TierVeryConvenient ConvenienceTier = "VERY_CONVENIENT"
	TierConvenient     ConvenienceTier = "CONVENIENT"
	TierAcceptable     ConvenienceTier = "ACCEPTABLE"
	TierImpractical    ConvenienceTier = "IMPRACTICAL"
)

// TransportRouteRecord 実在する陸路ルートの静的な参照データ
// 都市ペア（順不同）をキーに参照され、実行時に変更されることはない
type TransportRouteRecord struct {
	DistanceKm   float64  `json:"distance_km"`
	TravelHours  float64  `json:"travel_hours"`
	Modes        []string `json:"modes"`     // 例: "bus", "van", "ferry"
	Operators    []string `json:"operators"` // 運行会社
	CostMin      float64  `json:"cost_min"`  // ペソ
	CostMax      float64  `json:"cost_max"`
	Frequency    string   `json:"frequency"` // 例: "hourly", "daily"
	Scenic       bool     `json:"scenic"`
	HasFerry     bool     `json:"has_ferry"`
	HasOvernight bool     `json:"has_overnight"`
	Practical    bool     `json:"practical"`   // 手動キュレーションによる実用オーバーライド
	Impractical  bool     `json:"impractical"` // 手動キュレーションによる非実用オーバーライド
	Notes        string   `json:"notes"`
}

// ConvenienceResult 利便性分類の結果
type ConvenienceResult struct {
	Tier           ConvenienceTier `json:"tier"`
	Practical      bool            `json:"practical"`
	Recommendation string          `json:"recommendation"`
}

// TransportMode 推奨される移動手段
type TransportMode string

const (
	ModeGround TransportMode = "ground"
	ModeFlight TransportMode = "flight"
	ModeNone   TransportMode = "none" // 同一都市など、移動不要
)

// ConfidenceLevel 判定の確信度
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"   // 実在ルートデータに基づく
	ConfidenceMedium ConfidenceLevel = "medium" // ジオコーディング推定に基づく
)

// GroundTransportDetails 陸路移動の詳細情報ブロック
type GroundTransportDetails struct {
	DistanceKm  float64  `json:"distance_km"`
	TravelHours float64  `json:"travel_hours"`
	Modes       []string `json:"modes"`
	CostMin     float64  `json:"cost_min"`
	CostMax     float64  `json:"cost_max"`
	Notes       string   `json:"notes,omitempty"`
}

// RegionalContext 地域コリドーに基づく補足情報
type RegionalContext struct {
	SameRegion   bool   `json:"same_region"`
	CorridorName string `json:"corridor_name,omitempty"`
}

// TransportDecision 移動手段判定エンジンの構造化された結果
// 常に success-shaped であり、入力不備の場合のみ InvalidInput が立つ
type TransportDecision struct {
	Mode          TransportMode           `json:"mode"`
	SearchFlights bool                    `json:"search_flights"`
	Convenience   *ConvenienceResult      `json:"convenience,omitempty"`
	Ground        *GroundTransportDetails `json:"ground,omitempty"`
	Confidence    ConfidenceLevel         `json:"confidence,omitempty"`
	Regional      *RegionalContext        `json:"regional,omitempty"`
	Warnings      []string                `json:"warnings,omitempty"`
	Reason        string                  `json:"reason"`
	InvalidInput  bool                    `json:"invalid_input,omitempty"`
}
