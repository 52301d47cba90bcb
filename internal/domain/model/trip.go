package model

import (
	"time"
)

// BudgetTier 予算カテゴリ
type BudgetTier string

const (
	BudgetCheap    BudgetTier = "cheap"
	BudgetModerate BudgetTier = "moderate"
	BudgetLuxury   BudgetTier = "luxury"
)

// budgetTierAmounts 予算カテゴリごとの1人あたり上限額（ペソ/旅行全体）
var budgetTierAmounts = map[BudgetTier]float64{
	BudgetCheap:    8000,
	BudgetModerate: 20000,
	BudgetLuxury:   50000,
}

// ParseBudget 予算指定を金額に変換する
// 未知の入力は moderate にフォールバックする
func ParseBudget(tier string, exactAmount float64) float64 {
	if exactAmount > 0 {
		return exactAmount
	}
	if amount, ok := budgetTierAmounts[BudgetTier(tier)]; ok {
		return amount
	}
	return budgetTierAmounts[BudgetModerate]
}

// PreferenceProfile 旅行者の自由形式な嗜好プロフィール
type PreferenceProfile struct {
	TripTypes    []string `json:"trip_types"`    // 例: "adventure", "food", "culture"
	TravelStyle  string   `json:"travel_style"`  // 例: "relaxed", "packed"
	ActivityPace int      `json:"activity_pace"` // 1〜4（中日の1日あたり目標アクティビティ数）
}

// NormalizedPace ActivityPace を 1〜4 の範囲に収める
func (p *PreferenceProfile) NormalizedPace() int {
	if p == nil || p.ActivityPace < 1 {
		return 2
	}
	if p.ActivityPace > 4 {
		return 4
	}
	return p.ActivityPace
}

// TripParameters 最適化1回分に渡される旅行条件（全コンポーネントから読み取り専用）
type TripParameters struct {
	Origin       string             `json:"origin"`
	Destination  string             `json:"destination"`
	StartDate    time.Time          `json:"start_date"`
	EndDate      time.Time          `json:"end_date"`
	Travelers    int                `json:"travelers"`
	BudgetTier   string             `json:"budget_tier"`   // cheap / moderate / luxury
	BudgetAmount float64            `json:"budget_amount"` // 指定があればこちらを優先
	Preferences  *PreferenceProfile `json:"preferences"`
}

// NumDays 旅行日数（開始日と終了日を含む）
func (t *TripParameters) NumDays() int {
	days := int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// Budget 有効な予算額を取得する
func (t *TripParameters) Budget() float64 {
	return ParseBudget(t.BudgetTier, t.BudgetAmount)
}

// GetPreferences 嗜好プロフィールを取得する（未設定の場合はデフォルト）
func (t *TripParameters) GetPreferences() *PreferenceProfile {
	if t.Preferences == nil {
		return &PreferenceProfile{ActivityPace: 2}
	}
	return t.Preferences
}
