package model

// ScoreBreakdown 適応度を構成するサブスコア（全て 0〜100）
type ScoreBreakdown struct {
	Distance    float64 `json:"distance"`
	TimeBalance float64 `json:"time_balance"`
	Cost        float64 `json:"cost"`
	Preference  float64 `json:"preference"`
	Diversity   float64 `json:"diversity"`
}

// ItineraryCandidate 遺伝的アルゴリズムにおける候補解（染色体）
// 不変条件: len(Activities) == len(DayAssignments)、各割り当ては [1, numDays]
// GAループ内でのみ変更され、実行終了後は破棄される
type ItineraryCandidate struct {
	Activities     []*Activity    `json:"activities"`
	DayAssignments []int          `json:"day_assignments"`
	Fitness        float64        `json:"fitness"`
	Scores         ScoreBreakdown `json:"scores"`
}

// Clone 候補解のディープコピーを作成する（交叉・突然変異用）
func (c *ItineraryCandidate) Clone() *ItineraryCandidate {
	activities := make([]*Activity, len(c.Activities))
	copy(activities, c.Activities)
	days := make([]int, len(c.DayAssignments))
	copy(days, c.DayAssignments)
	return &ItineraryCandidate{
		Activities:     activities,
		DayAssignments: days,
		Fitness:        c.Fitness,
		Scores:         c.Scores,
	}
}

// ActivitiesForDay 指定日に割り当てられたアクティビティを取得する
func (c *ItineraryCandidate) ActivitiesForDay(day int) []*Activity {
	var result []*Activity
	for i, assigned := range c.DayAssignments {
		if assigned == day {
			result = append(result, c.Activities[i])
		}
	}
	return result
}

// CountForDay 指定日のアクティビティ数を取得する
func (c *ItineraryCandidate) CountForDay(day int) int {
	count := 0
	for _, assigned := range c.DayAssignments {
		if assigned == day {
			count++
		}
	}
	return count
}

// TravelSegment 連続する2アクティビティ間の移動区間
type TravelSegment struct {
	FromName        string  `json:"from_name"`
	ToName          string  `json:"to_name"`
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes int     `json:"duration_minutes"`
}

// ScheduledActivity 開始・終了時刻が計算済みのアクティビティ
type ScheduledActivity struct {
	Activity  *Activity `json:"activity"`
	StartTime string    `json:"start_time"` // "09:00" 形式
	EndTime   string    `json:"end_time"`
}

// DayPlan 1日分の最適化済みプラン
type DayPlan struct {
	Day             int                 `json:"day"` // 1始まり
	Theme           string              `json:"theme,omitempty"`
	Activities      []ScheduledActivity `json:"activities"`
	Segments        []TravelSegment     `json:"segments"`
	TravelMinutes   int                 `json:"travel_minutes"`
	EfficiencyScore float64             `json:"efficiency_score"`
}

// OptimizedItinerary 遺伝的オプティマイザの最終出力
type OptimizedItinerary struct {
	DayPlans        []DayPlan `json:"day_plans"`
	Fitness         float64   `json:"fitness"`
	TotalCost       float64   `json:"total_cost"`
	TotalActivities int       `json:"total_activities"`
	Generations     int       `json:"generations"` // 実際に実行された世代数
}
