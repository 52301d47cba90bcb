package service

import (
	"strings"

	"Lakbay-App/internal/domain/helper"
	"Lakbay-App/internal/domain/model"
)

// 適応度の重み付け（合計1.0）
const (
	weightDistance    = 0.25
	weightTimeBalance = 0.20
	weightCost        = 0.20
	weightPreference  = 0.25
	weightDiversity   = 0.10
)

// fitnessEvaluator は候補解の適応度を評価する
// 1回の最適化実行ごとに生成され、旅行条件を読み取り専用で参照する
type fitnessEvaluator struct {
	numDays      int
	pace         int
	budget       float64
	prefKeywords []string
}

// newFitnessEvaluator は旅行条件から評価器を構築する
// 嗜好キーワードは旧アクティビティタイプ・旅行タイプ辞書・旅行スタイル辞書の和集合
func newFitnessEvaluator(params *model.TripParameters) *fitnessEvaluator {
	prefs := params.GetPreferences()

	var keywords []string
	for _, tripType := range prefs.TripTypes {
		key := strings.ToLower(strings.TrimSpace(tripType))
		if kw, ok := model.TripTypeKeywords[key]; ok {
			keywords = append(keywords, kw...)
		}
		if kw, ok := model.LegacyActivityTypeKeywords[key]; ok {
			keywords = append(keywords, kw...)
		}
	}
	if kw, ok := model.TravelStyleKeywords[strings.ToLower(prefs.TravelStyle)]; ok {
		keywords = append(keywords, kw...)
	}

	return &fitnessEvaluator{
		numDays:      params.NumDays(),
		pace:         prefs.NormalizedPace(),
		budget:       params.Budget(),
		prefKeywords: keywords,
	}
}

// evaluate は候補解の適応度とサブスコアを計算して設定する
// 全てのサブスコアと適応度は [0, 100] に収まる
func (e *fitnessEvaluator) evaluate(c *model.ItineraryCandidate) {
	c.Scores = model.ScoreBreakdown{
		Distance:    e.distanceScore(c),
		TimeBalance: e.timeBalanceScore(c),
		Cost:        e.costScore(c),
		Preference:  e.preferenceScore(c),
		Diversity:   e.diversityScore(c),
	}
	c.Fitness = clampScore(
		c.Scores.Distance*weightDistance +
			c.Scores.TimeBalance*weightTimeBalance +
			c.Scores.Cost*weightCost +
			c.Scores.Preference*weightPreference +
			c.Scores.Diversity*weightDiversity,
	)
}

// distanceScore は日内の推定移動距離の逆数スコア
// numDays × 100km を基準に正規化する
func (e *fitnessEvaluator) distanceScore(c *model.ItineraryCandidate) float64 {
	totalKm := 0.0
	for day := 1; day <= e.numDays; day++ {
		activities := c.ActivitiesForDay(day)
		for i := 1; i < len(activities); i++ {
			if activities[i-1].HasCoordinates() && activities[i].HasCoordinates() {
				totalKm += helper.HaversineDistanceActivity(activities[i-1], activities[i])
			}
		}
	}
	normalizer := float64(e.numDays) * 100
	return clampScore(100 * (1 - totalKm/normalizer))
}

// timeBalanceScore は日ごとのアクティビティ数バランスを評価する
// 到着日2件・出発日1件の上限超過、中日の目標±1からの逸脱、空の中日を減点する
func (e *fitnessEvaluator) timeBalanceScore(c *model.ItineraryCandidate) float64 {
	score := 100.0
	for day := 1; day <= e.numDays; day++ {
		count := c.CountForDay(day)
		switch {
		case day == 1 && e.numDays > 1:
			if count > 2 {
				score -= 15 * float64(count-2)
			}
		case day == e.numDays && e.numDays > 1:
			if count > 1 {
				score -= 15 * float64(count-1)
			}
		default:
			deviation := count - e.pace
			if deviation < 0 {
				deviation = -deviation
			}
			if deviation > 1 {
				score -= 10 * float64(deviation-1)
			}
		}
		// 到着日・出発日以外が空のままなのはプランとして成立しない
		if count == 0 && day != 1 && day != e.numDays {
			score -= 20
		}
	}
	return clampScore(score)
}

// costScore は予算に対する費用の適合度を区分的に評価する
// 超過は100%超過あたり最大500点の急峻なペナルティ、70〜95%の活用が満点
func (e *fitnessEvaluator) costScore(c *model.ItineraryCandidate) float64 {
	if e.budget <= 0 {
		return 50
	}
	total := 0.0
	for _, a := range c.Activities {
		total += helper.ParsePrice(a.TicketPrice)
	}
	utilization := total / e.budget

	switch {
	case utilization > 1.0:
		return clampScore(100 - 500*(utilization-1.0))
	case utilization >= 0.70:
		if utilization <= 0.95 {
			return 100
		}
		return 95
	default:
		// 予算の使い残しは軽い減点にとどめる（80〜90点）
		return clampScore(80 + (utilization/0.70)*10)
	}
}

// preferenceScore はアクティビティテキストと嗜好キーワードの重なりを評価する
// 外れ値による支配を避けるため、アクティビティごとのスコアに上限を設ける
func (e *fitnessEvaluator) preferenceScore(c *model.ItineraryCandidate) float64 {
	if len(c.Activities) == 0 {
		return 0
	}
	if len(e.prefKeywords) == 0 {
		return 50 // 嗜好が指定されていない場合は中立
	}
	total := 0.0
	for _, a := range c.Activities {
		matches := helper.MatchKeywords(a.Name+" "+a.Details, e.prefKeywords)
		if matches > 4 {
			matches = 4
		}
		total += float64(matches) * 25
	}
	return clampScore(total / float64(len(c.Activities)))
}

// diversityScore はユニークな場所名の割合を評価する
func (e *fitnessEvaluator) diversityScore(c *model.ItineraryCandidate) float64 {
	if len(c.Activities) == 0 {
		return 0
	}
	unique := make(map[string]struct{}, len(c.Activities))
	for _, a := range c.Activities {
		unique[strings.ToLower(a.Name)] = struct{}{}
	}
	return clampScore(float64(len(unique)) / float64(len(c.Activities)) * 100)
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
