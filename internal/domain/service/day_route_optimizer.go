package service

import (
	"fmt"
	"math"
	"sort"

	"Lakbay-App/internal/domain/helper"
	"Lakbay-App/internal/domain/model"
)

// 1日のスケジュールは9時開始を基準とする
const scheduleAnchorMinutes = 9 * 60

// DayRouteOptimizer は1日分のアクティビティを時間帯と距離で並べ替え、
// タイムスケジュールと移動区間を生成する
type DayRouteOptimizer struct{}

// NewDayRouteOptimizer は新しい日内ルート最適化インスタンスを作成する
func NewDayRouteOptimizer() *DayRouteOptimizer {
	return &DayRouteOptimizer{}
}

// OptimizeItinerary は旅程全体の各日に日内最適化を適用する
func (o *DayRouteOptimizer) OptimizeItinerary(itinerary *model.OptimizedItinerary) {
	for i := range itinerary.DayPlans {
		itinerary.DayPlans[i] = o.OptimizeDay(itinerary.DayPlans[i])
	}
}

// OptimizeDay は1日分のプランを最適化する
// アクティビティが0〜1件の日は並べ替え不要でスコア100（自明に最適）
func (o *DayRouteOptimizer) OptimizeDay(plan model.DayPlan) model.DayPlan {
	activities := make([]*model.Activity, 0, len(plan.Activities))
	for _, sa := range plan.Activities {
		activities = append(activities, sa.Activity)
	}

	if len(activities) <= 1 {
		plan.EfficiencyScore = 100
		plan.Segments = nil
		plan.TravelMinutes = 0
		o.assignSchedule(&plan, activities, nil)
		return plan
	}

	// 1. 時間帯スロットでグループ化し、2. 時系列順に並べる
	ordered := o.orderBySlots(activities)

	// 5. 連続ペアごとの移動区間を計算
	segments := o.buildSegments(ordered)

	// 6. タイムスケジュールを生成
	o.assignSchedule(&plan, ordered, segments)

	plan.Segments = segments
	plan.TravelMinutes = 0
	for _, seg := range segments {
		plan.TravelMinutes += seg.DurationMinutes
	}

	// 7. 日内効率スコア
	plan.EfficiencyScore = o.efficiencyScore(ordered, segments)
	return plan
}

// orderBySlots はアクティビティを第一希望スロットでグループ化し、
// スロットを時系列順に連結する。各グループ内はカテゴリ優先度でソート後、
// 最近傍法で距離の後戻りを最小化する
func (o *DayRouteOptimizer) orderBySlots(activities []*model.Activity) []*model.Activity {
	groups := make(map[model.TimeSlot][]*model.Activity)
	for _, a := range activities {
		slots := helper.PreferredSlots(a.Category)
		first := model.SlotAfternoon
		if len(slots) > 0 {
			first = slots[0]
		}
		groups[first] = append(groups[first], a)
	}

	var ordered []*model.Activity
	for _, slot := range model.SlotOrder {
		group := groups[slot]
		if len(group) == 0 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			return model.CategoryPriority[group[i].Category] < model.CategoryPriority[group[j].Category]
		})
		ordered = append(ordered, o.nearestNeighborOrder(group)...)
	}
	return ordered
}

// nearestNeighborOrder はグループ内を最近傍法で並べる
// 先頭のアクティビティから開始し、未訪問の中で最も近いものを貪欲に選ぶ
// 小規模TSPの決定的な近似であり、最適性は保証しない
func (o *DayRouteOptimizer) nearestNeighborOrder(group []*model.Activity) []*model.Activity {
	if len(group) <= 2 {
		return group
	}

	visited := make([]bool, len(group))
	ordered := make([]*model.Activity, 0, len(group))

	current := 0
	visited[0] = true
	ordered = append(ordered, group[0])

	for len(ordered) < len(group) {
		nearest := -1
		nearestDist := math.MaxFloat64
		for i, a := range group {
			if visited[i] {
				continue
			}
			dist := helper.HaversineDistanceActivity(group[current], a)
			if dist < nearestDist {
				nearest, nearestDist = i, dist
			}
		}
		visited[nearest] = true
		ordered = append(ordered, group[nearest])
		current = nearest
	}
	return ordered
}

// buildSegments は連続する2アクティビティ間の移動区間を計算する
// 速度は距離バケットで決める: 2km以下は20km/h、10km以下は30km/h、それ以上は50km/h
func (o *DayRouteOptimizer) buildSegments(ordered []*model.Activity) []model.TravelSegment {
	var segments []model.TravelSegment
	for i := 1; i < len(ordered); i++ {
		from, to := ordered[i-1], ordered[i]
		distKm := helper.HaversineDistanceActivity(from, to)

		var speedKmh float64
		switch {
		case distKm <= 2:
			speedKmh = 20
		case distKm <= 10:
			speedKmh = 30
		default:
			speedKmh = 50
		}

		// 距離に比例するバッファ（上限20分）
		buffer := distKm * 3
		if buffer > 20 {
			buffer = 20
		}
		minutes := int(math.Round(distKm/speedKmh*60 + buffer))

		segments = append(segments, model.TravelSegment{
			FromName:        from.Name,
			ToName:          to.Name,
			DistanceKm:      math.Round(distKm*100) / 100,
			DurationMinutes: minutes,
		})
	}
	return segments
}

// assignSchedule は9:00起点でタイムスケジュールを割り当てる
// 各アクティビティの所要時間と続く移動区間の分だけ時刻を進める
// 深夜0時を越えた場合は翌日の時刻に折り返す
func (o *DayRouteOptimizer) assignSchedule(plan *model.DayPlan, ordered []*model.Activity, segments []model.TravelSegment) {
	plan.Activities = plan.Activities[:0]
	cursor := scheduleAnchorMinutes

	for i, a := range ordered {
		duration := a.DurationMinutes
		if duration <= 0 {
			duration = 90 // 所要時間不明の場合のデフォルト
		}
		start := cursor
		end := cursor + duration
		plan.Activities = append(plan.Activities, model.ScheduledActivity{
			Activity:  a,
			StartTime: formatMinutes(start),
			EndTime:   formatMinutes(end),
		})
		cursor = end
		if i < len(segments) {
			cursor += segments[i].DurationMinutes
		}
	}
}

func formatMinutes(totalMinutes int) string {
	wrapped := totalMinutes % (24 * 60)
	return fmt.Sprintf("%02d:%02d", wrapped/60, wrapped%60)
}

// efficiencyScore は逆距離スコアと活動時間/移動時間比スコアの平均を返す
// 両スコアとも [0, 100] にキャップされる
func (o *DayRouteOptimizer) efficiencyScore(ordered []*model.Activity, segments []model.TravelSegment) float64 {
	totalKm := 0.0
	travelMinutes := 0
	for _, seg := range segments {
		totalKm += seg.DistanceKm
		travelMinutes += seg.DurationMinutes
	}

	distanceScore := clampScore(100 - totalKm*5)

	activityMinutes := 0
	for _, a := range ordered {
		if a.DurationMinutes > 0 {
			activityMinutes += a.DurationMinutes
		} else {
			activityMinutes += 90
		}
	}
	if travelMinutes < 1 {
		travelMinutes = 1
	}
	ratioScore := clampScore(float64(activityMinutes) / float64(travelMinutes) * 20)

	return math.Round((distanceScore+ratioScore)/2*100) / 100
}
