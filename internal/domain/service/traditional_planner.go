package service

import (
	"log"
	"sort"

	"Lakbay-App/internal/domain/model"
)

// BuildTraditionalItinerary はGAを使わない直列割り当てで旅程を組み立てる
// アクティビティプールが小さい場合のフォールバック経路として使う
// 評価の高い順に並べ、各日の容量を満たすまで順番に詰めていく
func BuildTraditionalItinerary(activities []*model.Activity, params *model.TripParameters) *model.OptimizedItinerary {
	numDays := params.NumDays()
	pace := params.GetPreferences().NormalizedPace()

	sorted := make([]*model.Activity, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	capTotal := capacitySum(numDays, pace)
	if len(sorted) > capTotal {
		sorted = sorted[:capTotal]
	}

	candidate := &model.ItineraryCandidate{}
	day := 1
	used := 0
	for _, a := range sorted {
		for day < numDays && used >= dayCapacity(day, numDays, pace) {
			day++
			used = 0
		}
		candidate.Activities = append(candidate.Activities, a)
		candidate.DayAssignments = append(candidate.DayAssignments, day)
		used++
	}

	log.Printf("📋 従来型プラン生成: %d件を%d日間に直列割り当て", len(candidate.Activities), numDays)
	return candidateToItinerary(candidate, numDays)
}
