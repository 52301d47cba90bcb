package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Lakbay-App/internal/domain/model"
)

func scheduled(a *model.Activity) model.ScheduledActivity {
	return model.ScheduledActivity{Activity: a}
}

func TestDayRouteOptimizer_OptimizeDay(t *testing.T) {
	optimizer := NewDayRouteOptimizer()

	t.Run("1件以下の日はスコア100で区間なし", func(t *testing.T) {
		plan := optimizer.OptimizeDay(model.DayPlan{
			Day: 1,
			Activities: []model.ScheduledActivity{
				scheduled(&model.Activity{Name: "Fort Santiago", DurationMinutes: 60}),
			},
		})
		assert.Equal(t, 100.0, plan.EfficiencyScore)
		assert.Nil(t, plan.Segments)
		assert.Equal(t, 0, plan.TravelMinutes)
		assert.Equal(t, "09:00", plan.Activities[0].StartTime)
		assert.Equal(t, "10:00", plan.Activities[0].EndTime)
	})

	t.Run("スケジュールは9時起点で所要時間と移動時間を積み上げる", func(t *testing.T) {
		museum := &model.Activity{
			Name: "Museum", Category: model.CategoryMuseum, DurationMinutes: 120,
			Location: model.LatLng{Lat: 14.5869, Lng: 120.9813},
		}
		restaurant := &model.Activity{
			Name: "Restaurant", Category: model.CategoryRestaurant, DurationMinutes: 60,
			Location: model.LatLng{Lat: 14.5880, Lng: 120.9830},
		}

		plan := optimizer.OptimizeDay(model.DayPlan{
			Day:        2,
			Activities: []model.ScheduledActivity{scheduled(restaurant), scheduled(museum)},
		})

		require.Len(t, plan.Activities, 2)
		// 美術館（morning枠）が昼食より先に来る
		assert.Equal(t, "Museum", plan.Activities[0].Activity.Name)
		assert.Equal(t, "09:00", plan.Activities[0].StartTime)
		assert.Equal(t, "11:00", plan.Activities[0].EndTime)

		require.Len(t, plan.Segments, 1)
		assert.Equal(t, "Museum", plan.Segments[0].FromName)
		assert.Equal(t, "Restaurant", plan.Segments[0].ToName)
		assert.Equal(t, plan.TravelMinutes, plan.Segments[0].DurationMinutes)

		// 昼食の開始 = 11:00 + 移動時間
		assert.Equal(t, formatMinutes(11*60+plan.TravelMinutes), plan.Activities[1].StartTime)
	})

	t.Run("所要時間不明のアクティビティは90分とみなす", func(t *testing.T) {
		plan := optimizer.OptimizeDay(model.DayPlan{
			Activities: []model.ScheduledActivity{
				scheduled(&model.Activity{Name: "Mystery Spot"}),
			},
		})
		assert.Equal(t, "10:30", plan.Activities[0].EndTime)
	})

	t.Run("効率スコアは0〜100", func(t *testing.T) {
		activities := make([]model.ScheduledActivity, 0, 4)
		for i, name := range []string{"A", "B", "C", "D"} {
			activities = append(activities, scheduled(&model.Activity{
				Name:            name,
				DurationMinutes: 60,
				Location:        model.LatLng{Lat: 10.3 + float64(i)*0.05, Lng: 123.9},
			}))
		}
		plan := optimizer.OptimizeDay(model.DayPlan{Day: 1, Activities: activities})
		assert.GreaterOrEqual(t, plan.EfficiencyScore, 0.0)
		assert.LessOrEqual(t, plan.EfficiencyScore, 100.0)
		assert.Len(t, plan.Segments, 3)
	})
}

func TestNearestNeighborOrder(t *testing.T) {
	optimizer := NewDayRouteOptimizer()

	// 一直線上の3地点を遠い順に渡しても近い順に訪問する
	a := &model.Activity{Name: "Start", Location: model.LatLng{Lat: 10.0, Lng: 123.0}}
	far := &model.Activity{Name: "Far", Location: model.LatLng{Lat: 10.2, Lng: 123.0}}
	nearby := &model.Activity{Name: "Near", Location: model.LatLng{Lat: 10.05, Lng: 123.0}}

	ordered := optimizer.nearestNeighborOrder([]*model.Activity{a, far, nearby})

	assert.Equal(t, "Start", ordered[0].Name)
	assert.Equal(t, "Near", ordered[1].Name)
	assert.Equal(t, "Far", ordered[2].Name)
}

func TestBuildSegments(t *testing.T) {
	optimizer := NewDayRouteOptimizer()

	t.Run("距離バケットで速度が変わる", func(t *testing.T) {
		// 約1.1km → 20km/h、バッファ約3.3分
		shortHop := optimizer.buildSegments([]*model.Activity{
			{Name: "A", Location: model.LatLng{Lat: 10.00, Lng: 123.00}},
			{Name: "B", Location: model.LatLng{Lat: 10.01, Lng: 123.00}},
		})
		require.Len(t, shortHop, 1)
		// 1.11km / 20km/h * 60 + 1.11*3 ≈ 7分
		assert.InDelta(t, 7, shortHop[0].DurationMinutes, 1)
	})

	t.Run("バッファは20分を超えない", func(t *testing.T) {
		// 約55km → 50km/h、バッファは上限20分
		longHaul := optimizer.buildSegments([]*model.Activity{
			{Name: "A", Location: model.LatLng{Lat: 10.0, Lng: 123.0}},
			{Name: "B", Location: model.LatLng{Lat: 10.5, Lng: 123.0}},
		})
		require.Len(t, longHaul, 1)
		// 55.6km / 50km/h * 60 + 20 ≈ 87分
		assert.InDelta(t, 87, longHaul[0].DurationMinutes, 2)
	})
}
