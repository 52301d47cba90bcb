package helper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"Lakbay-App/internal/domain/model"
)

var (
	manilaLatLng = model.LatLng{Lat: 14.5995, Lng: 120.9842}
	cebuLatLng   = model.LatLng{Lat: 10.3157, Lng: 123.8854}
	baguioLatLng = model.LatLng{Lat: 16.4023, Lng: 120.5960}
)

func TestHaversineDistance(t *testing.T) {
	t.Run("同一地点の距離はゼロ", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineDistance(manilaLatLng, manilaLatLng))
	})

	t.Run("距離は対称", func(t *testing.T) {
		d1 := HaversineDistance(manilaLatLng, cebuLatLng)
		d2 := HaversineDistance(cebuLatLng, manilaLatLng)
		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("マニラ-セブ間は約570km", func(t *testing.T) {
		d := HaversineDistance(manilaLatLng, cebuLatLng)
		assert.InDelta(t, 570, d, 30)
	})

	t.Run("マニラ-バギオ間は約200km", func(t *testing.T) {
		d := HaversineDistance(manilaLatLng, baguioLatLng)
		assert.InDelta(t, 205, d, 20)
	})
}

func TestClassifyTerrain(t *testing.T) {
	t.Run("島嶼部の都市が含まれる場合はisland", func(t *testing.T) {
		assert.Equal(t, TerrainIsland, ClassifyTerrain("Manila", "El Nido"))
	})

	t.Run("山岳部の都市が含まれる場合はmountainous", func(t *testing.T) {
		assert.Equal(t, TerrainMountainous, ClassifyTerrain("Manila", "Sagada"))
	})

	t.Run("島嶼部は山岳部より優先される", func(t *testing.T) {
		assert.Equal(t, TerrainIsland, ClassifyTerrain("Siargao", "Baguio"))
	})

	t.Run("高速道路ペアは順序に関係なくhighway", func(t *testing.T) {
		assert.Equal(t, TerrainHighway, ClassifyTerrain("Manila", "Clark"))
		assert.Equal(t, TerrainHighway, ClassifyTerrain("Clark", "Manila"))
	})

	t.Run("山岳部の都市は高速道路があってもmountainous", func(t *testing.T) {
		assert.Equal(t, TerrainMountainous, ClassifyTerrain("Manila", "Baguio"))
	})

	t.Run("メトロマニラ圏内同士はurban", func(t *testing.T) {
		assert.Equal(t, TerrainUrban, ClassifyTerrain("Makati", "Quezon City"))
	})

	t.Run("沿岸都市を含む場合はcoastal", func(t *testing.T) {
		assert.Equal(t, TerrainCoastal, ClassifyTerrain("Manila", "Legazpi"))
	})

	t.Run("不明な都市はnormal", func(t *testing.T) {
		assert.Equal(t, TerrainNormal, ClassifyTerrain("Tarlac", "Cabanatuan"))
	})
}

func TestRoadDistanceKm(t *testing.T) {
	t.Run("地形ごとの迂回係数が適用される", func(t *testing.T) {
		assert.InDelta(t, 150, RoadDistanceKm(100, TerrainIsland), 1e-9)
		assert.InDelta(t, 160, RoadDistanceKm(100, TerrainMountainous), 1e-9)
		assert.InDelta(t, 120, RoadDistanceKm(100, TerrainHighway), 1e-9)
	})

	t.Run("不明な地形は通常係数にフォールバック", func(t *testing.T) {
		assert.InDelta(t, 140, RoadDistanceKm(100, TerrainType("unknown")), 1e-9)
	})
}

func TestTravelTimeHours(t *testing.T) {
	t.Run("高速道路のバスは時速70kmに15%バッファ", func(t *testing.T) {
		hours := TravelTimeHours(140, "bus", TerrainHighway)
		assert.InDelta(t, 2.0*1.15, hours, 1e-9)
	})

	t.Run("山岳部はバッファが20%に増える", func(t *testing.T) {
		hours := TravelTimeHours(30, "bus", TerrainMountainous)
		assert.InDelta(t, 1.0*1.20, hours, 1e-9)
	})

	t.Run("不明な移動手段はバスにフォールバック", func(t *testing.T) {
		assert.Equal(t,
			TravelTimeHours(100, "bus", TerrainNormal),
			TravelTimeHours(100, "jeepney", TerrainNormal))
	})
}

func TestEstimateCost(t *testing.T) {
	t.Run("運賃は50ペソ単位に丸められる", func(t *testing.T) {
		cost := EstimateCost(200, "bus", "aircon")
		assert.Zero(t, math.Mod(cost.Min, 50))
		assert.Zero(t, math.Mod(cost.Max, 50))
	})

	t.Run("最小は最大を超えない", func(t *testing.T) {
		cost := EstimateCost(350, "van", "aircon")
		assert.LessOrEqual(t, cost.Min, cost.Max)
	})

	t.Run("不明な移動手段と快適性は普通バス運賃にフォールバック", func(t *testing.T) {
		expected := EstimateCost(100, "bus", "ordinary")
		assert.Equal(t, expected, EstimateCost(100, "tricycle", "superdeluxe"))
	})
}

func TestSortActivitiesByDistance(t *testing.T) {
	near := &model.Activity{Name: "Rizal Park", Location: model.LatLng{Lat: 14.5832, Lng: 120.9794}}
	mid := &model.Activity{Name: "Tagaytay", Location: model.LatLng{Lat: 14.1153, Lng: 120.9621}}
	far := &model.Activity{Name: "Magellan's Cross", Location: cebuLatLng}

	activities := []*model.Activity{far, near, mid}
	SortActivitiesByDistance(manilaLatLng, activities)

	assert.Equal(t, "Rizal Park", activities[0].Name)
	assert.Equal(t, "Tagaytay", activities[1].Name)
	assert.Equal(t, "Magellan's Cross", activities[2].Name)
}

func TestDeduplicateActivities(t *testing.T) {
	a := &model.Activity{Name: "Fort Santiago", Location: model.LatLng{Lat: 14.5946, Lng: 120.9705}}
	duplicate := &model.Activity{Name: "Fort Santiago", Location: model.LatLng{Lat: 14.5946, Lng: 120.9705}}
	other := &model.Activity{Name: "Intramuros", Location: model.LatLng{Lat: 14.5893, Lng: 120.9751}}

	result := DeduplicateActivities([]*model.Activity{a, duplicate, other, nil})
	assert.Len(t, result, 2)
}
