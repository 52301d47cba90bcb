package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLookupDocumentedRoute(t *testing.T) {
	t.Run("都市ペアは順不同で参照できる", func(t *testing.T) {
		r1, ok1 := LookupDocumentedRoute("Cebu", "Bohol")
		r2, ok2 := LookupDocumentedRoute("Bohol", "Cebu")
		assert.True(t, ok1)
		assert.True(t, ok2)
		assert.Equal(t, r1, r2)
	})

	t.Run("大文字小文字と前後空白を無視する", func(t *testing.T) {
		_, ok := LookupDocumentedRoute("  MANILA ", "baguio")
		assert.True(t, ok)
	})

	t.Run("未登録のペアはfalse", func(t *testing.T) {
		_, ok := LookupDocumentedRoute("Manila", "Tokyo")
		assert.False(t, ok)
	})

	t.Run("実用オーバーライドのルートが引ける", func(t *testing.T) {
		route, ok := LookupDocumentedRoute("Zamboanga", "Pagadian")
		assert.True(t, ok)
		assert.True(t, route.Practical)
	})
}

func TestIslandGroups(t *testing.T) {
	t.Run("島嶼グループを判定できる", func(t *testing.T) {
		group, ok := IslandGroup("Manila")
		assert.True(t, ok)
		assert.Equal(t, "luzon", group)
	})

	t.Run("異なる島嶼グループ間はboundary crossing", func(t *testing.T) {
		assert.True(t, CrossesIslandBoundary("Manila", "Davao"))
		assert.False(t, CrossesIslandBoundary("Manila", "Baguio"))
	})

	t.Run("どちらかが不明な場合はfalse", func(t *testing.T) {
		assert.False(t, CrossesIslandBoundary("Manila", "Atlantis"))
	})
}

func TestPrimaryAirport(t *testing.T) {
	assert.Equal(t, "CEB", PrimaryAirport("Cebu"))
	assert.Equal(t, "MPH", PrimaryAirport("Boracay"))
	assert.Equal(t, "MNL", PrimaryAirport("Unknown Town"))
}

func TestAlternativeAirports(t *testing.T) {
	assert.Equal(t, []string{"KLO"}, AlternativeAirports("Boracay"))
	assert.Empty(t, AlternativeAirports("Manila"))
}

func TestParseBudget(t *testing.T) {
	t.Run("金額の直接指定が優先される", func(t *testing.T) {
		assert.Equal(t, 12345.0, ParseBudget("cheap", 12345))
	})

	t.Run("予算カテゴリから金額に変換する", func(t *testing.T) {
		assert.Equal(t, 8000.0, ParseBudget("cheap", 0))
		assert.Equal(t, 20000.0, ParseBudget("moderate", 0))
		assert.Equal(t, 50000.0, ParseBudget("luxury", 0))
	})

	t.Run("未知のカテゴリはmoderateにフォールバック", func(t *testing.T) {
		assert.Equal(t, 20000.0, ParseBudget("ultra", 0))
	})
}

func TestTripParametersNumDays(t *testing.T) {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	t.Run("開始日と終了日を含めて数える", func(t *testing.T) {
		params := &TripParameters{StartDate: start, EndDate: start.AddDate(0, 0, 3)}
		assert.Equal(t, 4, params.NumDays())
	})

	t.Run("日帰りは1日", func(t *testing.T) {
		params := &TripParameters{StartDate: start, EndDate: start}
		assert.Equal(t, 1, params.NumDays())
	})
}

func TestNormalizedPace(t *testing.T) {
	assert.Equal(t, 2, (&PreferenceProfile{}).NormalizedPace())
	assert.Equal(t, 2, (*PreferenceProfile)(nil).NormalizedPace())
	assert.Equal(t, 4, (&PreferenceProfile{ActivityPace: 9}).NormalizedPace())
	assert.Equal(t, 3, (&PreferenceProfile{ActivityPace: 3}).NormalizedPace())
}
