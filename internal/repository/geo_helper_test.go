package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Lakbay-App/internal/domain/model"
)

func TestBoundingBoxAround(t *testing.T) {
	cebu := model.LatLng{Lat: 10.3157, Lng: 123.8854}

	t.Run("半径に応じて中心から対称に広がる", func(t *testing.T) {
		bound := BoundingBoxAround(cebu, 22.2) // 約0.2度

		assert.InDelta(t, cebu.Lat-0.2, bound.MinLat, 1e-6)
		assert.InDelta(t, cebu.Lat+0.2, bound.MaxLat, 1e-6)
		assert.InDelta(t, cebu.Lng-0.2, bound.MinLng, 1e-6)
		assert.InDelta(t, cebu.Lng+0.2, bound.MaxLng, 1e-6)
	})

	t.Run("半径が大きいほどボックスも大きい", func(t *testing.T) {
		small := BoundingBoxAround(cebu, 5)
		large := BoundingBoxAround(cebu, 50)
		assert.Less(t, large.MinLat, small.MinLat)
		assert.Greater(t, large.MaxLng, small.MaxLng)
	})
}

func TestBoundingBoxBetween(t *testing.T) {
	manila := model.LatLng{Lat: 14.5995, Lng: 120.9842}
	baguio := model.LatLng{Lat: 16.4023, Lng: 120.5960}

	bound := BoundingBoxBetween(manila, baguio)

	// 両座標がボックスに含まれる
	assert.LessOrEqual(t, bound.MinLat, manila.Lat)
	assert.GreaterOrEqual(t, bound.MaxLat, baguio.Lat)
	assert.LessOrEqual(t, bound.MinLng, baguio.Lng)
	assert.GreaterOrEqual(t, bound.MaxLng, manila.Lng)
}
