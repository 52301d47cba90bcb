package repository

import (
	"github.com/paulmach/orb"

	"Lakbay-App/internal/domain/model"
)

// SearchBound 検索用の境界ボックス（経度・緯度の範囲）
type SearchBound struct {
	MinLng float64
	MinLat float64
	MaxLng float64
	MaxLat float64
}

// BoundingBoxAround 中心座標と半径(km)からシンプルな境界ボックスを作成する
// 正確な測地計算ではなく、1度≒111kmの近似を使う（検索の粗い絞り込み用）
func BoundingBoxAround(center model.LatLng, radiusKm float64) SearchBound {
	point := orb.Point{center.Lng, center.Lat}

	// 度数への変換（緯度方向は一定、経度方向は高緯度ほど粗くなるが
	// フィリピンは低緯度のため単純な近似で十分）
	padding := radiusKm / 111.0

	bound := orb.Bound{Min: point, Max: point}.Pad(padding)

	return SearchBound{
		MinLng: bound.Min.Lon(),
		MinLat: bound.Min.Lat(),
		MaxLng: bound.Max.Lon(),
		MaxLat: bound.Max.Lat(),
	}
}

// BoundingBoxBetween 2座標を含む境界ボックスを作成する（余裕100m程度）
func BoundingBoxBetween(a, b model.LatLng) SearchBound {
	pointA := orb.Point{a.Lng, a.Lat}
	pointB := orb.Point{b.Lng, b.Lat}

	bound := orb.Bound{Min: pointA, Max: pointA}.Extend(pointB).Pad(0.001)

	return SearchBound{
		MinLng: bound.Min.Lon(),
		MinLat: bound.Min.Lat(),
		MaxLng: bound.Max.Lon(),
		MaxLat: bound.Max.Lat(),
	}
}
