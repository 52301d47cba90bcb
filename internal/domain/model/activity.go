package model

import (
	"fmt"
	"math"
)

// LatLng 緯度経度を表す基本的な型（距離計算などで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsZero 座標が未設定（0,0）かどうかを判定
func (l LatLng) IsZero() bool {
	return l.Lat == 0 && l.Lng == 0
}

// Location 検索リクエストなどで使う緯度経度
type Location struct {
	Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// ToLatLng Location を LatLng 型に変換
func (l *Location) ToLatLng() LatLng {
	if l == nil {
		return LatLng{}
	}
	return LatLng{Lat: l.Latitude, Lng: l.Longitude}
}

// Geometry PostGIS GEOMETRY型に対応する構造体
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
}

// ActivityCategory はアクティビティの固定カテゴリ分類
type ActivityCategory string

const (
	CategoryAttraction    ActivityCategory = "attraction"
	CategoryRestaurant    ActivityCategory = "restaurant"
	CategoryMuseum        ActivityCategory = "museum"
	CategoryPark          ActivityCategory = "park"
	CategoryShopping      ActivityCategory = "shopping"
	CategoryEntertainment ActivityCategory = "entertainment"
	CategoryHotel         ActivityCategory = "hotel"
	CategoryDefault       ActivityCategory = "default"
)

// Activity 旅程最適化の対象となる1つのアクティビティ
// 取得後は変更されない（最適化1回分の実行中はオプティマイザが所有する）
type Activity struct {
	Name            string           `json:"name" db:"name"`
	Details         string           `json:"details" db:"details"`
	Location        LatLng           `json:"location"`                 // 不明な場合は (0,0)
	TicketPrice     string           `json:"ticket_price"`             // 例: "₱500", "500-800"
	DurationMinutes int              `json:"duration_minutes"`         // 推定所要時間
	Category        ActivityCategory `json:"category"`                 // キーワード検出されたカテゴリ
	Rating          float64          `json:"rating" db:"rating"`       // 評価値
	PreferredTime   string           `json:"preferred_time,omitempty"` // "morning" など（任意）
}

// Key 重複排除用の識別子（名前 + 丸めた座標）
func (a *Activity) Key() string {
	return fmt.Sprintf("%s|%.3f,%.3f",
		a.Name,
		math.Round(a.Location.Lat*1000)/1000,
		math.Round(a.Location.Lng*1000)/1000,
	)
}

// HasCoordinates 座標が設定されているかチェック
func (a *Activity) HasCoordinates() bool {
	return !a.Location.IsZero()
}
