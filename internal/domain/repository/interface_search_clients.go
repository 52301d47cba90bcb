package repository

import (
	"context"
	"time"

	"Lakbay-App/internal/domain/model"
)

// FlightSearchClient はフライト検索の外部コラボレータ契約
type FlightSearchClient interface {
	// SearchFlights は空港コードと日付でフライト候補を検索する（0件の場合もある）
	SearchFlights(ctx context.Context, originAirport, destAirport string, departDate time.Time, travelers int) ([]model.FlightOption, error)
}

// HotelSearchClient はホテル検索の外部コラボレータ契約
type HotelSearchClient interface {
	// SearchHotels は目的地と日程でホテル候補を検索する
	SearchHotels(ctx context.Context, destination string, checkIn, checkOut time.Time, guests int, budgetTier string) ([]model.HotelOption, error)
}

// GeocodingService は地名から座標を取得する外部コラボレータ契約
type GeocodingService interface {
	// Geocode は地名を座標に変換する。見つからない場合は ok=false を返す
	Geocode(ctx context.Context, placeName string) (latLng model.LatLng, ok bool, err error)
}
