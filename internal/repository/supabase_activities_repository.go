package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"Lakbay-App/internal/database"
	"Lakbay-App/internal/domain/helper"
	"Lakbay-App/internal/domain/model"
	"Lakbay-App/internal/domain/repository"
)

// SupabaseActivitiesRepository はSupabase REST経由のアクティビティリポジトリ
// Postgres直接続が使えない環境（ローカル開発など）向けのフォールバック実装
type SupabaseActivitiesRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseActivitiesRepository(client *database.SupabaseClient) repository.ActivitiesRepository {
	return &SupabaseActivitiesRepository{client: client}
}

// supabaseActivity Supabaseテーブルの行に対応する構造体
type supabaseActivity struct {
	Name            string  `json:"name"`
	Details         string  `json:"details"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	TicketPrice     string  `json:"ticket_price"`
	DurationMinutes int     `json:"duration_minutes"`
	Rating          float64 `json:"rating"`
	Destination     string  `json:"destination"`
}

func (s *supabaseActivity) toActivity() *model.Activity {
	return &model.Activity{
		Name:            s.Name,
		Details:         s.Details,
		Location:        model.LatLng{Lat: s.Lat, Lng: s.Lng},
		TicketPrice:     s.TicketPrice,
		DurationMinutes: s.DurationMinutes,
		Rating:          s.Rating,
		Category:        helper.DetectCategory(s.Name, s.Details),
	}
}

// FindByDestination は目的地名でアクティビティを検索する
func (r *SupabaseActivitiesRepository) FindByDestination(ctx context.Context, destination string, preferenceTags []string, radiusKm float64, limit int) ([]*model.Activity, error) {
	data, count, err := r.client.GetClient().From("activities").
		Select("*", "exact", false).
		Eq("destination", helper.NormalizeCityName(destination)).
		Limit(limit, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("アクティビティデータの取得失敗: %w", err)
	}
	_ = count

	var rows []supabaseActivity
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("アクティビティデータのJSONアンマーシャル失敗: %w", err)
	}

	activities := make([]*model.Activity, 0, len(rows))
	for i := range rows {
		activities = append(activities, rows[i].toActivity())
	}
	if len(preferenceTags) > 0 {
		activities = prioritizeByTags(activities, preferenceTags)
	}
	return helper.DeduplicateActivities(activities), nil
}

// FindNearby は座標と半径でアクティビティを検索する
// REST経由では範囲クエリで粗く絞り、haversine距離で精査する
func (r *SupabaseActivitiesRepository) FindNearby(ctx context.Context, center model.LatLng, radiusKm float64, limit int) ([]*model.Activity, error) {
	bound := BoundingBoxAround(center, radiusKm)

	data, count, err := r.client.GetClient().From("activities").
		Select("*", "exact", false).
		Gte("lat", strconv.FormatFloat(bound.MinLat, 'f', -1, 64)).
		Lte("lat", strconv.FormatFloat(bound.MaxLat, 'f', -1, 64)).
		Gte("lng", strconv.FormatFloat(bound.MinLng, 'f', -1, 64)).
		Lte("lng", strconv.FormatFloat(bound.MaxLng, 'f', -1, 64)).
		Limit(limit*2, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("周辺アクティビティデータの取得失敗: %w", err)
	}
	_ = count

	var rows []supabaseActivity
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("アクティビティデータのJSONアンマーシャル失敗: %w", err)
	}

	var result []*model.Activity
	for i := range rows {
		activity := rows[i].toActivity()
		if helper.HaversineDistance(center, activity.Location) <= radiusKm {
			result = append(result, activity)
		}
		if len(result) >= limit {
			break
		}
	}
	return helper.DeduplicateActivities(result), nil
}
