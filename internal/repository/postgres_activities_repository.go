package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Lakbay-App/internal/domain/helper"
	"Lakbay-App/internal/domain/model"
	"Lakbay-App/internal/domain/repository"
	"Lakbay-App/internal/infrastructure/database"
)

// PostgresActivitiesRepository はPostgres(Supabase)に蓄積したアクティビティ候補のリポジトリ
type PostgresActivitiesRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresActivitiesRepository(client *database.PostgreSQLClient) repository.ActivitiesRepository {
	return &PostgresActivitiesRepository{client: client}
}

// activityRow クエリ結果を受け取るための構造体
type activityRow struct {
	Name            string
	Details         sql.NullString
	Lat             sql.NullFloat64
	Lng             sql.NullFloat64
	TicketPrice     sql.NullString
	DurationMinutes sql.NullInt64
	Rating          sql.NullFloat64
	Destination     string
}

// toActivity activityRowをmodel.Activityに変換する
// カテゴリは保存時ではなく取得時にキーワード検出する（ルール更新を即反映するため）
func (row *activityRow) toActivity() *model.Activity {
	activity := &model.Activity{
		Name:    row.Name,
		Details: row.Details.String,
	}
	if row.Lat.Valid && row.Lng.Valid {
		activity.Location = model.LatLng{Lat: row.Lat.Float64, Lng: row.Lng.Float64}
	}
	activity.TicketPrice = row.TicketPrice.String
	if row.DurationMinutes.Valid {
		activity.DurationMinutes = int(row.DurationMinutes.Int64)
	}
	if row.Rating.Valid {
		activity.Rating = row.Rating.Float64
	}
	activity.Category = helper.DetectCategory(activity.Name, activity.Details)
	return activity
}

// FindByDestination は目的地名と嗜好タグでアクティビティを検索する
func (r *PostgresActivitiesRepository) FindByDestination(ctx context.Context, destination string, preferenceTags []string, radiusKm float64, limit int) ([]*model.Activity, error) {
	query := `SELECT name, details, lat, lng, ticket_price, duration_minutes, rating, destination
		FROM activities
		WHERE LOWER(destination) = LOWER($1)
		ORDER BY rating DESC NULLS LAST
		LIMIT $2`

	rows, err := r.client.DB.QueryContext(ctx, query, helper.NormalizeCityName(destination), limit)
	if err != nil {
		return nil, fmt.Errorf("アクティビティデータの取得失敗: %w", err)
	}
	defer rows.Close()

	activities, err := scanActivities(rows)
	if err != nil {
		return nil, err
	}

	// 嗜好タグが指定されている場合はキーワード一致するものを優先して前に寄せる
	if len(preferenceTags) > 0 {
		activities = prioritizeByTags(activities, preferenceTags)
	}

	return helper.DeduplicateActivities(activities), nil
}

// FindNearby は座標と半径でアクティビティを検索する
// 境界ボックスで粗く絞り込んだ結果をhaversine距離で精査する
func (r *PostgresActivitiesRepository) FindNearby(ctx context.Context, center model.LatLng, radiusKm float64, limit int) ([]*model.Activity, error) {
	bound := BoundingBoxAround(center, radiusKm)

	query := `SELECT name, details, lat, lng, ticket_price, duration_minutes, rating, destination
		FROM activities
		WHERE lat BETWEEN $1 AND $2 AND lng BETWEEN $3 AND $4
		ORDER BY rating DESC NULLS LAST
		LIMIT $5`

	rows, err := r.client.DB.QueryContext(ctx, query, bound.MinLat, bound.MaxLat, bound.MinLng, bound.MaxLng, limit*2)
	if err != nil {
		return nil, fmt.Errorf("周辺アクティビティデータの取得失敗: %w", err)
	}
	defer rows.Close()

	candidates, err := scanActivities(rows)
	if err != nil {
		return nil, err
	}

	// 境界ボックスの角は半径を超えるため距離で精査する
	var result []*model.Activity
	for _, a := range candidates {
		if helper.HaversineDistance(center, a.Location) <= radiusKm {
			result = append(result, a)
		}
		if len(result) >= limit {
			break
		}
	}

	return helper.DeduplicateActivities(result), nil
}

func scanActivities(rows *sql.Rows) ([]*model.Activity, error) {
	var activities []*model.Activity
	for rows.Next() {
		var row activityRow
		if err := rows.Scan(&row.Name, &row.Details, &row.Lat, &row.Lng,
			&row.TicketPrice, &row.DurationMinutes, &row.Rating, &row.Destination); err != nil {
			return nil, fmt.Errorf("アクティビティデータスキャンエラー: %w", err)
		}
		activities = append(activities, row.toActivity())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("アクティビティデータの読み取りエラー: %w", err)
	}
	return activities, nil
}

// prioritizeByTags はタグにキーワード一致するアクティビティを前に寄せる
func prioritizeByTags(activities []*model.Activity, tags []string) []*model.Activity {
	var matched, rest []*model.Activity
	for _, a := range activities {
		text := strings.ToLower(a.Name + " " + a.Details)
		hit := false
		for _, tag := range tags {
			if keywords, ok := model.TripTypeKeywords[strings.ToLower(tag)]; ok {
				if helper.MatchKeywords(text, keywords) > 0 {
					hit = true
					break
				}
			}
		}
		if hit {
			matched = append(matched, a)
		} else {
			rest = append(rest, a)
		}
	}
	return append(matched, rest...)
}
