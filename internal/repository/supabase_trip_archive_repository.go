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

// SupabaseTripArchiveRepository はSupabaseを使用した旅行プランアーカイブリポジトリ
type SupabaseTripArchiveRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseTripArchiveRepository(client *database.SupabaseClient) repository.TripArchiveRepository {
	return &SupabaseTripArchiveRepository{client: client}
}

func (r *SupabaseTripArchiveRepository) Create(ctx context.Context, archive *model.TripArchive) error {
	data, err := json.Marshal(archive)
	if err != nil {
		return fmt.Errorf("アーカイブデータのJSONマーシャル失敗: %w", err)
	}

	_, _, err = r.client.GetClient().From("trip_archives").Insert(string(data), false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("アーカイブデータの作成失敗: %w", err)
	}

	return nil
}

func (r *SupabaseTripArchiveRepository) GetByID(ctx context.Context, id string) (*model.TripArchive, error) {
	var archives []model.TripArchive
	data, count, err := r.client.GetClient().From("trip_archives").Select("*", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("アーカイブデータの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &archives); err != nil {
		return nil, fmt.Errorf("アーカイブデータのJSONアンマーシャル失敗: %w", err)
	}

	if len(archives) == 0 {
		return nil, fmt.Errorf("アーカイブID %s が見つかりません", id)
	}

	return &archives[0], nil
}

func (r *SupabaseTripArchiveRepository) ListByDestination(ctx context.Context, destination string, limit int) ([]model.TripArchiveSummary, error) {
	query := r.client.GetClient().From("trip_archives").Select("*", "exact", false)
	if destination != "" {
		query = query.Eq("destination", helper.NormalizeCityName(destination))
	}

	data, count, err := query.Limit(limit, "").Execute()
	if err != nil {
		return nil, fmt.Errorf("アーカイブ一覧の取得失敗 (limit=%s): %w", strconv.Itoa(limit), err)
	}
	_ = count

	var archives []model.TripArchive
	if err := json.Unmarshal([]byte(data), &archives); err != nil {
		return nil, fmt.Errorf("アーカイブ一覧のJSONアンマーシャル失敗: %w", err)
	}

	summaries := make([]model.TripArchiveSummary, 0, len(archives))
	for _, a := range archives {
		summaries = append(summaries, model.TripArchiveSummary{
			ID:                a.ID,
			Destination:       a.Destination,
			Title:             a.Title,
			TotalCostPHP:      a.TotalCostPHP,
			ActivityCount:     a.ActivityCount,
			OptimizationScore: a.OptimizationScore,
		})
	}

	return summaries, nil
}
