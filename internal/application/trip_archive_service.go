package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"Lakbay-App/internal/domain/model"
	"Lakbay-App/internal/domain/repository"
)

// TripArchiveService 完成した旅行プランのアーカイブに関するビジネスロジックを提供するサービス
type TripArchiveService interface {
	// ArchivePlan 完成した旅行プランをアーカイブに保存する
	ArchivePlan(ctx context.Context, params *model.TripParameters, result *model.TripPlanResult) (*model.TripArchive, error)

	// ListByDestination 目的地ごとのアーカイブ一覧を取得する
	ListByDestination(ctx context.Context, destination string, limit int) ([]model.TripArchiveSummary, error)

	// GetArchive アーカイブの詳細を取得する
	GetArchive(ctx context.Context, id string) (*model.TripArchive, error)
}

// tripArchiveServiceImpl TripArchiveServiceの実装
type tripArchiveServiceImpl struct {
	archiveRepo repository.TripArchiveRepository
}

// NewTripArchiveService TripArchiveServiceの新しいインスタンスを作成
func NewTripArchiveService(archiveRepo repository.TripArchiveRepository) TripArchiveService {
	return &tripArchiveServiceImpl{archiveRepo: archiveRepo}
}

// ArchivePlan 完成した旅行プランをアーカイブに保存する
func (s *tripArchiveServiceImpl) ArchivePlan(ctx context.Context, params *model.TripParameters, result *model.TripPlanResult) (*model.TripArchive, error) {
	if result == nil || result.Itinerary == nil {
		return nil, fmt.Errorf("アーカイブ対象の旅程がありません")
	}

	archive := &model.TripArchive{
		ID:                uuid.New().String(),
		Destination:       params.Destination,
		Title:             fmt.Sprintf("%s %d日間の旅", params.Destination, params.NumDays()),
		StartDate:         params.StartDate.Format("2006-01-02"),
		EndDate:           params.EndDate.Format("2006-01-02"),
		Travelers:         params.Travelers,
		TotalCostPHP:      result.Costs.Total,
		ActivityCount:     result.Itinerary.TotalActivities,
		OptimizationScore: result.OptimizationScore,
		CreatedAt:         time.Now(),
	}

	if err := s.archiveRepo.Create(ctx, archive); err != nil {
		return nil, fmt.Errorf("アーカイブの保存失敗: %w", err)
	}

	return archive, nil
}

// ListByDestination 目的地ごとのアーカイブ一覧を取得する
func (s *tripArchiveServiceImpl) ListByDestination(ctx context.Context, destination string, limit int) ([]model.TripArchiveSummary, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.archiveRepo.ListByDestination(ctx, destination, limit)
}

// GetArchive アーカイブの詳細を取得する
func (s *tripArchiveServiceImpl) GetArchive(ctx context.Context, id string) (*model.TripArchive, error) {
	if id == "" {
		return nil, fmt.Errorf("アーカイブIDが指定されていません")
	}
	return s.archiveRepo.GetByID(ctx, id)
}
