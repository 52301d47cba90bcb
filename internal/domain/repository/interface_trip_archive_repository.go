package repository

import (
	"context"

	"Lakbay-App/internal/domain/model"
)

// TripArchiveRepository は完成した旅行プランのアーカイブリポジトリインターフェース
type TripArchiveRepository interface {
	Create(ctx context.Context, archive *model.TripArchive) error
	GetByID(ctx context.Context, id string) (*model.TripArchive, error)
	ListByDestination(ctx context.Context, destination string, limit int) ([]model.TripArchiveSummary, error)
}
