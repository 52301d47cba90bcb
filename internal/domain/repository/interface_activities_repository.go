package repository

import (
	"context"

	"Lakbay-App/internal/domain/model"
)

// ActivitiesRepository は目的地周辺のアクティビティ候補プールを提供するリポジトリインターフェース
type ActivitiesRepository interface {
	// FindByDestination は目的地と嗜好タグに基づいてアクティビティを検索する（空の場合もある）
	FindByDestination(ctx context.Context, destination string, preferenceTags []string, radiusKm float64, limit int) ([]*model.Activity, error)

	// FindNearby は座標と半径に基づいてアクティビティを検索する
	FindNearby(ctx context.Context, center model.LatLng, radiusKm float64, limit int) ([]*model.Activity, error)
}
