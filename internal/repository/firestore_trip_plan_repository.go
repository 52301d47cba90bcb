package repository

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"Lakbay-App/internal/domain/model"
)

// FirestoreTripPlanRepository Firestoreを使用した旅行プランキャッシュリポジトリ
// 生成済みプランはTTL付きで保存され、期限切れ後はFirestore側で削除される
type FirestoreTripPlanRepository struct {
	client *firestore.Client
}

// NewFirestoreTripPlanRepository 新しいFirestoreTripPlanRepositoryインスタンスを作成
func NewFirestoreTripPlanRepository(client *firestore.Client) *FirestoreTripPlanRepository {
	return &FirestoreTripPlanRepository{client: client}
}

// SaveTripPlan は生成された旅行プランをFirestoreに保存し、plan_idを生成して返す
func (r *FirestoreTripPlanRepository) SaveTripPlan(ctx context.Context, result *model.TripPlanResult, ttlHours int) (string, error) {
	planID := fmt.Sprintf("temp_plan_%s", uuid.New().String())

	firestoreData := result.ToFirestoreTripPlan(ttlHours)

	_, err := r.client.Collection("tripPlans").Doc(planID).Set(ctx, firestoreData)
	if err != nil {
		log.Printf("❌ Failed to save trip plan %s: %v", planID, err)
		return "", fmt.Errorf("旅行プランの保存に失敗しました: %w", err)
	}

	log.Printf("✅ Trip plan saved: %s (expires in %d hours)", planID, ttlHours)
	return planID, nil
}

// GetTripPlan は指定されたplan_idの旅行プランをFirestoreから取得する
func (r *FirestoreTripPlanRepository) GetTripPlan(ctx context.Context, planID string) (*model.TripPlanResult, error) {
	doc, err := r.client.Collection("tripPlans").Doc(planID).Get(ctx)
	if err != nil {
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("旅行プランが見つかりません（有効期限切れまたは無効なID）: %s", planID)
		}
		return nil, fmt.Errorf("旅行プランの取得に失敗しました: %w", err)
	}

	var firestoreData model.FirestoreTripPlan
	if err := doc.DataTo(&firestoreData); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}

	return firestoreData.ToTripPlanResult(planID), nil
}
