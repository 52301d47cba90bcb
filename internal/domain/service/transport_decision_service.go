package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"Lakbay-App/internal/domain/helper"
	"Lakbay-App/internal/domain/model"
	"Lakbay-App/internal/domain/repository"
)

// TransportDecisionService は2都市間の移動手段（陸路かフライトか）を判定するエンジン
// 呼び出しをまたぐ状態は持たず、参照テーブルは読み取り専用で共有される
type TransportDecisionService struct {
	geocoder repository.GeocodingService
}

// NewTransportDecisionService は新しい判定エンジンを作成する
// geocoder は実在ルートが無い場合の距離推定フォールバックに使う（nil可）
func NewTransportDecisionService(geocoder repository.GeocodingService) *TransportDecisionService {
	return &TransportDecisionService{geocoder: geocoder}
}

// Decide は出発地と目的地から移動手段の推奨を構造化して返す
// 入力不備以外では常に success-shaped な結果を返す（エラーを投げない）
func (s *TransportDecisionService) Decide(ctx context.Context, origin, destination string) model.TransportDecision {
	// Step 0: 入力チェック。不備の場合は安全側デフォルトとしてフライト検索を有効にする
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return model.TransportDecision{
			Mode:          model.ModeFlight,
			SearchFlights: true,
			InvalidInput:  true,
			Reason:        "出発地または目的地が指定されていません",
		}
	}

	// Step 1: 都市名の正規化
	originCity := helper.NormalizeCityName(origin)
	destCity := helper.NormalizeCityName(destination)

	// Step 2: 同一都市チェック
	if strings.EqualFold(originCity, destCity) {
		return model.TransportDecision{
			Mode:          model.ModeNone,
			SearchFlights: false,
			Reason:        "同一都市のため都市間移動は不要です",
		}
	}

	// Step 3: 実在ルートの参照
	if record, ok := model.LookupDocumentedRoute(originCity, destCity); ok {
		return s.decideFromDocumentedRoute(originCity, destCity, record)
	}

	// Step 4: ジオコーディングによる距離推定フォールバック
	if decision, ok := s.decideFromGeocodedEstimate(ctx, originCity, destCity); ok {
		return decision
	}

	// Step 5: 島嶼グループ境界チェック
	if model.CrossesIslandBoundary(originCity, destCity) {
		groupA, _ := model.IslandGroup(originCity)
		groupB, _ := model.IslandGroup(destCity)
		return model.TransportDecision{
			Mode:          model.ModeFlight,
			SearchFlights: true,
			Reason:        fmt.Sprintf("%s と %s の島嶼グループ境界（%s/%s）を越えるためフライトが必要です", originCity, destCity, groupA, groupB),
		}
	}

	// Step 6: 同一地域コリドーチェック
	if corridor, ok := model.SameCorridor(originCity, destCity); ok {
		return model.TransportDecision{
			Mode:          model.ModeGround,
			SearchFlights: false,
			Regional:      &model.RegionalContext{SameRegion: true, CorridorName: corridor.Name},
			Reason:        fmt.Sprintf("同一地域（%s）内の移動のため、%s での陸路移動が見込めます", corridor.Name, corridor.TypicalMode),
			Warnings:      []string{"具体的なルートデータがないため、現地で時刻・運賃の確認を推奨します"},
		}
	}

	// Step 7: 情報が無い場合のデフォルト
	return model.TransportDecision{
		Mode:          model.ModeFlight,
		SearchFlights: true,
		Reason:        "ルート情報がないため、デフォルトとしてフライトを推奨します",
	}
}

// decideFromDocumentedRoute は実在ルートデータに基づいて判定する
// 手動キュレーションのオーバーライドフラグは計算された利便性より常に優先される
func (s *TransportDecisionService) decideFromDocumentedRoute(originCity, destCity string, record model.TransportRouteRecord) model.TransportDecision {
	convenience := ClassifyConvenience(record.TravelHours, record.DistanceKm, record.HasFerry, record.HasOvernight, record.Scenic)

	ground := &model.GroundTransportDetails{
		DistanceKm:  record.DistanceKm,
		TravelHours: record.TravelHours,
		Modes:       record.Modes,
		CostMin:     record.CostMin,
		CostMax:     record.CostMax,
		Notes:       record.Notes,
	}

	// impractical オーバーライド: 分類結果に関わらずフライト必須
	if record.Impractical {
		return model.TransportDecision{
			Mode:          model.ModeFlight,
			SearchFlights: true,
			Convenience:   &convenience,
			Ground:        ground,
			Confidence:    model.ConfidenceHigh,
			Reason:        fmt.Sprintf("%s〜%s は陸路が非実用とマークされています", originCity, destCity),
			Warnings:      []string{"陸路は存在しますが推奨されません: " + record.Notes},
		}
	}

	// practical オーバーライド: 所要時間が閾値を超えていても陸路優先
	// （所要時間は長いが便数が非常に多いルートをモデル化している）
	if record.Practical && !convenience.Practical {
		log.Printf("⚠️  %s〜%s: practicalオーバーライドが計算結果(%s)を上書きします", originCity, destCity, convenience.Tier)
		overridden := model.ConvenienceResult{
			Tier:           model.TierAcceptable,
			Practical:      true,
			Recommendation: "便数が多く陸路移動が実用的です",
		}
		return model.TransportDecision{
			Mode:          model.ModeGround,
			SearchFlights: false,
			Convenience:   &overridden,
			Ground:        ground,
			Confidence:    model.ConfidenceHigh,
			Reason:        fmt.Sprintf("%s〜%s は所要%.1f時間ですが、実用ルートとして登録されています", originCity, destCity, record.TravelHours),
		}
	}

	if convenience.Practical {
		decision := model.TransportDecision{
			Mode:          model.ModeGround,
			SearchFlights: false,
			Convenience:   &convenience,
			Ground:        ground,
			Confidence:    model.ConfidenceHigh,
			Reason:        convenience.Recommendation,
		}
		if convenience.Tier == model.TierAcceptable {
			decision.Warnings = []string{"移動日として1日確保することを推奨します"}
		}
		return decision
	}

	return model.TransportDecision{
		Mode:          model.ModeFlight,
		SearchFlights: true,
		Convenience:   &convenience,
		Ground:        ground,
		Confidence:    model.ConfidenceHigh,
		Reason:        convenience.Recommendation,
	}
}

// decideFromGeocodedEstimate はジオコーディング+地形係数で距離を推定して判定する
// 推定に失敗した場合は ok=false を返し、次のフォールバックに委ねる
func (s *TransportDecisionService) decideFromGeocodedEstimate(ctx context.Context, originCity, destCity string) (model.TransportDecision, bool) {
	if s.geocoder == nil {
		return model.TransportDecision{}, false
	}

	originLoc, okA, errA := s.geocoder.Geocode(ctx, originCity+", Philippines")
	destLoc, okB, errB := s.geocoder.Geocode(ctx, destCity+", Philippines")
	if errA != nil || errB != nil || !okA || !okB {
		return model.TransportDecision{}, false
	}

	straightKm := helper.HaversineDistance(originLoc, destLoc)
	terrain := helper.ClassifyTerrain(originCity, destCity)
	roadKm := helper.RoadDistanceKm(straightKm, terrain)
	travelHours := helper.TravelTimeHours(roadKm, "bus", terrain)
	cost := helper.EstimateCost(roadKm, "bus", "aircon")

	convenience := ClassifyConvenience(travelHours, roadKm, false, false, false)
	ground := &model.GroundTransportDetails{
		DistanceKm:  roadKm,
		TravelHours: travelHours,
		Modes:       []string{"bus"},
		CostMin:     cost.Min,
		CostMax:     cost.Max,
		Notes:       fmt.Sprintf("ジオコーディング推定（地形: %s）", terrain),
	}

	if convenience.Practical {
		decision := model.TransportDecision{
			Mode:          model.ModeGround,
			SearchFlights: false,
			Convenience:   &convenience,
			Ground:        ground,
			Confidence:    model.ConfidenceMedium,
			Reason:        convenience.Recommendation,
			Warnings:      []string{"推定値に基づく判定のため、実際の所要時間は前後する可能性があります"},
		}
		return decision, true
	}

	return model.TransportDecision{
		Mode:          model.ModeFlight,
		SearchFlights: true,
		Convenience:   &convenience,
		Ground:        ground,
		Confidence:    model.ConfidenceMedium,
		Reason:        convenience.Recommendation,
	}, true
}
