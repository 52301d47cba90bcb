package service

import (
	"Lakbay-App/internal/domain/model"
)

// ClassifyConvenience は移動時間・距離・フラグから陸路の利便性を4段階で分類する
// ルールは優先順で評価される純粋関数であり、副作用を持たない
func ClassifyConvenience(travelHours, distanceKm float64, hasFerry, hasOvernight, scenic bool) model.ConvenienceResult {
	// フェリー経路は所要時間のみで判定する（海峡越えに距離はあてにならない）
	if hasFerry {
		if travelHours <= 2 {
			return model.ConvenienceResult{
				Tier:           model.TierVeryConvenient,
				Practical:      true,
				Recommendation: "高速フェリーで快適に移動できます",
			}
		}
		if travelHours <= 5 {
			return model.ConvenienceResult{
				Tier:           model.TierConvenient,
				Practical:      true,
				Recommendation: "フェリー移動が現実的な選択肢です",
			}
		}
	}

	if travelHours <= 2 && distanceKm <= 100 {
		return model.ConvenienceResult{
			Tier:           model.TierVeryConvenient,
			Practical:      true,
			Recommendation: "陸路での移動が最も便利です",
		}
	}

	if travelHours <= 4 && distanceKm <= 200 {
		return model.ConvenienceResult{
			Tier:           model.TierConvenient,
			Practical:      true,
			Recommendation: "陸路での移動が十分現実的です",
		}
	}

	if travelHours <= 6 && distanceKm <= 300 {
		return model.ConvenienceResult{
			Tier:           model.TierAcceptable,
			Practical:      true,
			Recommendation: "陸路移動は可能ですが移動日として計画してください",
		}
	}

	recommendation := "フライトを推奨します"
	if hasOvernight {
		recommendation += "。代替として夜行バスも利用できます"
	} else {
		recommendation += "。陸路の場合は途中都市での分割を検討してください"
	}
	return model.ConvenienceResult{
		Tier:           model.TierImpractical,
		Practical:      false,
		Recommendation: recommendation,
	}
}
