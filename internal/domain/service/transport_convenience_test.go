package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Lakbay-App/internal/domain/model"
)

func TestClassifyConvenience(t *testing.T) {
	t.Run("2時間以内かつ100km以内はVERY_CONVENIENT", func(t *testing.T) {
		result := ClassifyConvenience(1.5, 80, false, false, false)
		assert.Equal(t, model.TierVeryConvenient, result.Tier)
		assert.True(t, result.Practical)
	})

	t.Run("4時間以内かつ200km以内はCONVENIENT", func(t *testing.T) {
		result := ClassifyConvenience(3.5, 180, false, false, false)
		assert.Equal(t, model.TierConvenient, result.Tier)
		assert.True(t, result.Practical)
	})

	t.Run("6時間以内かつ300km以内はACCEPTABLE", func(t *testing.T) {
		result := ClassifyConvenience(5.5, 280, false, false, false)
		assert.Equal(t, model.TierAcceptable, result.Tier)
		assert.True(t, result.Practical)
	})

	t.Run("時間か距離のどちらかが閾値を超えると格下げ", func(t *testing.T) {
		// 時間は短いが距離が長い
		result := ClassifyConvenience(1.5, 150, false, false, false)
		assert.Equal(t, model.TierConvenient, result.Tier)
		// 距離は短いが時間が長い
		result = ClassifyConvenience(5.0, 90, false, false, false)
		assert.Equal(t, model.TierAcceptable, result.Tier)
	})

	t.Run("閾値超過はIMPRACTICAL", func(t *testing.T) {
		result := ClassifyConvenience(8, 450, false, false, false)
		assert.Equal(t, model.TierImpractical, result.Tier)
		assert.False(t, result.Practical)
	})

	t.Run("フェリーは所要時間のみで判定する", func(t *testing.T) {
		// セブ〜ボホール級の短距離フェリー
		result := ClassifyConvenience(2.0, 70, true, false, false)
		assert.Equal(t, model.TierVeryConvenient, result.Tier)

		result = ClassifyConvenience(4.5, 170, true, false, false)
		assert.Equal(t, model.TierConvenient, result.Tier)
	})

	t.Run("5時間超のフェリーは通常の閾値で判定する", func(t *testing.T) {
		// 長距離フェリーは同じ所要時間のバスと同等に扱う
		result := ClassifyConvenience(5.5, 250, true, false, false)
		assert.Equal(t, model.TierAcceptable, result.Tier)

		result = ClassifyConvenience(9, 400, true, false, false)
		assert.Equal(t, model.TierImpractical, result.Tier)
	})

	t.Run("夜行便がある場合はIMPRACTICALでも代替案を提示する", func(t *testing.T) {
		result := ClassifyConvenience(10, 500, false, true, false)
		assert.Equal(t, model.TierImpractical, result.Tier)
		assert.Contains(t, result.Recommendation, "夜行バス")
	})

	t.Run("時間が増えるほどティアは悪化する（単調性）", func(t *testing.T) {
		tierRank := map[model.ConvenienceTier]int{
			model.TierVeryConvenient: 0,
			model.TierConvenient:     1,
			model.TierAcceptable:     2,
			model.TierImpractical:    3,
		}
		previous := -1
		for _, hours := range []float64{1, 3, 5, 7} {
			result := ClassifyConvenience(hours, hours*60, false, false, false)
			rank := tierRank[result.Tier]
			assert.GreaterOrEqual(t, rank, previous)
			previous = rank
		}
	})
}
