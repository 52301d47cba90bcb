package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Lakbay-App/internal/domain/model"
)

func TestDetectCategory(t *testing.T) {
	t.Run("キーワードからカテゴリを検出する", func(t *testing.T) {
		assert.Equal(t, model.CategoryRestaurant, DetectCategory("Aling Lucing Sisig", "famous restaurant in Angeles"))
		assert.Equal(t, model.CategoryMuseum, DetectCategory("National Museum of Fine Arts", ""))
		assert.Equal(t, model.CategoryPark, DetectCategory("Rizal Park", "historic urban park"))
		assert.Equal(t, model.CategoryShopping, DetectCategory("SM Mall of Asia", "largest mall"))
	})

	t.Run("大文字小文字を区別しない", func(t *testing.T) {
		assert.Equal(t, model.CategoryRestaurant, DetectCategory("BEST RESTAURANT", ""))
	})

	t.Run("マッチしない場合はattraction", func(t *testing.T) {
		assert.Equal(t, model.CategoryAttraction, DetectCategory("Magellan's Cross", "famous landmark"))
	})
}

func TestParsePrice(t *testing.T) {
	t.Run("通貨記号とカンマを除去して解析する", func(t *testing.T) {
		assert.Equal(t, 500.0, ParsePrice("₱500"))
		assert.Equal(t, 1200.0, ParsePrice("1,200"))
		assert.Equal(t, 350.0, ParsePrice("PHP 350"))
	})

	t.Run("無料表記はゼロ", func(t *testing.T) {
		assert.Equal(t, 0.0, ParsePrice("Free"))
		assert.Equal(t, 0.0, ParsePrice("無料"))
	})

	t.Run("価格幅は中央値を採用する", func(t *testing.T) {
		assert.Equal(t, 650.0, ParsePrice("500-800"))
	})

	t.Run("解析できない文字列はゼロ", func(t *testing.T) {
		assert.Equal(t, 0.0, ParsePrice("varies by season"))
		assert.Equal(t, 0.0, ParsePrice(""))
	})
}

func TestMatchKeywords(t *testing.T) {
	keywords := []string{"diving", "island", "beach"}

	assert.Equal(t, 2, MatchKeywords("Island hopping and beach day in Coron", keywords))
	assert.Equal(t, 0, MatchKeywords("museum tour", keywords))
}

func TestNormalizeCityName(t *testing.T) {
	assert.Equal(t, "Cebu", NormalizeCityName("Cebu City"))
	assert.Equal(t, "Makati", NormalizeCityName("Makati, Metro Manila"))
	assert.Equal(t, "El Nido", NormalizeCityName("  El Nido Municipality "))
	assert.Equal(t, "Davao", NormalizeCityName("Davao City, Mindanao"))
}

func TestPreferredSlots(t *testing.T) {
	t.Run("レストランは食事時間帯を推奨する", func(t *testing.T) {
		slots := PreferredSlots(model.CategoryRestaurant)
		assert.NotEmpty(t, slots)
	})

	t.Run("不明なカテゴリはデフォルトにフォールバック", func(t *testing.T) {
		assert.Equal(t,
			model.CategoryPreferredSlots[model.CategoryDefault],
			PreferredSlots(model.ActivityCategory("volcano_boarding")))
	})
}
