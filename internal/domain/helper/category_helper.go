package helper

import (
	"strconv"
	"strings"

	"Lakbay-App/internal/domain/model"
)

// DetectCategory は名前と詳細テキストからカテゴリを検出する
// model.CategoryKeywordRules を先頭から評価し、最初にマッチしたカテゴリを返す
// どのルールにもマッチしないものは attraction として扱う
func DetectCategory(name, details string) model.ActivityCategory {
	text := strings.ToLower(name + " " + details)
	for _, rule := range model.CategoryKeywordRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, keyword) {
				return rule.Category
			}
		}
	}
	return model.CategoryAttraction
}

// PreferredSlots はカテゴリの推奨時間帯スロットを取得する
func PreferredSlots(category model.ActivityCategory) []model.TimeSlot {
	if slots, ok := model.CategoryPreferredSlots[category]; ok {
		return slots
	}
	return model.CategoryPreferredSlots[model.CategoryDefault]
}

// ParsePrice はチケット価格文字列を数値（ペソ）に変換する
// "₱500"、"500-800"（幅の場合は中央値）、"1,200" などの形式を許容する
// 解析できない場合は 0 を返す（エラーにはしない）
func ParsePrice(price string) float64 {
	s := strings.TrimSpace(price)
	if s == "" {
		return 0
	}
	s = strings.ToLower(s)
	if strings.Contains(s, "free") || strings.Contains(s, "無料") {
		return 0
	}

	// 通貨記号とカンマを除去
	replacer := strings.NewReplacer("₱", "", "php", "", "p", "", ",", "", " ", "")
	s = replacer.Replace(s)

	// "500-800" のような幅は中央値を採用
	if idx := strings.Index(s, "-"); idx > 0 {
		minVal, errMin := strconv.ParseFloat(s[:idx], 64)
		maxVal, errMax := strconv.ParseFloat(s[idx+1:], 64)
		if errMin == nil && errMax == nil {
			return (minVal + maxVal) / 2
		}
		if errMin == nil {
			return minVal
		}
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return value
}

// MatchKeywords はテキストとキーワード群の一致数を数える
func MatchKeywords(text string, keywords []string) int {
	lowered := strings.ToLower(text)
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			count++
		}
	}
	return count
}

// NormalizeCityName は都市名を正規化する
// 末尾の "City" / "Municipality" を除去し、カンマの前のテキストのみ採用する
func NormalizeCityName(city string) string {
	s := strings.TrimSpace(city)
	if idx := strings.Index(s, ","); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)
	for _, suffix := range []string{" City", " city", " Municipality", " municipality"} {
		s = strings.TrimSuffix(s, suffix)
	}
	return strings.TrimSpace(s)
}
