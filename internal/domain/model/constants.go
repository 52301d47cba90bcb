package model

// TimeSlot 1日の時間帯スロット
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotLunch     TimeSlot = "lunch"
	SlotAfternoon TimeSlot = "afternoon"
	SlotDinner    TimeSlot = "dinner"
	SlotEvening   TimeSlot = "evening"
)

// SlotOrder 時間帯スロットの時系列順
var SlotOrder = []TimeSlot{SlotMorning, SlotLunch, SlotAfternoon, SlotDinner, SlotEvening}

// CategoryKeywordRule カテゴリ検出のための順序付き部分文字列ルール
// ルールはテーブルとして保持し、分類関数とは独立にテストできるようにする
type CategoryKeywordRule struct {
	Category ActivityCategory
	Keywords []string
}

// CategoryKeywordRules 先頭から順に評価される（最初にマッチしたルールが勝つ）
var CategoryKeywordRules = []CategoryKeywordRule{
	{CategoryRestaurant, []string{"restaurant", "cafe", "carinderia", "eatery", "grill", "diner", "bistro", "food", "lechon", "seafood"}},
	{CategoryMuseum, []string{"museum", "gallery", "heritage", "shrine", "memorial", "historical"}},
	{CategoryPark, []string{"park", "garden", "falls", "beach", "lake", "nature", "hill", "island hopping"}},
	{CategoryShopping, []string{"mall", "market", "shopping", "souvenir", "tiangge", "bazaar"}},
	{CategoryHotel, []string{"hotel", "resort", "hostel", "inn", "lodge"}},
	{CategoryEntertainment, []string{"bar", "club", "nightlife", "karaoke", "show", "theater", "casino"}},
}

// CategoryPreferredSlots カテゴリごとの推奨時間帯（先頭が第一希望）
var CategoryPreferredSlots = map[ActivityCategory][]TimeSlot{
	CategoryAttraction:    {SlotMorning, SlotAfternoon},
	CategoryRestaurant:    {SlotLunch, SlotDinner},
	CategoryMuseum:        {SlotMorning, SlotAfternoon},
	CategoryPark:          {SlotMorning, SlotAfternoon},
	CategoryShopping:      {SlotAfternoon, SlotEvening},
	CategoryEntertainment: {SlotEvening},
	CategoryHotel:         {SlotEvening},
	CategoryDefault:       {SlotAfternoon},
}

// CategoryPriority 同一スロット内での並び順（小さいほど先）
var CategoryPriority = map[ActivityCategory]int{
	CategoryAttraction:    1,
	CategoryMuseum:        2,
	CategoryPark:          3,
	CategoryRestaurant:    4,
	CategoryShopping:      5,
	CategoryEntertainment: 6,
	CategoryHotel:         7,
	CategoryDefault:       8,
}

// TripTypeKeywords 旅行タイプごとの嗜好マッチング用キーワード辞書
var TripTypeKeywords = map[string][]string{
	"adventure":  {"hiking", "trek", "diving", "surf", "kayak", "zipline", "climb", "cave", "canyoneering"},
	"food":       {"restaurant", "food", "cuisine", "market", "lechon", "seafood", "delicacy", "cafe"},
	"culture":    {"heritage", "museum", "church", "historical", "festival", "shrine", "colonial", "tradition"},
	"nature":     {"falls", "beach", "island", "mountain", "lake", "forest", "sanctuary", "lagoon", "reef"},
	"relaxation": {"spa", "resort", "beach", "massage", "hot spring", "sunset"},
	"nightlife":  {"bar", "club", "nightlife", "karaoke", "night market"},
	"family":     {"park", "zoo", "aquarium", "theme park", "museum", "kid"},
}

// TravelStyleKeywords 旅行スタイルごとのキーワード辞書
var TravelStyleKeywords = map[string][]string{
	"relaxed":  {"beach", "spa", "cafe", "park", "scenic", "sunset"},
	"packed":   {"tour", "hopping", "trek", "adventure", "market"},
	"budget":   {"free", "public", "street", "local", "carinderia"},
	"luxury":   {"resort", "fine dining", "private", "exclusive", "5-star"},
	"cultural": {"museum", "heritage", "church", "historical", "festival"},
	"romantic": {"sunset", "dinner", "scenic", "private", "beach"},
}

// LegacyActivityTypeKeywords 旧アクティビティタイプタグのキーワード
// 古いクライアントが送るタグとの後方互換用
var LegacyActivityTypeKeywords = map[string][]string{
	"sightseeing": {"view", "tour", "landmark", "scenic", "attraction"},
	"beach":       {"beach", "island", "snorkel", "swim", "shore"},
	"hiking":      {"hike", "trek", "trail", "mountain", "summit"},
	"shopping":    {"mall", "market", "souvenir", "shopping"},
}
