package model

import "strings"

// routeKey 都市ペアの順不同キーを生成する（アルファベット順に連結）
func routeKey(cityA, cityB string) string {
	a := strings.ToLower(strings.TrimSpace(cityA))
	b := strings.ToLower(strings.TrimSpace(cityB))
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// documentedRoutes 実在する陸路ルートの参照テーブル
// 起動時に一度だけ定義され、読み取り専用で全リクエストから共有される
var documentedRoutes = map[string]TransportRouteRecord{
	routeKey("Manila", "Baguio"): {
		DistanceKm:  250,
		TravelHours: 4.5,
		Modes:       []string{"bus"},
		Operators:   []string{"Victory Liner", "Joy Bus"},
		CostMin:     450,
		CostMax:     780,
		Frequency:   "hourly",
		Scenic:      true,
		Notes:       "TPLEX経由で大幅に短縮。夜行便も多数",
	},
	routeKey("Manila", "Batangas"): {
		DistanceKm:  110,
		TravelHours: 2,
		Modes:       []string{"bus", "van"},
		Operators:   []string{"JAM Liner", "DLTB"},
		CostMin:     180,
		CostMax:     300,
		Frequency:   "every 30 minutes",
	},
	routeKey("Manila", "Tagaytay"): {
		DistanceKm:  65,
		TravelHours: 1.5,
		Modes:       []string{"bus", "van"},
		Operators:   []string{"DLTB", "San Agustin"},
		CostMin:     120,
		CostMax:     250,
		Frequency:   "every 30 minutes",
	},
	routeKey("Manila", "Vigan"): {
		DistanceKm:   400,
		TravelHours:  8,
		Modes:        []string{"bus"},
		Operators:    []string{"Partas", "Dominion"},
		CostMin:      700,
		CostMax:      1100,
		Frequency:    "several daily",
		HasOvernight: true,
		Notes:        "夜行バスが主流",
	},
	routeKey("Manila", "Legazpi"): {
		DistanceKm:   550,
		TravelHours:  12,
		Modes:        []string{"bus"},
		Operators:    []string{"DLTB", "Isarog"},
		CostMin:      900,
		CostMax:      1500,
		Frequency:    "daily",
		HasOvernight: true,
		Impractical:  true,
		Notes:        "長距離のためフライト推奨",
	},
	routeKey("Cebu", "Bohol"): {
		DistanceKm:  70,
		TravelHours: 2,
		Modes:       []string{"ferry"},
		Operators:   []string{"OceanJet", "SuperCat"},
		CostMin:     500,
		CostMax:     800,
		Frequency:   "hourly",
		HasFerry:    true,
		Scenic:      true,
		Notes:       "高速フェリーで2時間",
	},
	routeKey("Cebu", "Dumaguete"): {
		DistanceKm:  160,
		TravelHours: 4.5,
		Modes:       []string{"ferry", "bus"},
		Operators:   []string{"OceanJet", "Ceres Liner"},
		CostMin:     700,
		CostMax:     1200,
		Frequency:   "several daily",
		HasFerry:    true,
	},
	routeKey("Iloilo", "Bacolod"): {
		DistanceKm:  55,
		TravelHours: 1.5,
		Modes:       []string{"ferry"},
		Operators:   []string{"OceanJet", "FastCat"},
		CostMin:     300,
		CostMax:     600,
		Frequency:   "hourly",
		HasFerry:    true,
	},
	routeKey("Zamboanga", "Pagadian"): {
		DistanceKm:  220,
		TravelHours: 6.5,
		Modes:       []string{"bus", "van"},
		Operators:   []string{"Rural Transit"},
		CostMin:     350,
		CostMax:     550,
		Frequency:   "every 30 minutes",
		Practical:   true,
		Notes:       "所要時間は長いが便数が非常に多く実用的",
	},
	routeKey("Davao", "Cagayan de Oro"): {
		DistanceKm:   390,
		TravelHours:  8,
		Modes:        []string{"bus"},
		Operators:    []string{"Rural Transit", "Super 5"},
		CostMin:      600,
		CostMax:      1000,
		Frequency:    "hourly",
		HasOvernight: true,
	},
	routeKey("Davao", "General Santos"): {
		DistanceKm:  150,
		TravelHours: 3,
		Modes:       []string{"bus", "van"},
		Operators:   []string{"Yellow Bus Line"},
		CostMin:     250,
		CostMax:     400,
		Frequency:   "every 30 minutes",
	},
	routeKey("Puerto Princesa", "El Nido"): {
		DistanceKm:  230,
		TravelHours: 5.5,
		Modes:       []string{"van", "bus"},
		Operators:   []string{"Daytripper", "Cherry Bus"},
		CostMin:     500,
		CostMax:     800,
		Frequency:   "hourly",
		Scenic:      true,
		Practical:   true,
		Notes:       "空港がある唯一の実用的な経路のため便数が多い",
	},
	routeKey("Manila", "Banaue"): {
		DistanceKm:   350,
		TravelHours:  9,
		Modes:        []string{"bus"},
		Operators:    []string{"Ohayami Trans", "Coda Lines"},
		CostMin:      600,
		CostMax:      1000,
		Frequency:    "nightly",
		HasOvernight: true,
		Scenic:       true,
		Practical:    true,
		Notes:        "空港がないため夜行バスが事実上の唯一の手段",
	},
	routeKey("Cebu", "Moalboal"): {
		DistanceKm:  90,
		TravelHours: 3,
		Modes:       []string{"bus", "van"},
		Operators:   []string{"Ceres Liner"},
		CostMin:     150,
		CostMax:     300,
		Frequency:   "every 30 minutes",
	},
}

// LookupDocumentedRoute 都市ペアをキーに実在ルートを参照する（順不同）
func LookupDocumentedRoute(cityA, cityB string) (TransportRouteRecord, bool) {
	record, ok := documentedRoutes[routeKey(cityA, cityB)]
	return record, ok
}

// RegionalCorridor 輸送インフラを共有する都市クラスタ
type RegionalCorridor struct {
	Name            string   `json:"name"`
	Cities          []string `json:"cities"`
	TypicalMode     string   `json:"typical_mode"`
	RecommendGround bool     `json:"recommend_ground"`
}

// regionalCorridors 地域コリドーのテーブル
var regionalCorridors = []RegionalCorridor{
	{
		Name:            "Central Luzon Corridor",
		Cities:          []string{"manila", "tagaytay", "batangas", "subic", "clark", "angeles"},
		TypicalMode:     "bus",
		RecommendGround: true,
	},
	{
		Name:            "Northern Luzon Corridor",
		Cities:          []string{"baguio", "vigan", "laoag", "sagada", "banaue", "la union", "san fernando"},
		TypicalMode:     "bus",
		RecommendGround: true,
	},
	{
		Name:            "Bicol Corridor",
		Cities:          []string{"naga", "legazpi", "sorsogon", "daet"},
		TypicalMode:     "bus",
		RecommendGround: true,
	},
	{
		Name:            "Central Visayas Corridor",
		Cities:          []string{"cebu", "bohol", "tagbilaran", "dumaguete", "moalboal", "oslob", "bais"},
		TypicalMode:     "ferry",
		RecommendGround: true,
	},
	{
		Name:            "Western Visayas Corridor",
		Cities:          []string{"iloilo", "bacolod", "roxas", "kalibo", "caticlan", "boracay"},
		TypicalMode:     "bus",
		RecommendGround: true,
	},
	{
		Name:            "Palawan Corridor",
		Cities:          []string{"puerto princesa", "el nido", "san vicente", "coron"},
		TypicalMode:     "van",
		RecommendGround: true,
	},
	{
		Name:            "Northern Mindanao Corridor",
		Cities:          []string{"cagayan de oro", "iligan", "butuan", "camiguin"},
		TypicalMode:     "bus",
		RecommendGround: true,
	},
	{
		Name:            "Southern Mindanao Corridor",
		Cities:          []string{"davao", "general santos", "tagum", "digos"},
		TypicalMode:     "bus",
		RecommendGround: true,
	},
	{
		Name:            "Zamboanga Peninsula Corridor",
		Cities:          []string{"zamboanga", "pagadian", "dipolog", "ipil"},
		TypicalMode:     "bus",
		RecommendGround: true,
	},
}

// FindCorridor 都市が属する地域コリドーを検索する
func FindCorridor(city string) (RegionalCorridor, bool) {
	normalized := strings.ToLower(strings.TrimSpace(city))
	for _, corridor := range regionalCorridors {
		for _, c := range corridor.Cities {
			if c == normalized {
				return corridor, true
			}
		}
	}
	return RegionalCorridor{}, false
}

// SameCorridor 2都市が同じコリドーに属するかを判定する
func SameCorridor(cityA, cityB string) (RegionalCorridor, bool) {
	corridorA, okA := FindCorridor(cityA)
	if !okA {
		return RegionalCorridor{}, false
	}
	corridorB, okB := FindCorridor(cityB)
	if !okB || corridorA.Name != corridorB.Name {
		return RegionalCorridor{}, false
	}
	return corridorA, true
}

// islandGroups 主要な地理的境界（島嶼グループ）テーブル
var islandGroups = map[string]string{
	// Luzon
	"manila": "luzon", "baguio": "luzon", "vigan": "luzon", "laoag": "luzon",
	"tagaytay": "luzon", "batangas": "luzon", "subic": "luzon", "clark": "luzon",
	"angeles": "luzon", "naga": "luzon", "legazpi": "luzon", "banaue": "luzon",
	"sagada": "luzon", "la union": "luzon", "puerto princesa": "luzon",
	"el nido": "luzon", "coron": "luzon",
	// Visayas
	"cebu": "visayas", "bohol": "visayas", "tagbilaran": "visayas",
	"dumaguete": "visayas", "iloilo": "visayas", "bacolod": "visayas",
	"kalibo": "visayas", "caticlan": "visayas", "boracay": "visayas",
	"tacloban": "visayas", "roxas": "visayas", "moalboal": "visayas",
	"oslob": "visayas",
	// Mindanao
	"davao": "mindanao", "cagayan de oro": "mindanao", "zamboanga": "mindanao",
	"pagadian": "mindanao", "general santos": "mindanao", "butuan": "mindanao",
	"iligan": "mindanao", "surigao": "mindanao", "siargao": "mindanao",
	"camiguin": "mindanao", "dipolog": "mindanao",
}

// IslandGroup 都市が属する島嶼グループを取得する
func IslandGroup(city string) (string, bool) {
	group, ok := islandGroups[strings.ToLower(strings.TrimSpace(city))]
	return group, ok
}

// CrossesIslandBoundary 2都市が異なる島嶼グループに属するかを判定する
// どちらかが不明な場合は false を返す（境界越えと断定できないため）
func CrossesIslandBoundary(cityA, cityB string) bool {
	groupA, okA := IslandGroup(cityA)
	groupB, okB := IslandGroup(cityB)
	return okA && okB && groupA != groupB
}

// alternativeAirports 目的地ごとの代替空港テーブル
// フライト検索が0件のとき、最初の代替空港で1回だけ再検索する
var alternativeAirports = map[string][]string{
	"boracay":   {"KLO"}, // Caticlan満席時はKaliboへ
	"caticlan":  {"KLO"},
	"el nido":   {"PPS"}, // El Nido直行が取れない場合はPuerto Princesa
	"sagada":    {"BAG"},
	"banaue":    {"BAG"},
	"moalboal":  {"CEB"},
	"oslob":     {"CEB"},
	"camiguin":  {"CGY"},
	"siargao":   {"SUG"},
	"dumaguete": {"CEB"},
}

// AlternativeAirports 目的地の代替空港コード一覧を取得する
func AlternativeAirports(city string) []string {
	return alternativeAirports[strings.ToLower(strings.TrimSpace(city))]
}

// primaryAirports 都市の最寄り空港コードテーブル
var primaryAirports = map[string]string{
	"manila":          "MNL",
	"quezon city":     "MNL",
	"makati":          "MNL",
	"clark":           "CRK",
	"angeles":         "CRK",
	"baguio":          "BAG",
	"sagada":          "BAG",
	"banaue":          "BAG",
	"legazpi":         "LGP",
	"naga":            "WNP",
	"puerto princesa": "PPS",
	"el nido":         "ENI",
	"coron":           "USU",
	"cebu":            "CEB",
	"moalboal":        "CEB",
	"oslob":           "CEB",
	"bohol":           "TAG",
	"tagbilaran":      "TAG",
	"boracay":         "MPH",
	"caticlan":        "MPH",
	"kalibo":          "KLO",
	"iloilo":          "ILO",
	"bacolod":         "BCD",
	"dumaguete":       "DGT",
	"tacloban":        "TAC",
	"davao":           "DVO",
	"cagayan de oro":  "CGY",
	"camiguin":        "CGM",
	"zamboanga":       "ZAM",
	"pagadian":        "PAG",
	"general santos":  "GES",
	"butuan":          "BXU",
	"siargao":         "IAO",
	"surigao":         "SUG",
	"dipolog":         "DPL",
}

// PrimaryAirport 都市の最寄り空港コードを取得する
// 不明な都市はマニラ（MNL）をデフォルトとする
func PrimaryAirport(city string) string {
	if code, ok := primaryAirports[strings.ToLower(strings.TrimSpace(city))]; ok {
		return code
	}
	return "MNL"
}
