package helper

import (
	"math"
	"sort"
	"strings"

	"Lakbay-App/internal/domain/model"
)

const earthRadiusKm = 6371.0

// HaversineDistance は2地点間の大圏距離を計算する (km)
func HaversineDistance(p1, p2 model.LatLng) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lng1 := p1.Lng * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lng2 := p2.Lng * math.Pi / 180
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// HaversineDistanceActivity は2つのアクティビティ間の距離を計算する (km)
func HaversineDistanceActivity(a1, a2 *model.Activity) float64 {
	return HaversineDistance(a1.Location, a2.Location)
}

// TerrainType 道路の地形分類
type TerrainType string

const (
	TerrainIsland      TerrainType = "island"
	TerrainMountainous TerrainType = "mountainous"
	TerrainUrban       TerrainType = "urban"
	TerrainHighway     TerrainType = "highway"
	TerrainCoastal     TerrainType = "coastal"
	TerrainNormal      TerrainType = "normal"
)

// circuityFactors 直線距離から道路距離を推定するための迂回係数
var circuityFactors = map[TerrainType]float64{
	TerrainIsland:      1.5,
	TerrainMountainous: 1.6,
	TerrainUrban:       1.3,
	TerrainHighway:     1.2,
	TerrainCoastal:     1.35,
	TerrainNormal:      1.4,
}

// islandProvinces 島嶼部として扱う州・都市
var islandProvinces = []string{
	"palawan", "el nido", "coron", "siargao", "camiguin", "boracay",
	"bohol", "siquijor", "batanes", "marinduque", "romblon",
}

// mountainousProvinces 山岳部として扱う州・都市
var mountainousProvinces = []string{
	"baguio", "sagada", "banaue", "bontoc", "kalinga", "benguet",
	"ifugao", "mountain province", "bukidnon", "apayao",
}

// expresswayPairs 高速道路で直結されている都市ペア
// 山岳部の都市（バギオ等）は山岳判定が優先されるためここには含めない
var expresswayPairs = map[string]bool{
	"manila|tagaytay": true, "batangas|manila": true, "clark|manila": true,
	"angeles|manila": true, "manila|subic": true,
	"la union|manila": true,
}

// metroManilaCities メトロマニラ圏内の都市
var metroManilaCities = []string{
	"manila", "quezon city", "makati", "taguig", "pasay", "pasig",
	"mandaluyong", "paranaque", "caloocan", "marikina",
}

// coastalCities 沿岸道路が主体の都市
var coastalCities = []string{
	"legazpi", "sorsogon", "dumaguete", "zamboanga", "dipolog",
	"puerto princesa", "tacloban", "surigao",
}

func containsCity(list []string, city string) bool {
	normalized := strings.ToLower(strings.TrimSpace(city))
	for _, c := range list {
		if strings.Contains(normalized, c) {
			return true
		}
	}
	return false
}

// ClassifyTerrain は2都市間の地形をベストエフォートで分類する
// 不明な場合は通常の地方道路として扱う
func ClassifyTerrain(cityA, cityB string) TerrainType {
	if containsCity(islandProvinces, cityA) || containsCity(islandProvinces, cityB) {
		return TerrainIsland
	}
	if containsCity(mountainousProvinces, cityA) || containsCity(mountainousProvinces, cityB) {
		return TerrainMountainous
	}
	a := strings.ToLower(strings.TrimSpace(cityA))
	b := strings.ToLower(strings.TrimSpace(cityB))
	if a > b {
		a, b = b, a
	}
	if expresswayPairs[a+"|"+b] {
		return TerrainHighway
	}
	if containsCity(metroManilaCities, cityA) && containsCity(metroManilaCities, cityB) {
		return TerrainUrban
	}
	if containsCity(coastalCities, cityA) || containsCity(coastalCities, cityB) {
		return TerrainCoastal
	}
	return TerrainNormal
}

// RoadDistanceKm は直線距離と地形から道路距離を推定する
func RoadDistanceKm(straightLineKm float64, terrain TerrainType) float64 {
	factor, ok := circuityFactors[terrain]
	if !ok {
		factor = circuityFactors[TerrainNormal]
	}
	return straightLineKm * factor
}

// averageSpeeds 移動手段×地形ごとの平均速度テーブル (km/h)
var averageSpeeds = map[string]map[TerrainType]float64{
	"bus": {
		TerrainHighway: 70, TerrainNormal: 50, TerrainMountainous: 30,
		TerrainUrban: 20, TerrainCoastal: 45, TerrainIsland: 40,
	},
	"van": {
		TerrainHighway: 80, TerrainNormal: 55, TerrainMountainous: 35,
		TerrainUrban: 25, TerrainCoastal: 50, TerrainIsland: 45,
	},
	"private": {
		TerrainHighway: 90, TerrainNormal: 60, TerrainMountainous: 40,
		TerrainUrban: 25, TerrainCoastal: 55, TerrainIsland: 50,
	},
	"car": {
		TerrainHighway: 90, TerrainNormal: 60, TerrainMountainous: 40,
		TerrainUrban: 25, TerrainCoastal: 55, TerrainIsland: 50,
	},
}

// TravelTimeHours は道路距離と移動手段・地形から所要時間を推定する
// 停車・乗降のため15〜20%のバッファを加える（山岳部ほど大きく）
func TravelTimeHours(roadDistanceKm float64, mode string, terrain TerrainType) float64 {
	speeds, ok := averageSpeeds[strings.ToLower(mode)]
	if !ok {
		speeds = averageSpeeds["bus"]
	}
	speed, ok := speeds[terrain]
	if !ok {
		speed = speeds[TerrainNormal]
	}
	baseHours := roadDistanceKm / speed
	buffer := 0.15
	if terrain == TerrainMountainous || terrain == TerrainIsland {
		buffer = 0.20
	}
	return baseHours * (1 + buffer)
}

// perKmRates 移動手段×快適性グレードごとの1kmあたり運賃（ペソ）
var perKmRates = map[string]map[string]float64{
	"bus":     {"ordinary": 2.0, "aircon": 2.75, "deluxe": 4.0},
	"van":     {"ordinary": 3.0, "aircon": 3.5},
	"ferry":   {"ordinary": 5.0, "aircon": 7.5},
	"private": {"ordinary": 12.0},
}

// CostRange 運賃の推定幅（ペソ）
type CostRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// EstimateCost は距離と移動手段から運賃を推定する
// ±15%の幅を持たせ、50ペソ単位に丸める
func EstimateCost(roadDistanceKm float64, mode, comfortTier string) CostRange {
	rates, ok := perKmRates[strings.ToLower(mode)]
	if !ok {
		rates = perKmRates["bus"]
	}
	rate, ok := rates[strings.ToLower(comfortTier)]
	if !ok {
		rate = rates["ordinary"]
	}
	base := roadDistanceKm * rate
	return CostRange{
		Min: roundToNearest50(base * 0.85),
		Max: roundToNearest50(base * 1.15),
	}
}

func roundToNearest50(v float64) float64 {
	return math.Round(v/50) * 50
}

// SortActivitiesByDistance は基準座標からの距離でアクティビティをソートする
func SortActivitiesByDistance(origin model.LatLng, targets []*model.Activity) {
	sort.Slice(targets, func(i, j int) bool {
		distI := HaversineDistance(origin, targets[i].Location)
		distJ := HaversineDistance(origin, targets[j].Location)
		return distI < distJ
	})
}

// DeduplicateActivities は識別キー（名前+丸めた座標）で重複を除外する
func DeduplicateActivities(activities []*model.Activity) []*model.Activity {
	seen := make(map[string]struct{}, len(activities))
	var result []*model.Activity
	for _, a := range activities {
		if a == nil {
			continue
		}
		key := a.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, a)
	}
	return result
}
