package model

import "time"

// TripArchive 完成した旅行プランのアーカイブレコード
// Firestoreのキャッシュと異なり、Supabase側に恒久保存される
type TripArchive struct {
	ID                string    `json:"id" db:"id"`
	Destination       string    `json:"destination" db:"destination"`
	Title             string    `json:"title" db:"title"`
	StartDate         string    `json:"start_date" db:"start_date"` // "2006-01-02" 形式
	EndDate           string    `json:"end_date" db:"end_date"`
	Travelers         int       `json:"travelers" db:"travelers"`
	TotalCostPHP      float64   `json:"total_cost_php" db:"total_cost_php"`
	ActivityCount     int       `json:"activity_count" db:"activity_count"`
	OptimizationScore float64   `json:"optimization_score" db:"optimization_score"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// TripArchiveSummary 一覧表示用のサマリ
type TripArchiveSummary struct {
	ID                string  `json:"id"`
	Destination       string  `json:"destination"`
	Title             string  `json:"title"`
	TotalCostPHP      float64 `json:"total_cost_php"`
	ActivityCount     int     `json:"activity_count"`
	OptimizationScore float64 `json:"optimization_score"`
}
