package service

import (
	"context"
	"log"
	"sync"
	"time"

	"Lakbay-App/internal/domain/model"
	"Lakbay-App/internal/domain/repository"
)

// ParallelActivityGeocoder は座標未設定のアクティビティを並行でジオコーディングする
type ParallelActivityGeocoder struct {
	geocoder      repository.GeocodingService
	maxGoroutines int
}

// NewParallelActivityGeocoder は新しい並行ジオコーダを作成する
func NewParallelActivityGeocoder(geocoder repository.GeocodingService) *ParallelActivityGeocoder {
	return &ParallelActivityGeocoder{
		geocoder:      geocoder,
		maxGoroutines: 5, // 同時実行数を制限
	}
}

// geocodeResult は1アクティビティ分のジオコーディング結果
type geocodeResult struct {
	index  int
	latLng model.LatLng
	ok     bool
	err    error
}

// FillCoordinates は座標が (0,0) のアクティビティに座標を補完する
// 個別の失敗は許容し、補完できた件数を返す（全体を中断させない）
func (p *ParallelActivityGeocoder) FillCoordinates(ctx context.Context, activities []*model.Activity, destination string) int {
	var targets []int
	for i, a := range activities {
		if a != nil && !a.HasCoordinates() {
			targets = append(targets, i)
		}
	}
	if len(targets) == 0 {
		return 0
	}

	log.Printf("🌏 並行ジオコーディング開始: %d件の座標を補完", len(targets))
	start := time.Now()

	// セマフォを使用して同時実行数を制限
	semaphore := make(chan struct{}, p.maxGoroutines)
	results := make(chan geocodeResult, len(targets))
	var wg sync.WaitGroup

	for _, idx := range targets {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			query := activities[index].Name + ", " + destination + ", Philippines"
			latLng, ok, err := p.geocoder.Geocode(ctx, query)
			results <- geocodeResult{index: index, latLng: latLng, ok: ok, err: err}
		}(idx)
	}

	// 別のgoroutineでwaitしてチャンネルを閉じる
	go func() {
		wg.Wait()
		close(results)
	}()

	filled := 0
	failed := 0
	for result := range results {
		if result.err != nil || !result.ok {
			failed++
			continue
		}
		activities[result.index].Location = result.latLng
		filled++
	}

	log.Printf("✅ 並行ジオコーディング完了: %v (補完:%d, 失敗:%d)", time.Since(start), filled, failed)
	return filled
}
