package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"Lakbay-App/internal/application"
	"Lakbay-App/internal/domain/helper"
	"Lakbay-App/internal/domain/model"
	"Lakbay-App/internal/domain/repository"
	"Lakbay-App/internal/domain/service"
	repoImpl "Lakbay-App/internal/repository"
)

const (
	activitySearchRadiusKm = 30.0
	activityPoolLimit      = 60
	planTTLHours           = 24
)

// ValidationError 入力不備を表すエラー（400系として扱う）
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// TripPlanUseCase 旅行プラン作成のオーケストレーションを行うユースケース
type TripPlanUseCase interface {
	// PlanTrip はリクエストから旅行プランを生成し、Firestoreに保存して結果を返す
	// サブシステムの失敗はエラーリストとして結果に添付され、致命傷にはならない
	PlanTrip(ctx context.Context, req *model.TripPlanRequest) (*model.TripPlanResult, error)

	// GetTripPlan は指定されたplan_idの旅行プランをFirestoreから取得する
	GetTripPlan(ctx context.Context, planID string) (*model.TripPlanResult, error)
}

// tripPlanUseCaseImpl はTripPlanUseCaseの実装
type tripPlanUseCaseImpl struct {
	transportService *service.TransportDecisionService
	activitiesRepo   repository.ActivitiesRepository
	flightClient     repository.FlightSearchClient
	hotelClient      repository.HotelSearchClient
	geocoder         repository.GeocodingService
	firestoreRepo    *repoImpl.FirestoreTripPlanRepository
	archiveService   application.TripArchiveService
	gaConfig         service.GeneticConfig
}

// NewTripPlanUseCase は新しいTripPlanUseCaseインスタンスを作成
// firestoreRepo と archiveService は nil 許容（保存をスキップする）
func NewTripPlanUseCase(
	transportService *service.TransportDecisionService,
	activitiesRepo repository.ActivitiesRepository,
	flightClient repository.FlightSearchClient,
	hotelClient repository.HotelSearchClient,
	geocoder repository.GeocodingService,
	firestoreRepo *repoImpl.FirestoreTripPlanRepository,
	archiveService application.TripArchiveService,
) TripPlanUseCase {
	return &tripPlanUseCaseImpl{
		transportService: transportService,
		activitiesRepo:   activitiesRepo,
		flightClient:     flightClient,
		hotelClient:      hotelClient,
		geocoder:         geocoder,
		firestoreRepo:    firestoreRepo,
		archiveService:   archiveService,
		gaConfig:         service.DefaultGeneticConfig(),
	}
}

// PlanTrip はリクエストから旅行プランを生成する
// PARSE → 交通手段判定 → フライト/ホテル/旅程の並行実行 → マージ → 保存
func (u *tripPlanUseCaseImpl) PlanTrip(ctx context.Context, req *model.TripPlanRequest) (*model.TripPlanResult, error) {
	params, err := u.parseRequest(req)
	if err != nil {
		return nil, err
	}

	log.Printf("🚀 旅行プラン生成開始 (%s → %s, %d日間, %d名)",
		params.Origin, params.Destination, params.NumDays(), params.Travelers)

	result := &model.TripPlanResult{
		Success:     true,
		Destination: params.Destination,
	}

	// Step 1: 交通手段の判定（フライト検索をスケジュールするかを先に決める）
	decision := u.transportService.Decide(ctx, params.Origin, params.Destination)
	result.Transport = &decision

	// Step 2: フライト・ホテル・旅程を並行実行
	// 各タスクの失敗は個別に記録し、兄弟タスクも全体も中断しない
	type taskResult struct {
		name      string
		flights   []model.FlightOption
		hotels    []model.HotelOption
		itinerary *model.OptimizedItinerary
		err       error
	}

	taskCount := 1 // 旅程は常に実行
	if decision.SearchFlights {
		taskCount++
	}
	if u.hotelClient != nil {
		taskCount++
	}

	resultChan := make(chan taskResult, taskCount)
	var wg sync.WaitGroup

	if decision.SearchFlights {
		wg.Add(1)
		go func() {
			defer wg.Done()
			flights, err := u.searchFlights(ctx, params)
			resultChan <- taskResult{name: "flights", flights: flights, err: err}
		}()
	}

	if u.hotelClient != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hotels, err := u.hotelClient.SearchHotels(ctx,
				params.Destination, params.StartDate, params.EndDate, params.Travelers, params.BudgetTier)
			resultChan <- taskResult{name: "hotels", hotels: hotels, err: err}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		itinerary, err := u.buildItinerary(ctx, params)
		resultChan <- taskResult{name: "itinerary", itinerary: itinerary, err: err}
	}()

	// 別のgoroutineでwaitしてチャンネルを閉じる
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	for task := range resultChan {
		if task.err != nil {
			log.Printf("⚠️ %s タスク失敗: %v", task.name, task.err)
			result.AddError(task.name, task.err)
			continue
		}
		switch task.name {
		case "flights":
			result.Flights = task.flights
			result.Completion.FlightsSearched = true
		case "hotels":
			result.Hotels = task.hotels
			result.Completion.HotelsSearched = true
		case "itinerary":
			result.Itinerary = task.itinerary
			result.Completion.ItineraryOptimized = task.itinerary != nil
		}
	}

	// Step 3: マージ（推奨フライト・ホテルの選定と費用集計）
	u.merge(result, params, &decision)

	log.Printf("✅ 旅行プラン生成完了 (スコア%.1f, 総費用₱%.0f, エラー%d件)",
		result.OptimizationScore, result.Costs.Total, len(result.Errors))

	// Step 4: Firestoreに保存（失敗してもプラン自体は返す）
	if u.firestoreRepo != nil {
		planID, err := u.firestoreRepo.SaveTripPlan(ctx, result, planTTLHours)
		if err != nil {
			log.Printf("⚠️ Firestore保存失敗: %v", err)
			result.AddError("storage", err)
		} else {
			result.PlanID = planID
		}
	}

	// アーカイブはベストエフォート
	if u.archiveService != nil && result.Itinerary != nil {
		if _, err := u.archiveService.ArchivePlan(ctx, params, result); err != nil {
			log.Printf("⚠️ アーカイブ保存失敗: %v", err)
		}
	}

	return result, nil
}

// newPlanRand はリクエストごとに独立した乱数源を作る
// 静的な参照テーブル以外の状態はリクエスト間で共有しない
func newPlanRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// GetTripPlan は指定されたplan_idの旅行プランをFirestoreから取得する
func (u *tripPlanUseCaseImpl) GetTripPlan(ctx context.Context, planID string) (*model.TripPlanResult, error) {
	if u.firestoreRepo == nil {
		return nil, fmt.Errorf("プラン保存ストレージが設定されていません")
	}
	return u.firestoreRepo.GetTripPlan(ctx, planID)
}

// parseRequest はリクエストを検証して旅行条件に変換する
// 必須項目の欠落と不正な日付範囲は ValidationError として即座に失敗させる
func (u *tripPlanUseCaseImpl) parseRequest(req *model.TripPlanRequest) (*model.TripParameters, error) {
	if req == nil {
		return nil, &ValidationError{Field: "request", Message: "リクエストボディが必要です"}
	}
	if req.Destination == "" {
		return nil, &ValidationError{Field: "destination", Message: "目的地は必須です"}
	}
	if req.Budget == "" && req.BudgetPHP <= 0 {
		return nil, &ValidationError{Field: "budget", Message: "予算カテゴリまたは金額の指定が必要です"}
	}
	travelers := req.TravelerCount()
	if travelers <= 0 {
		return nil, &ValidationError{Field: "travelers", Message: "旅行者数は1以上で指定してください"}
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, &ValidationError{Field: "start_date", Message: "開始日はYYYY-MM-DD形式で指定してください"}
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, &ValidationError{Field: "end_date", Message: "終了日はYYYY-MM-DD形式で指定してください"}
	}
	if endDate.Before(startDate) {
		return nil, &ValidationError{Field: "end_date", Message: "終了日は開始日以降にしてください"}
	}
	// Truncateだと協定世界時の日界になるためローカルの日付で当日を求める
	y, m, d := time.Now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if startDate.Before(today) {
		return nil, &ValidationError{Field: "start_date", Message: "開始日に過去の日付は指定できません"}
	}

	return &model.TripParameters{
		Origin:       req.Origin,
		Destination:  req.Destination,
		StartDate:    startDate,
		EndDate:      endDate,
		Travelers:    travelers,
		BudgetTier:   req.Budget,
		BudgetAmount: req.BudgetPHP,
		Preferences:  req.Preferences,
	}, nil
}

// searchFlights はフライトを検索する
// 0件の場合、目的地に文書化された代替空港があれば1回だけ再検索する
func (u *tripPlanUseCaseImpl) searchFlights(ctx context.Context, params *model.TripParameters) ([]model.FlightOption, error) {
	if u.flightClient == nil {
		return nil, fmt.Errorf("フライト検索クライアントが設定されていません")
	}

	originAirport := model.PrimaryAirport(helper.NormalizeCityName(params.Origin))
	destAirport := model.PrimaryAirport(helper.NormalizeCityName(params.Destination))

	flights, err := u.flightClient.SearchFlights(ctx, originAirport, destAirport, params.StartDate, params.Travelers)
	if err != nil {
		return nil, err
	}
	if len(flights) > 0 {
		return flights, nil
	}

	alternatives := model.AlternativeAirports(helper.NormalizeCityName(params.Destination))
	if len(alternatives) == 0 {
		return flights, nil
	}

	log.Printf("🔄 %s行きフライト0件、代替空港 %s で再検索", destAirport, alternatives[0])
	return u.flightClient.SearchFlights(ctx, originAirport, alternatives[0], params.StartDate, params.Travelers)
}

// buildItinerary はアクティビティプールを取得してGAで旅程を最適化する
// プールが小さい場合やGAが失敗した場合は従来型の直列割り当てにフォールバックする
func (u *tripPlanUseCaseImpl) buildItinerary(ctx context.Context, params *model.TripParameters) (*model.OptimizedItinerary, error) {
	if u.activitiesRepo == nil {
		return nil, fmt.Errorf("アクティビティリポジトリが設定されていません")
	}

	prefs := params.GetPreferences()
	activities, err := u.activitiesRepo.FindByDestination(ctx,
		params.Destination, prefs.TripTypes, activitySearchRadiusKm, activityPoolLimit)
	if err != nil {
		return nil, fmt.Errorf("アクティビティ取得失敗: %w", err)
	}
	if len(activities) == 0 {
		return nil, fmt.Errorf("%s のアクティビティが見つかりません", params.Destination)
	}

	// 座標欠落のアクティビティを並行ジオコーディングで補完
	if u.geocoder != nil {
		geocoder := service.NewParallelActivityGeocoder(u.geocoder)
		geocoder.FillCoordinates(ctx, activities, params.Destination)
	}

	var itinerary *model.OptimizedItinerary
	if len(activities) >= params.NumDays()*2 {
		optimizer := service.NewGeneticItineraryOptimizer(u.gaConfig, newPlanRand())
		itinerary, err = optimizer.Optimize(activities, params)
		if err != nil {
			log.Printf("⚠️ GA最適化失敗、従来型プランにフォールバック: %v", err)
		}
	} else {
		log.Printf("📋 アクティビティ%d件はGAには不足、従来型プランを使用", len(activities))
	}
	if itinerary == nil {
		itinerary = service.BuildTraditionalItinerary(activities, params)
	}

	// 日内の訪問順・スケジュールを最適化
	routeOptimizer := service.NewDayRouteOptimizer()
	routeOptimizer.OptimizeItinerary(itinerary)

	return itinerary, nil
}

// merge は推奨フライト・ホテルを選定し、費用内訳と総合スコアを計算する
func (u *tripPlanUseCaseImpl) merge(result *model.TripPlanResult, params *model.TripParameters, decision *model.TransportDecision) {
	// 最安の有効なフライトを推奨に選ぶ
	for i := range result.Flights {
		f := &result.Flights[i]
		if f.PricePHP <= 0 {
			continue
		}
		if result.SelectedFlight == nil || f.PricePHP < result.SelectedFlight.PricePHP {
			result.SelectedFlight = f
		}
	}

	// 最高スコアのホテルを推奨に選び、先頭をプライマリチェックイン先にする
	if len(result.Hotels) > 0 {
		result.Hotels[0].IsPrimary = true
		best := &result.Hotels[0]
		for i := range result.Hotels {
			if result.Hotels[i].Score > best.Score {
				best = &result.Hotels[i]
			}
		}
		result.SelectedHotel = best
	}

	// 費用内訳（ペソ）
	costs := model.CostBreakdown{}
	if result.SelectedFlight != nil {
		costs.Flights = result.SelectedFlight.PricePHP * float64(params.Travelers)
	}
	if result.SelectedHotel != nil {
		nights := params.NumDays() - 1
		if nights < 1 {
			nights = 1
		}
		costs.Hotels = result.SelectedHotel.PricePerNight * float64(nights)
	}
	if decision.Mode == model.ModeGround && decision.Ground != nil {
		costs.GroundTransport = (decision.Ground.CostMin + decision.Ground.CostMax) / 2 * float64(params.Travelers)
	}
	if result.Itinerary != nil {
		costs.Activities = result.Itinerary.TotalCost * float64(params.Travelers)
	}
	costs.Total = math.Round((costs.Flights+costs.Hotels+costs.GroundTransport+costs.Activities)*100) / 100
	result.Costs = costs

	result.OptimizationScore = u.optimizationScore(result, params, decision)
}

// optimizationScore は予算適合・移動の利便性・嗜好適合の加重合成スコアを計算する
func (u *tripPlanUseCaseImpl) optimizationScore(result *model.TripPlanResult, params *model.TripParameters, decision *model.TransportDecision) float64 {
	// 予算適合: 予算内なら満点、超過分に比例して減点
	budgetScore := 50.0
	totalBudget := params.Budget() * float64(params.Travelers)
	if totalBudget > 0 {
		utilization := result.Costs.Total / totalBudget
		if utilization <= 1.0 {
			budgetScore = 100
		} else {
			budgetScore = math.Max(0, 100-(utilization-1.0)*250)
		}
	}

	// 利便性: 直行便・高評価ホテル・陸路の実用性を評価
	convenienceScore := u.convenienceScore(result, decision)

	// 嗜好適合: GAの適応度をそのまま使う（嗜好・多様性を含む）
	preferenceScore := 40.0
	if result.Itinerary != nil {
		preferenceScore = result.Itinerary.Fitness
	}

	score := budgetScore*0.35 + convenienceScore*0.25 + preferenceScore*0.40
	return math.Round(score*10) / 10
}

func (u *tripPlanUseCaseImpl) convenienceScore(result *model.TripPlanResult, decision *model.TransportDecision) float64 {
	transportScore := 40.0
	switch {
	case result.SelectedFlight != nil && result.SelectedFlight.Stops == 0:
		transportScore = 100
	case result.SelectedFlight != nil && result.SelectedFlight.Stops == 1:
		transportScore = 70
	case result.SelectedFlight != nil:
		transportScore = 50
	case decision.Mode == model.ModeNone:
		transportScore = 100
	case decision.Convenience != nil:
		switch decision.Convenience.Tier {
		case model.TierVeryConvenient:
			transportScore = 100
		case model.TierConvenient:
			transportScore = 80
		case model.TierAcceptable:
			transportScore = 60
		default:
			transportScore = 30
		}
	}

	hotelScore := 40.0
	if result.SelectedHotel != nil {
		hotelScore = result.SelectedHotel.Score
	}

	return (transportScore + hotelScore) / 2
}
