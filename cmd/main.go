package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"Lakbay-App/internal/application"
	"Lakbay-App/internal/database"
	"Lakbay-App/internal/domain/repository"
	"Lakbay-App/internal/domain/service"
	"Lakbay-App/internal/handler"
	infraDatabase "Lakbay-App/internal/infrastructure/database"
	"Lakbay-App/internal/infrastructure/firestore"
	"Lakbay-App/internal/infrastructure/flights"
	"Lakbay-App/internal/infrastructure/hotels"
	"Lakbay-App/internal/infrastructure/maps"
	repoImpl "Lakbay-App/internal/repository"
	"Lakbay-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseAnonKey := os.Getenv("SUPABASE_ANON_KEY")

	if supabaseURL == "" || supabaseAnonKey == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数: SUPABASE_URL, SUPABASE_ANON_KEY")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	fmt.Println("Initializing Supabase client...")
	supabaseClient, err := database.NewSupabaseClient()
	if err != nil {
		log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
	}

	fmt.Println("Performing Supabase health check...")
	if err := supabaseClient.HealthCheck(); err != nil {
		log.Fatalf("Supabaseヘルスチェック失敗: %v", err)
	}
	fmt.Println("✅ Supabase connection successful!")

	// アクティビティ検索: PostgreSQL直結を優先し、失敗時はSupabase REST
	var activitiesRepo repository.ActivitiesRepository
	pgClient, err := infraDatabase.NewPostgreSQLClientWithRetry(3, 2*time.Second)
	if err != nil {
		log.Printf("⚠️ PostgreSQL接続失敗、Supabase REST経由に切り替え: %v", err)
		activitiesRepo = repoImpl.NewSupabaseActivitiesRepository(supabaseClient)
	} else {
		defer pgClient.Close()
		activitiesRepo = repoImpl.NewPostgresActivitiesRepository(pgClient)
	}

	// Firestore（プラン一時保存）: 未設定の場合は保存をスキップして起動を続行
	ctx := context.Background()
	var planRepo *repoImpl.FirestoreTripPlanRepository
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT_ID")
	if projectID != "" {
		firestoreClient, err := firestore.NewFirestoreClient(ctx, projectID)
		if err != nil {
			log.Printf("⚠️ Firestore初期化失敗、プラン保存なしで続行: %v", err)
		} else {
			defer firestoreClient.Close()
			planRepo = repoImpl.NewFirestoreTripPlanRepository(firestoreClient.GetClient())
		}
	} else {
		log.Printf("⚠️ GOOGLE_CLOUD_PROJECT_ID未設定、プラン保存なしで続行")
	}

	// 外部検索クライアント
	geocoder := maps.NewGoogleGeocodingProvider(os.Getenv("GOOGLE_MAPS_API_KEY"))
	flightClient := flights.NewSerpAPIFlightsProvider(os.Getenv("SERPAPI_API_KEY"))
	hotelClient := hotels.NewSerpAPIHotelsProvider(os.Getenv("SERPAPI_API_KEY"))

	// サービスとユースケースの組み立て
	transportService := service.NewTransportDecisionService(geocoder)
	archiveRepo := repoImpl.NewSupabaseTripArchiveRepository(supabaseClient)
	archiveService := application.NewTripArchiveService(archiveRepo)

	planUseCase := usecase.NewTripPlanUseCase(
		transportService,
		activitiesRepo,
		flightClient,
		hotelClient,
		geocoder,
		planRepo,
		archiveService,
	)

	planHandler := handler.NewTripPlanHandler(planUseCase)
	archiveHandler := handler.NewTripArchiveHandler(archiveService)

	// ルーティング
	r := gin.Default()

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Lakbay-App"})
	})

	trips := r.Group("/trips")
	{
		trips.POST("/plan", planHandler.PostTripPlan)
		trips.GET("/plan/:id", planHandler.GetTripPlan)
		trips.GET("/archive", archiveHandler.ListArchives)
		trips.GET("/archive/:id", archiveHandler.GetArchive)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Lakbay-App server starting on :%s...\n", port)
	log.Fatal(r.Run(":" + port))
}
