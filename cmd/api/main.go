package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/navarojreddy48/PriceWatcher-AI/internal/alert"
	"github.com/navarojreddy48/PriceWatcher-AI/internal/auth"
	"github.com/navarojreddy48/PriceWatcher-AI/internal/competitor"
	"github.com/navarojreddy48/PriceWatcher-AI/internal/db"
	"github.com/navarojreddy48/PriceWatcher-AI/internal/dish"
	"github.com/navarojreddy48/PriceWatcher-AI/internal/history"
	"github.com/navarojreddy48/PriceWatcher-AI/internal/middleware"
	"github.com/navarojreddy48/PriceWatcher-AI/internal/scraper"
	"github.com/navarojreddy48/PriceWatcher-AI/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}
	if os.Getenv("FIXTURE_STORE") == "r2" {
		required = append(required,
			"R2_ACCESS_KEY",
			"R2_SECRET_KEY",
			"R2_BUCKET_NAME",
			"R2_ENDPOINT",
		)
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("❌ Logger init failed:", err)
	}
	defer logger.Sync()

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	if err := auth.MigrateLegacyPasswords(context.Background(), userRepo, logger); err != nil {
		log.Fatal("❌ Password migration failed:", err)
	}

	// ───────────────────────── FIXTURE STORE ─────────────────────────
	var fixtures interface {
		scraper.FixtureStore
		scraper.FixtureSaver
	}
	if os.Getenv("FIXTURE_STORE") == "r2" {
		r2Store, err := storage.NewR2FixtureStore(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		fixtures = r2Store
	} else {
		dir := os.Getenv("FIXTURE_DIR")
		if dir == "" {
			dir = "fixtures"
		}
		fixtures = scraper.NewLocalFixtureStore(dir)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	dishRepo := dish.NewPostgresRepository(pgDB)
	competitorRepo := competitor.NewPostgresRepository(pgDB)
	alertRepo := alert.NewPostgresRepository(pgDB)
	historyRepo := history.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	dishService := dish.NewService(dishRepo, historyRepo, logger)
	competitorService := competitor.NewService(competitorRepo)
	historyService := history.NewService(historyRepo)
	scrapeService := scraper.NewService(pgDB, competitorRepo, fixtures, scraper.NewProbeClient(), logger)

	// ───────────────────────── HANDLERS ─────────────────────────
	dishHandler := dish.NewHandler(dishService)
	competitorHandler := competitor.NewHandler(competitorService)
	alertHandler := alert.NewHandler(alertRepo)
	historyHandler := history.NewHandler(historyService)
	scrapeHandler := scraper.NewHandler(scrapeService, fixtures)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── PUBLIC ROUTES ─────────────────────────
	r.POST("/api/register", authHandler.Register)
	r.POST("/api/login", authHandler.Login)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── TENANT ROUTES ─────────────────────────
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/dishes", dishHandler.List)
		api.GET("/competitors", competitorHandler.List)
		api.GET("/alerts", alertHandler.List)
		api.PUT("/alerts/:id/read", alertHandler.MarkRead)
		api.GET("/price-history", historyHandler.Get)
		api.GET("/analysis/summary", competitorHandler.AnalysisSummary)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/api")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		// Staff + profile
		admin.POST("/create-staff", authHandler.CreateStaff)
		admin.GET("/staff", authHandler.ListStaff)
		admin.DELETE("/staff/:id", authHandler.DeleteStaff)
		admin.PUT("/restaurant-profile", authHandler.UpdateRestaurantProfile)

		// Dishes
		admin.POST("/dishes", dishHandler.Create)
		admin.PUT("/dishes/:id", dishHandler.Update)
		admin.DELETE("/dishes/:id", dishHandler.Delete)

		// Competitors
		admin.POST("/competitors", competitorHandler.Create)
		admin.PUT("/competitors/:id", competitorHandler.Update)
		admin.DELETE("/competitors/:id", competitorHandler.Delete)

		// Scraping
		admin.POST("/competitors/:id/scrape", scrapeHandler.ScrapeLive)
		admin.POST("/scrape/:id", scrapeHandler.Reconcile)
		admin.POST("/fixtures", scrapeHandler.UploadFixture)
	}

	// ───────────────────────── SCRAPE SWEEPER ─────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := scraper.NewSweeper(scrapeService, logger)
	go sweeper.Run(ctx)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("🚀 API running at http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ Server failed:", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("❌ Forced shutdown:", err)
	}
	log.Println("✅ Server stopped")
}
