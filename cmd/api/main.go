package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/WarBros01113/Real-SurvEase/docs"
	"github.com/WarBros01113/Real-SurvEase/internal/config"
	"github.com/WarBros01113/Real-SurvEase/internal/database"
	"github.com/WarBros01113/Real-SurvEase/internal/database/migration"
	handlers "github.com/WarBros01113/Real-SurvEase/internal/http/handler"
	"github.com/WarBros01113/Real-SurvEase/internal/http/middleware"
	"github.com/WarBros01113/Real-SurvEase/internal/otel"
	"github.com/WarBros01113/Real-SurvEase/internal/repository/postgres"
	"github.com/WarBros01113/Real-SurvEase/internal/service"
	"github.com/WarBros01113/Real-SurvEase/internal/service/linkcheck"
	"github.com/WarBros01113/Real-SurvEase/internal/storage"
)

// @title SurvEase API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Tracing first so the DB driver wrapper picks up the provider
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Bring the schema up if this is a fresh database
	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Avatar object storage (S3-compatible, MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Repositories and services
	surveyRepo := postgres.NewSurveyPostgres(db)
	responseRepo := postgres.NewResponsePostgres(db)
	profileRepo := postgres.NewProfilePostgres(db)

	links := linkcheck.New(cfg.LinkCheck)
	svcs := handlers.Services{
		Surveys:     service.NewSurveyService(surveyRepo, responseRepo, links),
		Responses:   service.NewResponseService(surveyRepo, responseRepo),
		Leaderboard: service.NewLeaderboardService(surveyRepo, responseRepo, profileRepo),
		Profiles:    service.NewProfileService(profileRepo, surveyRepo, responseRepo, objStore),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, svcs)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
