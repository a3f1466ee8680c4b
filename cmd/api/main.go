package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"projecttracker/docs"
	"projecttracker/internal/config"
	"projecttracker/internal/database"
	handlers "projecttracker/internal/http/handler"
	"projecttracker/internal/http/middleware"
	"projecttracker/internal/logger"
	"projecttracker/internal/otel"
	"projecttracker/internal/repository/postgres"
	"projecttracker/internal/service"
	"projecttracker/internal/storage"
)

// @title Project Tracker API
// @version 1.0
// @BasePath /
func main() {
	cfg := config.Load()
	loc := cfg.Location()
	log := logger.New(cfg.Log, loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	db, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	repos := postgres.NewRepositories(db)

	// Report exports are optional; without MinIO the endpoints answer 503.
	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize object storage")
		}
	} else {
		log.Warn().Msg("MINIO_ENDPOINT not set, inventory report export disabled")
	}
	reportSvc := service.NewInventoryService(repos.Parts, objStore, cfg.MinIO.PresignTTL, loc, log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:       db,
		Parts:    repos.Parts,
		Tasks:    repos.Tasks,
		Members:  repos.TeamMembers,
		Users:    repos.Users,
		Meetings: repos.Meetings,
		Reports:  reportSvc,
		Location: loc,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/doc.json", handlers.SwaggerDoc(docs.SwaggerInfo))
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("tz", loc.String()).Msg("listening")
	if err := app.Listen(addr); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
