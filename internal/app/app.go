// Package app wires configuration, logging, metrics, services and the HTTP
// router into a runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"pitwall/internal/config"
	apierrors "pitwall/internal/errors"
	"pitwall/internal/extraction"
	"pitwall/internal/infrastructure"
	"pitwall/internal/metrics"
	"pitwall/internal/middleware"
	"pitwall/internal/schedule"
	"pitwall/internal/services"
	transporthttp "pitwall/internal/transport/http"
	"pitwall/pkg/contracts"
)

// Application holds the fully wired components of the schedule service.
type Application struct {
	config   *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry

	scheduleService *services.ScheduleService
	healthService   *services.HealthService

	httpServer *http.Server
}

// NewApplication builds the application from configuration.
func NewApplication(cfg *config.Config) (*Application, error) {
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	zones, err := schedule.LoadZones(cfg.Paths.TimezoneFile)
	if err != nil {
		return nil, fmt.Errorf("load timezone table: %w", err)
	}

	store := schedule.NewStore(cfg.Paths.DataDir, logger)
	materializer := schedule.NewMaterializer(zones, logger, m)
	pipeline := extraction.NewPipeline(logger, m)

	app := &Application{
		config:          cfg,
		logger:          logger,
		registry:        registry,
		scheduleService: services.NewScheduleService(store, materializer, pipeline, logger, m),
		healthService:   services.NewHealthService(logger),
	}

	app.httpServer = &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        app.setupRouter(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return app, nil
}

// setupRouter builds the chi router with the full middleware chain.
func (a *Application) setupRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.StructuredLogger(a.logger))
	r.Use(middleware.Recoverer(a.logger))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Compress(5))
	r.Use(chimiddleware.StripSlashes)

	if a.config.Security.EnableCORS {
		r.Use(middleware.CORS(middleware.CORSConfig{
			AllowedOrigins: a.config.Security.AllowedOrigins,
			Logger:         a.logger,
		}))
	}

	if a.config.Security.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			a.config.Security.RateLimit.RPS,
			a.config.Security.RateLimit.Burst,
			a.logger,
		)
		r.Use(limiter.Handler)
	}

	errorHandler := apierrors.NewErrorHandler(a.logger, false)
	r.NotFound(errorHandler.NotFound)
	r.MethodNotAllowed(errorHandler.MethodNotAllowed)

	scheduleHandler := transporthttp.NewScheduleHandler(a.scheduleService, a.logger, a.config.Server.MaxUploadBytes)
	healthHandler := transporthttp.NewHealthHandler(a.healthService, a.logger)

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(30*time.Second, a.logger))
		scheduleHandler.RegisterRoutes(api)
		healthHandler.RegisterRoutes(api)
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))

	return r
}

// Run starts the HTTP server and blocks until ctx is canceled or the server
// fails. On cancellation the server drains within the configured shutdown
// timeout.
func (a *Application) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("server starting",
			slog.String("version", contracts.GetVersionString()),
			slog.String("addr", a.httpServer.Addr),
			slog.String("data_dir", a.config.Paths.DataDir))

		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
		defer cancel()

		a.logger.Info("server shutting down")
		if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	err := g.Wait()
	infrastructure.CloseLogFile()
	return err
}
