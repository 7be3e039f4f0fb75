package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
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

	"bindash/docs"
	"bindash/internal/config"
	handlers "bindash/internal/http/handler"
	"bindash/internal/http/middleware"
	"bindash/internal/logging"
	"bindash/internal/otel"
	"bindash/internal/seed"
	"bindash/internal/service"
)

// @title Trash Bin Dashboard API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()
	log := logging.New(os.Stdout, loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.Tracing, log)
	if err != nil {
		log.Error("startup_failed", err, logging.Fields{"component": "tracing"})
		os.Exit(1)
	}

	// An unusable seed source is not fatal: the dashboard reports it as a load failure.
	src, err := seed.Open(ctx, cfg, log)
	if err != nil {
		log.Error("seed_source_unavailable", err, logging.Fields{"seed_source": cfg.Seed.Source})
		src = &seed.Source{Repo: seed.Failed(err)}
	}
	defer src.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	dashSvc, err := service.NewDashboardService(src.Repo, reg)
	if err != nil {
		log.Error("startup_failed", err, logging.Fields{"component": "service"})
		os.Exit(1)
	}

	if err := dashSvc.Load(ctx); err != nil {
		log.Error("seed_load_failed", err, logging.Fields{"seed_source": cfg.Seed.Source})
	} else {
		log.Info("seed_loaded", logging.Fields{"seed_source": cfg.Seed.Source, "count": dashSvc.Status().Count})
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Error("startup_failed", err, logging.Fields{"component": "metrics"})
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.LoggerWithWriter(os.Stdout, loc))
	app.Use(promMiddleware.Handler())

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, src, dashSvc)

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
	errCh := make(chan error, 1)
	go func() {
		log.Info("server_listening", logging.Fields{"addr": addr})
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server_failed", err, nil)
		}
	case <-ctx.Done():
		log.Info("server_shutting_down", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Error("server_shutdown_failed", err, nil)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing_shutdown_failed", err, nil)
	}
}
