package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mathdrill/backend/internal/api"
	"github.com/mathdrill/backend/internal/domain/corpus"
	"github.com/mathdrill/backend/internal/grader"
	"github.com/mathdrill/backend/internal/infrastructure/config"
	"github.com/mathdrill/backend/internal/infrastructure/logging"
	"github.com/mathdrill/backend/internal/service"
	"github.com/mathdrill/backend/internal/store"

	_ "github.com/mathdrill/backend/docs" // generated swagger docs
)

// @title           Mathdrill API
// @version         1.0
// @description     Practice problems with notation-insensitive answer grading, retries, hints and progress reports.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger, closer, err := logging.New(cfg.Log, os.Stdout)
	if err != nil {
		slog.Error("invalid logging configuration", "error", err)
		os.Exit(1)
	}
	defer closer.Close()

	// ── Dependencies ────────────────────────────────────────────────
	problems, err := corpus.Load(cfg.CorpusPath)
	if err != nil {
		logger.Error("failed to load corpus", "path", cfg.CorpusPath, "error", err)
		closer.Close()
		os.Exit(1)
	}
	logger.Info("corpus loaded", "path", cfg.CorpusPath, "problems", problems.Len())

	db, err := store.Open(cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.StoreDriver, "error", err)
		closer.Close()
		os.Exit(1)
	}
	defer db.Close()

	defaults := cfg.DefaultSettings()
	if err := defaults.Validate(); err != nil {
		logger.Error("invalid default settings", "error", err)
		db.Close()
		closer.Close()
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	gradingSvc := service.NewGradingService(problems, db, grader.Equivalence{}, defaults, service.NewMetrics(reg), logger)
	handler := api.NewHandler(gradingSvc, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler, api.RouteOptions{
		AdminToken:         cfg.AdminToken,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})

	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → Metrics → mux ────────────
	// Metrics sits next to the mux so it sees the matched route pattern.
	logged := api.Logging(logger)(api.CORS(api.Metrics(reg)(mux)))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server",
		"address", cfg.ServerAddress,
		"store", cfg.StoreDriver,
		"disputes_enabled", cfg.AdminToken != "",
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		db.Close()
		closer.Close()
		os.Exit(1)
	}
}
