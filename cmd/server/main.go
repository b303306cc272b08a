package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/remaimber-it/quizengine/internal/api"
	"github.com/remaimber-it/quizengine/internal/cache"
	"github.com/remaimber-it/quizengine/internal/event"
	"github.com/remaimber-it/quizengine/internal/infrastructure/config"
	"github.com/remaimber-it/quizengine/internal/metrics"
	"github.com/remaimber-it/quizengine/internal/service"
	"github.com/remaimber-it/quizengine/internal/store"

	_ "github.com/remaimber-it/quizengine/docs" // swagger docs
)

// @title           Quiz Engine API
// @version         1.0
// @description     Quiz attempts, XP ledger and learning analytics.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var resultCache cache.Cache = cache.Nop{}
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rc, err := cache.NewRedis(ctx, cfg.RedisURL, "quizengine:")
		cancel()
		if err != nil {
			logger.Warn("redis unavailable, analytics cache disabled", "error", err)
		} else {
			defer rc.Close()
			resultCache = rc
		}
	}

	publisher, err := event.NewAMQPPublisher(cfg.RabbitMQURL, cfg.EventExchange, logger)
	if err != nil {
		logger.Warn("rabbitmq unavailable, event publishing disabled", "error", err)
		publisher, _ = event.NewAMQPPublisher("", cfg.EventExchange, logger)
	}
	events := event.NewDispatcher(publisher, cfg.EventWorkers, logger)

	m := metrics.New()
	engine := service.New(db,
		service.WithLocation(cfg.Location),
		service.WithDefaultQuantity(cfg.DefaultQuantity),
		service.WithCache(cache.NewLoader(resultCache, cfg.AnalyticsCacheTTL, logger)),
		service.WithEvents(events),
		service.WithMetrics(m),
		service.WithLogger(logger),
	)
	handler := api.NewHandler(engine, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)
	mux.Handle("GET /metrics", m.Handler())

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
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

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}

	<-done
	if err := events.Close(); err != nil {
		logger.Error("closing event publisher", "error", err)
	}
}
