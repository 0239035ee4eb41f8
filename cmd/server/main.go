package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"naira-rate-service/internal/adapter/cache"
	httpRouter "naira-rate-service/internal/adapter/http"
	"naira-rate-service/internal/adapter/oracle"
	"naira-rate-service/internal/adapter/store"
	"naira-rate-service/internal/config"
	"naira-rate-service/internal/domain/model"
	"naira-rate-service/internal/domain/ports"
	"naira-rate-service/internal/metrics"
	"naira-rate-service/internal/service"
	"naira-rate-service/pkg/logger"
)

func main() {
	log := logger.NewLogger(os.Getenv("LOG_LEVEL"))
	log.Info("Starting naira rate service")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	log = logger.NewLogger(cfg.LogLevel)

	domestic := model.ParseCurrency(cfg.Domestic)
	if !domestic.IsSupported() {
		log.Error("Unsupported domestic currency", "currency", cfg.Domestic)
		os.Exit(1)
	}

	rateStore, err := buildStore(cfg, log)
	if err != nil {
		log.Error("Failed to build rate store", "error", err)
		os.Exit(1)
	}

	oracleClient := buildOracle(cfg, log)
	source := oracle.NewSource(oracleClient, domestic, log)

	resolver := service.NewResolver(source, rateStore, service.ResolverConfig{
		Domestic:       domestic,
		Freshness:      cfg.Freshness,
		FallbackRates:  cfg.FallbackRates,
		PersistTimeout: cfg.PersistTimeout,
	}, log)

	session := cache.NewSessionCache(log)
	quoteService := service.NewQuoteService(resolver, session, log)

	appMetrics := metrics.NewMetrics()
	handler := httpRouter.NewHandler(quoteService, log, appMetrics)

	router := httpRouter.NewRouter(handler, log, appMetrics)
	routes := router.SetupRoutes()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      routes,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	refreshCtx, cancelRefresh := context.WithCancel(context.Background())
	if cfg.RefreshInterval > 0 {
		go refreshPairs(refreshCtx, quoteService, cfg.RefreshPairs, cfg.RefreshInterval, log)
	}

	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	cancelRefresh()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}

func buildStore(cfg *config.Config, log *logger.Logger) (ports.RateStore, error) {
	switch cfg.StoreDriver {
	case "postgres":
		db, err := store.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Info("Using postgres rate store")
		return store.NewPostgresStore(db), nil
	case "redis":
		redisStore, err := store.NewRedisStore(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisStore.Ping(pingCtx); err != nil {
			return nil, fmt.Errorf("failed to reach redis: %w", err)
		}
		log.Info("Using redis rate store")
		return redisStore, nil
	default:
		log.Info("Using in-memory rate store")
		return store.NewMemoryStore(), nil
	}
}

func buildOracle(cfg *config.Config, log *logger.Logger) ports.Oracle {
	var inner ports.Oracle
	switch cfg.Oracle.Provider {
	case "openai":
		inner = oracle.NewOpenAIOracle(cfg.OpenAI.APIKey, cfg.OpenAI.Model, log)
	default:
		inner = oracle.NewGeminiOracle(
			cfg.Gemini.BaseURL,
			cfg.Gemini.APIKey,
			cfg.Gemini.Model,
			cfg.Oracle.Timeout,
			log,
		)
	}
	log.Info("Using oracle provider", "oracle", inner.Name())

	return oracle.NewRetryOracle(inner, cfg.Oracle.RetryBudget, cfg.Oracle.RetryBackoff, log)
}

// refreshPairs keeps the configured pairs warm so interactive requests
// rarely pay the oracle round trip.
func refreshPairs(ctx context.Context, svc ports.QuoteService, pairs []string, interval time.Duration, log *logger.Logger) {
	refreshAll(ctx, svc, pairs, log)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			refreshAll(ctx, svc, pairs, log)
		case <-ctx.Done():
			log.Info("Stopping rate refresh goroutine")
			return
		}
	}
}

func refreshAll(ctx context.Context, svc ports.QuoteService, pairs []string, log *logger.Logger) {
	for _, raw := range pairs {
		pair, err := model.ParsePair(strings.TrimSpace(raw))
		if err != nil {
			log.Error("Skipping malformed refresh pair", "pair", raw, "error", err)
			continue
		}
		if _, err := svc.FetchRate(ctx, pair.From, pair.To, true); err != nil {
			log.Error("Failed to refresh rate", "pair", pair.String(), "error", err)
		}
	}
}
