package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"loan-planner/config"
	httpLayer "loan-planner/http"
	"loan-planner/logger"
	"loan-planner/repository"
	"loan-planner/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.PrettyLogs})

	planRepo := repository.NewPlanRepositoryMemory()

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis plan cache")
	} else {
		cache = repository.NewMockCache()
		log.Info().Msg("using in-process plan cache")
	}

	metricsService := service.NewMetricsService()
	affordabilityService := service.NewAffordabilityService(nil)
	amortizationService := service.NewAmortizationService(metricsService)
	generatorService := service.NewPlanGeneratorService(metricsService, log)
	rankerService := service.NewPlanRankerService()
	comparisonService := service.NewComparisonService()
	chartService := service.NewChartService(amortizationService)

	analyzeHandler := httpLayer.NewAnalyzeHandler(metricsService, affordabilityService, log)
	plansHandler := httpLayer.NewPlansHandler(generatorService, rankerService, planRepo, cache, log)
	scheduleHandler := httpLayer.NewScheduleHandler(amortizationService, log)
	compareHandler := httpLayer.NewCompareHandler(comparisonService, planRepo, log)
	chartHandler := httpLayer.NewChartHandler(chartService, amortizationService, planRepo, log)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitBurst, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(httpLayer.RateLimitMiddleware(rateLimiter))
		r.Post("/loan/analyze", analyzeHandler.Analyze)
		r.Post("/loan/plans", plansHandler.GeneratePlans)
		r.Post("/loan/schedule", scheduleHandler.Schedule)
		r.Post("/loan/compare", compareHandler.Compare)
		r.Post("/loan/charts", chartHandler.Chart)
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Msg("loan planner API listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("server failed to start")
		return
	case <-quit:
		log.Info().Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server exited")
}
