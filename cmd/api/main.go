package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fincoach/internal/config"
	"fincoach/internal/handlers"
	"fincoach/internal/middleware"
	"fincoach/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()
	setupLogger(cfg)

	if err := config.ValidateRules(); err != nil {
		slog.Error("rule configuration invalid", "error", err)
		os.Exit(1)
	}

	metrics := services.NewPrometheusMetrics()
	catalog := services.NewCatalogService(cfg.Catalog, metrics)
	if err := catalog.Load(); err != nil {
		slog.Error("catalog load failed", "error", err)
		os.Exit(1)
	}

	classifier := services.NewClassifierService()
	aggregator := services.NewAggregationService()
	saving := services.NewSavingService()
	recommender := services.NewRecommendationService(catalog, metrics)
	insight := services.NewInsightService(cfg.OpenAI, metrics)
	if insight.Enabled() {
		slog.Info("insight service enabled", "model", cfg.OpenAI.Model)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	e.Use(echomw.Logger())

	analysisHandler := handlers.NewAnalysisHandler(classifier, aggregator, saving, insight, metrics)
	productHandler := handlers.NewProductHandler(catalog, recommender, insight, metrics)
	healthHandler := handlers.NewHealthCheckHandler(catalog)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")
	v1.POST("/transactions/analyze", analysisHandler.AnalyzeTransactions)
	v1.POST("/products/recommend", productHandler.RecommendProducts)
	v1.GET("/products/deposits", productHandler.ListTimeDeposits)
	v1.GET("/products/savings", productHandler.ListSavingProducts)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
