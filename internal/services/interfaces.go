package services

import (
	"context"
	"time"

	"fincoach/internal/config"
	"fincoach/internal/models"
)

// ClassifierServiceInterface tags raw transactions with time-bucket,
// amount-range and keyword-derived category hints
type ClassifierServiceInterface interface {
	// Classify annotates a single transaction; pure, no side effects
	Classify(tx models.RawTransaction) (models.ClassifiedTransaction, error)

	// ClassifyBatch classifies a list, preserving input order
	ClassifyBatch(txs []models.RawTransaction) ([]models.ClassifiedTransaction, error)
}

// AggregationServiceInterface builds the spend breakdown and risk view
// consumed by the saving and recommendation engines
type AggregationServiceInterface interface {
	Aggregate(txs []models.ClassifiedTransaction) models.SpendingAnalysis
}

// SavingServiceInterface produces the three tiered saving plans
type SavingServiceInterface interface {
	GeneratePlans(breakdown models.CategoryBreakdown, totalSpent int64) models.SavingPlans
	Summarize(plans models.SavingPlans) map[config.SavingLevel]models.LevelSummary
}

// CatalogServiceInterface loads and serves the immutable product catalog
type CatalogServiceInterface interface {
	Load() error
	Loaded() bool
	TimeDeposits() []models.TimeDeposit
	SavingProducts() []models.InstallmentSaving
}

// RecommendationServiceInterface scores the catalog against a derived
// user profile and returns ranked picks
type RecommendationServiceInterface interface {
	DeriveProfile(input models.RecommendationInput) models.UserProfile
	Recommend(input models.RecommendationInput) models.RecommendationResult
}

// InsightServiceInterface is the optional LLM elaboration step. Failures
// never alter an already-computed structured result.
type InsightServiceInterface interface {
	Enabled() bool
	SpendingInsight(ctx context.Context, analysis models.SpendingAnalysis, plans models.SavingPlans) (string, error)
	RecommendationInsight(ctx context.Context, result models.RecommendationResult) (string, error)
}

// MetricsRecorderInterface records operational metrics for the pipelines
type MetricsRecorderInterface interface {
	RecordAnalysis(status string, duration time.Duration, transactionCount int)
	RecordRecommendation(status string, duration time.Duration)
	RecordRecommendationScore(score float64)
	SetCatalogSize(productType string, count int)
	RecordInsightRequest(status string)
}
