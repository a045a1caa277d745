package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	analysesTotal          *prometheus.CounterVec
	analysisDuration       prometheus.Histogram
	transactionsClassified prometheus.Counter
	recommendationsTotal   *prometheus.CounterVec
	recommendationDuration prometheus.Histogram
	recommendationScore    prometheus.Histogram
	catalogProducts        *prometheus.GaugeVec
	insightRequestsTotal   *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		analysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spending_analyses_total",
				Help: "Total number of spending analysis requests",
			},
			[]string{"status"},
		),
		analysisDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "spending_analysis_duration_milliseconds",
				Help:    "Spending analysis duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transactionsClassified: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_classified_total",
				Help: "Total number of transactions classified",
			},
		),
		recommendationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "product_recommendations_total",
				Help: "Total number of product recommendation requests",
			},
			[]string{"status"},
		),
		recommendationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "product_recommendation_duration_milliseconds",
				Help:    "Product recommendation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		recommendationScore: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "product_recommendation_score",
				Help:    "Distribution of scores for recommended products",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
		catalogProducts: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "catalog_products",
				Help: "Number of loaded catalog products by type",
			},
			[]string{"product_type"},
		),
		insightRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insight_requests_total",
				Help: "Total number of LLM insight requests",
			},
			[]string{"status"},
		),
	}
}

func (m *PrometheusMetrics) RecordAnalysis(status string, duration time.Duration, transactionCount int) {
	m.analysesTotal.WithLabelValues(status).Inc()
	m.analysisDuration.Observe(float64(duration.Milliseconds()))
	if transactionCount > 0 {
		m.transactionsClassified.Add(float64(transactionCount))
	}
}

func (m *PrometheusMetrics) RecordRecommendation(status string, duration time.Duration) {
	m.recommendationsTotal.WithLabelValues(status).Inc()
	m.recommendationDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordRecommendationScore(score float64) {
	m.recommendationScore.Observe(score)
}

func (m *PrometheusMetrics) SetCatalogSize(productType string, count int) {
	m.catalogProducts.WithLabelValues(productType).Set(float64(count))
}

func (m *PrometheusMetrics) RecordInsightRequest(status string) {
	m.insightRequestsTotal.WithLabelValues(status).Inc()
}
