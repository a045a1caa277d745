package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"fincoach/internal/dto"
	"fincoach/internal/errors"
	"fincoach/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler handles the transaction analysis endpoint
type AnalysisHandler struct {
	classifier services.ClassifierServiceInterface
	aggregator services.AggregationServiceInterface
	saving     services.SavingServiceInterface
	insight    services.InsightServiceInterface
	metrics    services.MetricsRecorderInterface
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(
	classifier services.ClassifierServiceInterface,
	aggregator services.AggregationServiceInterface,
	saving services.SavingServiceInterface,
	insight services.InsightServiceInterface,
	metrics services.MetricsRecorderInterface,
) *AnalysisHandler {
	return &AnalysisHandler{
		classifier: classifier,
		aggregator: aggregator,
		saving:     saving,
		insight:    insight,
		metrics:    metrics,
	}
}

// AnalyzeTransactions runs the full pipeline: classify every record,
// aggregate the window and generate the three saving plans
// @Summary Analyze spending transactions
// @Description Classify transactions, aggregate spending and generate tiered saving plans
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Transactions to analyze"
// @Success 200 {object} SuccessResponse{data=dto.AnalyzeResponse} "Analysis result"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 422 {object} errors.ErrorResponse "ANALYSIS_002 - Malformed transaction record"
// @Router /api/v1/transactions/analyze [post]
func (h *AnalysisHandler) AnalyzeTransactions(c echo.Context) error {
	start := time.Now()

	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		h.metrics.RecordAnalysis("invalid", time.Since(start), 0)
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("Invalid request body format"))
	}
	if err := c.Validate(&req); err != nil {
		h.metrics.RecordAnalysis("invalid", time.Since(start), 0)
		if len(req.Transactions) == 0 {
			return SendError(c, errors.AnalysisEmptyInput)
		}
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	classified, err := h.classifier.ClassifyBatch(req.ToModels())
	if err != nil {
		h.metrics.RecordAnalysis("malformed", time.Since(start), 0)
		code := errors.AnalysisMalformedRecord
		if stderrors.Is(err, services.ErrMalformedDate) {
			code = errors.ValidationInvalidDate
		} else if stderrors.Is(err, services.ErrMalformedTime) {
			code = errors.ValidationInvalidTime
		}
		return SendError(c, code, errors.WithDetails(err.Error()))
	}

	analysis := h.aggregator.Aggregate(classified)
	plans := h.saving.GeneratePlans(analysis.CategoryBreakdown, analysis.TotalSpent)

	resp := dto.AnalyzeResponse{
		Analysis:       analysis,
		SavingPlans:    plans,
		LevelSummaries: h.saving.Summarize(plans),
		Transactions:   classified,
	}

	if h.insight.Enabled() {
		insight, err := h.insight.SpendingInsight(c.Request().Context(), analysis, plans)
		if err != nil {
			slog.Warn("spending insight generation failed",
				"error", err, "trace_id", getTraceID(c))
		} else {
			resp.Insight = insight
		}
	}

	h.metrics.RecordAnalysis("success", time.Since(start), len(classified))
	return c.JSON(http.StatusOK, SuccessResponse{Data: resp})
}
