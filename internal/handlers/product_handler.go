package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"fincoach/internal/dto"
	"fincoach/internal/errors"
	"fincoach/internal/services"

	"github.com/labstack/echo/v4"
)

// ProductHandler handles product catalog and recommendation endpoints
type ProductHandler struct {
	catalog     services.CatalogServiceInterface
	recommender services.RecommendationServiceInterface
	insight     services.InsightServiceInterface
	metrics     services.MetricsRecorderInterface
}

// NewProductHandler creates a new product handler
func NewProductHandler(
	catalog services.CatalogServiceInterface,
	recommender services.RecommendationServiceInterface,
	insight services.InsightServiceInterface,
	metrics services.MetricsRecorderInterface,
) *ProductHandler {
	return &ProductHandler{
		catalog:     catalog,
		recommender: recommender,
		insight:     insight,
		metrics:     metrics,
	}
}

// RecommendProducts scores the catalog against the caller's analysis
// @Summary Recommend financial products
// @Description Score catalog products against the user's spending profile
// @Tags Products
// @Accept json
// @Produce json
// @Param request body dto.RecommendRequest true "Analysis, saving plans and user info"
// @Success 200 {object} SuccessResponse{data=dto.RecommendResponse} "Recommendation result"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "CATALOG_002 - Catalog contains no products"
// @Router /api/v1/products/recommend [post]
func (h *ProductHandler) RecommendProducts(c echo.Context) error {
	start := time.Now()

	var req dto.RecommendRequest
	if err := c.Bind(&req); err != nil {
		h.metrics.RecordRecommendation("invalid", time.Since(start))
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("Invalid request body format"))
	}
	if err := c.Validate(&req); err != nil {
		h.metrics.RecordRecommendation("invalid", time.Since(start))
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if !h.catalog.Loaded() {
		h.metrics.RecordRecommendation("unavailable", time.Since(start))
		return SendError(c, errors.CatalogUnavailable)
	}
	if len(h.catalog.TimeDeposits()) == 0 && len(h.catalog.SavingProducts()) == 0 {
		h.metrics.RecordRecommendation("empty_catalog", time.Since(start))
		return SendError(c, errors.CatalogEmpty)
	}

	result := h.recommender.Recommend(req.ToInput())

	resp := dto.RecommendResponse{RecommendationResult: result}
	if h.insight.Enabled() {
		insight, err := h.insight.RecommendationInsight(c.Request().Context(), result)
		if err != nil {
			slog.Warn("recommendation insight generation failed",
				"error", err, "trace_id", getTraceID(c))
		} else {
			resp.Insight = insight
		}
	}

	h.metrics.RecordRecommendation("success", time.Since(start))
	return c.JSON(http.StatusOK, SuccessResponse{Data: resp})
}

// ListTimeDeposits returns the loaded deposit catalog
// @Summary List time deposit products
// @Tags Products
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.ProductListResponse} "Deposit products"
// @Router /api/v1/products/deposits [get]
func (h *ProductHandler) ListTimeDeposits(c echo.Context) error {
	if !h.catalog.Loaded() {
		return SendError(c, errors.CatalogUnavailable)
	}
	deposits := h.catalog.TimeDeposits()
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ProductListResponse{Count: len(deposits), Products: deposits},
	})
}

// ListSavingProducts returns the loaded installment savings catalog
// @Summary List installment savings products
// @Tags Products
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.ProductListResponse} "Savings products"
// @Router /api/v1/products/savings [get]
func (h *ProductHandler) ListSavingProducts(c echo.Context) error {
	if !h.catalog.Loaded() {
		return SendError(c, errors.CatalogUnavailable)
	}
	savings := h.catalog.SavingProducts()
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ProductListResponse{Count: len(savings), Products: savings},
	})
}
