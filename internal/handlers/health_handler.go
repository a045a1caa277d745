package handlers

import (
	"net/http"
	"time"

	"fincoach/internal/errors"
	"fincoach/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	catalog services.CatalogServiceInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(catalog services.CatalogServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{catalog: catalog}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API and product catalog status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_002 - Service unavailable (catalog not loaded)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if !h.catalog.Loaded() {
		traceID := getTraceID(c)
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			traceID,
			errors.WithDetails("Product catalog not loaded"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":             "healthy",
		"time":               time.Now().UTC().Format(time.RFC3339),
		"time_deposits":      len(h.catalog.TimeDeposits()),
		"saving_products":    len(h.catalog.SavingProducts()),
	})
}
