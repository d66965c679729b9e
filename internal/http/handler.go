package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tavolo/pricing-service/internal/domain/dto"
	"github.com/tavolo/pricing-service/internal/domain/model"
	"github.com/tavolo/pricing-service/internal/i18n"
	"github.com/tavolo/pricing-service/internal/metrics"
	"github.com/tavolo/pricing-service/internal/middleware"
	"github.com/tavolo/pricing-service/internal/service"
)

// Handler provides HTTP handlers for price calculation routes.
type Handler struct {
	calculator service.PriceCalculator
}

// NewHandler creates a new Handler instance.
func NewHandler(calculator service.PriceCalculator) *Handler {
	return &Handler{calculator: calculator}
}

// CalculatePrice handles POST /api/price/calculate requests.
//
// @Summary      Price a configured menu item
// @Description  Prices a menu item variant with its chosen customizations and returns an itemized breakdown whose line items sum exactly to the final price. Template defaults are free at their declared tier; quarter placements are discounted. Supports idempotency via Idempotency-Key header.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CalculatePriceRequest true "Item configuration to price"
// @Success      200 {object} dto.SuccessResponse "Successful calculation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - variant not accessible to this restaurant"
// @Failure      404 {object} dto.ErrorResponse "Not found - no pricing rule covers the request"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - selection cannot be priced"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - catalog unreachable"
// @Security     BearerAuth
// @Router       /api/price/calculate [post]
func (h *Handler) CalculatePrice(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CalculatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		metrics.RecordPriceCalculation(0, "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "calculate_price", "Price calculation requested", map[string]interface{}{
				"restaurant_id": req.RestaurantID,
				"variant_id":    req.VariantID,
				"item_type":     req.ItemType,
				"selections":    len(req.Selections),
			})
		}
	}

	start := time.Now()
	breakdown, err := h.calculator.CalculatePrice(c.Request.Context(), req.ToModel())
	duration := time.Since(start)

	if err != nil {
		status, key := statusForPricingError(err)
		metrics.RecordPriceCalculation(duration, metricStatusForCode(status))
		builder.Error(status, key, err)
		return
	}

	metrics.RecordPriceCalculation(duration, "success")
	builder.SuccessOK(breakdown)
}

// statusForPricingError maps the engine's error taxonomy onto HTTP statuses.
func statusForPricingError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, i18n.ErrKeyInvalidRequest
	case errors.Is(err, model.ErrSelectionInvalid):
		return http.StatusUnprocessableEntity, i18n.ErrKeySelectionInvalid
	case errors.Is(err, model.ErrPricingRuleNotFound):
		return http.StatusNotFound, i18n.ErrKeyNotFound
	case errors.Is(err, model.ErrAccessDenied):
		return http.StatusForbidden, i18n.ErrKeyForbidden
	case errors.Is(err, model.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, i18n.ErrKeyInternalError
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}

func metricStatusForCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "validation_error"
	case http.StatusUnprocessableEntity:
		return "selection_invalid"
	case http.StatusNotFound:
		return "rule_not_found"
	case http.StatusForbidden:
		return "access_denied"
	case http.StatusServiceUnavailable:
		return "catalog_unavailable"
	default:
		return "error"
	}
}
