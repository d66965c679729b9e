package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tavolo/pricing-service/internal/domain/dto"
	"github.com/tavolo/pricing-service/internal/middleware"
	"github.com/tavolo/pricing-service/internal/service"
)

// CatalogHandler provides HTTP handlers for catalog admin routes.
// Every write invalidates the calculator's result cache.
type CatalogHandler struct {
	catalogService service.CatalogService
	calculator     service.PriceCalculator
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalogService service.CatalogService, calculator service.PriceCalculator) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		calculator:     calculator,
	}
}

func (h *CatalogHandler) invalidate() {
	if h.calculator != nil {
		h.calculator.InvalidateCache()
	}
}

// updatedBy resolves the acting user for audit fields, falling back to the
// JWT subject placed on the context by the auth middleware.
func updatedBy(c *gin.Context, requested string) string {
	if requested != "" {
		return requested
	}
	if userID, exists := c.Get("user_id"); exists {
		if s, ok := userID.(string); ok {
			return s
		}
	}
	return "api"
}

// GetVariant handles GET /api/catalog/variants/:id requests.
//
// @Summary      Get a variant
// @Description  Returns a single menu item variant by id
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        id path string true "Variant id"
// @Success      200 {object} dto.SuccessResponse "Variant"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Variant not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/catalog/variants/{id} [get]
func (h *CatalogHandler) GetVariant(c *gin.Context) {
	builder := NewResponseBuilder(c)

	variant, err := h.catalogService.GetVariant(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}
	if variant == nil {
		builder.Error(http.StatusNotFound, dto.ErrCodeNotFound, nil)
		return
	}

	builder.SuccessOK(variant)
}

// UpsertVariant handles PUT /api/catalog/variants requests.
//
// @Summary      Create or replace a variant
// @Description  Creates or replaces a menu item variant and invalidates cached prices
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        request body dto.UpsertVariantRequest true "Variant definition"
// @Success      200 {object} dto.SuccessResponse "Stored variant"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/catalog/variants [put]
func (h *CatalogHandler) UpsertVariant(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpsertVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		return
	}

	variant, err := req.ToModel()
	if err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		return
	}

	stored, err := h.catalogService.UpsertVariant(c.Request.Context(), variant, updatedBy(c, req.UpdatedBy))
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}
	h.invalidate()

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "upsert_variant", "Variant updated", map[string]interface{}{
				"variant_id":    variant.ID,
				"restaurant_id": variant.RestaurantID,
			})
		}
	}

	builder.SuccessOK(stored)
}

// GetCrustPricing handles GET /api/catalog/crust-pricing requests.
//
// @Summary      Get a crust pricing row
// @Description  Returns the price row for a restaurant, size and crust combination
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        restaurant_id query string true "Restaurant id"
// @Param        size_code query string true "Size code (e.g. 12in)"
// @Param        crust_code query string true "Crust code (e.g. thin)"
// @Success      200 {object} dto.SuccessResponse "Crust pricing row"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "No price row for this combination"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/catalog/crust-pricing [get]
func (h *CatalogHandler) GetCrustPricing(c *gin.Context) {
	builder := NewResponseBuilder(c)

	restaurantID := c.Query("restaurant_id")
	sizeCode := c.Query("size_code")
	crustCode := c.Query("crust_code")
	if restaurantID == "" || sizeCode == "" || crustCode == "" {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, nil)
		return
	}

	row, err := h.catalogService.GetCrustPricing(c.Request.Context(), restaurantID, sizeCode, crustCode)
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}
	if row == nil {
		builder.Error(http.StatusNotFound, dto.ErrCodeNotFound, nil)
		return
	}

	builder.SuccessOK(row)
}

// UpsertCrustPricing handles PUT /api/catalog/crust-pricing requests.
//
// @Summary      Create or replace a crust pricing row
// @Description  Creates or replaces the price row for a restaurant, size and crust combination and invalidates cached prices
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        request body dto.UpsertCrustPricingRequest true "Crust pricing row"
// @Success      200 {object} dto.SuccessResponse "Stored crust pricing row"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/catalog/crust-pricing [put]
func (h *CatalogHandler) UpsertCrustPricing(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpsertCrustPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		return
	}

	row, err := req.ToModel()
	if err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		return
	}

	stored, err := h.catalogService.UpsertCrustPricing(c.Request.Context(), row, updatedBy(c, req.UpdatedBy))
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}
	h.invalidate()

	builder.SuccessOK(stored)
}

// ListCustomizations handles GET /api/catalog/customizations requests.
//
// @Summary      List customizations
// @Description  Returns the customizations for a restaurant, newest first
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        restaurant_id query string true "Restaurant id"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Customizations"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/catalog/customizations [get]
func (h *CatalogHandler) ListCustomizations(c *gin.Context) {
	builder := NewResponseBuilder(c)

	restaurantID := c.Query("restaurant_id")
	if restaurantID == "" {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, nil)
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	customizations, err := h.catalogService.ListAllCustomizations(c.Request.Context(), restaurantID, limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	builder.SuccessOK(customizations)
}

// UpsertCustomization handles PUT /api/catalog/customizations requests.
//
// @Summary      Create or replace a customization
// @Description  Creates or replaces a customization and invalidates cached prices
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        request body dto.UpsertCustomizationRequest true "Customization definition"
// @Success      200 {object} dto.SuccessResponse "Stored customization"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/catalog/customizations [put]
func (h *CatalogHandler) UpsertCustomization(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpsertCustomizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		return
	}

	customization, err := req.ToModel()
	if err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		return
	}

	stored, err := h.catalogService.UpsertCustomization(c.Request.Context(), customization, updatedBy(c, ""))
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}
	h.invalidate()

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "upsert_customization", "Customization updated", map[string]interface{}{
				"customization_id": customization.ID,
				"restaurant_id":    customization.RestaurantID,
			})
		}
	}

	builder.SuccessOK(stored)
}

// GetTemplate handles GET /api/catalog/templates/:id requests.
//
// @Summary      Get a specialty template
// @Description  Returns a specialty template by id
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        id path string true "Template id"
// @Success      200 {object} dto.SuccessResponse "Template"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Template not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/catalog/templates/{id} [get]
func (h *CatalogHandler) GetTemplate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	tpl, err := h.catalogService.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}
	if tpl == nil {
		builder.Error(http.StatusNotFound, dto.ErrCodeNotFound, nil)
		return
	}

	builder.SuccessOK(tpl)
}

// UpsertTemplate handles PUT /api/catalog/templates requests.
//
// @Summary      Create or replace a specialty template
// @Description  Creates or replaces a specialty template and invalidates cached prices
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        request body dto.UpsertTemplateRequest true "Template definition"
// @Success      200 {object} dto.SuccessResponse "Stored template"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/catalog/templates [put]
func (h *CatalogHandler) UpsertTemplate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpsertTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		return
	}

	tpl, err := req.ToModel()
	if err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		return
	}

	stored, err := h.catalogService.UpsertTemplate(c.Request.Context(), tpl, updatedBy(c, ""))
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}
	h.invalidate()

	builder.SuccessOK(stored)
}
