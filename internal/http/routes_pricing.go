package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tavolo/pricing-service/internal/middleware"
	"github.com/tavolo/pricing-service/internal/service"
)

// PricingRoutes handles pricing and catalog route registration.
type PricingRoutes struct {
	handler        *Handler
	catalogHandler *CatalogHandler
}

// NewPricingRoutes creates a new PricingRoutes instance.
func NewPricingRoutes(calculator service.PriceCalculator, catalogService service.CatalogService) *PricingRoutes {
	handler := NewHandler(calculator)

	var catalogHandler *CatalogHandler
	if catalogService != nil {
		catalogHandler = NewCatalogHandler(catalogService, calculator)
	}

	return &PricingRoutes{
		handler:        handler,
		catalogHandler: catalogHandler,
	}
}

// RegisterPublicRoutes registers public pricing routes (when auth is disabled).
func (r *PricingRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/price/calculate", r.handler.CalculatePrice)

	if r.catalogHandler != nil {
		r.registerCatalogRoutes(rg, func(string) []gin.HandlerFunc { return nil }, "", "")
	}
}

// RegisterProtectedRoutes registers protected pricing routes (when auth is enabled).
func (r *PricingRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	// Get permission IDs for authorization
	pricingReadPermID, catalogWritePermID := r.getPermissionIDs(cfg)

	// Helper to create authorization middleware
	authMiddleware := func(permID string) []gin.HandlerFunc {
		if permID != "" && cfg.RoleService != nil && cfg.PermissionService != nil {
			return []gin.HandlerFunc{
				middleware.RequireAuthorization(middleware.AuthorizationConfig{
					RequiredPermissions: []string{permID},
				}, cfg.RoleService, cfg.PermissionService),
			}
		}
		return nil
	}

	// Register calculate endpoint
	if readAuth := authMiddleware(pricingReadPermID); readAuth != nil {
		protected.POST("/price/calculate", append(readAuth, r.handler.CalculatePrice)...)
	} else {
		protected.POST("/price/calculate", r.handler.CalculatePrice)
	}

	// Register catalog endpoints if service is available
	if r.catalogHandler != nil {
		r.registerCatalogRoutes(protected, authMiddleware, pricingReadPermID, catalogWritePermID)
	}
}

// registerCatalogRoutes registers catalog admin endpoints with optional authorization.
func (r *PricingRoutes) registerCatalogRoutes(
	rg *gin.RouterGroup,
	authMiddleware func(string) []gin.HandlerFunc,
	readPermID, writePermID string,
) {
	if readAuth := authMiddleware(readPermID); readAuth != nil {
		rg.GET("/catalog/variants/:id", append(readAuth, r.catalogHandler.GetVariant)...)
		rg.GET("/catalog/crust-pricing", append(readAuth, r.catalogHandler.GetCrustPricing)...)
		rg.GET("/catalog/customizations", append(readAuth, r.catalogHandler.ListCustomizations)...)
		rg.GET("/catalog/templates/:id", append(readAuth, r.catalogHandler.GetTemplate)...)
	} else {
		rg.GET("/catalog/variants/:id", r.catalogHandler.GetVariant)
		rg.GET("/catalog/crust-pricing", r.catalogHandler.GetCrustPricing)
		rg.GET("/catalog/customizations", r.catalogHandler.ListCustomizations)
		rg.GET("/catalog/templates/:id", r.catalogHandler.GetTemplate)
	}

	if writeAuth := authMiddleware(writePermID); writeAuth != nil {
		rg.PUT("/catalog/variants", append(writeAuth, r.catalogHandler.UpsertVariant)...)
		rg.PUT("/catalog/crust-pricing", append(writeAuth, r.catalogHandler.UpsertCrustPricing)...)
		rg.PUT("/catalog/customizations", append(writeAuth, r.catalogHandler.UpsertCustomization)...)
		rg.PUT("/catalog/templates", append(writeAuth, r.catalogHandler.UpsertTemplate)...)
	} else {
		rg.PUT("/catalog/variants", r.catalogHandler.UpsertVariant)
		rg.PUT("/catalog/crust-pricing", r.catalogHandler.UpsertCrustPricing)
		rg.PUT("/catalog/customizations", r.catalogHandler.UpsertCustomization)
		rg.PUT("/catalog/templates", r.catalogHandler.UpsertTemplate)
	}
}

// getPermissionIDs fetches permission IDs from the permission service.
func (r *PricingRoutes) getPermissionIDs(cfg *RouterConfig) (pricingReadPermID, catalogWritePermID string) {
	if cfg.PermissionService == nil {
		return "", ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	pricingReadPermID = cfg.PermissionService.GetPermissionIDByResourceAndAction(ctx, "pricing", "read")
	catalogWritePermID = cfg.PermissionService.GetPermissionIDByResourceAndAction(ctx, "catalog", "write")

	return pricingReadPermID, catalogWritePermID
}

// GetHandler returns the underlying pricing handler.
func (r *PricingRoutes) GetHandler() *Handler {
	return r.handler
}
