// Package app provides service initialization.
package app

import (
	"github.com/tavolo/pricing-service/config"
	"github.com/tavolo/pricing-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator     service.PriceCalculator
	CatalogService service.CatalogService
}

// InitializeServices initializes business logic services on top of the
// catalog repository. When the database is unavailable the calculator still
// comes up; every calculation then fails closed with a catalog error.
func InitializeServices(cfg config.CacheConfig, dbComponents *DatabaseComponents) *ServiceComponents {
	var catalogService service.CatalogService
	if dbComponents != nil && dbComponents.CatalogRepo != nil {
		catalogService = service.NewCatalogService(dbComponents.CatalogRepo)
	} else {
		catalogService = service.NewCatalogService(nil)
	}

	var opts []service.Option
	if cfg.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Size, cfg.TTL))
	}

	calculator := service.NewPriceCalculatorService(catalogService, opts...)

	return &ServiceComponents{
		Calculator:     calculator,
		CatalogService: catalogService,
	}
}
