package service

import (
	"context"
	"errors"

	"github.com/tavolo/pricing-service/internal/domain/model"
	"github.com/tavolo/pricing-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// CatalogService provides read access to the menu and customization catalogs
// plus the admin write operations. The pricing engine only ever reads.
//
// Lookups return (nil, nil) when the entity does not exist; transport
// failures return an error.
type CatalogService interface {
	GetVariant(ctx context.Context, id string) (*model.Variant, error)
	GetCrustPricing(ctx context.Context, restaurantID, sizeCode, crustCode string) (*model.CrustPricing, error)
	ListCustomizations(ctx context.Context, restaurantID string, ids []string, itemType model.ItemType) ([]model.Customization, error)
	GetTemplate(ctx context.Context, id string) (*model.Template, error)

	ListAllCustomizations(ctx context.Context, restaurantID string, limit int) ([]model.Customization, error)
	UpsertVariant(ctx context.Context, v model.Variant, updatedBy string) (*model.Variant, error)
	UpsertCrustPricing(ctx context.Context, cp model.CrustPricing, updatedBy string) (*model.CrustPricing, error)
	UpsertCustomization(ctx context.Context, c model.Customization, updatedBy string) (*model.Customization, error)
	UpsertTemplate(ctx context.Context, t model.Template, updatedBy string) (*model.Template, error)
}

// CatalogServiceImpl implements CatalogService on top of the catalog
// repository.
type CatalogServiceImpl struct {
	catalogRepo repository.CatalogRepositoryInterface
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalogRepo repository.CatalogRepositoryInterface) CatalogService {
	return &CatalogServiceImpl{catalogRepo: catalogRepo}
}

func (s *CatalogServiceImpl) GetVariant(ctx context.Context, id string) (*model.Variant, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.GetVariant(ctx, id)
}

func (s *CatalogServiceImpl) GetCrustPricing(ctx context.Context, restaurantID, sizeCode, crustCode string) (*model.CrustPricing, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.GetCrustPricing(ctx, restaurantID, sizeCode, crustCode)
}

func (s *CatalogServiceImpl) ListCustomizations(ctx context.Context, restaurantID string, ids []string, _ model.ItemType) ([]model.Customization, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.ListCustomizations(ctx, restaurantID, ids)
}

func (s *CatalogServiceImpl) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.GetTemplate(ctx, id)
}

func (s *CatalogServiceImpl) ListAllCustomizations(ctx context.Context, restaurantID string, limit int) ([]model.Customization, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.ListAllCustomizations(ctx, restaurantID, limit)
}

func (s *CatalogServiceImpl) UpsertVariant(ctx context.Context, v model.Variant, updatedBy string) (*model.Variant, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.UpsertVariant(ctx, v, updatedBy)
}

func (s *CatalogServiceImpl) UpsertCrustPricing(ctx context.Context, cp model.CrustPricing, updatedBy string) (*model.CrustPricing, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.UpsertCrustPricing(ctx, cp, updatedBy)
}

func (s *CatalogServiceImpl) UpsertCustomization(ctx context.Context, c model.Customization, updatedBy string) (*model.Customization, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.UpsertCustomization(ctx, c, updatedBy)
}

func (s *CatalogServiceImpl) UpsertTemplate(ctx context.Context, t model.Template, updatedBy string) (*model.Template, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.UpsertTemplate(ctx, t, updatedBy)
}
