// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/tavolo/pricing-service/internal/domain/model"
)

// CatalogRepositoryInterface defines the interface for catalog repository
// operations. Lookups return (nil, nil) when the entity does not exist.
type CatalogRepositoryInterface interface {
	GetVariant(ctx context.Context, id string) (*model.Variant, error)
	UpsertVariant(ctx context.Context, v model.Variant, updatedBy string) (*model.Variant, error)
	GetCrustPricing(ctx context.Context, restaurantID, sizeCode, crustCode string) (*model.CrustPricing, error)
	UpsertCrustPricing(ctx context.Context, cp model.CrustPricing, updatedBy string) (*model.CrustPricing, error)
	ListCustomizations(ctx context.Context, restaurantID string, ids []string) ([]model.Customization, error)
	ListAllCustomizations(ctx context.Context, restaurantID string, limit int) ([]model.Customization, error)
	UpsertCustomization(ctx context.Context, c model.Customization, updatedBy string) (*model.Customization, error)
	GetTemplate(ctx context.Context, id string) (*model.Template, error)
	UpsertTemplate(ctx context.Context, t model.Template, updatedBy string) (*model.Template, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
