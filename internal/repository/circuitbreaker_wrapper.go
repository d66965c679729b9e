// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/tavolo/pricing-service/internal/circuitbreaker"
	"github.com/tavolo/pricing-service/internal/domain/model"
)

// CatalogRepositoryWithCircuitBreaker wraps CatalogRepository with circuit breaker protection.
type CatalogRepositoryWithCircuitBreaker struct {
	repo           *CatalogRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCatalogRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCatalogRepositoryWithCircuitBreaker(repo *CatalogRepository, cb *circuitbreaker.CircuitBreaker) *CatalogRepositoryWithCircuitBreaker {
	return &CatalogRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetVariant retrieves a variant with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) GetVariant(ctx context.Context, id string) (*model.Variant, error) {
	var result *model.Variant
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetVariant(ctx, id)
		return cbErr
	})
	return result, err
}

// UpsertVariant stores a variant with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) UpsertVariant(ctx context.Context, v model.Variant, updatedBy string) (*model.Variant, error) {
	var result *model.Variant
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.UpsertVariant(ctx, v, updatedBy)
		return cbErr
	})
	return result, err
}

// GetCrustPricing retrieves a crust pricing row with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) GetCrustPricing(ctx context.Context, restaurantID, sizeCode, crustCode string) (*model.CrustPricing, error) {
	var result *model.CrustPricing
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetCrustPricing(ctx, restaurantID, sizeCode, crustCode)
		return cbErr
	})
	return result, err
}

// UpsertCrustPricing stores a crust pricing row with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) UpsertCrustPricing(ctx context.Context, cp model.CrustPricing, updatedBy string) (*model.CrustPricing, error) {
	var result *model.CrustPricing
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.UpsertCrustPricing(ctx, cp, updatedBy)
		return cbErr
	})
	return result, err
}

// ListCustomizations retrieves customizations by id with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) ListCustomizations(ctx context.Context, restaurantID string, ids []string) ([]model.Customization, error) {
	var result []model.Customization
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListCustomizations(ctx, restaurantID, ids)
		return cbErr
	})
	return result, err
}

// ListAllCustomizations retrieves all customizations for a restaurant with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) ListAllCustomizations(ctx context.Context, restaurantID string, limit int) ([]model.Customization, error) {
	var result []model.Customization
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListAllCustomizations(ctx, restaurantID, limit)
		return cbErr
	})
	return result, err
}

// UpsertCustomization stores a customization with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) UpsertCustomization(ctx context.Context, c model.Customization, updatedBy string) (*model.Customization, error) {
	var result *model.Customization
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.UpsertCustomization(ctx, c, updatedBy)
		return cbErr
	})
	return result, err
}

// GetTemplate retrieves a template with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	var result *model.Template
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetTemplate(ctx, id)
		return cbErr
	})
	return result, err
}

// UpsertTemplate stores a template with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) UpsertTemplate(ctx context.Context, t model.Template, updatedBy string) (*model.Template, error) {
	var result *model.Template
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.UpsertTemplate(ctx, t, updatedBy)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CatalogRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
