// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tavolo/pricing-service/internal/domain/model"
)

type MockCatalogRepositoryInterface struct {
	mock.Mock
}

func (m *MockCatalogRepositoryInterface) GetVariant(ctx context.Context, id string) (*model.Variant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Variant), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) UpsertVariant(ctx context.Context, v model.Variant, updatedBy string) (*model.Variant, error) {
	args := m.Called(ctx, v, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Variant), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) GetCrustPricing(ctx context.Context, restaurantID, sizeCode, crustCode string) (*model.CrustPricing, error) {
	args := m.Called(ctx, restaurantID, sizeCode, crustCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CrustPricing), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) UpsertCrustPricing(ctx context.Context, cp model.CrustPricing, updatedBy string) (*model.CrustPricing, error) {
	args := m.Called(ctx, cp, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CrustPricing), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) ListCustomizations(ctx context.Context, restaurantID string, ids []string) ([]model.Customization, error) {
	args := m.Called(ctx, restaurantID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customization), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) ListAllCustomizations(ctx context.Context, restaurantID string, limit int) ([]model.Customization, error) {
	args := m.Called(ctx, restaurantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customization), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) UpsertCustomization(ctx context.Context, c model.Customization, updatedBy string) (*model.Customization, error) {
	args := m.Called(ctx, c, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customization), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Template), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) UpsertTemplate(ctx context.Context, t model.Template, updatedBy string) (*model.Template, error) {
	args := m.Called(ctx, t, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Template), args.Error(1)
}
