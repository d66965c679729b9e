// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/tavolo/pricing-service/internal/domain/model"
)

type MockCatalogService struct {
	mock.Mock
}

func NewMockCatalogService(t *testing.T) *MockCatalogService {
	m := &MockCatalogService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCatalogService) GetVariant(ctx context.Context, id string) (*model.Variant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Variant), args.Error(1)
}

func (m *MockCatalogService) GetCrustPricing(ctx context.Context, restaurantID, sizeCode, crustCode string) (*model.CrustPricing, error) {
	args := m.Called(ctx, restaurantID, sizeCode, crustCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CrustPricing), args.Error(1)
}

func (m *MockCatalogService) ListCustomizations(ctx context.Context, restaurantID string, ids []string, itemType model.ItemType) ([]model.Customization, error) {
	args := m.Called(ctx, restaurantID, ids, itemType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customization), args.Error(1)
}

func (m *MockCatalogService) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Template), args.Error(1)
}

func (m *MockCatalogService) ListAllCustomizations(ctx context.Context, restaurantID string, limit int) ([]model.Customization, error) {
	args := m.Called(ctx, restaurantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customization), args.Error(1)
}

func (m *MockCatalogService) UpsertVariant(ctx context.Context, v model.Variant, updatedBy string) (*model.Variant, error) {
	args := m.Called(ctx, v, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Variant), args.Error(1)
}

func (m *MockCatalogService) UpsertCrustPricing(ctx context.Context, cp model.CrustPricing, updatedBy string) (*model.CrustPricing, error) {
	args := m.Called(ctx, cp, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CrustPricing), args.Error(1)
}

func (m *MockCatalogService) UpsertCustomization(ctx context.Context, c model.Customization, updatedBy string) (*model.Customization, error) {
	args := m.Called(ctx, c, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customization), args.Error(1)
}

func (m *MockCatalogService) UpsertTemplate(ctx context.Context, t model.Template, updatedBy string) (*model.Template, error) {
	args := m.Called(ctx, t, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Template), args.Error(1)
}
