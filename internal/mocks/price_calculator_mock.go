// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/tavolo/pricing-service/internal/domain/model"
)

type MockPriceCalculator struct {
	mock.Mock
}

func NewMockPriceCalculator(t *testing.T) *MockPriceCalculator {
	m := &MockPriceCalculator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPriceCalculator) CalculatePrice(ctx context.Context, req model.PriceRequest) (*model.PriceBreakdown, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PriceBreakdown), args.Error(1)
}

func (m *MockPriceCalculator) InvalidateCache() {
	m.Called()
}
