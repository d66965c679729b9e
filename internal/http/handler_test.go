package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tavolo/pricing-service/internal/domain/dto"
	"github.com/tavolo/pricing-service/internal/domain/model"
	"github.com/tavolo/pricing-service/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouterWithMock(t *testing.T) (*gin.Engine, *mocks.MockPriceCalculator) {
	mockCalc := mocks.NewMockPriceCalculator(t)
	handler := NewHandler(mockCalc)
	healthHandler := NewHealthHandler()
	return NewRouter(handler, healthHandler, DefaultRouterConfig()), mockCalc
}

func pepperoniBreakdown() *model.PriceBreakdown {
	base := decimal.RequireFromString("15.95")
	topping := decimal.RequireFromString("1.85")
	return &model.PriceBreakdown{
		BasePrice:   base,
		ToppingCost: topping,
		FinalPrice:  base.Add(topping),
		Breakdown: []model.LineItem{
			{Name: "Large Pizza", Price: base, Kind: model.LineKindBase},
			{Name: "Pepperoni", Price: topping, Kind: model.LineKindTopping,
				Amount: model.TierNormal, Placement: model.PlacementWhole},
		},
		EstimatedPrepMinutes: 14,
	}
}

func TestCalculatePrice(t *testing.T) {
	validBody := `{
		"restaurant_id": "rest-1",
		"variant_id": "var-12-thin",
		"item_type": "pizza",
		"size_code": "12in",
		"crust_type": "thin",
		"selections": [{"customization_id": "cust-pepperoni"}]
	}`

	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockPriceCalculator)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "valid request returns itemized breakdown",
			body: validBody,
			setupMock: func(m *mocks.MockPriceCalculator) {
				m.On("CalculatePrice", mock.Anything, mock.Anything).Return(pepperoniBreakdown(), nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)

				dataBytes, _ := json.Marshal(resp.Data)
				var breakdown model.PriceBreakdown
				assert.NoError(t, json.Unmarshal(dataBytes, &breakdown))
				assert.True(t, decimal.RequireFromString("17.80").Equal(breakdown.FinalPrice))
				assert.Len(t, breakdown.Breakdown, 2)
				assert.Equal(t, 14, breakdown.EstimatedPrepMinutes)
			},
		},
		{
			name:           "invalid JSON",
			body:           `invalid`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing restaurant id",
			body:           `{"variant_id": "var-1", "item_type": "pizza", "size_code": "12in", "crust_type": "thin"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown item type",
			body:           `{"restaurant_id": "rest-1", "variant_id": "var-1", "item_type": "sushi"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "pizza without size code",
			body:           `{"restaurant_id": "rest-1", "variant_id": "var-1", "item_type": "pizza", "crust_type": "thin"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid selection maps to 422",
			body: validBody,
			setupMock: func(m *mocks.MockPriceCalculator) {
				m.On("CalculatePrice", mock.Anything, mock.Anything).
					Return(nil, model.NewSelectionInvalidError("cust-pepperoni", "not available"))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodeUnprocessable, resp.Error)
			},
		},
		{
			name: "missing pricing rule maps to 404",
			body: validBody,
			setupMock: func(m *mocks.MockPriceCalculator) {
				m.On("CalculatePrice", mock.Anything, mock.Anything).
					Return(nil, model.NewPricingRuleNotFoundError("no crust pricing"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "foreign variant maps to 403",
			body: validBody,
			setupMock: func(m *mocks.MockPriceCalculator) {
				m.On("CalculatePrice", mock.Anything, mock.Anything).
					Return(nil, model.NewAccessDeniedError("variant belongs to another restaurant"))
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "catalog outage maps to 503",
			body: validBody,
			setupMock: func(m *mocks.MockPriceCalculator) {
				m.On("CalculatePrice", mock.Anything, mock.Anything).
					Return(nil, model.NewCatalogUnavailableError(errors.New("connection reset")))
			},
			expectedStatus: http.StatusServiceUnavailable,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodeUnavailable, resp.Error)
			},
		},
		{
			name: "engine validation error maps to 400",
			body: validBody,
			setupMock: func(m *mocks.MockPriceCalculator) {
				m.On("CalculatePrice", mock.Anything, mock.Anything).
					Return(nil, model.NewValidationError("item_type", "does not match variant item type"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unexpected error maps to 500",
			body: validBody,
			setupMock: func(m *mocks.MockPriceCalculator) {
				m.On("CalculatePrice", mock.Anything, mock.Anything).
					Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockCalc := setupRouterWithMock(t)
			if tt.setupMock != nil {
				tt.setupMock(mockCalc)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/price/calculate", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestCalculatePrice_PassesRequestToEngine(t *testing.T) {
	router, mockCalc := setupRouterWithMock(t)

	mockCalc.On("CalculatePrice", mock.Anything, model.PriceRequest{
		RestaurantID: "rest-1",
		ItemType:     model.ItemTypePizza,
		VariantID:    "var-12-thin",
		SizeCode:     "12in",
		CrustCode:    "thin",
		TemplateID:   "tpl-deluxe",
		Selections: []model.Selection{
			{CustomizationID: "cust-pepperoni", AmountTier: model.TierExtra, Placement: model.PlacementQuarter1},
		},
	}).Return(pepperoniBreakdown(), nil)

	body := `{
		"restaurant_id": "rest-1",
		"variant_id": "var-12-thin",
		"item_type": "pizza",
		"size_code": "12in",
		"crust_type": "thin",
		"template_id": "tpl-deluxe",
		"selections": [{"customization_id": "cust-pepperoni", "amount": "extra", "placement": "quarter-1"}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/price/calculate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthEndpoints(t *testing.T) {
	router, _ := setupRouterWithMock(t)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "liveness probe",
			path:           "/healthz",
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"ok"`,
		},
		{
			name:           "readiness probe",
			path:           "/readyz",
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"ok"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func BenchmarkHandler(b *testing.B) {
	mockCalc := &mocks.MockPriceCalculator{}
	mockCalc.On("CalculatePrice", mock.Anything, mock.Anything).Return(pepperoniBreakdown(), nil)
	router := NewRouter(NewHandler(mockCalc), NewHealthHandler(), DefaultRouterConfig())

	body := []byte(`{
		"restaurant_id": "rest-1",
		"variant_id": "var-12-thin",
		"item_type": "pizza",
		"size_code": "12in",
		"crust_type": "thin",
		"selections": [{"customization_id": "cust-pepperoni"}]
	}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/price/calculate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}
