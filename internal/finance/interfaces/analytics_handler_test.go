package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"expenseflow/internal/finance/application"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSummary(t *testing.T) {
	service := &MockAnalyticsService{
		Summary: &application.Summary{
			Totals: application.Totals{
				TotalExpenses: decimal.NewFromInt(100),
				TotalIncome:   decimal.NewFromInt(500),
				NetBalance:    decimal.NewFromInt(400),
			},
			CategoryBreakdown:      map[string]decimal.Decimal{"Food & Dining": decimal.NewFromInt(100)},
			PaymentMethodBreakdown: map[string]decimal.Decimal{"cash": decimal.NewFromInt(100)},
		},
	}
	handler := NewAnalyticsHandler(service, respondJSON, respondError)

	req := authedRequest(t, http.MethodGet, "/api/analytics/summary", nil, "user-1")
	w := httptest.NewRecorder()

	handler.GetSummary(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Status  string              `json:"status"`
		Summary application.Summary `json:"summary"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.True(t, response.Summary.Totals.NetBalance.Equal(decimal.NewFromInt(400)))
}

func TestGetMonthlyTrends_DefaultsToSixMonths(t *testing.T) {
	service := &MockAnalyticsService{}
	handler := NewAnalyticsHandler(service, respondJSON, respondError)

	req := authedRequest(t, http.MethodGet, "/api/analytics/trends", nil, "user-1")
	w := httptest.NewRecorder()

	handler.GetMonthlyTrends(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Equal(t, 0, service.LastMonths, "absent months parameter is passed through as zero for the service default")
}

func TestGetMonthlyTrends_RejectsBadMonths(t *testing.T) {
	handler := NewAnalyticsHandler(&MockAnalyticsService{}, respondJSON, respondError)

	for _, raw := range []string{"abc", "-3", "0"} {
		req := authedRequest(t, http.MethodGet, "/api/analytics/trends?months="+raw, nil, "user-1")
		w := httptest.NewRecorder()

		handler.GetMonthlyTrends(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode, "months=%s must be rejected", raw)
	}
}
