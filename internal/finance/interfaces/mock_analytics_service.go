package interfaces

import (
	"expenseflow/internal/finance/application"
)

// MockAnalyticsService returns canned analytics results for handler tests.
type MockAnalyticsService struct {
	Summary *application.Summary
	Trends  []application.MonthlyTrend
	Err     error

	LastMonths int
}

func (m *MockAnalyticsService) GetSummary(userID string) (*application.Summary, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Summary, nil
}

func (m *MockAnalyticsService) GetMonthlyTrends(userID string, months int) ([]application.MonthlyTrend, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.LastMonths = months
	return m.Trends, nil
}
