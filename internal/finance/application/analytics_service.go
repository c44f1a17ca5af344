package application

import (
	"time"

	"expenseflow/internal/finance/domain"

	"github.com/shopspring/decimal"
)

const defaultTrendMonths = 6

// Totals summarises a transaction set. NetBalance is always
// TotalIncome - TotalExpenses.
type Totals struct {
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	NetBalance    decimal.Decimal `json:"netBalance"`
}

// MonthlyTrend is one calendar-month bucket of the trends view.
type MonthlyTrend struct {
	Month    string          `json:"month"`
	Expenses decimal.Decimal `json:"expenses"`
	Income   decimal.Decimal `json:"income"`
}

// CalculateTotals sums debit amounts into TotalExpenses and credit amounts
// into TotalIncome. Empty input yields all zeros.
func CalculateTotals(transactions []domain.Transaction) Totals {
	totalExpenses := decimal.Zero
	totalIncome := decimal.Zero

	for _, t := range transactions {
		switch t.Type {
		case domain.TypeDebit:
			totalExpenses = totalExpenses.Add(t.Amount)
		case domain.TypeCredit:
			totalIncome = totalIncome.Add(t.Amount)
		}
	}

	return Totals{
		TotalExpenses: totalExpenses,
		TotalIncome:   totalIncome,
		NetBalance:    totalIncome.Sub(totalExpenses),
	}
}

// CategoryBreakdown sums debit amounts per category name. Credit
// transactions are excluded entirely; income is not categorised in this
// view. Category values are not validated, an unrecognised name becomes its
// own bucket.
func CategoryBreakdown(transactions []domain.Transaction) map[string]decimal.Decimal {
	breakdown := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != domain.TypeDebit {
			continue
		}
		breakdown[t.Category] = breakdown[t.Category].Add(t.Amount)
	}
	return breakdown
}

// PaymentMethodBreakdown sums debit amounts per payment method, with the
// same debit-only restriction as CategoryBreakdown.
func PaymentMethodBreakdown(transactions []domain.Transaction) map[string]decimal.Decimal {
	breakdown := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != domain.TypeDebit {
			continue
		}
		breakdown[t.PaymentMethod] = breakdown[t.PaymentMethod].Add(t.Amount)
	}
	return breakdown
}

// MonthlyTrends returns exactly `months` calendar-month buckets anchored to
// the current month, oldest first. Each bucket sums debit amounts into
// Expenses and credit amounts into Income for transactions dated within
// [start of month, end of month] inclusive.
func MonthlyTrends(transactions []domain.Transaction, months int) []MonthlyTrend {
	return monthlyTrendsAt(transactions, months, time.Now())
}

func monthlyTrendsAt(transactions []domain.Transaction, months int, now time.Time) []MonthlyTrend {
	if months <= 0 {
		months = defaultTrendMonths
	}

	// Walk backward from the first day of the current month so that
	// month arithmetic never overflows on short months.
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	trends := make([]MonthlyTrend, 0, months)
	for i := months - 1; i >= 0; i-- {
		monthStart := currentMonth.AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

		expenses := decimal.Zero
		income := decimal.Zero
		for _, t := range transactions {
			if t.Date.Before(monthStart) || t.Date.After(monthEnd) {
				continue
			}
			switch t.Type {
			case domain.TypeDebit:
				expenses = expenses.Add(t.Amount)
			case domain.TypeCredit:
				income = income.Add(t.Amount)
			}
		}

		trends = append(trends, MonthlyTrend{
			Month:    monthStart.Format("Jan 2006"),
			Expenses: expenses,
			Income:   income,
		})
	}
	return trends
}

// AnalyticsService fetches a user's transactions and runs the pure
// aggregation functions over them.
type AnalyticsService struct {
	repo domain.TransactionRepository
}

func NewAnalyticsService(repo domain.TransactionRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// Summary bundles the totals with both breakdowns.
type Summary struct {
	Totals                 Totals                     `json:"totals"`
	CategoryBreakdown      map[string]decimal.Decimal `json:"categoryBreakdown"`
	PaymentMethodBreakdown map[string]decimal.Decimal `json:"paymentMethodBreakdown"`
}

func (s *AnalyticsService) GetSummary(userID string) (*Summary, error) {
	transactions, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Totals:                 CalculateTotals(transactions),
		CategoryBreakdown:      CategoryBreakdown(transactions),
		PaymentMethodBreakdown: PaymentMethodBreakdown(transactions),
	}, nil
}

func (s *AnalyticsService) GetMonthlyTrends(userID string, months int) ([]MonthlyTrend, error) {
	transactions, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	return MonthlyTrends(transactions, months), nil
}
