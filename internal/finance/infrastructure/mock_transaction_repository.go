package infrastructure

import (
	"expenseflow/internal/finance/domain"
)

// MockTransactionRepository is an in-memory stand-in used by service and
// handler tests.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	SaveErr      error
	FindErr      error
}

func (m *MockTransactionRepository) Save(transaction domain.Transaction) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Transactions = append(m.Transactions, transaction)
	return nil
}

func (m *MockTransactionRepository) FindByUser(userID string) ([]domain.Transaction, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var owned []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			owned = append(owned, transaction)
		}
	}
	return owned, nil
}

func (m *MockTransactionRepository) Update(userID, transactionID string, patch domain.TransactionPatch) error {
	for i, transaction := range m.Transactions {
		if transaction.ID != transactionID || transaction.UserID != userID {
			continue
		}
		if patch.Amount != nil {
			m.Transactions[i].Amount = *patch.Amount
		}
		if patch.Category != nil {
			m.Transactions[i].Category = *patch.Category
		}
		if patch.PaymentMethod != nil {
			m.Transactions[i].PaymentMethod = *patch.PaymentMethod
		}
		if patch.Type != nil {
			m.Transactions[i].Type = *patch.Type
		}
		if patch.Description != nil {
			m.Transactions[i].Description = *patch.Description
		}
		if patch.Date != nil {
			m.Transactions[i].Date = *patch.Date
		}
		return nil
	}
	return nil
}

func (m *MockTransactionRepository) Delete(userID, transactionID string) error {
	for i, transaction := range m.Transactions {
		if transaction.ID == transactionID && transaction.UserID == userID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return nil
}
