package interfaces

import (
	"time"

	"expenseflow/internal/finance/domain"

	"github.com/google/uuid"
)

// MockTransactionService is an in-memory TransactionServiceInterface used
// by handler tests.
type MockTransactionService struct {
	Transactions []domain.Transaction
	Err          error
}

func (m *MockTransactionService) GetUserTransactions(userID string) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var owned []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			owned = append(owned, transaction)
		}
	}
	return owned, nil
}

func (m *MockTransactionService) CreateTransaction(userID string, transaction domain.Transaction) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	transaction.UserID = userID
	if err := transaction.Validate(); err != nil {
		return nil, err
	}
	transaction.ID = uuid.New().String()
	transaction.CreatedAt = time.Now().UTC()
	m.Transactions = append(m.Transactions, transaction)
	return &transaction, nil
}

func (m *MockTransactionService) UpdateTransaction(userID, transactionID string, patch domain.TransactionPatch) error {
	if m.Err != nil {
		return m.Err
	}
	if err := patch.Validate(); err != nil {
		return err
	}
	for i, transaction := range m.Transactions {
		if transaction.ID == transactionID && transaction.UserID == userID {
			if patch.Amount != nil {
				m.Transactions[i].Amount = *patch.Amount
			}
			if patch.Category != nil {
				m.Transactions[i].Category = *patch.Category
			}
			if patch.Description != nil {
				m.Transactions[i].Description = *patch.Description
			}
		}
	}
	return nil
}

func (m *MockTransactionService) DeleteTransaction(userID, transactionID string) error {
	if m.Err != nil {
		return m.Err
	}
	for i, transaction := range m.Transactions {
		if transaction.ID == transactionID && transaction.UserID == userID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return nil
}
