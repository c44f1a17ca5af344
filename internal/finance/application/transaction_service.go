package application

import (
	"time"

	"expenseflow/internal/finance/domain"
	financeErrors "expenseflow/internal/finance/errors"

	"github.com/google/uuid"
)

// TransactionService owns the CRUD rules for a user's expense records.
// Every operation is scoped by the authenticated user id; update and delete
// silently do nothing when the target row belongs to someone else, so the
// existence of other users' data is never leaked.
type TransactionService struct {
	repo domain.TransactionRepository
}

func NewTransactionService(repo domain.TransactionRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

func (s *TransactionService) GetUserTransactions(userID string) ([]domain.Transaction, error) {
	return s.repo.FindByUser(userID)
}

// CreateTransaction validates the record, assigns a fresh id and creation
// timestamp, and persists it for the given user.
func (s *TransactionService) CreateTransaction(userID string, transaction domain.Transaction) (*domain.Transaction, error) {
	transaction.UserID = userID
	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	transaction.ID = uuid.New().String()
	transaction.CreatedAt = time.Now().UTC()

	if err := s.repo.Save(transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (s *TransactionService) UpdateTransaction(userID, transactionID string, patch domain.TransactionPatch) error {
	if transactionID == "" {
		return financeErrors.NewValidationError("Expense ID is required")
	}
	if patch.Empty() {
		return financeErrors.NewValidationError("No fields to update")
	}
	if err := patch.Validate(); err != nil {
		return err
	}
	return s.repo.Update(userID, transactionID, patch)
}

// DeleteTransaction is idempotent: deleting an id that does not exist or is
// owned by another user succeeds without side effects.
func (s *TransactionService) DeleteTransaction(userID, transactionID string) error {
	if transactionID == "" {
		return financeErrors.NewValidationError("Expense ID is required")
	}
	return s.repo.Delete(userID, transactionID)
}
