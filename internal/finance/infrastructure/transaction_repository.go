package infrastructure

import (
	"database/sql"
	"fmt"
	"strings"

	"expenseflow/internal/finance/domain"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(transaction domain.Transaction) error {
	_, err := r.db.Exec(
		`INSERT INTO expenses
        (id, user_id, amount, category, payment_method, transaction_type, description, date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		transaction.ID, transaction.UserID, transaction.Amount, transaction.Category,
		transaction.PaymentMethod, transaction.Type, transaction.Description, transaction.Date, transaction.CreatedAt,
	)
	return err
}

func (r *TransactionRepository) FindByUser(userID string) ([]domain.Transaction, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, amount, category, payment_method, transaction_type, description, date, created_at
        FROM expenses WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(&transaction.ID, &transaction.UserID, &transaction.Amount, &transaction.Category,
			&transaction.PaymentMethod, &transaction.Type, &transaction.Description, &transaction.Date, &transaction.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

// Update writes only the fields present in the patch. The WHERE clause pins
// both id and user_id, so a row owned by another user is never touched and
// a missing row is a no-op rather than an error.
func (r *TransactionRepository) Update(userID, transactionID string, patch domain.TransactionPatch) error {
	var setClauses []string
	var args []interface{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Amount != nil {
		addSet("amount", *patch.Amount)
	}
	if patch.Category != nil {
		addSet("category", *patch.Category)
	}
	if patch.PaymentMethod != nil {
		addSet("payment_method", *patch.PaymentMethod)
	}
	if patch.Type != nil {
		addSet("transaction_type", *patch.Type)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.Date != nil {
		addSet("date", *patch.Date)
	}

	if len(setClauses) == 0 {
		return nil
	}

	args = append(args, transactionID, userID)
	query := fmt.Sprintf("UPDATE expenses SET %s WHERE id = $%d AND user_id = $%d",
		strings.Join(setClauses, ", "), len(args)-1, len(args))

	_, err := r.db.Exec(query, args...)
	return err
}

func (r *TransactionRepository) Delete(userID, transactionID string) error {
	_, err := r.db.Exec(`DELETE FROM expenses WHERE id = $1 AND user_id = $2`, transactionID, userID)
	return err
}
