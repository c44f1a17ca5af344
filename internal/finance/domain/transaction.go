package domain

import (
	"time"

	financeErrors "expenseflow/internal/finance/errors"

	"github.com/shopspring/decimal"
)

const (
	TypeCredit = "credit" // income
	TypeDebit  = "debit"  // expense

	MethodCash       = "cash"
	MethodUPI        = "upi"
	MethodCreditCard = "credit-card"
	MethodDebitCard  = "debit-card"

	maxDescriptionLength = 200
)

// Transaction is a single recorded money movement, called "expense" in the
// user-facing API regardless of direction.
type Transaction struct {
	ID            string          `json:"id"`
	UserID        string          `json:"-"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"paymentMethod"`
	Type          string          `json:"transactionType"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// TransactionPatch carries a partial update. Only non-nil fields overwrite
// the stored record; absent fields leave the prior value unchanged.
type TransactionPatch struct {
	Amount        *decimal.Decimal `json:"amount"`
	Category      *string          `json:"category"`
	PaymentMethod *string          `json:"paymentMethod"`
	Type          *string          `json:"transactionType"`
	Description   *string          `json:"description"`
	Date          *time.Time       `json:"date"`
}

func (t *Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return financeErrors.ErrNegativeAmount
	}
	if !isValidType(t.Type) {
		return financeErrors.ErrInvalidTransactionType
	}
	if !isValidPaymentMethod(t.PaymentMethod) {
		return financeErrors.ErrInvalidPaymentMethod
	}
	if len(t.Description) > maxDescriptionLength {
		return financeErrors.NewValidationError("Description must be of length less than 200")
	}
	return nil
}

// Validate checks only the fields present in the patch.
func (p *TransactionPatch) Validate() error {
	if p.Amount != nil && p.Amount.IsNegative() {
		return financeErrors.ErrNegativeAmount
	}
	if p.Type != nil && !isValidType(*p.Type) {
		return financeErrors.ErrInvalidTransactionType
	}
	if p.PaymentMethod != nil && !isValidPaymentMethod(*p.PaymentMethod) {
		return financeErrors.ErrInvalidPaymentMethod
	}
	if p.Description != nil && len(*p.Description) > maxDescriptionLength {
		return financeErrors.NewValidationError("Description must be of length less than 200")
	}
	return nil
}

// Empty reports whether the patch contains no fields at all.
func (p *TransactionPatch) Empty() bool {
	return p.Amount == nil && p.Category == nil && p.PaymentMethod == nil &&
		p.Type == nil && p.Description == nil && p.Date == nil
}

func isValidType(t string) bool {
	return t == TypeCredit || t == TypeDebit
}

func isValidPaymentMethod(m string) bool {
	switch m {
	case MethodCash, MethodUPI, MethodCreditCard, MethodDebitCard:
		return true
	}
	return false
}

// TransactionRepository is the persistence boundary for per-user expense
// records. Update and Delete must affect at most one row and silently do
// nothing when the record does not belong to the given user.
type TransactionRepository interface {
	Save(transaction Transaction) error
	FindByUser(userID string) ([]Transaction, error)
	Update(userID, transactionID string, patch TransactionPatch) error
	Delete(userID, transactionID string) error
}
