package interfaces

import (
	"encoding/json"
	"net/http"
	"time"

	"expenseflow/internal/finance/domain"
	financeErrors "expenseflow/internal/finance/errors"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type TransactionServiceInterface interface {
	GetUserTransactions(userID string) ([]domain.Transaction, error)
	CreateTransaction(userID string, transaction domain.Transaction) (*domain.Transaction, error)
	UpdateTransaction(userID, transactionID string, patch domain.TransactionPatch) error
	DeleteTransaction(userID, transactionID string) error
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	transactions, err := h.service.GetUserTransactions(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"expenses": transactions,
	})
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	var req struct {
		Amount        decimal.Decimal `json:"amount"`
		Category      string          `json:"category"`
		PaymentMethod string          `json:"paymentMethod"`
		Type          string          `json:"transactionType"`
		Description   string          `json:"description"`
		Date          string          `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Date must be in YYYY-MM-DD format")
		return
	}

	transaction, err := h.service.CreateTransaction(userID, domain.Transaction{
		Amount:        req.Amount,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		Type:          req.Type,
		Description:   req.Description,
		Date:          date,
	})
	if err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to create expense")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"expense": transaction,
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	var req struct {
		ID            string           `json:"id"`
		Amount        *decimal.Decimal `json:"amount"`
		Category      *string          `json:"category"`
		PaymentMethod *string          `json:"paymentMethod"`
		Type          *string          `json:"transactionType"`
		Description   *string          `json:"description"`
		Date          *string          `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == "" {
		h.respondError(w, http.StatusBadRequest, "Expense ID is required")
		return
	}

	patch := domain.TransactionPatch{
		Amount:        req.Amount,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		Type:          req.Type,
		Description:   req.Description,
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Date must be in YYYY-MM-DD format")
			return
		}
		patch.Date = &date
	}

	if err := h.service.UpdateTransaction(userID, req.ID, patch); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to update expense")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Expense updated successfully",
	})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	transactionID := r.URL.Query().Get("id")
	if transactionID == "" {
		h.respondError(w, http.StatusBadRequest, "Expense ID is required")
		return
	}

	if err := h.service.DeleteTransaction(userID, transactionID); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to delete expense")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Expense deleted successfully",
	})
}
