package interfaces

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"expenseflow/internal/finance/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedRequest(t *testing.T, method, target string, body []byte, userID string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(context.WithValue(req.Context(), "userID", userID))
}

func TestCreateTransaction_Success(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body, err := json.Marshal(map[string]interface{}{
		"amount":          199.99,
		"category":        "Shopping",
		"paymentMethod":   "credit-card",
		"transactionType": "debit",
		"description":     "headphones",
		"date":            "2024-05-20",
	})
	require.NoError(t, err)

	req := authedRequest(t, http.MethodPost, "/api/expenses", body, "user-1")
	w := httptest.NewRecorder()

	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	require.Len(t, service.Transactions, 1)
	created := service.Transactions[0]
	assert.Equal(t, "user-1", created.UserID)
	assert.True(t, created.Amount.Equal(decimal.RequireFromString("199.99")))
	assert.NotEmpty(t, created.ID)
}

func TestCreateTransaction_InvalidBody(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authedRequest(t, http.MethodPost, "/api/expenses", []byte("invalid body"), "user-1")
	w := httptest.NewRecorder()

	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "error", response["status"])
	assert.Equal(t, "Invalid request body", response["message"])
	assert.Equal(t, float64(http.StatusBadRequest), response["code"])
}

func TestCreateTransaction_BadDateAndBadEnum(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]interface{}{
		"amount": 10, "category": "Travel", "paymentMethod": "cash",
		"transactionType": "debit", "date": "20-05-2024",
	})
	req := authedRequest(t, http.MethodPost, "/api/expenses", body, "user-1")
	w := httptest.NewRecorder()
	handler.CreateTransaction(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)

	body, _ = json.Marshal(map[string]interface{}{
		"amount": 10, "category": "Travel", "paymentMethod": "cheque",
		"transactionType": "debit", "date": "2024-05-20",
	})
	req = authedRequest(t, http.MethodPost, "/api/expenses", body, "user-1")
	w = httptest.NewRecorder()
	handler.CreateTransaction(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	assert.Empty(t, service.Transactions)
}

func TestGetTransactions_ReturnsOnlyCallerRows(t *testing.T) {
	service := &MockTransactionService{
		Transactions: []domain.Transaction{
			{ID: "t1", UserID: "user-1", Type: domain.TypeDebit, Amount: decimal.NewFromInt(10)},
			{ID: "t2", UserID: "user-2", Type: domain.TypeDebit, Amount: decimal.NewFromInt(20)},
		},
	}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authedRequest(t, http.MethodGet, "/api/expenses", nil, "user-1")
	w := httptest.NewRecorder()

	handler.GetTransactions(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Status   string               `json:"status"`
		Expenses []domain.Transaction `json:"expenses"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	require.Len(t, response.Expenses, 1)
	assert.Equal(t, "t1", response.Expenses[0].ID)
}

func TestGetTransactions_EmptyListIsNotNull(t *testing.T) {
	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)

	req := authedRequest(t, http.MethodGet, "/api/expenses", nil, "user-1")
	w := httptest.NewRecorder()

	handler.GetTransactions(w, req)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&response))
	expenses, ok := response["expenses"].([]interface{})
	require.True(t, ok, "expenses must encode as a JSON array, got %T", response["expenses"])
	assert.Empty(t, expenses)
}

func TestUpdateTransaction_RequiresID(t *testing.T) {
	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)

	body, _ := json.Marshal(map[string]interface{}{"amount": 5})
	req := authedRequest(t, http.MethodPut, "/api/expenses", body, "user-1")
	w := httptest.NewRecorder()

	handler.UpdateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Expense ID is required", response["message"])
}

func TestUpdateTransaction_PartialPatch(t *testing.T) {
	service := &MockTransactionService{
		Transactions: []domain.Transaction{
			{ID: "t1", UserID: "user-1", Type: domain.TypeDebit, PaymentMethod: domain.MethodCash, Amount: decimal.NewFromInt(10), Category: "Travel"},
		},
	}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]interface{}{"id": "t1", "amount": 25})
	req := authedRequest(t, http.MethodPut, "/api/expenses", body, "user-1")
	w := httptest.NewRecorder()

	handler.UpdateTransaction(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.True(t, service.Transactions[0].Amount.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, "Travel", service.Transactions[0].Category)
}

func TestDeleteTransaction_MissingID(t *testing.T) {
	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)

	req := authedRequest(t, http.MethodDelete, "/api/expenses", nil, "user-1")
	w := httptest.NewRecorder()

	handler.DeleteTransaction(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestDeleteTransaction_UnknownIDStillSucceeds(t *testing.T) {
	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)

	req := authedRequest(t, http.MethodDelete, "/api/expenses?id=no-such-id", nil, "user-1")
	w := httptest.NewRecorder()

	handler.DeleteTransaction(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
