package interfaces

import (
	"encoding/json"
	"net/http"

	"expenseflow/internal/finance/domain"
	financeErrors "expenseflow/internal/finance/errors"
)

type CategoryServiceInterface interface {
	GetUserCategories(userID string) ([]domain.Category, error)
	CreateCategory(userID, name, color string) (*domain.Category, error)
	DeleteCategory(userID, categoryID string) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// GetCategories lists the caller's categories. The first read for a fresh
// account seeds the default set.
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	categories, err := h.service.GetUserCategories(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "success",
		"categories": categories,
	})
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	var req struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(userID, req.Name, req.Color)
	if err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":   "success",
		"category": category,
	})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	categoryID := r.URL.Query().Get("id")
	if categoryID == "" {
		h.respondError(w, http.StatusBadRequest, "Category ID is required")
		return
	}

	if err := h.service.DeleteCategory(userID, categoryID); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category deleted successfully",
	})
}
