package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"expenseflow/internal/finance/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCategories(t *testing.T) {
	service := &MockCategoryService{
		Categories: []domain.Category{
			{ID: "c1", UserID: "user-1", Name: "Travel", Color: "#3B82F6", IsDefault: true},
			{ID: "c2", UserID: "user-2", Name: "Hidden", Color: "#000000"},
		},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	req := authedRequest(t, http.MethodGet, "/api/categories", nil, "user-1")
	w := httptest.NewRecorder()

	handler.GetCategories(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Status     string            `json:"status"`
		Categories []domain.Category `json:"categories"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	require.Len(t, response.Categories, 1)
	assert.Equal(t, "Travel", response.Categories[0].Name)
}

func TestCreateCategory(t *testing.T) {
	service := &MockCategoryService{}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]string{"name": "Pets", "color": "#AABBCC"})
	req := authedRequest(t, http.MethodPost, "/api/categories", body, "user-1")
	w := httptest.NewRecorder()

	handler.CreateCategory(w, req)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
	require.Len(t, service.Categories, 1)
	assert.Equal(t, "user-1", service.Categories[0].UserID)
	assert.False(t, service.Categories[0].IsDefault)
}

func TestCreateCategory_MissingName(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	body, _ := json.Marshal(map[string]string{"color": "#AABBCC"})
	req := authedRequest(t, http.MethodPost, "/api/categories", body, "user-1")
	w := httptest.NewRecorder()

	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Category name is required", response["message"])
}

func TestDeleteCategory_MissingID(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	req := authedRequest(t, http.MethodDelete, "/api/categories", nil, "user-1")
	w := httptest.NewRecorder()

	handler.DeleteCategory(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestDeleteCategory_DefaultSurvives(t *testing.T) {
	service := &MockCategoryService{
		Categories: []domain.Category{
			{ID: "c1", UserID: "user-1", Name: "Travel", Color: "#3B82F6", IsDefault: true},
		},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	req := authedRequest(t, http.MethodDelete, "/api/categories?id=c1", nil, "user-1")
	w := httptest.NewRecorder()

	handler.DeleteCategory(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode, "default delete is a silent no-op")
	assert.Len(t, service.Categories, 1)
}
