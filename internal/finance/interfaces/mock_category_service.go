package interfaces

import (
	"time"

	"expenseflow/internal/finance/domain"
	financeErrors "expenseflow/internal/finance/errors"

	"github.com/google/uuid"
)

// MockCategoryService is an in-memory CategoryServiceInterface used by
// handler tests.
type MockCategoryService struct {
	Categories []domain.Category
	Err        error
}

func (m *MockCategoryService) GetUserCategories(userID string) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var owned []domain.Category
	for _, category := range m.Categories {
		if category.UserID == userID {
			owned = append(owned, category)
		}
	}
	return owned, nil
}

func (m *MockCategoryService) CreateCategory(userID, name, color string) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if name == "" {
		return nil, financeErrors.NewValidationError("Category name is required")
	}
	if color == "" {
		return nil, financeErrors.NewValidationError("Category color is required")
	}
	category := domain.Category{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}
	m.Categories = append(m.Categories, category)
	return &category, nil
}

func (m *MockCategoryService) DeleteCategory(userID, categoryID string) error {
	if m.Err != nil {
		return m.Err
	}
	for i, category := range m.Categories {
		if category.ID == categoryID && category.UserID == userID && !category.IsDefault {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return nil
}
