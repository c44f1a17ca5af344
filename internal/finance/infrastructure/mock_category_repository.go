package infrastructure

import (
	"expenseflow/internal/finance/domain"
)

// MockCategoryRepository is an in-memory stand-in used by service and
// handler tests. FindCalls counts FindByUser invocations so tests can
// assert the read-after-seed behaviour.
type MockCategoryRepository struct {
	Categories []domain.Category
	FindCalls  int
	SaveErr    error
}

func (m *MockCategoryRepository) Save(category domain.Category) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Categories = append(m.Categories, category)
	return nil
}

func (m *MockCategoryRepository) FindByUser(userID string) ([]domain.Category, error) {
	m.FindCalls++
	var owned []domain.Category
	for _, category := range m.Categories {
		if category.UserID == userID {
			owned = append(owned, category)
		}
	}
	return owned, nil
}

func (m *MockCategoryRepository) Delete(userID, categoryID string) error {
	for i, category := range m.Categories {
		if category.ID == categoryID && category.UserID == userID && !category.IsDefault {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return nil
}
