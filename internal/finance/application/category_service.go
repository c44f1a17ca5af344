package application

import (
	"time"

	"expenseflow/internal/finance/domain"
	financeErrors "expenseflow/internal/finance/errors"

	"github.com/google/uuid"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// GetUserCategories lists the user's categories, seeding the default set on
// first access. After seeding, the list is re-read from storage so the
// response always reflects persisted rows.
func (s *CategoryService) GetUserCategories(userID string) ([]domain.Category, error) {
	categories, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		for _, def := range domain.DefaultCategories {
			category := domain.Category{
				ID:        uuid.New().String(),
				UserID:    userID,
				Name:      def.Name,
				Color:     def.Color,
				IsDefault: true,
				CreatedAt: time.Now().UTC(),
			}
			if err := s.repo.Save(category); err != nil {
				return nil, err
			}
		}
		return s.repo.FindByUser(userID)
	}

	return categories, nil
}

func (s *CategoryService) CreateCategory(userID, name, color string) (*domain.Category, error) {
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
		IsDefault: false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a non-default category owned by the user. Default
// categories and rows owned by other users are left untouched, without error.
func (s *CategoryService) DeleteCategory(userID, categoryID string) error {
	if categoryID == "" {
		return financeErrors.NewValidationError("Category ID is required")
	}
	return s.repo.Delete(userID, categoryID)
}
