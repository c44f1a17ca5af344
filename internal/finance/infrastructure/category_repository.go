package infrastructure

import (
	"database/sql"

	"expenseflow/internal/finance/domain"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(category domain.Category) error {
	_, err := r.db.Exec(
		`INSERT INTO categories (id, user_id, name, color, is_default, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		category.ID, category.UserID, category.Name, category.Color, category.IsDefault, category.CreatedAt,
	)
	return err
}

func (r *CategoryRepository) FindByUser(userID string) ([]domain.Category, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, name, color, is_default, created_at FROM categories WHERE user_id = $1 ORDER BY name ASC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name, &category.Color,
			&category.IsDefault, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// Delete never removes default categories; the is_default guard lives in
// the statement itself.
func (r *CategoryRepository) Delete(userID, categoryID string) error {
	_, err := r.db.Exec(
		`DELETE FROM categories WHERE id = $1 AND user_id = $2 AND is_default = FALSE`,
		categoryID, userID)
	return err
}
