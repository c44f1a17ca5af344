package domain

import "time"

// Category labels transactions for reporting. Categories are matched by name
// against Transaction.Category, not by foreign key, so orphaned references
// are allowed.
type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
}

// DefaultCategories are seeded per account on first read. Default rows can
// never be deleted.
var DefaultCategories = []Category{
	{Name: "Travel", Color: "#3B82F6", IsDefault: true},
	{Name: "Grocery", Color: "#10B981", IsDefault: true},
	{Name: "Food & Dining", Color: "#F59E0B", IsDefault: true},
	{Name: "Entertainment", Color: "#EF4444", IsDefault: true},
	{Name: "Shopping", Color: "#8B5CF6", IsDefault: true},
	{Name: "Bills & Utilities", Color: "#06B6D4", IsDefault: true},
	{Name: "Healthcare", Color: "#EC4899", IsDefault: true},
	{Name: "Miscellaneous", Color: "#6B7280", IsDefault: true},
}

// CategoryRepository is the persistence boundary for per-user categories.
// Delete must leave default categories and other users' rows untouched.
type CategoryRepository interface {
	Save(category Category) error
	FindByUser(userID string) ([]Category, error)
	Delete(userID, categoryID string) error
}
