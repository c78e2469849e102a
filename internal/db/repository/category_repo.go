package repository

import (
	"context"
	"fmt"

	"github.com/triviahub/trivia-api/internal/trivia"
)

// CategoryRepository reads the seeded category table.
type CategoryRepository struct {
	db DBTX
}

// NewCategoryRepository wraps a connection handle for category access.
func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

var _ trivia.CategoryStore = (*CategoryRepository)(nil)

// ListOrdered returns every category by ascending id.
func (r *CategoryRepository) ListOrdered(ctx context.Context) ([]trivia.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var cats []trivia.Category
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return cats, nil
}
