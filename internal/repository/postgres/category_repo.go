package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// CategoryRepo реализует repository.CategoryRepository
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo создает новый репозиторий категорий
func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// ListOrderedByType возвращает категории в алфавитном порядке type
func (r *CategoryRepo) ListOrderedByType(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.db.WithContext(ctx).Order("type").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
