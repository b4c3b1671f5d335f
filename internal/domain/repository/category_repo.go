package repository

import (
	"context"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// CategoryRepository определяет методы для чтения категорий
type CategoryRepository interface {
	// ListOrderedByType возвращает все категории, отсортированные по type
	ListOrderedByType(ctx context.Context) ([]entity.Category, error)
}
