package repository

import (
	"context"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	GetByID(ctx context.Context, id uint) (*entity.Question, error)
	Delete(ctx context.Context, id uint) error

	// ListAll возвращает все вопросы, упорядоченные по id
	ListAll(ctx context.Context) ([]entity.Question, error)
	// Search ищет вопросы по шаблону ILIKE (шаблон формирует вызывающий код)
	Search(ctx context.Context, pattern string) ([]entity.Question, error)
	GetByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error)

	// GetAvailable возвращает кандидатов для викторины: вопросы категории
	// (0 - любой) за исключением excludeIDs
	GetAvailable(ctx context.Context, categoryID uint, excludeIDs []uint) ([]entity.Question, error)
}
