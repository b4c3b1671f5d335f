package quizmanager

import (
	"time"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// Constants for default values
const (
	// QuestionsPerPage - фиксированный размер страницы списка вопросов
	QuestionsPerPage = 10

	DefaultCategoriesCacheTTL = 10 * time.Minute
	DefaultMinDifficulty      = 1
)

// Config содержит настройки движка вопросов
type Config struct {
	// Время жизни закешированного списка категорий
	CategoriesCacheTTL time.Duration

	// Минимальная сложность при создании вопроса, верхней границы нет
	MinDifficulty int
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	return &Config{
		CategoriesCacheTTL: DefaultCategoriesCacheTTL,
		MinDifficulty:      DefaultMinDifficulty,
	}
}

// Session - состояние викторины, которое клиент присылает в каждом запросе.
// Сервер его не хранит.
type Session struct {
	// CategoryID == 0 означает "все категории"
	CategoryID  uint
	PreviousIDs []uint
}

// Page - одна страница списка вопросов
type Page struct {
	Items []entity.Question
	Total int
}

// NewSession проверяет входные данные запроса викторины.
// Оба поля обязательны; пустой список previousIDs допустим.
func NewSession(previousIDs []uint, categoryID *uint) (Session, error) {
	if previousIDs == nil {
		return Session{}, apperrors.InvalidInput("PlayQuiz", "previous_questions is required")
	}
	if categoryID == nil {
		return Session{}, apperrors.InvalidInput("PlayQuiz", "quiz_category.id is required")
	}
	return Session{CategoryID: *categoryID, PreviousIDs: previousIDs}, nil
}
