package quizmanager

import (
	"github.com/yourusername/trivia-bank/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// Paginate возвращает страницу page (нумерация с 1) из упорядоченного списка.
// Пустая страница (в том числе page за пределами списка) - ошибка EmptyResult,
// а не успешный пустой ответ.
func Paginate(items []entity.Question, page int) (*Page, error) {
	if page < 1 {
		return nil, apperrors.EmptyResult("Paginate")
	}

	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return nil, apperrors.EmptyResult("Paginate")
	}

	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}

	return &Page{
		Items: items[start:end],
		Total: len(items),
	}, nil
}
