package quizmanager

import (
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// NormalizeSearchTerm проверяет поисковую строку до обращения к хранилищу.
// Отсутствующая или пустая строка не означает "найти все".
func NormalizeSearchTerm(term *string) (string, error) {
	if term == nil || *term == "" {
		return "", apperrors.InvalidInput("SearchQuestions", "searchTerm is required")
	}
	return *term, nil
}

// LikePattern строит шаблон ILIKE для поиска подстроки. Спецсимволы % и _
// внутри term не экранируются и работают как подстановочные.
func LikePattern(term string) string {
	return "%" + term + "%"
}
