package quizmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

func strPtr(s string) *string { return &s }

func TestNormalizeSearchTerm(t *testing.T) {
	// Пустая или отсутствующая строка отклоняется до запроса к хранилищу
	_, err := NormalizeSearchTerm(nil)
	assert.Equal(t, apperrors.ReasonInvalidInput, apperrors.ReasonOf(err))

	_, err = NormalizeSearchTerm(strPtr(""))
	assert.Equal(t, apperrors.ReasonInvalidInput, apperrors.ReasonOf(err))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	term, err := NormalizeSearchTerm(strPtr("title"))
	require.NoError(t, err)
	assert.Equal(t, "title", term)

	// Пробелы значимы и не обрезаются
	term, err = NormalizeSearchTerm(strPtr(" "))
	require.NoError(t, err)
	assert.Equal(t, " ", term)
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%title%", LikePattern("title"))
	// Подстановочные символы не экранируются
	assert.Equal(t, "%50%%", LikePattern("50%"))
	assert.Equal(t, "%a_b%", LikePattern("a_b"))
}
