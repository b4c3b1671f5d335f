package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

func TestSanitizeForExcel(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"plain", "plain"},
		{"=SUM(A1:A2)", "'=SUM(A1:A2)"},
		{"+1", "'+1"},
		{"-1", "'-1"},
		{"@cmd", "'@cmd"},
		{"a=b", "a=b"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, SanitizeForExcel(tc.in))
	}
}

func TestQuestionToRecord(t *testing.T) {
	q := &entity.Question{ID: 12, Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", Category: 4, Difficulty: 2}

	assert.Equal(t, []string{"12", "Who invented Peanut Butter?", "George Washington Carver", "4", "2"}, QuestionToRecord(q))
	assert.Len(t, QuestionToRow(q), len(ExportHeaders))
}
