package helper

import (
	"strconv"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// ExportHeaders - заголовки столбцов выгрузки вопросов
var ExportHeaders = []string{"ID", "Question", "Answer", "Category", "Difficulty"}

// SanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func SanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}

// QuestionToRecord преобразует вопрос в строку CSV
func QuestionToRecord(q *entity.Question) []string {
	return []string{
		strconv.FormatUint(uint64(q.ID), 10),
		SanitizeForExcel(q.Question),
		SanitizeForExcel(q.Answer),
		strconv.Itoa(q.Category),
		strconv.Itoa(q.Difficulty),
	}
}

// QuestionToRow преобразует вопрос в строку XLSX (числа остаются числами)
func QuestionToRow(q *entity.Question) []interface{} {
	return []interface{}{
		q.ID,
		SanitizeForExcel(q.Question),
		SanitizeForExcel(q.Answer),
		q.Category,
		q.Difficulty,
	}
}
