package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// FlexibleInt принимает число как в виде JSON-числа, так и строки ("1").
// Фронтенд отдаёт id категорий строками, так как берёт их из ключей объекта.
type FlexibleInt int

// UnmarshalJSON реализует json.Unmarshaler
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*f = FlexibleInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleInt(n)
	return nil
}

// IntPtr возвращает *int или nil, если поле отсутствует
func (f *FlexibleInt) IntPtr() *int {
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}

// CreateQuestionRequest - тело POST /questions. Поля-указатели позволяют
// отличить отсутствующее поле от нулевого значения.
type CreateQuestionRequest struct {
	Question   *string      `json:"question"`
	Answer     *string      `json:"answer"`
	Category   *FlexibleInt `json:"category"`
	Difficulty *FlexibleInt `json:"difficulty"`
}

// SearchQuestionsRequest - тело POST /questions/search
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// QuizCategoryRequest - выбранная категория викторины
type QuizCategoryRequest struct {
	ID   *FlexibleInt `json:"id"`
	Type string       `json:"type,omitempty"`
}

// PlayQuizRequest - тело POST /quizzes
type PlayQuizRequest struct {
	PreviousQuestions []uint               `json:"previous_questions"`
	QuizCategory      *QuizCategoryRequest `json:"quiz_category"`
}

// CategoryID возвращает id категории или nil, если он отсутствует либо отрицательный
func (r *PlayQuizRequest) CategoryID() *uint {
	if r.QuizCategory == nil || r.QuizCategory.ID == nil || *r.QuizCategory.ID < 0 {
		return nil
	}
	id := uint(*r.QuizCategory.ID)
	return &id
}

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// ListQuestionsResponse - ответ GET /questions
type ListQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *int               `json:"current_category"`
	Categories      map[uint]string    `json:"categories"`
}

// QuestionsResponse - ответ поиска и фильтра по категории
type QuestionsResponse struct {
	Success   bool               `json:"success"`
	Questions []QuestionResponse `json:"questions"`
}

// CategoriesResponse - ответ GET /categories
type CategoriesResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

// PlayQuizResponse - ответ POST /quizzes. Question == nil означает конец викторины.
type PlayQuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) *QuestionResponse {
	if q == nil {
		return nil
	}
	return &QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// NewListQuestionResponse создает слайс DTO. Никогда не возвращает nil,
// чтобы в JSON был [] вместо null.
func NewListQuestionResponse(questions []entity.Question) []QuestionResponse {
	list := make([]QuestionResponse, len(questions))
	for i := range questions {
		list[i] = *NewQuestionResponse(&questions[i])
	}
	return list
}

// NewListQuestionsResponse собирает ответ для страницы вопросов
func NewListQuestionsResponse(questions []entity.Question, total int, categories []entity.Category) *ListQuestionsResponse {
	return &ListQuestionsResponse{
		Success:         true,
		Questions:       NewListQuestionResponse(questions),
		TotalQuestions:  total,
		CurrentCategory: nil,
		Categories:      entity.CategoryMap(categories),
	}
}
