package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/trivia-bank/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
	"github.com/yourusername/trivia-bank/internal/service"
	"github.com/yourusername/trivia-bank/internal/service/quizmanager"
)

// QuizHandler обрабатывает запросы игры в викторину
type QuizHandler struct {
	questionService *service.QuestionService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(questionService *service.QuestionService) *QuizHandler {
	return &QuizHandler{
		questionService: questionService,
	}
}

// PlayQuiz возвращает случайный еще не заданный вопрос.
// POST /quizzes {previous_questions: [], quiz_category: {id}}
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req dto.PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, "QuizHandler", apperrors.InvalidInput("PlayQuiz", "invalid body: %v", err))
		return
	}

	session, err := quizmanager.NewSession(req.PreviousQuestions, req.CategoryID())
	if err != nil {
		handleError(c, "QuizHandler", err)
		return
	}

	question, err := h.questionService.PlayQuiz(c.Request.Context(), session)
	if err != nil {
		handleError(c, "QuizHandler", err)
		return
	}

	// question == nil - вопросы закончились, это успешный ответ
	c.JSON(http.StatusOK, dto.PlayQuizResponse{
		Success:  true,
		Question: dto.NewQuestionResponse(question),
	})
}
