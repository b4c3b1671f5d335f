package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/handler/dto"
	"github.com/yourusername/trivia-bank/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(categoryService *service.CategoryService, questionService *service.QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// ListCategories возвращает все категории в виде {id: type}
// GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		handleError(c, "CategoryHandler", err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Success:    true,
		Categories: entity.CategoryMap(categories),
	})
}

// QuestionsByCategory возвращает все вопросы категории
// GET /categories/:id/questions
func (h *CategoryHandler) QuestionsByCategory(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Получаем из контекста

	questions, err := h.questionService.QuestionsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		handleError(c, "CategoryHandler", err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionsResponse{
		Success:   true,
		Questions: dto.NewListQuestionResponse(questions),
	})
}
