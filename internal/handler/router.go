package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/yourusername/trivia-bank/internal/middleware"
)

// Handlers объединяет обработчики и middleware, нужные для маршрутов API
type Handlers struct {
	Question    *QuestionHandler
	Category    *CategoryHandler
	Quiz        *QuizHandler
	RateLimiter *middleware.RateLimiter
	RateLimit   middleware.RateLimitConfig
}

// NewRouter создает роутер Gin со всеми маршрутами API
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// 405 вместо 404 для известных путей с неверным методом
	router.HandleMethodNotAllowed = true
	router.NoRoute(NotFound)
	router.NoMethod(MethodNotAllowed)

	router.Use(middleware.RequestID())
	router.Use(middleware.AccessControlHeaders(), middleware.CORS())

	limitWrites := h.RateLimiter.Limit(h.RateLimit)

	router.GET("/", Index)

	// Вопросы
	questions := router.Group("/questions")
	{
		questions.GET("", h.Question.ListQuestions)
		questions.POST("", limitWrites, h.Question.CreateQuestion)
		questions.POST("/search", h.Question.SearchQuestions)
		questions.GET("/export", h.Question.ExportQuestions)
		questions.DELETE("/:id", limitWrites, middleware.ExtractUintParam("id", "questionID"), h.Question.DeleteQuestion)
	}

	// Категории
	categories := router.Group("/categories")
	{
		categories.GET("", h.Category.ListCategories)
		categories.GET("/:id/questions", middleware.ExtractUintParam("id", "categoryID"), h.Category.QuestionsByCategory)
	}

	// Викторина
	router.POST("/quizzes", h.Quiz.PlayQuiz)

	return router
}
