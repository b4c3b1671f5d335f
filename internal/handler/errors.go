package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// errorMessages - тексты для кодов, которые отдаёт API
var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Resource Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusUnprocessableEntity: "Unprocessable",
}

// respondError пишет ответ вида {success: false, error: <code>, message: <text>}
func respondError(c *gin.Context, status int) {
	message, ok := errorMessages[status]
	if !ok {
		message = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   status,
		"message": message,
	})
}

// handleError сводит любую ошибку сервиса к 404. Причина сохраняется только в логах.
func handleError(c *gin.Context, component string, err error) {
	switch reason := apperrors.ReasonOf(err); reason {
	case "":
		log.Printf("ERROR: [%s] Непредвиденная ошибка %s %s: %v", component, c.Request.Method, c.Request.URL.Path, err)
	case apperrors.ReasonPersistenceFailure:
		log.Printf("ERROR: [%s] Ошибка хранилища %s %s: %v", component, c.Request.Method, c.Request.URL.Path, err)
	default:
		log.Printf("[%s] %s %s -> 404 (%s): %v", component, c.Request.Method, c.Request.URL.Path, reason, err)
	}
	respondError(c, http.StatusNotFound)
}

// NotFound обрабатывает неизвестные маршруты
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound)
}

// MethodNotAllowed обрабатывает запросы с неподдерживаемым методом
func MethodNotAllowed(c *gin.Context) {
	respondError(c, http.StatusMethodNotAllowed)
}

// BadRequest отвечает 400. Ядро само этот код не использует.
func BadRequest(c *gin.Context) {
	respondError(c, http.StatusBadRequest)
}

// Unprocessable отвечает 422. Ядро само этот код не использует.
func Unprocessable(c *gin.Context) {
	respondError(c, http.StatusUnprocessableEntity)
}
