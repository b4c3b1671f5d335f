package middleware

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ExtractUintParam создает middleware для извлечения и валидации числового параметра URL.
// paramName - имя параметра в URL (например, "id").
// contextKey - ключ, под которым значение будет сохранено в контексте Gin.
// Нечисловой параметр означает несуществующий ресурс, поэтому ответ - 404.
func ExtractUintParam(paramName, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param(paramName)
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			log.Printf("[ParamMiddleware] Некорректный параметр %s=%q в %s %s", paramName, idStr, c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   http.StatusNotFound,
				"message": "Resource Not Found",
			})
			return
		}
		// Сохраняем как uint для единообразия
		c.Set(contextKey, uint(id))
		c.Next()
	}
}
