package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Один список для обычных ответов и для preflight
var (
	corsHeaders = []string{"Content-Type", "Authorization"}
	corsMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
)

var (
	allowHeaders = strings.Join(corsHeaders, ", ")
	allowMethods = strings.Join(corsMethods, ", ")
)

// CORS разрешает запросы с любых источников
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    corsMethods,
		AllowHeaders:    corsHeaders,
		ExposeHeaders:   []string{"Content-Length", RequestIDHeader},
		MaxAge:          12 * time.Hour,
	})
}

// AccessControlHeaders добавляет Access-Control-Allow-* к каждому ответу,
// включая ответы без заголовка Origin.
func AccessControlHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Headers", allowHeaders)
		c.Header("Access-Control-Allow-Methods", allowMethods)
		c.Next()
	}
}
