package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS отвечает на preflight и ставит разрешающие заголовки на все ответы.
// Preflight answers with an empty 200, not 204 — existing clients depend on it.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-User-Token, X-Auth-Token")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
