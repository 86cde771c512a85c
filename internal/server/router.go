package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/toughlife/community-backend/internal/handlers"
	"github.com/toughlife/community-backend/internal/middleware"
	"github.com/toughlife/community-backend/internal/services"
)

type stores interface {
	services.UserStore
	services.MessageStore
}

func APIEndpoints(r *gin.Engine, db stores, authH *handlers.AuthHandler, chatH *handlers.ChatHandler) {
	r.HandleMethodNotAllowed = true
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())

	// Незнакомый метод на известном пути — 405, формат ошибки свой у каждого
	// эндпоинта
	r.NoMethod(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/chat") {
			c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Метод не поддерживается"})
			return
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "error": "Method not allowed"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Auth endpoint: один маршрут, действие в теле запроса
	r.POST("/auth", authH.Handle)

	// Chat endpoints
	r.GET("/chat", chatH.List)
	r.POST("/chat", middleware.LegacyHashAuth(db), chatH.Post)
}
