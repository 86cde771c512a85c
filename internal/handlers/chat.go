package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/toughlife/community-backend/internal/handlers/dto"
	"github.com/toughlife/community-backend/internal/middleware"
	"github.com/toughlife/community-backend/internal/models"
	"github.com/toughlife/community-backend/internal/services"
)

const maxMessageLen = 500

type ChatHandler struct {
	messages services.MessageStore
}

func NewChatHandler(messages services.MessageStore) *ChatHandler {
	return &ChatHandler{messages: messages}
}

// List отдаёт последние сообщения в хронологическом порядке. Публичный.
func (h *ChatHandler) List(c *gin.Context) {
	limit := 50
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	messages, err := h.messages.RecentMessages(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get messages"})
		return
	}

	result := make([]dto.MessageResponse, len(messages))
	for i := range messages {
		result[i] = dto.NewMessageResponse(&messages[i])
	}

	c.JSON(http.StatusOK, gin.H{"messages": result})
}

// Post добавляет сообщение. Автор берётся из LegacyHashAuth.
func (h *ChatHandler) Post(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	body := strings.TrimSpace(req.Message)
	if body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Сообщение не может быть пустым"})
		return
	}
	if utf8.RuneCountInString(body) > maxMessageLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Сообщение слишком длинное (макс. 500 символов)"})
		return
	}

	message := &models.Message{
		UserID: user.ID,
		Body:   body,
	}

	if err := h.messages.SaveMessage(message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
		return
	}

	message.User = *user
	c.JSON(http.StatusCreated, dto.NewMessageResponse(message))
}
