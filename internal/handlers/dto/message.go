package dto

import (
	"time"

	"github.com/toughlife/community-backend/internal/models"
)

type PostMessageRequest struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	ID            uint      `json:"id"`
	Body          string    `json:"message"`
	Timestamp     time.Time `json:"timestamp"`
	Username      string    `json:"username"`
	MinecraftNick string    `json:"minecraft_nick"`
}

func NewMessageResponse(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:            m.ID,
		Body:          m.Body,
		Timestamp:     m.CreatedAt,
		Username:      m.User.Username,
		MinecraftNick: m.User.Nick(),
	}
}
