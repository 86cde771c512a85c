package dto

import "github.com/toughlife/community-backend/internal/models"

// AuthRequest is the body of every POST /auth call; Action selects the
// operation, the rest of the fields are per-action.
type AuthRequest struct {
	Action        string `json:"action"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	MinecraftNick string `json:"minecraft_nick"`
}

type UserResponse struct {
	ID            uint   `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	MinecraftNick string `json:"minecraft_nick"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		MinecraftNick: u.Nick(),
	}
}
