package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/toughlife/community-backend/internal/handlers/dto"
	"github.com/toughlife/community-backend/internal/models"
	"github.com/toughlife/community-backend/internal/services"
	"github.com/toughlife/community-backend/pkg/password"
	"github.com/toughlife/community-backend/pkg/token"
)

type AuthHandler struct {
	users services.UserStore
}

func NewAuthHandler(users services.UserStore) *AuthHandler {
	return &AuthHandler{users: users}
}

// Handle принимает POST /auth и диспатчит по полю action
func (h *AuthHandler) Handle(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		authError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	switch req.Action {
	case "register":
		h.register(c, req)
	case "login":
		h.login(c, req)
	case "verify":
		h.verify(c)
	default:
		authError(c, http.StatusBadRequest, "Unknown action")
	}
}

func (h *AuthHandler) register(c *gin.Context, req dto.AuthRequest) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	nick := strings.TrimSpace(req.MinecraftNick)

	if len(username) < 3 {
		authError(c, http.StatusBadRequest, "Username must be at least 3 characters")
		return
	}
	if email == "" || !strings.Contains(email, "@") {
		authError(c, http.StatusBadRequest, "Invalid email")
		return
	}
	if len(req.Password) < 6 {
		authError(c, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	taken, err := h.users.LoginTaken(username, email)
	if err != nil {
		authError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if taken {
		authError(c, http.StatusConflict, "Username or email already exists")
		return
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		authError(c, http.StatusInternalServerError, "cannot hash password")
		return
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if nick != "" {
		user.MinecraftNick = &nick
	}

	// Гонка на уникальных индексах разрешается базой: проигравший insert
	// падает здесь.
	if err := h.users.CreateUser(user); err != nil {
		authError(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	tok, err := token.Issue(user.ID)
	if err != nil {
		authError(c, http.StatusInternalServerError, "could not generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    dto.NewUserResponse(user),
		"token":   tok.String(),
	})
}

func (h *AuthHandler) login(c *gin.Context, req dto.AuthRequest) {
	login := strings.TrimSpace(req.Username)

	if login == "" || req.Password == "" {
		authError(c, http.StatusBadRequest, "Username and password required")
		return
	}

	// Поле username принимает и username, и email
	user, err := h.users.FindUserByLogin(login)
	if err != nil {
		authError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !user.IsActive {
		authError(c, http.StatusForbidden, "Account is disabled")
		return
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		authError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := h.users.UpdateLastLogin(user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			authError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		authError(c, http.StatusInternalServerError, "could not update last login")
		return
	}

	tok, err := token.Issue(user.ID)
	if err != nil {
		authError(c, http.StatusInternalServerError, "could not generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    dto.NewUserResponse(user),
		"token":   tok.String(),
	})
}

// verify проверяет токен из заголовка X-User-Token.
// Only the numeric suffix of the token is validated against the store; the
// random prefix is opaque (see pkg/token).
func (h *AuthHandler) verify(c *gin.Context) {
	raw := c.GetHeader("X-User-Token")
	if raw == "" {
		authError(c, http.StatusUnauthorized, "No token provided")
		return
	}

	tok, err := token.Parse(raw)
	if err != nil {
		authError(c, http.StatusUnauthorized, "Token verification failed: "+err.Error())
		return
	}

	user, err := h.users.FindActiveUserByID(tok.UserID)
	if err != nil {
		authError(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    dto.NewUserResponse(user),
	})
}

func authError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}
