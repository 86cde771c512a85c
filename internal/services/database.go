package services

import "github.com/toughlife/community-backend/internal/models"

// Store interfaces consumed by handlers and middleware. *database.Database
// satisfies both; tests substitute fakes.

type UserStore interface {
	CreateUser(user *models.User) error
	FindUserByLogin(login string) (*models.User, error)
	FindActiveUserByID(id uint) (*models.User, error)
	FindUserByStoredHash(hash string) (*models.User, error)
	LoginTaken(username, email string) (bool, error)
	UpdateLastLogin(id uint) error
}

type MessageStore interface {
	SaveMessage(message *models.Message) error
	RecentMessages(limit int) ([]models.Message, error)
}
