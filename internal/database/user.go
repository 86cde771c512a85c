package database

import (
	"time"

	"github.com/toughlife/community-backend/internal/models"
)

func (d *Database) CreateUser(user *models.User) error {
	return d.db.Create(user).Error
}

// FindUserByLogin ищет пользователя по username или email
func (d *Database) FindUserByLogin(login string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("username = ? OR email = ?", login, login).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindActiveUserByID ищет активного пользователя по id
func (d *Database) FindActiveUserByID(id uint) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("id = ? AND is_active = ?", id, true).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByStoredHash looks a user up by the verbatim password_hash column.
// This backs the chat endpoint's legacy credential scheme, which predates the
// issued tokens and is incompatible with them.
func (d *Database) FindUserByStoredHash(hash string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("password_hash = ?", hash).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// LoginTaken проверяет, заняты ли username или email
func (d *Database) LoginTaken(username, email string) (bool, error) {
	var count int64
	err := d.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (d *Database) UpdateLastLogin(id uint) error {
	return d.db.Model(&models.User{}).Where("id = ?", id).Update("last_login", time.Now()).Error
}
