package database

import (
	"github.com/toughlife/community-backend/internal/models"
)

func (d *Database) SaveMessage(message *models.Message) error {
	return d.db.Create(message).Error
}

// RecentMessages получает последние сообщения чата вместе с авторами
func (d *Database) RecentMessages(limit int) ([]models.Message, error) {
	var messages []models.Message

	err := d.db.
		Order("created_at DESC").
		Limit(limit).
		Preload("User").
		Find(&messages).Error

	if err != nil {
		return nil, err
	}

	// Разворачиваем порядок, чтобы старые сообщения были первыми
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}
