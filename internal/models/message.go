package models

import (
	"time"
)

type Message struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null"`
	Body      string `gorm:"column:message;not null"`
	CreatedAt time.Time

	// Связи
	User User `gorm:"foreignKey:UserID"`
}
