package models

import (
	"time"
)

type User struct {
	ID            uint    `gorm:"primaryKey"`
	Username      string  `gorm:"uniqueIndex;not null"`
	Email         string  `gorm:"uniqueIndex;not null"`
	PasswordHash  string  `gorm:"not null"`
	MinecraftNick *string `gorm:"column:minecraft_nick"`
	IsActive      bool    `gorm:"default:true"`
	LastLogin     *time.Time
	CreatedAt     time.Time
}

// Nick возвращает minecraft_nick как строку, пустую если NULL
func (u *User) Nick() string {
	if u.MinecraftNick == nil {
		return ""
	}
	return *u.MinecraftNick
}
