package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `json:"name"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Password   string    `json:"-"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`
	ImageURL   string    `json:"image_url,omitempty"`

	Settings *UserSettings `gorm:"foreignKey:UserID"`
	Timestamp
}

type UserSettings struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID                uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	NotificationsEnabled  bool      `json:"notifications_enabled"`
	WarningDays           int       `json:"warning_days"` // how far ahead the expiry check looks
	NotificationFrequency string    `json:"notification_frequency"` // "daily", "weekly"
	Theme                 string    `json:"theme"` // "light", "dark", "system"

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
