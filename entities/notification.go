package entities

import (
	"github.com/google/uuid"
)

const (
	NotificationTypeExpiry = "expiry"
	NotificationTypeSystem = "system"
)

type Notification struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID  `gorm:"index" json:"user_id"`
	Type       string     `json:"type"` // "expiry", "system"
	Message    string     `json:"message"`
	FoodItemID *uuid.UUID `gorm:"index" json:"food_item_id,omitempty"`
	IsRead     bool       `json:"is_read"`

	User     *User     `gorm:"foreignKey:UserID"`
	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID"`
	Timestamp
}
