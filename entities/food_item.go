package entities

import (
	"time"

	"github.com/google/uuid"
)

type FoodItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID `gorm:"index" json:"user_id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Quantity      float64   `json:"quantity"`
	UnitMeasure   string    `json:"unit_measure"`
	ExpiryDate    time.Time `json:"expiry_date"`
	AddedDate     time.Time `json:"added_date"`
	Status        string    `json:"status"` // "Safe", "Warning", "Danger", "Expired"
	Barcode       string    `json:"barcode,omitempty"`
	Notes         string    `json:"notes,omitempty" gorm:"type:text"`
	ImageURL      string    `json:"image_url,omitempty"`
	AddedManually bool      `json:"added_manually"`
	Trashed       bool      `gorm:"index" json:"trashed"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
