package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	DisposalWasted    = "wasted"
	DisposalConsumed  = "consumed"
	DisposalDonated   = "donated"
	DisposalComposted = "composted"
)

const (
	GoalWasteReduction  = "waste_reduction"
	GoalCarbonReduction = "carbon_reduction"
	GoalCostSavings     = "cost_savings"
)

// WasteLogEntry is append-only. FoodItemID is nullable because the
// originating item may have been permanently deleted.
type WasteLogEntry struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID  `gorm:"index" json:"user_id"`
	FoodItemID    *uuid.UUID `json:"food_item_id,omitempty"`
	ItemName      string     `json:"item_name"`
	Category      string     `json:"category"`
	DisposalType  string     `gorm:"index" json:"disposal_type"` // "wasted", "consumed", "donated", "composted"
	Quantity      float64    `json:"quantity"`
	UnitMeasure   string     `json:"unit_measure"`
	DisposalDate  time.Time  `gorm:"index" json:"disposal_date"`
	Reason        string     `json:"reason,omitempty"`
	EstimatedCost float64    `json:"estimated_cost"`
	CarbonValue   float64    `json:"carbon_value"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type WasteGoal struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"index" json:"user_id"`
	GoalType string    `json:"goal_type"` // "waste_reduction", "carbon_reduction", "cost_savings"
	Target   float64   `json:"target"`
	Current  float64   `json:"current"`
	IsActive bool      `json:"is_active"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

// CarbonFactor maps a food category to its carbon footprint per unit quantity.
type CarbonFactor struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Category string    `gorm:"uniqueIndex" json:"category"`
	KgCO2e   float64   `json:"kg_co2e"`

	Timestamp
}
