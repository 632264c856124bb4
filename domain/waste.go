package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessLogDisposal      = "disposal logged successfully"
	MessageSuccessGetWasteLog      = "waste log retrieved successfully"
	MessageSuccessGetWasteSummary  = "waste summary retrieved successfully"
	MessageSuccessCreateWasteGoal  = "waste goal created successfully"
	MessageSuccessGetWasteGoals    = "waste goals retrieved successfully"
	MessageSuccessDeactivateGoal   = "waste goal deactivated"

	MessageFailedLogDisposal     = "failed to log disposal"
	MessageFailedGetWasteLog     = "failed to retrieve waste log"
	MessageFailedGetWasteSummary = "failed to retrieve waste summary"
	MessageFailedCreateWasteGoal = "failed to create waste goal"
	MessageFailedGetWasteGoals   = "failed to retrieve waste goals"
	MessageFailedDeactivateGoal  = "failed to deactivate waste goal"

	ErrInvalidDisposalType = errors.New("invalid disposal type")
	ErrInvalidGoalType     = errors.New("invalid goal type")
	ErrInvalidGoalTarget   = errors.New("goal target must be positive")
	ErrWasteGoalNotFound   = errors.New("waste goal not found")
)

type (
	LogDisposalRequest struct {
		FoodItemID    string  `json:"food_item_id" validate:"omitempty,uuid"`
		ItemName      string  `json:"item_name" validate:"required"`
		Category      string  `json:"category" validate:"required"`
		DisposalType  string  `json:"disposal_type" validate:"required,oneof=wasted consumed donated composted"`
		Quantity      float64 `json:"quantity" validate:"required,gt=0"`
		UnitMeasure   string  `json:"unit_measure" validate:"required"`
		DisposalDate  string  `json:"disposal_date" validate:"omitempty"`
		Reason        string  `json:"reason" validate:"omitempty"`
		EstimatedCost float64 `json:"estimated_cost" validate:"omitempty,gte=0"`
	}

	LogDisposalResponse struct {
		ID           string  `json:"id"`
		DisposalType string  `json:"disposal_type"`
		Quantity     float64 `json:"quantity"`
		CarbonValue  float64 `json:"carbon_value"`
	}

	WasteLogEntryResponse struct {
		ID            string    `json:"id"`
		FoodItemID    string    `json:"food_item_id,omitempty"`
		ItemName      string    `json:"item_name"`
		Category      string    `json:"category"`
		DisposalType  string    `json:"disposal_type"`
		Quantity      float64   `json:"quantity"`
		UnitMeasure   string    `json:"unit_measure"`
		DisposalDate  time.Time `json:"disposal_date"`
		Reason        string    `json:"reason,omitempty"`
		EstimatedCost float64   `json:"estimated_cost"`
		CarbonValue   float64   `json:"carbon_value"`
	}

	DailyWastePoint struct {
		Date     string  `json:"date"` // YYYY-MM-DD
		Consumed float64 `json:"consumed"`
		Wasted   float64 `json:"wasted"`
	}

	GoalProgress struct {
		ID         string  `json:"id"`
		GoalType   string  `json:"goal_type"`
		Target     float64 `json:"target"`
		Current    float64 `json:"current"`
		Percentage float64 `json:"percentage"` // clamped to 100
		IsActive   bool    `json:"is_active"`
	}

	WasteSummaryResponse struct {
		WindowDays      int                `json:"window_days"`
		TotalWasted     float64            `json:"total_wasted"`
		TotalConsumed   float64            `json:"total_consumed"`
		TotalDonated    float64            `json:"total_donated"`
		TotalComposted  float64            `json:"total_composted"`
		WasteByCategory map[string]float64 `json:"waste_by_category"`
		WasteOverTime   []DailyWastePoint  `json:"waste_over_time"`
		TotalCarbon     float64            `json:"total_carbon"`
		TotalCost       float64            `json:"total_cost"`
		Goals           []GoalProgress     `json:"goals"`
	}

	CreateWasteGoalRequest struct {
		GoalType string  `json:"goal_type" validate:"required,oneof=waste_reduction carbon_reduction cost_savings"`
		Target   float64 `json:"target" validate:"required,gt=0"`
	}
)
