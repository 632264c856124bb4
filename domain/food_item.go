package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessUpdateFoodItem    = "food item updated successfully"
	MessageSuccessTrashFoodItem     = "food item moved to trash"
	MessageSuccessRestoreFoodItem   = "food item restored from trash"
	MessageSuccessDeleteFoodItem    = "food item deleted permanently"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessGetTrash          = "trashed items retrieved successfully"
	MessageSuccessUploadFoodImage   = "food item image uploaded successfully"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"

	MessageFailedAddFoodItem       = "failed to add food item"
	MessageFailedUpdateFoodItem    = "failed to update food item"
	MessageFailedTrashFoodItem     = "failed to move food item to trash"
	MessageFailedRestoreFoodItem   = "failed to restore food item"
	MessageFailedDeleteFoodItem    = "failed to delete food item"
	MessageFailedGetFoodItems      = "failed to retrieve food items"
	MessageFailedUploadFoodImage   = "failed to upload food item image"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrFoodItemNotTrashed = errors.New("food item is not in trash")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrUnauthorizedAccess = errors.New("unauthorized access to food item")
)

type (
	AddFoodItemRequest struct {
		Name        string  `json:"name" validate:"required"`
		Category    string  `json:"category" validate:"required"`
		Quantity    float64 `json:"quantity" validate:"required,gt=0"`
		UnitMeasure string  `json:"unit_measure" validate:"required"`
		ExpiryDate  string  `json:"expiry_date" validate:"required"`
		Barcode     string  `json:"barcode" validate:"omitempty"`
		Notes       string  `json:"notes" validate:"omitempty"`
	}

	UpdateFoodItemRequest struct {
		Name        string  `json:"name" validate:"omitempty"`
		Category    string  `json:"category" validate:"omitempty"`
		Quantity    float64 `json:"quantity" validate:"omitempty,gt=0"`
		UnitMeasure string  `json:"unit_measure" validate:"omitempty"`
		ExpiryDate  string  `json:"expiry_date" validate:"omitempty"`
		Barcode     string  `json:"barcode" validate:"omitempty"`
		Notes       string  `json:"notes" validate:"omitempty"`
	}

	UploadFoodImageRequest struct {
		FoodItemID string                `json:"food_id" form:"food_id" validate:"required,uuid"`
		Image      *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	FoodItemResponse struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		Category      string    `json:"category"`
		Quantity      float64   `json:"quantity"`
		UnitMeasure   string    `json:"unit_measure"`
		ExpiryDate    time.Time `json:"expiry_date"`
		AddedDate     time.Time `json:"added_date"`
		Status        string    `json:"status"`
		DaysRemaining int       `json:"days_remaining"`
		Barcode       string    `json:"barcode,omitempty"`
		Notes         string    `json:"notes,omitempty"`
		ImageURL      string    `json:"image_url,omitempty"`
		CreatedAt     time.Time `json:"created_at"`
	}

	DashboardStatsResponse struct {
		TotalItems       int     `json:"total_items"`
		SafeItems        int     `json:"safe_items"`
		WarningItems     int     `json:"warning_items"`
		DangerItems      int     `json:"danger_items"`
		ExpiredItems     int     `json:"expired_items"`
		EstimatedSavings float64 `json:"estimated_savings"`
	}
)
