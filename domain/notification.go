package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetNotifications   = "notifications retrieved successfully"
	MessageSuccessMarkAsRead         = "notification marked as read"
	MessageSuccessMarkAllAsRead      = "all notifications marked as read"
	MessageSuccessDeleteNotification = "notification deleted successfully"
	MessageSuccessRunExpiryCheck     = "expiry check completed"

	MessageFailedGetNotifications   = "failed to retrieve notifications"
	MessageFailedMarkAsRead         = "failed to mark notification as read"
	MessageFailedMarkAllAsRead      = "failed to mark all notifications as read"
	MessageFailedDeleteNotification = "failed to delete notification"
	MessageFailedRunExpiryCheck     = "failed to run expiry check"

	ErrNotificationNotFound = errors.New("notification not found")
)

type (
	NotificationResponse struct {
		ID         string    `json:"id"`
		Type       string    `json:"type"`
		Message    string    `json:"message"`
		FoodItemID string    `json:"food_item_id,omitempty"`
		IsRead     bool      `json:"is_read"`
		CreatedAt  time.Time `json:"created_at"`
	}

	ExpiryCheckResponse struct {
		CheckedItems        int `json:"checked_items"`
		CreatedNotification int `json:"created_notifications"`
	}
)
