package notification

import (
	"FreshTrack-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		CreateNotification(ctx context.Context, notification *entities.Notification) error
		GetNotifications(ctx context.Context, userID string, page, limit int) ([]*entities.Notification, int64, error)
		GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error)
		CountUnread(ctx context.Context, userID string) (int64, error)
		MarkAsRead(ctx context.Context, id string) error
		MarkAllAsRead(ctx context.Context, userID string) error
		DeleteNotification(ctx context.Context, id string) error

		// HasOutstandingExpiry reports whether an unread expiry reminder
		// already references the item; the eligibility check dedupes on it.
		HasOutstandingExpiry(ctx context.Context, userID string, foodItemID string) (bool, error)
		DeleteUnreadExpiryByFoodItem(ctx context.Context, foodItemID string) error
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) GetNotifications(ctx context.Context, userID string, page, limit int) ([]*entities.Notification, int64, error) {
	var notifications []*entities.Notification
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if err := query.Model(&entities.Notification{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, count, nil
}

func (r *notificationRepository) GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error) {
	var notification entities.Notification
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func (r *notificationRepository) DeleteNotification(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Notification{}).Error
}

func (r *notificationRepository) HasOutstandingExpiry(ctx context.Context, userID string, foodItemID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("user_id = ? AND food_item_id = ? AND type = ? AND is_read = ?",
			userID, foodItemID, entities.NotificationTypeExpiry, false).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *notificationRepository) DeleteUnreadExpiryByFoodItem(ctx context.Context, foodItemID string) error {
	return r.db.WithContext(ctx).
		Where("food_item_id = ? AND type = ? AND is_read = ?",
			foodItemID, entities.NotificationTypeExpiry, false).
		Delete(&entities.Notification{}).Error
}
