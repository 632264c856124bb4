package notification

import (
	"FreshTrack-Backend/domain"
	"FreshTrack-Backend/entities"
	"FreshTrack-Backend/pkg/expiry"
	"FreshTrack-Backend/pkg/food"
	"FreshTrack-Backend/pkg/realtime"
	"FreshTrack-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NotificationService interface {
		// RunExpiryCheck finds items expiring within the user's warning
		// window and records one reminder per item. Idempotent: items
		// with an outstanding unread reminder are skipped, so re-running
		// on an unchanged inventory creates nothing.
		RunExpiryCheck(ctx context.Context, userID string) (domain.ExpiryCheckResponse, error)

		GetNotifications(ctx context.Context, userID string, page, limit int) ([]domain.NotificationResponse, int64, int64, error)
		MarkAsRead(ctx context.Context, id string, userID string) error
		MarkAllAsRead(ctx context.Context, userID string) error
		DeleteNotification(ctx context.Context, id string, userID string) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
		foodRepository         food.FoodRepository
		userRepository         user.UserRepository
		hub                    *realtime.Hub
	}
)

func NewNotificationService(
	notificationRepository NotificationRepository,
	foodRepository food.FoodRepository,
	userRepository user.UserRepository,
	hub *realtime.Hub,
) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		foodRepository:         foodRepository,
		userRepository:         userRepository,
		hub:                    hub,
	}
}

func (s *notificationService) RunExpiryCheck(ctx context.Context, userID string) (domain.ExpiryCheckResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ExpiryCheckResponse{}, domain.ErrParseUUID
	}

	warningDays := s.warningDays(ctx, userID)

	// The window is [today, today+W] in calendar days, bounds inclusive.
	now := time.Now()
	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endDate := startDate.AddDate(0, 0, warningDays+1).Add(-time.Second)

	items, err := s.foodRepository.GetFoodItemsByExpiryRange(ctx, userID, startDate, endDate)
	if err != nil {
		return domain.ExpiryCheckResponse{}, err
	}

	created := 0
	for _, item := range items {
		outstanding, err := s.notificationRepository.HasOutstandingExpiry(ctx, userID, item.ID.String())
		if err != nil {
			return domain.ExpiryCheckResponse{}, err
		}
		if outstanding {
			continue
		}

		days := expiry.DaysRemaining(item.ExpiryDate, now)
		itemID := item.ID
		notification := &entities.Notification{
			ID:         uuid.New(),
			UserID:     userUUID,
			Type:       entities.NotificationTypeExpiry,
			Message:    fmt.Sprintf("%s %s", item.Name, expiry.Phrase(days)),
			FoodItemID: &itemID,
		}

		if err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
			return domain.ExpiryCheckResponse{}, err
		}
		created++
	}

	if created > 0 {
		s.hub.Publish(realtime.TableNotifications, userID)
	}

	return domain.ExpiryCheckResponse{
		CheckedItems:        len(items),
		CreatedNotification: created,
	}, nil
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string, page, limit int) ([]domain.NotificationResponse, int64, int64, error) {
	notifications, count, err := s.notificationRepository.GetNotifications(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, 0, err
	}

	unread, err := s.notificationRepository.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, 0, err
	}

	response := make([]domain.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		item := domain.NotificationResponse{
			ID:        n.ID.String(),
			Type:      n.Type,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
		if n.FoodItemID != nil {
			item.FoodItemID = n.FoodItemID.String()
		}
		response = append(response, item)
	}

	return response, count, unread, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, id string, userID string) error {
	notification, err := s.getOwnedNotification(ctx, id, userID)
	if err != nil {
		return err
	}

	return s.notificationRepository.MarkAsRead(ctx, notification.ID.String())
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	if err := s.notificationRepository.MarkAllAsRead(ctx, userID); err != nil {
		return err
	}

	s.hub.Publish(realtime.TableNotifications, userID)
	return nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, id string, userID string) error {
	notification, err := s.getOwnedNotification(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.notificationRepository.DeleteNotification(ctx, notification.ID.String()); err != nil {
		return err
	}

	s.hub.Publish(realtime.TableNotifications, userID)
	return nil
}

func (s *notificationService) getOwnedNotification(ctx context.Context, id string, userID string) (*entities.Notification, error) {
	notification, err := s.notificationRepository.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}

	if notification.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}

	return notification, nil
}

func (s *notificationService) warningDays(ctx context.Context, userID string) int {
	settings, err := s.userRepository.GetSettingsByUserID(ctx, userID)
	if err != nil || settings.WarningDays <= 0 {
		return domain.DefaultWarningDays
	}
	return settings.WarningDays
}
