package notification

import (
	"FreshTrack-Backend/entities"
	"FreshTrack-Backend/pkg/realtime"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNotificationRepository struct {
	notifications []*entities.Notification
}

func (f *fakeNotificationRepository) CreateNotification(_ context.Context, n *entities.Notification) error {
	f.notifications = append(f.notifications, n)
	return nil
}

func (f *fakeNotificationRepository) GetNotifications(_ context.Context, userID string, _, _ int) ([]*entities.Notification, int64, error) {
	var out []*entities.Notification
	for _, n := range f.notifications {
		if n.UserID.String() == userID {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeNotificationRepository) GetNotificationByID(_ context.Context, id string) (*entities.Notification, error) {
	for _, n := range f.notifications {
		if n.ID.String() == id {
			return n, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeNotificationRepository) CountUnread(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range f.notifications {
		if n.UserID.String() == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepository) MarkAsRead(_ context.Context, id string) error {
	for _, n := range f.notifications {
		if n.ID.String() == id {
			n.IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepository) MarkAllAsRead(_ context.Context, userID string) error {
	for _, n := range f.notifications {
		if n.UserID.String() == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepository) DeleteNotification(_ context.Context, id string) error {
	kept := f.notifications[:0]
	for _, n := range f.notifications {
		if n.ID.String() != id {
			kept = append(kept, n)
		}
	}
	f.notifications = kept
	return nil
}

func (f *fakeNotificationRepository) HasOutstandingExpiry(_ context.Context, userID string, foodItemID string) (bool, error) {
	for _, n := range f.notifications {
		if n.UserID.String() == userID &&
			n.Type == entities.NotificationTypeExpiry &&
			!n.IsRead &&
			n.FoodItemID != nil && n.FoodItemID.String() == foodItemID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeNotificationRepository) DeleteUnreadExpiryByFoodItem(_ context.Context, foodItemID string) error {
	kept := f.notifications[:0]
	for _, n := range f.notifications {
		if n.FoodItemID != nil && n.FoodItemID.String() == foodItemID && !n.IsRead {
			continue
		}
		kept = append(kept, n)
	}
	f.notifications = kept
	return nil
}

type fakeFoodRepository struct {
	items []*entities.FoodItem
}

func (f *fakeFoodRepository) AddFoodItem(_ context.Context, item *entities.FoodItem) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakeFoodRepository) GetFoodItemByID(_ context.Context, id string) (*entities.FoodItem, error) {
	for _, item := range f.items {
		if item.ID.String() == id {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFoodRepository) GetFoodItemsByIDs(_ context.Context, ids []string) ([]*entities.FoodItem, error) {
	var out []*entities.FoodItem
	for _, item := range f.items {
		for _, id := range ids {
			if item.ID.String() == id {
				out = append(out, item)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeFoodRepository) UpdateFoodItem(_ context.Context, _ *entities.FoodItem) error { return nil }

func (f *fakeFoodRepository) GetFoodItems(_ context.Context, _ string, _ string, _, _ int) ([]*entities.FoodItem, int64, error) {
	return f.items, int64(len(f.items)), nil
}

func (f *fakeFoodRepository) GetAllFoodItems(_ context.Context, _ string) ([]*entities.FoodItem, error) {
	return f.items, nil
}

func (f *fakeFoodRepository) GetFoodItemsByExpiryRange(_ context.Context, userID string, startDate, endDate time.Time) ([]*entities.FoodItem, error) {
	var out []*entities.FoodItem
	for _, item := range f.items {
		if item.UserID.String() != userID || item.Trashed {
			continue
		}
		if !item.ExpiryDate.Before(startDate) && !item.ExpiryDate.After(endDate) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeFoodRepository) GetTrashedItems(_ context.Context, _ string) ([]*entities.FoodItem, error) {
	return nil, nil
}

func (f *fakeFoodRepository) SetTrashed(_ context.Context, id string, trashed bool) error {
	for _, item := range f.items {
		if item.ID.String() == id {
			item.Trashed = trashed
		}
	}
	return nil
}

func (f *fakeFoodRepository) DeleteFoodItem(_ context.Context, _ string) error { return nil }

func (f *fakeFoodRepository) UpsertFoodItems(_ context.Context, items []*entities.FoodItem) error {
	f.items = append(f.items, items...)
	return nil
}

type fakeUserRepository struct {
	settings map[string]*entities.UserSettings
}

func (f *fakeUserRepository) CreateUser(_ context.Context, _ *entities.User) error { return nil }
func (f *fakeUserRepository) GetUserByID(_ context.Context, _ string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepository) GetUserByEmail(_ context.Context, _ string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepository) UpdateUser(_ context.Context, _ *entities.User) error { return nil }
func (f *fakeUserRepository) CreateSettings(_ context.Context, _ *entities.UserSettings) error {
	return nil
}

func (f *fakeUserRepository) GetSettingsByUserID(_ context.Context, userID string) (*entities.UserSettings, error) {
	if s, ok := f.settings[userID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdateSettings(_ context.Context, _ *entities.UserSettings) error {
	return nil
}

func (f *fakeUserRepository) GetNotifiableUserIDs(_ context.Context) ([]string, error) {
	var out []string
	for id := range f.settings {
		out = append(out, id)
	}
	return out, nil
}

func newTestService(items []*entities.FoodItem) (NotificationService, *fakeNotificationRepository) {
	notifRepo := &fakeNotificationRepository{}
	foodRepo := &fakeFoodRepository{items: items}
	userRepo := &fakeUserRepository{settings: map[string]*entities.UserSettings{}}
	return NewNotificationService(notifRepo, foodRepo, userRepo, realtime.NewHub()), notifRepo
}

func itemExpiring(userID uuid.UUID, name string, daysFromNow int) *entities.FoodItem {
	return &entities.FoodItem{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		ExpiryDate: time.Now().AddDate(0, 0, daysFromNow),
	}
}

func TestRunExpiryCheck_CreatesOnePerEligibleItem(t *testing.T) {
	userID := uuid.New()
	items := []*entities.FoodItem{
		itemExpiring(userID, "milk", 0),
		itemExpiring(userID, "yogurt", 2),
		itemExpiring(userID, "rice", 30), // outside the window
	}

	svc, notifRepo := newTestService(items)

	res, err := svc.RunExpiryCheck(context.Background(), userID.String())
	require.NoError(t, err)

	assert.Equal(t, 2, res.CheckedItems)
	assert.Equal(t, 2, res.CreatedNotification)
	require.Len(t, notifRepo.notifications, 2)

	assert.Equal(t, "milk expires today", notifRepo.notifications[0].Message)
	assert.Equal(t, "yogurt expires in 2 days", notifRepo.notifications[1].Message)
}

func TestRunExpiryCheck_Idempotent(t *testing.T) {
	userID := uuid.New()
	items := []*entities.FoodItem{
		itemExpiring(userID, "milk", 1),
		itemExpiring(userID, "cheese", 3),
	}

	svc, notifRepo := newTestService(items)

	first, err := svc.RunExpiryCheck(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, 2, first.CreatedNotification)

	second, err := svc.RunExpiryCheck(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, 0, second.CreatedNotification)
	assert.Len(t, notifRepo.notifications, 2)
}

func TestRunExpiryCheck_ReadReminderNoLongerOutstanding(t *testing.T) {
	userID := uuid.New()
	items := []*entities.FoodItem{itemExpiring(userID, "milk", 1)}

	svc, notifRepo := newTestService(items)

	_, err := svc.RunExpiryCheck(context.Background(), userID.String())
	require.NoError(t, err)
	require.Len(t, notifRepo.notifications, 1)

	// Once the user reads the reminder it stops suppressing new ones.
	require.NoError(t, svc.MarkAsRead(context.Background(), notifRepo.notifications[0].ID.String(), userID.String()))

	res, err := svc.RunExpiryCheck(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, res.CreatedNotification)
	assert.Len(t, notifRepo.notifications, 2)
}

func TestRunExpiryCheck_RespectsWarningDaysSetting(t *testing.T) {
	userID := uuid.New()
	items := []*entities.FoodItem{
		itemExpiring(userID, "milk", 5),
	}

	notifRepo := &fakeNotificationRepository{}
	foodRepo := &fakeFoodRepository{items: items}
	userRepo := &fakeUserRepository{settings: map[string]*entities.UserSettings{
		userID.String(): {UserID: userID, WarningDays: 7, NotificationsEnabled: true},
	}}
	svc := NewNotificationService(notifRepo, foodRepo, userRepo, realtime.NewHub())

	res, err := svc.RunExpiryCheck(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, res.CreatedNotification)

	// With the default three-day window the same item is not eligible.
	svcDefault, defaultRepo := newTestService([]*entities.FoodItem{itemExpiring(userID, "milk", 5)})
	resDefault, err := svcDefault.RunExpiryCheck(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, 0, resDefault.CreatedNotification)
	assert.Empty(t, defaultRepo.notifications)
}

func TestTrashedItemsNotEligible(t *testing.T) {
	userID := uuid.New()
	trashed := itemExpiring(userID, "old bread", 1)
	trashed.Trashed = true

	svc, notifRepo := newTestService([]*entities.FoodItem{trashed})

	res, err := svc.RunExpiryCheck(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, 0, res.CreatedNotification)
	assert.Empty(t, notifRepo.notifications)
}
