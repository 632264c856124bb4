package food

import (
	"FreshTrack-Backend/domain"
	"FreshTrack-Backend/entities"
	"FreshTrack-Backend/pkg/realtime"
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFoodRepository struct {
	items map[string]*entities.FoodItem
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{items: make(map[string]*entities.FoodItem)}
}

func (f *fakeFoodRepository) AddFoodItem(_ context.Context, foodItem *entities.FoodItem) error {
	f.items[foodItem.ID.String()] = foodItem
	return nil
}

func (f *fakeFoodRepository) GetFoodItemByID(_ context.Context, id string) (*entities.FoodItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeFoodRepository) GetFoodItemsByIDs(_ context.Context, ids []string) ([]*entities.FoodItem, error) {
	var out []*entities.FoodItem
	for _, id := range ids {
		if item, ok := f.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeFoodRepository) UpdateFoodItem(_ context.Context, foodItem *entities.FoodItem) error {
	f.items[foodItem.ID.String()] = foodItem
	return nil
}

func (f *fakeFoodRepository) GetFoodItems(_ context.Context, userID string, status string, _, _ int) ([]*entities.FoodItem, int64, error) {
	var result []*entities.FoodItem
	for _, item := range f.items {
		if item.UserID.String() != userID || item.Trashed {
			continue
		}
		if status != "all" && status != "" && item.Status != status {
			continue
		}
		result = append(result, item)
	}
	return result, int64(len(result)), nil
}

func (f *fakeFoodRepository) GetAllFoodItems(_ context.Context, userID string) ([]*entities.FoodItem, error) {
	var result []*entities.FoodItem
	for _, item := range f.items {
		if item.UserID.String() == userID && !item.Trashed {
			result = append(result, item)
		}
	}
	return result, nil
}

func (f *fakeFoodRepository) GetFoodItemsByExpiryRange(_ context.Context, userID string, startDate, endDate time.Time) ([]*entities.FoodItem, error) {
	var result []*entities.FoodItem
	for _, item := range f.items {
		if item.UserID.String() != userID || item.Trashed {
			continue
		}
		if item.ExpiryDate.Before(startDate) || item.ExpiryDate.After(endDate) {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

func (f *fakeFoodRepository) GetTrashedItems(_ context.Context, userID string) ([]*entities.FoodItem, error) {
	var result []*entities.FoodItem
	for _, item := range f.items {
		if item.UserID.String() == userID && item.Trashed {
			result = append(result, item)
		}
	}
	return result, nil
}

func (f *fakeFoodRepository) SetTrashed(_ context.Context, id string, trashed bool) error {
	item, ok := f.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Trashed = trashed
	return nil
}

func (f *fakeFoodRepository) DeleteFoodItem(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeFoodRepository) UpsertFoodItems(_ context.Context, foodItems []*entities.FoodItem) error {
	for _, item := range foodItems {
		f.items[item.ID.String()] = item
	}
	return nil
}

type fakeCleaner struct {
	cleaned []string
}

func (f *fakeCleaner) DeleteUnreadExpiryByFoodItem(_ context.Context, foodItemID string) error {
	f.cleaned = append(f.cleaned, foodItemID)
	return nil
}

type fakeStorage struct {
	deleted []string
}

func (f *fakeStorage) UploadFile(fileName string, _ *multipart.FileHeader, dir string, _ ...string) (string, error) {
	return dir + "/" + fileName, nil
}

func (f *fakeStorage) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	return objectKey, nil
}

func (f *fakeStorage) DeleteFile(objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeStorage) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}

func (f *fakeStorage) GetObjectKeyFromLink(link string) string {
	prefix := "https://bucket.s3.region.amazonaws.com/"
	if len(link) <= len(prefix) {
		return ""
	}
	return link[len(prefix):]
}

func newTestFoodService(repo FoodRepository, cleaner NotificationCleaner, s3 *fakeStorage) FoodService {
	return NewFoodService(repo, cleaner, s3, realtime.NewHub())
}

func seedItem(repo *fakeFoodRepository, userID uuid.UUID, name string, expiry time.Time) *entities.FoodItem {
	item := &entities.FoodItem{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Category:   "dairy",
		Quantity:   1,
		ExpiryDate: expiry,
		AddedDate:  time.Now(),
	}
	repo.items[item.ID.String()] = item
	return item
}

func TestAddFoodItem_ClassifiesOnCreate(t *testing.T) {
	repo := newFakeFoodRepository()
	service := newTestFoodService(repo, &fakeCleaner{}, &fakeStorage{})

	userID := uuid.New()
	expiry := time.Now().AddDate(0, 0, 2)

	resp, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:        "milk",
		Category:    "dairy",
		Quantity:    1,
		UnitMeasure: "l",
		ExpiryDate:  expiry.Format("2006-01-02"),
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, "Danger", resp.Status)
	assert.Equal(t, 2, resp.DaysRemaining)
	assert.Len(t, repo.items, 1)
}

func TestAddFoodItem_RejectsBadInput(t *testing.T) {
	repo := newFakeFoodRepository()
	service := newTestFoodService(repo, &fakeCleaner{}, &fakeStorage{})
	userID := uuid.New().String()

	_, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name: "milk", Category: "dairy", Quantity: 1, UnitMeasure: "l",
		ExpiryDate: "not-a-date",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)

	_, err = service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name: "milk", Category: "dairy", Quantity: 0, UnitMeasure: "l",
		ExpiryDate: time.Now().Format("2006-01-02"),
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	assert.Empty(t, repo.items)
}

func TestTrashFoodItem_RemovesOutstandingReminders(t *testing.T) {
	repo := newFakeFoodRepository()
	cleaner := &fakeCleaner{}
	service := newTestFoodService(repo, cleaner, &fakeStorage{})

	userID := uuid.New()
	item := seedItem(repo, userID, "milk", time.Now().AddDate(0, 0, 1))

	err := service.TrashFoodItem(context.Background(), item.ID.String(), userID.String())
	require.NoError(t, err)

	assert.True(t, repo.items[item.ID.String()].Trashed)
	assert.Equal(t, []string{item.ID.String()}, cleaner.cleaned)
}

func TestRestoreFoodItem_RequiresTrashed(t *testing.T) {
	repo := newFakeFoodRepository()
	service := newTestFoodService(repo, &fakeCleaner{}, &fakeStorage{})

	userID := uuid.New()
	item := seedItem(repo, userID, "milk", time.Now().AddDate(0, 0, 1))

	err := service.RestoreFoodItem(context.Background(), item.ID.String(), userID.String())
	assert.ErrorIs(t, err, domain.ErrFoodItemNotTrashed)

	item.Trashed = true
	err = service.RestoreFoodItem(context.Background(), item.ID.String(), userID.String())
	require.NoError(t, err)
	assert.False(t, repo.items[item.ID.String()].Trashed)
}

func TestDeleteFoodItem_OnlyFromTrash(t *testing.T) {
	repo := newFakeFoodRepository()
	cleaner := &fakeCleaner{}
	s3 := &fakeStorage{}
	service := newTestFoodService(repo, cleaner, s3)

	userID := uuid.New()
	item := seedItem(repo, userID, "milk", time.Now().AddDate(0, 0, 1))
	item.ImageURL = "https://bucket.s3.region.amazonaws.com/food-items/food-item-" + item.ID.String()

	err := service.DeleteFoodItem(context.Background(), item.ID.String(), userID.String())
	assert.ErrorIs(t, err, domain.ErrFoodItemNotTrashed)
	assert.Len(t, repo.items, 1)

	item.Trashed = true
	err = service.DeleteFoodItem(context.Background(), item.ID.String(), userID.String())
	require.NoError(t, err)

	assert.Empty(t, repo.items)
	assert.Equal(t, []string{item.ID.String()}, cleaner.cleaned)
	assert.Equal(t, []string{"food-items/food-item-" + item.ID.String()}, s3.deleted)
}

func TestGetFoodItemByID_EnforcesOwnership(t *testing.T) {
	repo := newFakeFoodRepository()
	service := newTestFoodService(repo, &fakeCleaner{}, &fakeStorage{})

	owner := uuid.New()
	item := seedItem(repo, owner, "milk", time.Now().AddDate(0, 0, 1))

	_, err := service.GetFoodItemByID(context.Background(), item.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	_, err = service.GetFoodItemByID(context.Background(), uuid.New().String(), owner.String())
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

func TestGetFoodItems_RefreshesDecayedStatus(t *testing.T) {
	repo := newFakeFoodRepository()
	service := newTestFoodService(repo, &fakeCleaner{}, &fakeStorage{})

	userID := uuid.New()
	// Stored as Safe when added, but the expiry date is now two days out.
	item := seedItem(repo, userID, "milk", time.Now().AddDate(0, 0, 2))
	item.Status = "Safe"

	items, count, err := service.GetFoodItems(context.Background(), userID.String(), "all", 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(1), count)
	require.Len(t, items, 1)
	assert.Equal(t, "Danger", items[0].Status)
	assert.Equal(t, "Danger", repo.items[item.ID.String()].Status)
}

func TestGetDashboardStats_CountsByStatus(t *testing.T) {
	repo := newFakeFoodRepository()
	service := newTestFoodService(repo, &fakeCleaner{}, &fakeStorage{})

	userID := uuid.New()
	now := time.Now()
	seedItem(repo, userID, "fresh", now.AddDate(0, 0, 20))
	seedItem(repo, userID, "soon", now.AddDate(0, 0, 5))
	seedItem(repo, userID, "urgent", now.AddDate(0, 0, 1))
	seedItem(repo, userID, "gone", now.AddDate(0, 0, -2))
	trashed := seedItem(repo, userID, "binned", now.AddDate(0, 0, 1))
	trashed.Trashed = true
	seedItem(repo, uuid.New(), "other-user", now.AddDate(0, 0, 1))

	stats, err := service.GetDashboardStats(context.Background(), userID.String())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 1, stats.SafeItems)
	assert.Equal(t, 1, stats.WarningItems)
	assert.Equal(t, 1, stats.DangerItems)
	assert.Equal(t, 1, stats.ExpiredItems)
	assert.InDelta(t, 3*estimatedValuePerItem, stats.EstimatedSavings, 0.001)
}
