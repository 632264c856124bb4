package migration

import (
	"FreshTrack-Backend/domain"
	"FreshTrack-Backend/entities"
	"FreshTrack-Backend/pkg/realtime"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFoodRepository struct {
	byID      map[string]*entities.FoodItem
	upsertErr error
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{byID: make(map[string]*entities.FoodItem)}
}

func (f *fakeFoodRepository) UpsertFoodItems(_ context.Context, items []*entities.FoodItem) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	for _, item := range items {
		f.byID[item.ID.String()] = item
	}
	return nil
}

func (f *fakeFoodRepository) AddFoodItem(_ context.Context, item *entities.FoodItem) error {
	f.byID[item.ID.String()] = item
	return nil
}

func (f *fakeFoodRepository) GetFoodItemByID(_ context.Context, id string) (*entities.FoodItem, error) {
	if item, ok := f.byID[id]; ok {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFoodRepository) GetFoodItemsByIDs(_ context.Context, ids []string) ([]*entities.FoodItem, error) {
	var out []*entities.FoodItem
	for _, id := range ids {
		if item, ok := f.byID[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeFoodRepository) UpdateFoodItem(_ context.Context, _ *entities.FoodItem) error { return nil }

func (f *fakeFoodRepository) GetFoodItems(_ context.Context, _ string, _ string, _, _ int) ([]*entities.FoodItem, int64, error) {
	return nil, 0, nil
}

func (f *fakeFoodRepository) GetAllFoodItems(_ context.Context, _ string) ([]*entities.FoodItem, error) {
	return nil, nil
}

func (f *fakeFoodRepository) GetFoodItemsByExpiryRange(_ context.Context, _ string, _, _ time.Time) ([]*entities.FoodItem, error) {
	return nil, nil
}

func (f *fakeFoodRepository) GetTrashedItems(_ context.Context, _ string) ([]*entities.FoodItem, error) {
	return nil, nil
}

func (f *fakeFoodRepository) SetTrashed(_ context.Context, _ string, _ bool) error { return nil }
func (f *fakeFoodRepository) DeleteFoodItem(_ context.Context, _ string) error     { return nil }

func TestImportLocalItems_SkipsInvalidIDWithoutBlockingBatch(t *testing.T) {
	repo := newFakeFoodRepository()
	svc := NewMigrationService(repo, realtime.NewHub())

	validID := uuid.New().String()
	res, err := svc.ImportLocalItems(context.Background(), domain.ImportLocalItemsRequest{
		Items: []domain.LocalItemRequest{
			{ID: "not-a-uuid", Name: "mystery", ExpiryDate: "2026-01-01"},
			{ID: validID, Name: "milk", Category: "dairy", Quantity: 1, UnitMeasure: "l", ExpiryDate: "2026-01-01"},
		},
	}, uuid.New().String())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, []string{"not-a-uuid"}, res.Skipped)
	assert.True(t, res.ClearLocal)

	require.Contains(t, repo.byID, validID)
	assert.Equal(t, "milk", repo.byID[validID].Name)
	assert.NotContains(t, repo.byID, "not-a-uuid")
}

func TestImportLocalItems_EmptyAfterFilteringStillClears(t *testing.T) {
	repo := newFakeFoodRepository()
	svc := NewMigrationService(repo, realtime.NewHub())

	res, err := svc.ImportLocalItems(context.Background(), domain.ImportLocalItemsRequest{
		Items: []domain.LocalItemRequest{
			{ID: "garbage", Name: "a", ExpiryDate: "2026-01-01"},
			{ID: "also-garbage", Name: "b", ExpiryDate: "2026-01-01"},
		},
	}, uuid.New().String())
	require.NoError(t, err)

	assert.Zero(t, res.Imported)
	assert.Len(t, res.Skipped, 2)
	assert.True(t, res.ClearLocal)
	assert.Empty(t, repo.byID)
}

func TestImportLocalItems_StoreFailureKeepsCache(t *testing.T) {
	repo := newFakeFoodRepository()
	repo.upsertErr = errors.New("connection refused")
	svc := NewMigrationService(repo, realtime.NewHub())

	_, err := svc.ImportLocalItems(context.Background(), domain.ImportLocalItemsRequest{
		Items: []domain.LocalItemRequest{
			{ID: uuid.New().String(), Name: "milk", ExpiryDate: "2026-01-01"},
		},
	}, uuid.New().String())

	// The error response is what keeps the client from clearing its cache.
	require.Error(t, err)
}

func TestImportLocalItems_ForeignOwnedIDIsSkipped(t *testing.T) {
	repo := newFakeFoodRepository()
	svc := NewMigrationService(repo, realtime.NewHub())

	ownerID := uuid.New()
	itemID := uuid.New()
	repo.byID[itemID.String()] = &entities.FoodItem{
		ID:     itemID,
		UserID: ownerID,
		Name:   "their milk",
	}

	res, err := svc.ImportLocalItems(context.Background(), domain.ImportLocalItemsRequest{
		Items: []domain.LocalItemRequest{
			{ID: itemID.String(), Name: "my milk", ExpiryDate: "2026-01-01"},
		},
	}, uuid.New().String())
	require.NoError(t, err)

	assert.Zero(t, res.Imported)
	assert.Equal(t, []string{itemID.String()}, res.Skipped)
	assert.True(t, res.ClearLocal)

	assert.Equal(t, "their milk", repo.byID[itemID.String()].Name)
	assert.Equal(t, ownerID, repo.byID[itemID.String()].UserID)
}

func TestImportLocalItems_LastWriteWinsOnCollision(t *testing.T) {
	repo := newFakeFoodRepository()
	svc := NewMigrationService(repo, realtime.NewHub())

	userID := uuid.New().String()
	itemID := uuid.New().String()

	_, err := svc.ImportLocalItems(context.Background(), domain.ImportLocalItemsRequest{
		Items: []domain.LocalItemRequest{{ID: itemID, Name: "old name", ExpiryDate: "2026-01-01"}},
	}, userID)
	require.NoError(t, err)

	_, err = svc.ImportLocalItems(context.Background(), domain.ImportLocalItemsRequest{
		Items: []domain.LocalItemRequest{{ID: itemID, Name: "new name", ExpiryDate: "2026-02-01"}},
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, "new name", repo.byID[itemID].Name)
}
