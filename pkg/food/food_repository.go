package food

import (
	"FreshTrack-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		GetFoodItemsByIDs(ctx context.Context, ids []string) ([]*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItems(ctx context.Context, userID string, status string, page, limit int) ([]*entities.FoodItem, int64, error)
		GetAllFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error)
		GetFoodItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.FoodItem, error)

		// Trash handling
		GetTrashedItems(ctx context.Context, userID string) ([]*entities.FoodItem, error)
		SetTrashed(ctx context.Context, id string, trashed bool) error
		DeleteFoodItem(ctx context.Context, id string) error

		// Local-cache import; keyed by id, last write wins
		UpsertFoodItems(ctx context.Context, foodItems []*entities.FoodItem) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) GetFoodItemsByIDs(ctx context.Context, ids []string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if len(ids) == 0 {
		return foodItems, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(foodItem).Error
}

func (r *foodRepository) GetFoodItems(ctx context.Context, userID string, status string, page, limit int) ([]*entities.FoodItem, int64, error) {
	var foodItems []*entities.FoodItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).
		Where("user_id = ? AND trashed = ?", userID, false)

	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Model(&entities.FoodItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("expiry_date asc").Find(&foodItems).Error; err != nil {
		return nil, 0, err
	}

	return foodItems, count, nil
}

func (r *foodRepository) GetAllFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND trashed = ?", userID, false).
		Order("expiry_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) GetFoodItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND trashed = ? AND expiry_date BETWEEN ? AND ?",
			userID, false, startDate, endDate).
		Order("expiry_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) GetTrashedItems(ctx context.Context, userID string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND trashed = ?", userID, true).
		Order("updated_at desc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) SetTrashed(ctx context.Context, id string, trashed bool) error {
	return r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("id = ?", id).
		Update("trashed", trashed).Error
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error
}

// UpsertFoodItems writes a batch keyed by client-supplied ids, last write
// wins. Item ids come straight from the request, so the conflict update
// only fires when the existing row belongs to the same user; a colliding
// row owned by someone else is left untouched.
func (r *foodRepository) UpsertFoodItems(ctx context.Context, foodItems []*entities.FoodItem) error {
	if len(foodItems) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
			Where: clause.Where{Exprs: []clause.Expression{
				gorm.Expr("food_items.user_id = excluded.user_id"),
			}},
		}).
		Create(foodItems).Error
}
