package waste

import (
	"FreshTrack-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	WasteRepository interface {
		CreateWasteLogEntry(ctx context.Context, entry *entities.WasteLogEntry) error
		GetWasteLog(ctx context.Context, userID string, page, limit int) ([]*entities.WasteLogEntry, int64, error)
		GetEntriesSince(ctx context.Context, userID string, since time.Time) ([]*entities.WasteLogEntry, error)

		CreateWasteGoal(ctx context.Context, goal *entities.WasteGoal) error
		GetWasteGoals(ctx context.Context, userID string) ([]*entities.WasteGoal, error)
		GetWasteGoalByID(ctx context.Context, id string) (*entities.WasteGoal, error)
		GetActiveGoalsByType(ctx context.Context, userID string, goalType string) ([]*entities.WasteGoal, error)
		IncrementGoalCurrent(ctx context.Context, id string, delta float64) error
		DeactivateGoal(ctx context.Context, id string) error

		GetCarbonFactor(ctx context.Context, category string) (*entities.CarbonFactor, error)
	}

	wasteRepository struct {
		db *gorm.DB
	}
)

func NewWasteRepository(db *gorm.DB) WasteRepository {
	return &wasteRepository{db: db}
}

func (r *wasteRepository) CreateWasteLogEntry(ctx context.Context, entry *entities.WasteLogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *wasteRepository) GetWasteLog(ctx context.Context, userID string, page, limit int) ([]*entities.WasteLogEntry, int64, error) {
	var entries []*entities.WasteLogEntry
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if err := query.Model(&entities.WasteLogEntry{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("disposal_date desc").Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, count, nil
}

func (r *wasteRepository) GetEntriesSince(ctx context.Context, userID string, since time.Time) ([]*entities.WasteLogEntry, error) {
	var entries []*entities.WasteLogEntry

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND disposal_date >= ?", userID, since).
		Order("disposal_date asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *wasteRepository) CreateWasteGoal(ctx context.Context, goal *entities.WasteGoal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *wasteRepository) GetWasteGoals(ctx context.Context, userID string) ([]*entities.WasteGoal, error) {
	var goals []*entities.WasteGoal

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&goals).Error; err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *wasteRepository) GetWasteGoalByID(ctx context.Context, id string) (*entities.WasteGoal, error) {
	var goal entities.WasteGoal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *wasteRepository) GetActiveGoalsByType(ctx context.Context, userID string, goalType string) ([]*entities.WasteGoal, error) {
	var goals []*entities.WasteGoal

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND goal_type = ? AND is_active = ?", userID, goalType, true).
		Find(&goals).Error; err != nil {
		return nil, err
	}

	return goals, nil
}

// IncrementGoalCurrent only ever moves the running value forward.
func (r *wasteRepository) IncrementGoalCurrent(ctx context.Context, id string, delta float64) error {
	if delta <= 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entities.WasteGoal{}).
		Where("id = ?", id).
		Update("current", gorm.Expr("current + ?", delta)).Error
}

func (r *wasteRepository) DeactivateGoal(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.WasteGoal{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *wasteRepository) GetCarbonFactor(ctx context.Context, category string) (*entities.CarbonFactor, error) {
	var factor entities.CarbonFactor
	if err := r.db.WithContext(ctx).Where("category = ?", category).First(&factor).Error; err != nil {
		return nil, err
	}
	return &factor, nil
}
