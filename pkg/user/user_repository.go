package user

import (
	"FreshTrack-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error

		CreateSettings(ctx context.Context, settings *entities.UserSettings) error
		GetSettingsByUserID(ctx context.Context, userID string) (*entities.UserSettings, error)
		UpdateSettings(ctx context.Context, settings *entities.UserSettings) error

		// GetNotifiableUserIDs lists users the expiry scheduler should
		// run the eligibility check for.
		GetNotifiableUserIDs(ctx context.Context) ([]string, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) CreateSettings(ctx context.Context, settings *entities.UserSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

func (r *userRepository) GetSettingsByUserID(ctx context.Context, userID string) (*entities.UserSettings, error) {
	var settings entities.UserSettings
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *userRepository) UpdateSettings(ctx context.Context, settings *entities.UserSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

func (r *userRepository) GetNotifiableUserIDs(ctx context.Context) ([]string, error) {
	var userIDs []string

	if err := r.db.WithContext(ctx).Model(&entities.UserSettings{}).
		Where("notifications_enabled = ?", true).
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, err
	}

	return userIDs, nil
}
