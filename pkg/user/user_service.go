package user

import (
	"FreshTrack-Backend/domain"
	"FreshTrack-Backend/entities"
	"FreshTrack-Backend/internal/utils"
	"FreshTrack-Backend/internal/utils/mailing"
	"FreshTrack-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error
		SendVerificationEmail(ctx context.Context, email string) error
		VerifyEmail(ctx context.Context, token string) error
		ForgotPassword(ctx context.Context, email string) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error

		GetSettings(ctx context.Context, userID string) (domain.UserSettingsResponse, error)
		UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest, userID string) (domain.UserSettingsResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	// Every account starts with the default notification window.
	settings := &entities.UserSettings{
		ID:                    uuid.New(),
		UserID:                user.ID,
		NotificationsEnabled:  true,
		WarningDays:           domain.DefaultWarningDays,
		NotificationFrequency: domain.DefaultNotificationFrequency,
		Theme:                 domain.DefaultTheme,
	}
	if err := s.userRepository.CreateSettings(ctx, settings); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	return domain.MeResponse{
		ID:         user.ID.String(),
		Name:       user.Name,
		Email:      user.Email,
		IsVerified: user.IsVerified,
		ImageURL:   user.ImageURL,
		CreatedAt:  user.CreatedAt,
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.Password = string(hashed)
	}

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) SendVerificationEmail(ctx context.Context, email string) error {
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenForgetPassword(map[string]any{
		"user_id": user.ID.String(),
		"purpose": "verify_email",
	}, 24*time.Hour)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/api/v1/users/verify?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Please verify your FreshTrack account by clicking <a href=%q>this link</a>.</p>",
		user.Name, link,
	)

	return mailing.SendMail(user.Email, "Verify your FreshTrack account", body)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(token)
	if err != nil {
		return err
	}

	if purpose, _ := claims["purpose"].(string); purpose != "verify_email" {
		return domain.ErrTokenInvalid
	}

	userID, _ := claims["user_id"].(string)
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.IsVerified = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenForgetPassword(map[string]any{
		"user_id": user.ID.String(),
		"purpose": "reset_password",
	}, 30*time.Minute)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Reset your FreshTrack password by clicking <a href=%q>this link</a>. The link expires in 30 minutes.</p>",
		user.Name, link,
	)

	return mailing.SendMail(user.Email, "Reset your FreshTrack password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(req.Token)
	if err != nil {
		return err
	}

	if purpose, _ := claims["purpose"].(string); purpose != "reset_password" {
		return domain.ErrTokenInvalid
	}

	userID, _ := claims["user_id"].(string)
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) GetSettings(ctx context.Context, userID string) (domain.UserSettingsResponse, error) {
	settings, err := s.getOrDefaultSettings(ctx, userID)
	if err != nil {
		return domain.UserSettingsResponse{}, err
	}

	return toSettingsResponse(settings), nil
}

func (s *userService) UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest, userID string) (domain.UserSettingsResponse, error) {
	settings, err := s.getOrDefaultSettings(ctx, userID)
	if err != nil {
		return domain.UserSettingsResponse{}, err
	}

	if req.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.WarningDays != nil {
		settings.WarningDays = *req.WarningDays
	}
	if req.NotificationFrequency != "" {
		settings.NotificationFrequency = req.NotificationFrequency
	}
	if req.Theme != "" {
		settings.Theme = req.Theme
	}

	if err := s.userRepository.UpdateSettings(ctx, settings); err != nil {
		return domain.UserSettingsResponse{}, err
	}

	return toSettingsResponse(settings), nil
}

// getOrDefaultSettings backfills a default settings row for accounts
// created before settings existed.
func (s *userService) getOrDefaultSettings(ctx context.Context, userID string) (*entities.UserSettings, error) {
	settings, err := s.userRepository.GetSettingsByUserID(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	settings = &entities.UserSettings{
		ID:                    uuid.New(),
		UserID:                userUUID,
		NotificationsEnabled:  true,
		WarningDays:           domain.DefaultWarningDays,
		NotificationFrequency: domain.DefaultNotificationFrequency,
		Theme:                 domain.DefaultTheme,
	}
	if err := s.userRepository.CreateSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func toSettingsResponse(settings *entities.UserSettings) domain.UserSettingsResponse {
	return domain.UserSettingsResponse{
		NotificationsEnabled:  settings.NotificationsEnabled,
		WarningDays:           settings.WarningDays,
		NotificationFrequency: settings.NotificationFrequency,
		Theme:                 settings.Theme,
	}
}
