package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login successful"
	MessageSuccessGetMe           = "user profile retrieved successfully"
	MessageSuccessUpdateUser      = "user updated successfully"
	MessageSuccessSendVerifyEmail = "verification email sent"
	MessageSuccessVerifyEmail     = "email verified successfully"
	MessageSuccessForgotPassword  = "password reset email sent"
	MessageSuccessResetPassword   = "password reset successfully"
	MessageSuccessGetSettings     = "settings retrieved successfully"
	MessageSuccessUpdateSettings  = "settings updated successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedGetMe           = "failed to retrieve user profile"
	MessageFailedUpdateUser      = "failed to update user"
	MessageFailedSendVerifyEmail = "failed to send verification email"
	MessageFailedVerifyEmail     = "failed to verify email"
	MessageFailedForgotPassword  = "failed to send password reset email"
	MessageFailedResetPassword   = "failed to reset password"
	MessageFailedGetSettings     = "failed to retrieve settings"
	MessageFailedUpdateSettings  = "failed to update settings"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
)

// Settings defaults. WarningDays controls how far ahead the expiry
// check looks for at-risk items.
const (
	DefaultWarningDays           = 3
	DefaultNotificationFrequency = "daily"
	DefaultTheme                 = "system"
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateUserRequest struct {
		Name     string `json:"name" validate:"omitempty"`
		Password string `json:"password" validate:"omitempty,min=8"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	MeResponse struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		Email      string    `json:"email"`
		IsVerified bool      `json:"is_verified"`
		ImageURL   string    `json:"image_url,omitempty"`
		CreatedAt  time.Time `json:"created_at"`
	}

	UserSettingsResponse struct {
		NotificationsEnabled  bool   `json:"notifications_enabled"`
		WarningDays           int    `json:"warning_days"`
		NotificationFrequency string `json:"notification_frequency"`
		Theme                 string `json:"theme"`
	}

	UpdateSettingsRequest struct {
		NotificationsEnabled  *bool  `json:"notifications_enabled" validate:"omitempty"`
		WarningDays           *int   `json:"warning_days" validate:"omitempty,min=1,max=30"`
		NotificationFrequency string `json:"notification_frequency" validate:"omitempty,oneof=daily weekly"`
		Theme                 string `json:"theme" validate:"omitempty,oneof=light dark system"`
	}
)
