package dto

import "github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"

type RegisterRequest struct {
	Username    string  `json:"username" validate:"required,min=3,max=50,alphanum"`
	Password    string  `json:"password" validate:"required,min=8,max=72"`
	DisplayName *string `json:"display_name" validate:"omitempty,max=100"`
	Email       *string `json:"email" validate:"omitempty,email"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,max=100"`
	Email       *string `json:"email" validate:"omitempty,email"`
	AvatarURL   *string `json:"avatar_url" validate:"omitempty,url"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   int64        `json:"expires_at"`
	User        *models.User `json:"user"`
}
