package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/store"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = fmt.Errorf("%w: username already registered", apperr.ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", apperr.ErrUnauthorized)
)

type AuthService struct {
	store store.Store
	cfg   *config.Config
	now   func() time.Time
}

func NewAuthService(s store.Store, cfg *config.Config) *AuthService {
	return &AuthService{store: s, cfg: cfg, now: time.Now}
}

// HashPassword returns the bcrypt hash stored in User.Password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.store.CreateUser(ctx, &models.User{
		Username:    strings.TrimSpace(req.Username),
		Password:    hash,
		DisplayName: req.DisplayName,
		Email:       req.Email,
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.store.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthService) Me(ctx context.Context, userID uint) (*models.User, error) {
	return s.store.GetUser(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*models.User, error) {
	return s.store.UpdateUser(ctx, userID, models.UserPatch{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		AvatarURL:   req.AvatarURL,
	})
}

func (s *AuthService) issue(user *models.User) (*dto.AuthResponse, error) {
	now := s.now()
	expiresAt := now.Add(s.cfg.JWTAccessExpiry)

	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.AuthResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt.Unix(),
		User:        user,
	}, nil
}
