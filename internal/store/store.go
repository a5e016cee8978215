// Package store keeps users, wardrobe items, outfits and weather
// preferences. Two implementations share one contract: MemoryStore for
// single-process deployments and GormStore for SQL databases.
//
// Lookups return apperr.ErrNotFound for unknown ids. Writes enforce the
// ownership and range invariants and reject violations with an
// *apperr.ValidationError. Deletes are idempotent.
package store

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
)

type Store interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, patch models.UserPatch) (*models.User, error)

	// ListWardrobeItems returns the user's items in insertion order.
	ListWardrobeItems(ctx context.Context, userID uint) ([]models.WardrobeItem, error)
	GetWardrobeItem(ctx context.Context, id uint) (*models.WardrobeItem, error)
	CreateWardrobeItem(ctx context.Context, item *models.WardrobeItem) (*models.WardrobeItem, error)
	UpdateWardrobeItem(ctx context.Context, id uint, patch models.WardrobeItemPatch) (*models.WardrobeItem, error)
	// DeleteWardrobeItem also removes the item from its owner's outfits.
	DeleteWardrobeItem(ctx context.Context, id uint) error

	ListOutfits(ctx context.Context, userID uint) ([]models.Outfit, error)
	GetOutfit(ctx context.Context, id uint) (*models.Outfit, error)
	CreateOutfit(ctx context.Context, outfit *models.Outfit) (*models.Outfit, error)
	UpdateOutfit(ctx context.Context, id uint, patch models.OutfitPatch) (*models.Outfit, error)
	DeleteOutfit(ctx context.Context, id uint) error

	GetWeatherPreference(ctx context.Context, userID uint) (*models.WeatherPreference, error)
	// SetWeatherPreference inserts the user's preference or merges into the
	// existing one, keeping its id.
	SetWeatherPreference(ctx context.Context, pref *models.WeatherPreference) (*models.WeatherPreference, error)

	Ping(ctx context.Context) error
}
