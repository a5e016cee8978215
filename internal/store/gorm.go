package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
	"gorm.io/gorm"
)

// GormStore persists entities through GORM. Open the connection with
// TranslateError enabled so duplicate keys surface as apperr.ErrConflict.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Models lists the tables GormStore needs migrated.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.WardrobeItem{},
		&models.Outfit{},
		&models.WeatherPreference{},
	}
}

func translate(err error, what string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.ErrConflict
	default:
		return fmt.Errorf("failed to %s: %w", what, err)
	}
}

// --- Users ---

func (s *GormStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err, "fetch user")
	}
	return &user, nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("LOWER(username) = ?", strings.ToLower(username)).First(&user).Error; err != nil {
		return nil, translate(err, "fetch user")
	}
	return &user, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if strings.TrimSpace(user.Username) == "" {
		return nil, apperr.Field("username", "is required")
	}
	if _, err := s.GetUserByUsername(ctx, user.Username); err == nil {
		return nil, apperr.ErrConflict
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	rec := *user
	rec.ID = 0
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, translate(err, "create user")
	}
	return &rec, nil
}

func (s *GormStore) UpdateUser(ctx context.Context, id uint, patch models.UserPatch) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		patch.Apply(&user)
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, translate(err, "update user")
	}
	return &user, nil
}

func userExists(tx *gorm.DB, userID uint) (bool, error) {
	var count int64
	if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --- Wardrobe items ---

func (s *GormStore) ListWardrobeItems(ctx context.Context, userID uint) ([]models.WardrobeItem, error) {
	items := make([]models.WardrobeItem, 0)
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, translate(err, "list wardrobe items")
	}
	return items, nil
}

func (s *GormStore) GetWardrobeItem(ctx context.Context, id uint) (*models.WardrobeItem, error) {
	var item models.WardrobeItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, translate(err, "fetch wardrobe item")
	}
	return &item, nil
}

func (s *GormStore) CreateWardrobeItem(ctx context.Context, item *models.WardrobeItem) (*models.WardrobeItem, error) {
	rec := item.Clone()
	rec.ID = 0
	if err := checkWardrobeItem(&rec); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := userExists(tx, rec.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return unknownUser(rec.UserID)
		}
		return tx.Create(&rec).Error
	})
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			return nil, err
		}
		return nil, translate(err, "create wardrobe item")
	}
	return &rec, nil
}

func (s *GormStore) UpdateWardrobeItem(ctx context.Context, id uint, patch models.WardrobeItemPatch) (*models.WardrobeItem, error) {
	var item models.WardrobeItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			return err
		}
		patch.Apply(&item)
		if err := checkWardrobeItem(&item); err != nil {
			return err
		}
		return tx.Save(&item).Error
	})
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			return nil, err
		}
		return nil, translate(err, "update wardrobe item")
	}
	return &item, nil
}

func (s *GormStore) DeleteWardrobeItem(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.WardrobeItem
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}

		var outfits []models.Outfit
		if err := tx.Where("user_id = ?", item.UserID).Find(&outfits).Error; err != nil {
			return err
		}
		for i := range outfits {
			if !outfits[i].ContainsItem(id) {
				continue
			}
			outfits[i].Items = withoutItem(outfits[i].Items, id)
			var remaining []models.WardrobeItem
			if len(outfits[i].Items) > 0 {
				if err := tx.Where("id IN ?", outfits[i].Items).Find(&remaining).Error; err != nil {
					return err
				}
			}
			score := models.MeanItemScore(remaining)
			outfits[i].SustainabilityScore = &score
			if err := tx.Save(&outfits[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return translate(err, "delete wardrobe item")
	}
	return nil
}

// --- Outfits ---

func (s *GormStore) ListOutfits(ctx context.Context, userID uint) ([]models.Outfit, error) {
	outfits := make([]models.Outfit, 0)
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&outfits).Error; err != nil {
		return nil, translate(err, "list outfits")
	}
	return outfits, nil
}

func (s *GormStore) GetOutfit(ctx context.Context, id uint) (*models.Outfit, error) {
	var outfit models.Outfit
	if err := s.db.WithContext(ctx).First(&outfit, id).Error; err != nil {
		return nil, translate(err, "fetch outfit")
	}
	return &outfit, nil
}

func (s *GormStore) CreateOutfit(ctx context.Context, outfit *models.Outfit) (*models.Outfit, error) {
	rec := outfit.Clone()
	rec.ID = 0
	if rec.Items == nil {
		rec.Items = []uint{}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := userExists(tx, rec.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return unknownUser(rec.UserID)
		}
		if err := s.checkOutfitTx(tx, &rec); err != nil {
			return err
		}
		return tx.Create(&rec).Error
	})
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			return nil, err
		}
		return nil, translate(err, "create outfit")
	}
	return &rec, nil
}

func (s *GormStore) UpdateOutfit(ctx context.Context, id uint, patch models.OutfitPatch) (*models.Outfit, error) {
	var outfit models.Outfit
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&outfit, id).Error; err != nil {
			return err
		}
		patch.Apply(&outfit)
		if err := s.checkOutfitTx(tx, &outfit); err != nil {
			return err
		}
		return tx.Save(&outfit).Error
	})
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			return nil, err
		}
		return nil, translate(err, "update outfit")
	}
	return &outfit, nil
}

func (s *GormStore) DeleteOutfit(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&models.Outfit{}, id).Error; err != nil {
		return translate(err, "delete outfit")
	}
	return nil
}

func (s *GormStore) checkOutfitTx(tx *gorm.DB, outfit *models.Outfit) error {
	owners := make(map[uint]uint, len(outfit.Items))
	if len(outfit.Items) > 0 {
		var rows []models.WardrobeItem
		if err := tx.Select("id", "user_id").Where("id IN ?", outfit.Items).Find(&rows).Error; err != nil {
			return err
		}
		for _, r := range rows {
			owners[r.ID] = r.UserID
		}
	}
	return checkOutfit(outfit, func(itemID uint) (uint, bool) {
		userID, ok := owners[itemID]
		return userID, ok
	})
}

// --- Weather preferences ---

func (s *GormStore) GetWeatherPreference(ctx context.Context, userID uint) (*models.WeatherPreference, error) {
	var pref models.WeatherPreference
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error; err != nil {
		return nil, translate(err, "fetch weather preference")
	}
	return &pref, nil
}

func (s *GormStore) SetWeatherPreference(ctx context.Context, pref *models.WeatherPreference) (*models.WeatherPreference, error) {
	var next models.WeatherPreference
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := userExists(tx, pref.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return unknownUser(pref.UserID)
		}

		err = tx.Where("user_id = ?", pref.UserID).First(&next).Error
		switch {
		case err == nil:
			pref.MergeInto(&next)
		case errors.Is(err, gorm.ErrRecordNotFound):
			next = *pref
			next.ID = 0
			if next.Unit == "" {
				next.Unit = models.UnitMetric
			}
		default:
			return err
		}

		if err := checkWeatherPreference(&next); err != nil {
			return err
		}
		return tx.Save(&next).Error
	})
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			return nil, err
		}
		return nil, translate(err, "save weather preference")
	}
	return &next, nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
