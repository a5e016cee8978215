package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
)

const SampleUsername = "emma"

type sampleItem struct {
	name, category, kind, color, material, season, occasion string
	score                                                   int
}

var sampleItems = []sampleItem{
	{"White Basic T-shirt", models.CategoryTops, "t-shirt", "white", "cotton", models.SeasonAll, "casual", 85},
	{"Blue Denim Jeans", models.CategoryBottoms, "jeans", "blue", "denim", models.SeasonAll, "casual", 72},
	{"Black Leather Jacket", models.CategoryOuterwear, "jacket", "black", "leather", "fall", "casual", 56},
	{"Beige Knit Sweater", models.CategoryTops, "sweater", "beige", "wool", "winter", "casual", 92},
	{"White Button-Up Shirt", models.CategoryTops, "shirt", "white", "cotton", models.SeasonAll, "formal", 88},
	{"Brown Ankle Boots", models.CategoryShoes, "boots", "brown", "leather", "fall", "casual", 62},
	{"Classic Sunglasses", models.CategoryAccessories, "sunglasses", "black", "plastic", "summer", "casual", 78},
	{"Floral Summer Dress", models.CategoryDresses, "dress", "multi", "cotton", "summer", "casual", 84},
	{"Navy Blue Blazer", models.CategoryOuterwear, "blazer", "navy", "polyester", models.SeasonAll, "formal", 65},
	{"White Sneakers", models.CategoryShoes, "sneakers", "white", "canvas", models.SeasonAll, "casual", 91},
}

// sampleOutfits reference sampleItems by position.
var sampleOutfits = []struct {
	name, occasion, season string
	items                  []int
	score                  int
}{
	{"Casual Friday", "work", models.SeasonAll, []int{0, 1, 9}, 86},
	{"Weekend Brunch", "casual", "summer", []int{7, 5, 6}, 92},
	{"Business Meeting", "work", models.SeasonAll, []int{4, 8, 1}, 76},
}

// Seed creates the demo user with a sample wardrobe, outfits and a New York
// weather preference. It does nothing when the demo user already exists.
func Seed(ctx context.Context, s Store, passwordHash string) error {
	if _, err := s.GetUserByUsername(ctx, SampleUsername); err == nil {
		return nil
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return err
	}

	displayName := "Emma"
	email := "emma@example.com"
	user, err := s.CreateUser(ctx, &models.User{
		Username:    SampleUsername,
		Password:    passwordHash,
		DisplayName: &displayName,
		Email:       &email,
	})
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	ids := make([]uint, len(sampleItems))
	for i, si := range sampleItems {
		score := si.score
		item, err := s.CreateWardrobeItem(ctx, &models.WardrobeItem{
			UserID:              user.ID,
			Name:                si.name,
			Category:            si.category,
			Type:                si.kind,
			Color:               si.color,
			Material:            si.material,
			Style:               "casual",
			SustainabilityScore: &score,
			Occasion:            si.occasion,
			Season:              si.season,
		})
		if err != nil {
			return fmt.Errorf("seed item %q: %w", si.name, err)
		}
		ids[i] = item.ID
	}

	for _, so := range sampleOutfits {
		items := make([]uint, len(so.items))
		for i, pos := range so.items {
			items[i] = ids[pos]
		}
		score := so.score
		if _, err := s.CreateOutfit(ctx, &models.Outfit{
			UserID:              user.ID,
			Name:                so.name,
			Items:               items,
			Occasion:            so.occasion,
			Season:              so.season,
			SustainabilityScore: &score,
		}); err != nil {
			return fmt.Errorf("seed outfit %q: %w", so.name, err)
		}
	}

	minT, maxT := 15, 25
	if _, err := s.SetWeatherPreference(ctx, &models.WeatherPreference{
		UserID:         user.ID,
		Location:       "New York",
		Unit:           models.UnitMetric,
		MinTemperature: &minT,
		MaxTemperature: &maxT,
	}); err != nil {
		return fmt.Errorf("seed weather preference: %w", err)
	}

	slog.Info("sample data seeded", "user_id", user.ID, "items", len(ids), "outfits", len(sampleOutfits))
	return nil
}
