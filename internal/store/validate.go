package store

import (
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
)

var categoryList = strings.Join(models.Categories, ", ")

func validScore(score *int) bool {
	return score == nil || (*score >= 0 && *score <= 100)
}

// checkWardrobeItem validates an item in place and normalizes its category.
func checkWardrobeItem(item *models.WardrobeItem) error {
	fields := map[string]string{}
	if strings.TrimSpace(item.Name) == "" {
		fields["name"] = "is required"
	}
	category := models.NormalizeCategory(item.Category)
	if models.IsValidCategory(category) {
		item.Category = category
	} else {
		fields["category"] = "must be one of " + categoryList
	}
	if !validScore(item.SustainabilityScore) {
		fields["sustainability_score"] = "must be between 0 and 100"
	}
	if len(fields) > 0 {
		return apperr.NewValidationError(fields)
	}
	return nil
}

// checkOutfit validates an outfit. owner resolves the owning user of a
// wardrobe item id and reports false for unknown ids.
func checkOutfit(outfit *models.Outfit, owner func(itemID uint) (uint, bool)) error {
	fields := map[string]string{}
	if strings.TrimSpace(outfit.Name) == "" {
		fields["name"] = "is required"
	}
	if !validScore(outfit.SustainabilityScore) {
		fields["sustainability_score"] = "must be between 0 and 100"
	}
	for _, id := range outfit.Items {
		userID, ok := owner(id)
		if !ok || userID != outfit.UserID {
			fields["items"] = fmt.Sprintf("item %d is not in the user's wardrobe", id)
			break
		}
	}
	if len(fields) > 0 {
		return apperr.NewValidationError(fields)
	}
	return nil
}

func checkWeatherPreference(pref *models.WeatherPreference) error {
	fields := map[string]string{}
	pref.Location = strings.TrimSpace(pref.Location)
	if pref.Location == "" {
		fields["location"] = "is required"
	}
	switch pref.Unit {
	case models.UnitMetric, models.UnitImperial:
	default:
		fields["unit"] = "must be metric or imperial"
	}
	if pref.MinTemperature != nil && pref.MaxTemperature != nil && *pref.MinTemperature > *pref.MaxTemperature {
		fields["min_temperature"] = "must not exceed max_temperature"
	}
	if len(fields) > 0 {
		return apperr.NewValidationError(fields)
	}
	return nil
}

func unknownUser(userID uint) error {
	return apperr.Field("user_id", fmt.Sprintf("user %d does not exist", userID))
}

func withoutItem(ids []uint, id uint) []uint {
	out := make([]uint, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
