package recommend

import (
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
)

const (
	hotThreshold    = 25
	coldThreshold   = 10
	springThreshold = 15
)

type band struct {
	season    string
	label     string
	extra     string // third category layered on top of tops and bottoms
	rationale string
}

func selectBand(temperature int) band {
	switch {
	case temperature >= hotThreshold:
		return band{
			season:    "summer",
			label:     "Summer",
			rationale: fmt.Sprintf("Light outfit suitable for hot weather (%d°C)", temperature),
		}
	case temperature < coldThreshold:
		return band{
			season:    "winter",
			label:     "Winter",
			extra:     models.CategoryOuterwear,
			rationale: fmt.Sprintf("Warm layered outfit for cold weather (%d°C)", temperature),
		}
	default:
		season, label := "fall", "Fall"
		if temperature >= springThreshold {
			season, label = "spring", "Spring"
		}
		return band{
			season:    season,
			label:     label,
			extra:     models.CategoryAccessories,
			rationale: fmt.Sprintf("Comfortable outfit for mild %s weather (%d°C)", season, temperature),
		}
	}
}

// Fallback pairs the i-th top with the i-th bottom, plus the i-th outerwear
// piece when cold or accessory when mild. Only items of the band's season or
// all-season items take part. Pairing is positional.
func Fallback(items []models.WardrobeItem, temperature int, occasion string) []models.Recommendation {
	b := selectBand(temperature)

	byCategory := make(map[string][]models.WardrobeItem)
	for _, it := range items {
		season := strings.ToLower(strings.TrimSpace(it.Season))
		if season != b.season && season != models.SeasonAll {
			continue
		}
		byCategory[it.Category] = append(byCategory[it.Category], it)
	}

	tops := byCategory[models.CategoryTops]
	bottoms := byCategory[models.CategoryBottoms]
	var extras []models.WardrobeItem
	if b.extra != "" {
		extras = byCategory[b.extra]
	}

	out := []models.Recommendation{}
	for i := 0; i < maxOutfits; i++ {
		var picked []models.WardrobeItem
		for _, group := range [][]models.WardrobeItem{tops, bottoms, extras} {
			if i < len(group) {
				picked = append(picked, group[i])
			}
		}
		if len(picked) < minOutfitItems {
			continue
		}

		ids := make([]uint, len(picked))
		for j, it := range picked {
			ids[j] = it.ID
		}
		out = append(out, models.Recommendation{
			Name:                fmt.Sprintf("%s %s Outfit %d", b.label, occasion, i+1),
			Items:               ids,
			SustainabilityScore: MeanScore(picked),
			Occasion:            occasion,
			Season:              b.season,
			Rationale:           b.rationale,
			Source:              models.SourceRules,
		})
	}
	return out
}

// MeanScore is the rounded mean sustainability score of items, counting a
// missing score as 60. It returns 60 for no items.
func MeanScore(items []models.WardrobeItem) int {
	return models.MeanItemScore(items)
}
