package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestWardrobeItemPatch_ShallowMerge(t *testing.T) {
	item := WardrobeItem{
		ID:                  4,
		UserID:              1,
		Name:                "Blue Denim Jeans",
		Category:            CategoryBottoms,
		Color:               "blue",
		Material:            "denim",
		SustainabilityScore: intPtr(72),
		Attributes:          map[string]any{"fit": "slim"},
	}

	worn := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	WardrobeItemPatch{
		Color:      strPtr("black"),
		Attributes: map[string]any{"fit": "relaxed"},
		LastWorn:   &worn,
	}.Apply(&item)

	assert.Equal(t, "black", item.Color)
	assert.Equal(t, "denim", item.Material)
	assert.Equal(t, "Blue Denim Jeans", item.Name)
	assert.Equal(t, 72, *item.SustainabilityScore)
	assert.Equal(t, map[string]any{"fit": "relaxed"}, item.Attributes)
	assert.Equal(t, worn, *item.LastWorn)
	assert.Equal(t, uint(4), item.ID)
}

func TestWardrobeItem_CloneIsIndependent(t *testing.T) {
	item := WardrobeItem{SustainabilityScore: intPtr(50), Attributes: map[string]any{"a": 1}}
	c := item.Clone()
	*c.SustainabilityScore = 90
	c.Attributes["a"] = 2

	assert.Equal(t, 50, *item.SustainabilityScore)
	assert.Equal(t, 1, item.Attributes["a"])
}

func TestOutfitPatch_ItemsReplaceWholeList(t *testing.T) {
	o := Outfit{Items: []uint{1, 2, 3}, IsFavorite: false}
	fav := true
	OutfitPatch{Items: []uint{3}, IsFavorite: &fav}.Apply(&o)

	assert.Equal(t, []uint{3}, o.Items)
	assert.True(t, o.IsFavorite)
	assert.True(t, o.ContainsItem(3))
	assert.False(t, o.ContainsItem(1))
}

func TestWeatherPreference_MergeInto(t *testing.T) {
	existing := WeatherPreference{ID: 7, UserID: 1, Location: "New York", Unit: UnitMetric, MinTemperature: intPtr(15)}
	WeatherPreference{Location: "Oslo"}.MergeInto(&existing)

	assert.Equal(t, uint(7), existing.ID)
	assert.Equal(t, "Oslo", existing.Location)
	assert.Equal(t, UnitMetric, existing.Unit)
	assert.Equal(t, 15, *existing.MinTemperature)
}

func TestCategories(t *testing.T) {
	assert.True(t, IsValidCategory("outerwear"))
	assert.False(t, IsValidCategory("hats"))
	assert.Equal(t, "tops", NormalizeCategory("  Tops "))
}
