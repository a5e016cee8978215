package models

import (
	"strings"
	"time"
)

const (
	CategoryTops        = "tops"
	CategoryBottoms     = "bottoms"
	CategoryDresses     = "dresses"
	CategoryOuterwear   = "outerwear"
	CategoryShoes       = "shoes"
	CategoryAccessories = "accessories"
)

// Categories is the closed set of wardrobe categories, in display order.
var Categories = []string{
	CategoryTops,
	CategoryBottoms,
	CategoryDresses,
	CategoryOuterwear,
	CategoryShoes,
	CategoryAccessories,
}

const SeasonAll = "all-season"

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// NormalizeCategory lower-cases and trims a category name.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

type WardrobeItem struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	UserID              uint           `gorm:"not null;index" json:"user_id"`
	Name                string         `gorm:"size:200;not null" json:"name"`
	Category            string         `gorm:"size:20;not null;index" json:"category"`
	Type                string         `gorm:"size:100" json:"type"`
	Color               string         `gorm:"size:50" json:"color"`
	Material            string         `gorm:"size:100" json:"material"`
	Style               string         `gorm:"size:50" json:"style"`
	ImageURL            string         `gorm:"type:text" json:"image_url"`
	ImageData           string         `gorm:"type:text" json:"image_data,omitempty"`
	SustainabilityScore *int           `json:"sustainability_score"`
	Attributes          map[string]any `gorm:"type:text;serializer:json" json:"attributes"`
	Occasion            string         `gorm:"size:50" json:"occasion"`
	Season              string         `gorm:"size:20" json:"season"`
	LastWorn            *time.Time     `json:"last_worn"`
	CreatedAt           time.Time      `json:"created_at"`
}

// Clone returns a copy that shares no mutable state with the receiver.
func (w WardrobeItem) Clone() WardrobeItem {
	c := w
	if w.SustainabilityScore != nil {
		s := *w.SustainabilityScore
		c.SustainabilityScore = &s
	}
	if w.LastWorn != nil {
		t := *w.LastWorn
		c.LastWorn = &t
	}
	if w.Attributes != nil {
		c.Attributes = make(map[string]any, len(w.Attributes))
		for k, v := range w.Attributes {
			c.Attributes[k] = v
		}
	}
	return c
}

// WardrobeItemPatch is a shallow partial update: every non-nil field
// replaces the stored value.
type WardrobeItemPatch struct {
	Name                *string
	Category            *string
	Type                *string
	Color               *string
	Material            *string
	Style               *string
	ImageURL            *string
	ImageData           *string
	SustainabilityScore *int
	Attributes          map[string]any
	Occasion            *string
	Season              *string
	LastWorn            *time.Time
}

func (p WardrobeItemPatch) Apply(w *WardrobeItem) {
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.Category != nil {
		w.Category = *p.Category
	}
	if p.Type != nil {
		w.Type = *p.Type
	}
	if p.Color != nil {
		w.Color = *p.Color
	}
	if p.Material != nil {
		w.Material = *p.Material
	}
	if p.Style != nil {
		w.Style = *p.Style
	}
	if p.ImageURL != nil {
		w.ImageURL = *p.ImageURL
	}
	if p.ImageData != nil {
		w.ImageData = *p.ImageData
	}
	if p.SustainabilityScore != nil {
		s := *p.SustainabilityScore
		w.SustainabilityScore = &s
	}
	if p.Attributes != nil {
		w.Attributes = p.Attributes
	}
	if p.Occasion != nil {
		w.Occasion = *p.Occasion
	}
	if p.Season != nil {
		w.Season = *p.Season
	}
	if p.LastWorn != nil {
		t := *p.LastWorn
		w.LastWorn = &t
	}
}
