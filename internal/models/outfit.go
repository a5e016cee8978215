package models

import (
	"math"
	"time"
)

// MissingItemScore stands in for an unscored item when an outfit score is
// derived from its items.
const MissingItemScore = 60

// MeanItemScore is the rounded mean sustainability score of items, counting
// a missing score as MissingItemScore. No items score MissingItemScore.
func MeanItemScore(items []WardrobeItem) int {
	if len(items) == 0 {
		return MissingItemScore
	}
	var sum int
	for _, it := range items {
		if it.SustainabilityScore != nil {
			sum += *it.SustainabilityScore
		} else {
			sum += MissingItemScore
		}
	}
	return int(math.Round(float64(sum) / float64(len(items))))
}

type Outfit struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"not null;index" json:"user_id"`
	Name                string    `gorm:"size:200;not null" json:"name"`
	Items               []uint    `gorm:"type:text;serializer:json" json:"items"`
	Occasion            string    `gorm:"size:50" json:"occasion"`
	Season              string    `gorm:"size:20" json:"season"`
	SustainabilityScore *int      `json:"sustainability_score"`
	IsFavorite          bool      `gorm:"default:false" json:"is_favorite"`
	CreatedAt           time.Time `json:"created_at"`
}

func (o Outfit) Clone() Outfit {
	c := o
	if o.Items != nil {
		c.Items = append([]uint(nil), o.Items...)
	}
	if o.SustainabilityScore != nil {
		s := *o.SustainabilityScore
		c.SustainabilityScore = &s
	}
	return c
}

// ContainsItem reports whether id is one of the outfit's items.
func (o Outfit) ContainsItem(id uint) bool {
	for _, it := range o.Items {
		if it == id {
			return true
		}
	}
	return false
}

type OutfitPatch struct {
	Name                *string
	Items               []uint
	Occasion            *string
	Season              *string
	SustainabilityScore *int
	IsFavorite          *bool
}

func (p OutfitPatch) Apply(o *Outfit) {
	if p.Name != nil {
		o.Name = *p.Name
	}
	if p.Items != nil {
		o.Items = append([]uint(nil), p.Items...)
	}
	if p.Occasion != nil {
		o.Occasion = *p.Occasion
	}
	if p.Season != nil {
		o.Season = *p.Season
	}
	if p.SustainabilityScore != nil {
		s := *p.SustainabilityScore
		o.SustainabilityScore = &s
	}
	if p.IsFavorite != nil {
		o.IsFavorite = *p.IsFavorite
	}
}
