package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
)

const outfitSystemPrompt = `You are a personal stylist focused on sustainable fashion.
Build up to 3 outfits using ONLY the wardrobe item ids you are given. Consider the weather and the occasion.
Return a JSON object shaped exactly like:
{"outfits": [{"name": "...", "items": [item ids], "sustainability_score": 0-100, "season": "...", "rationale": "..."}]}
Return ONLY the JSON object, no extra text.`

type promptItem struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Type     string `json:"type,omitempty"`
	Color    string `json:"color,omitempty"`
	Material string `json:"material,omitempty"`
	Season   string `json:"season,omitempty"`
	Score    *int   `json:"sustainability_score,omitempty"`
}

type outfitsResult struct {
	Outfits []struct {
		Name                string     `json:"name"`
		Items               []uint     `json:"items"`
		SustainabilityScore modelScore `json:"sustainability_score"`
		Season              string     `json:"season"`
		Rationale           string     `json:"rationale"`
	} `json:"outfits"`
}

// SuggestOutfits asks the text model for outfit candidates. It returns an
// empty slice on any failure; callers decide how to fall back.
func (c *Client) SuggestOutfits(ctx context.Context, items []models.WardrobeItem, weather *models.WeatherSnapshot, occasion string) []models.Recommendation {
	if len(items) == 0 {
		return []models.Recommendation{}
	}

	wardrobe := make([]promptItem, len(items))
	for i, it := range items {
		wardrobe[i] = promptItem{
			ID: it.ID, Name: it.Name, Category: it.Category, Type: it.Type,
			Color: it.Color, Material: it.Material, Season: it.Season, Score: it.SustainabilityScore,
		}
	}
	wardrobeJSON, err := json.Marshal(wardrobe)
	if err != nil {
		return []models.Recommendation{}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Occasion: %s\n", occasion)
	if weather != nil {
		fmt.Fprintf(&sb, "Weather in %s: %d°C, %s, humidity %d%%, wind %.1f m/s\n",
			weather.Location, weather.Temperature, weather.Description, weather.Humidity, weather.WindSpeed)
	}
	fmt.Fprintf(&sb, "Wardrobe: %s", wardrobeJSON)

	var parsed outfitsResult
	if _, err := c.completeJSON(ctx, prompt{system: outfitSystemPrompt, user: sb.String()}, &parsed); err != nil {
		slog.Warn("outfit suggestion unavailable", "error", err)
		return []models.Recommendation{}
	}

	out := make([]models.Recommendation, 0, len(parsed.Outfits))
	for _, o := range parsed.Outfits {
		score, ok := o.SustainabilityScore.Get()
		if !ok {
			score = DefaultMaterialScore
		}
		out = append(out, models.Recommendation{
			Name:                strings.TrimSpace(o.Name),
			Items:               o.Items,
			SustainabilityScore: score,
			Occasion:            occasion,
			Season:              o.Season,
			Rationale:           o.Rationale,
			Source:              models.SourceAI,
		})
	}
	return out
}
