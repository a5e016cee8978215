package ai

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
)

const unknown = "unknown"

// GarmentAnalysis is what the vision model reports about a clothing photo.
type GarmentAnalysis struct {
	Category            string         `json:"category"`
	Type                string         `json:"type"`
	Color               string         `json:"color"`
	Material            string         `json:"material"`
	Style               string         `json:"style"`
	Occasion            string         `json:"occasion"`
	Season              string         `json:"season"`
	SustainabilityScore int            `json:"sustainability_score"`
	Attributes          map[string]any `json:"attributes"`
}

// IsDefault reports whether the analysis is the fallback answer.
func (g GarmentAnalysis) IsDefault() bool {
	return g.Attributes["detected_by"] == "default"
}

func DefaultGarmentAnalysis() GarmentAnalysis {
	return GarmentAnalysis{
		Category:            unknown,
		Type:                unknown,
		Color:               unknown,
		Material:            unknown,
		Style:               "casual",
		Occasion:            "casual",
		Season:              models.SeasonAll,
		SustainabilityScore: DefaultMaterialScore,
		Attributes: map[string]any{
			"detected_by":      "default",
			"confidence_level": "low",
		},
	}
}

const garmentSystemPrompt = `You are a fashion and textile expert. Analyze the clothing item in this image.
Return a JSON object with these exact fields:
{"category": one of "tops","bottoms","dresses","outerwear","shoes","accessories",
 "type": "specific garment type, e.g. t-shirt, jeans, blazer",
 "color": "primary color",
 "material": "most likely fabric",
 "style": "casual, formal, sporty, ...",
 "occasion": "casual, formal, work, party, sport or travel",
 "season": "summer, winter, spring, fall or all-season",
 "sustainability_score": 0-100 based on the material,
 "attributes": {"pattern": "...", "fit": "..."}}
Return ONLY the JSON object, no extra text.`

type garmentResult struct {
	Category            string         `json:"category"`
	Type                string         `json:"type"`
	Color               string         `json:"color"`
	Material            string         `json:"material"`
	Style               string         `json:"style"`
	Occasion            string         `json:"occasion"`
	Season              string         `json:"season"`
	SustainabilityScore modelScore     `json:"sustainability_score"`
	Attributes          map[string]any `json:"attributes"`
}

// AnalyzeGarment classifies a clothing photo. It never fails: any provider
// problem yields DefaultGarmentAnalysis.
func (c *Client) AnalyzeGarment(ctx context.Context, imageData string) GarmentAnalysis {
	if strings.TrimSpace(imageData) == "" {
		return DefaultGarmentAnalysis()
	}

	var parsed garmentResult
	provider, err := c.completeJSON(ctx, prompt{
		system: garmentSystemPrompt,
		user:   "Analyze this clothing item.",
		image:  imageData,
	}, &parsed)
	if err != nil {
		slog.Warn("garment analysis fell back to defaults", "error", err)
		return DefaultGarmentAnalysis()
	}

	result := DefaultGarmentAnalysis()
	category := models.NormalizeCategory(parsed.Category)
	if models.IsValidCategory(category) {
		result.Category = category
	}
	result.Type = orDefault(parsed.Type, result.Type)
	result.Color = orDefault(parsed.Color, result.Color)
	result.Material = orDefault(parsed.Material, result.Material)
	result.Style = orDefault(parsed.Style, result.Style)
	result.Occasion = orDefault(parsed.Occasion, result.Occasion)
	result.Season = orDefault(parsed.Season, result.Season)

	if score, ok := parsed.SustainabilityScore.Get(); ok {
		result.SustainabilityScore = clamp(score, 0, 100)
	} else {
		result.SustainabilityScore = MaterialScore(result.Material)
	}

	attrs := make(map[string]any, len(parsed.Attributes)+2)
	for k, v := range parsed.Attributes {
		attrs[k] = v
	}
	attrs["detected_by"] = provider
	attrs["confidence_level"] = "high"
	result.Attributes = attrs

	return result
}

func orDefault(v, fallback string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return fallback
	}
	return v
}
