package wardrobe

import "github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/ai"

// --- DTOs ---

type CreateItemRequest struct {
	Name                string         `json:"name" validate:"required,max=200"`
	Category            string         `json:"category" validate:"omitempty,max=20"`
	Type                string         `json:"type" validate:"max=100"`
	Color               string         `json:"color" validate:"max=50"`
	Material            string         `json:"material" validate:"max=100"`
	Style               string         `json:"style" validate:"max=50"`
	ImageURL            string         `json:"image_url"`
	ImageData           string         `json:"image_data"`
	SustainabilityScore *int           `json:"sustainability_score" validate:"omitempty,min=0,max=100"`
	Attributes          map[string]any `json:"attributes"`
	Occasion            string         `json:"occasion" validate:"max=50"`
	Season              string         `json:"season" validate:"max=20"`
}

type UpdateItemRequest struct {
	Name                *string        `json:"name" validate:"omitempty,min=1,max=200"`
	Category            *string        `json:"category" validate:"omitempty,max=20"`
	Type                *string        `json:"type" validate:"omitempty,max=100"`
	Color               *string        `json:"color" validate:"omitempty,max=50"`
	Material            *string        `json:"material" validate:"omitempty,max=100"`
	Style               *string        `json:"style" validate:"omitempty,max=50"`
	ImageURL            *string        `json:"image_url"`
	SustainabilityScore *int           `json:"sustainability_score" validate:"omitempty,min=0,max=100"`
	Attributes          map[string]any `json:"attributes"`
	Occasion            *string        `json:"occasion" validate:"omitempty,max=50"`
	Season              *string        `json:"season" validate:"omitempty,max=20"`
}

type AnalyzeRequest struct {
	ImageData string `json:"image_data" validate:"required"`
}

type AnalyzeResponse struct {
	ai.GarmentAnalysis
	Fallback bool `json:"fallback"`
}
