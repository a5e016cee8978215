package weather

import "github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"

type WeatherResponse struct {
	*models.WeatherSnapshot
	OutfitHint string `json:"outfit_hint"`
}

type ForecastResponse struct {
	Location string               `json:"location"`
	Days     []models.ForecastDay `json:"days"`
}

type SetPreferenceRequest struct {
	Location       string `json:"location" validate:"required,max=200"`
	Unit           string `json:"unit" validate:"omitempty,oneof=metric imperial"`
	MinTemperature *int   `json:"min_temperature" validate:"omitempty,min=-60,max=60"`
	MaxTemperature *int   `json:"max_temperature" validate:"omitempty,min=-60,max=60"`
}
