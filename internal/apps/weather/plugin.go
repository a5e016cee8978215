package weather

import (
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

type WeatherPlugin struct{}

func New() *WeatherPlugin {
	return &WeatherPlugin{}
}

func (p *WeatherPlugin) ID() string { return "weather" }

func (p *WeatherPlugin) Models() []interface{} {
	return []interface{}{&models.WeatherPreference{}}
}

func (p *WeatherPlugin) RegisterPublicRoutes(router fiber.Router, deps *apps.Deps) {
	handler := NewWeatherHandler(NewWeatherService(deps))

	router.Get("/weather", handler.Current)
	router.Get("/forecast", handler.Forecast)
}

func (p *WeatherPlugin) RegisterRoutes(router fiber.Router, deps *apps.Deps) {
	handler := NewWeatherHandler(NewWeatherService(deps))

	router.Get("/weather-preferences", handler.GetPreference)
	router.Post("/weather-preferences", handler.SetPreference)
}
