package models

import "time"

// WeatherSnapshot is the current conditions for one location, in metric units.
type WeatherSnapshot struct {
	Location    string    `json:"location"`
	Temperature int       `json:"temperature"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	FeelsLike   int       `json:"feels_like"`
	Condition   string    `json:"condition"`
	TimeOfDay   string    `json:"time_of_day"`
	Timestamp   time.Time `json:"timestamp"`
}

// ForecastDay aggregates the 3-hourly forecast entries of one UTC date.
type ForecastDay struct {
	Date        string `json:"date"`
	Day         string `json:"day"`
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

const (
	SourceAI    = "ai"
	SourceRules = "rules"
)

// Recommendation is a candidate outfit produced by the recommendation engine.
// It is not persisted until the user saves it as an Outfit.
type Recommendation struct {
	Name                string `json:"name"`
	Items               []uint `json:"items"`
	SustainabilityScore int    `json:"sustainability_score"`
	Occasion            string `json:"occasion"`
	Season              string `json:"season"`
	Rationale           string `json:"rationale"`
	Source              string `json:"source"`
}
