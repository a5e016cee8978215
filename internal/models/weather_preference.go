package models

const (
	UnitMetric   = "metric"
	UnitImperial = "imperial"
)

// WeatherPreference is unique per user. The comfort band is advisory and is
// not read by the recommendation engine.
type WeatherPreference struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	UserID         uint   `gorm:"not null;uniqueIndex" json:"user_id"`
	Location       string `gorm:"size:200;not null" json:"location"`
	Unit           string `gorm:"size:10;not null;default:'metric'" json:"unit"`
	MinTemperature *int   `json:"min_temperature"`
	MaxTemperature *int   `json:"max_temperature"`
}

// MergeInto copies the supplied fields of p onto an existing record.
// Empty unit and nil comfort bounds keep the stored values.
func (p WeatherPreference) MergeInto(existing *WeatherPreference) {
	existing.Location = p.Location
	if p.Unit != "" {
		existing.Unit = p.Unit
	}
	if p.MinTemperature != nil {
		v := *p.MinTemperature
		existing.MinTemperature = &v
	}
	if p.MaxTemperature != nil {
		v := *p.MaxTemperature
		existing.MaxTemperature = &v
	}
}
