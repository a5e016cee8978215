package outfits

// Occasions accepted by the recommendations endpoint.
var Occasions = []string{"casual", "formal", "work", "party", "sport", "travel"}

const DefaultOccasion = "casual"

// --- DTOs ---

type CreateOutfitRequest struct {
	Name                string `json:"name" validate:"required,max=200"`
	Items               []uint `json:"items" validate:"required,min=1,dive,gt=0"`
	Occasion            string `json:"occasion" validate:"max=50"`
	Season              string `json:"season" validate:"max=20"`
	SustainabilityScore *int   `json:"sustainability_score" validate:"omitempty,min=0,max=100"`
	IsFavorite          bool   `json:"is_favorite"`
}

type UpdateOutfitRequest struct {
	Name                *string `json:"name" validate:"omitempty,min=1,max=200"`
	Items               []uint  `json:"items" validate:"omitempty,min=1,dive,gt=0"`
	Occasion            *string `json:"occasion" validate:"omitempty,max=50"`
	Season              *string `json:"season" validate:"omitempty,max=20"`
	SustainabilityScore *int    `json:"sustainability_score" validate:"omitempty,min=0,max=100"`
	IsFavorite          *bool   `json:"is_favorite"`
}

type RecommendationsQuery struct {
	Occasion string `query:"occasion" json:"occasion" validate:"oneof=casual formal work party sport travel"`
}
