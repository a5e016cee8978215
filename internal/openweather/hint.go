package openweather

// OutfitHint suggests a clothing combination for a temperature in °C.
func OutfitHint(temperature int) string {
	switch {
	case temperature >= 30:
		return "Light t-shirt + shorts + sun hat"
	case temperature >= 25:
		return "T-shirt + light pants + sun protection"
	case temperature >= 20:
		return "Light sweater + jeans + sneakers"
	case temperature >= 15:
		return "Sweater + jeans + light jacket"
	case temperature >= 10:
		return "Long sleeve + jeans + jacket"
	case temperature >= 5:
		return "Sweater + heavy jacket + scarf"
	case temperature >= 0:
		return "Sweater + heavy coat + scarf + gloves"
	default:
		return "Heavy layers + winter coat + hat + gloves + scarf"
	}
}
