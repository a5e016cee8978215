package sustainability

type MaterialStat struct {
	Material   string `json:"material"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
	Score      int    `json:"sustainability_score"`
}

type ReportResponse struct {
	OverallScore int            `json:"overall_score"`
	Rating       string         `json:"rating"`
	ItemCount    int            `json:"item_count"`
	Materials    []MaterialStat `json:"materials"`
	Tips         []string       `json:"tips"`
}

const (
	RatingExcellent        = "excellent"
	RatingGood             = "good"
	RatingNeedsImprovement = "needs improvement"
)

var generalTips = []string{
	"Wash clothes at lower temperatures to reduce energy consumption.",
	"Repair items instead of replacing them to extend their lifecycle.",
	"Donate or recycle clothing you no longer wear.",
	"Choose quality over quantity for new purchases.",
	"Look for certifications like GOTS, Oeko-Tex, or Fair Trade when shopping.",
}
