package sustainability

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/ai"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
)

const (
	// materials below this share of the wardrobe get no replacement tip
	minTipPercentage = 5
	maxMaterialTips  = 2
)

type SustainabilityService struct {
	deps *apps.Deps
}

func NewSustainabilityService(deps *apps.Deps) *SustainabilityService {
	return &SustainabilityService{deps: deps}
}

func (s *SustainabilityService) AnalyzeMaterial(ctx context.Context, material string) ai.MaterialAnalysis {
	return s.deps.Materials.AnalyzeMaterial(ctx, material)
}

func (s *SustainabilityService) Report(ctx context.Context, userID uint) (*ReportResponse, error) {
	items, err := s.deps.Store.ListWardrobeItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildReport(items), nil
}

// BuildReport summarizes a wardrobe. Unscored items count as zero towards
// the overall score; items without a material are left out of the stats
// but still count towards each material's percentage.
func BuildReport(items []models.WardrobeItem) *ReportResponse {
	report := &ReportResponse{
		ItemCount: len(items),
		Materials: []MaterialStat{},
	}
	if len(items) > 0 {
		total := 0
		for _, it := range items {
			if it.SustainabilityScore != nil {
				total += *it.SustainabilityScore
			}
		}
		report.OverallScore = roundDiv(total, len(items))
		report.Materials = materialStats(items)
	}
	report.Rating = rating(report.OverallScore)
	report.Tips = tips(report.Materials)
	return report
}

func materialStats(items []models.WardrobeItem) []MaterialStat {
	counts := map[string]int{}
	for _, it := range items {
		m := strings.ToLower(strings.TrimSpace(it.Material))
		if m != "" {
			counts[m]++
		}
	}

	stats := make([]MaterialStat, 0, len(counts))
	for m, n := range counts {
		stats = append(stats, MaterialStat{
			Material:   m,
			Count:      n,
			Percentage: roundDiv(n*100, len(items)),
			Score:      ai.MaterialScore(m),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Material < stats[j].Material
	})
	return stats
}

func tips(stats []MaterialStat) []string {
	candidates := make([]MaterialStat, 0, len(stats))
	for _, st := range stats {
		if st.Percentage > minTipPercentage {
			candidates = append(candidates, st)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score < candidates[j].Score
	})
	if len(candidates) > maxMaterialTips {
		candidates = candidates[:maxMaterialTips]
	}

	out := make([]string, 0, len(candidates)+len(generalTips))
	for _, st := range candidates {
		out = append(out, fmt.Sprintf("Consider alternatives to %s which has a lower sustainability score.", st.Material))
	}
	return append(out, generalTips...)
}

func rating(score int) string {
	switch {
	case score >= 80:
		return RatingExcellent
	case score >= 60:
		return RatingGood
	default:
		return RatingNeedsImprovement
	}
}

func roundDiv(a, b int) int {
	return int(math.Round(float64(a) / float64(b)))
}
