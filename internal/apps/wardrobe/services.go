package wardrobe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/ai"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/events"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
)

type WardrobeService struct {
	deps *apps.Deps
	now  func() time.Time
}

func NewWardrobeService(deps *apps.Deps) *WardrobeService {
	return &WardrobeService{deps: deps, now: time.Now}
}

func (s *WardrobeService) List(ctx context.Context, userID uint) ([]models.WardrobeItem, error) {
	return s.deps.Store.ListWardrobeItems(ctx, userID)
}

// Get returns the item if userID owns it.
func (s *WardrobeService) Get(ctx context.Context, userID, id uint) (*models.WardrobeItem, error) {
	item, err := s.deps.Store.GetWardrobeItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.UserID != userID {
		return nil, fmt.Errorf("%w: wardrobe item %d belongs to another user", apperr.ErrForbidden, id)
	}
	return item, nil
}

// Create stores a new item. When an image is attached the garment analysis
// fills every field the request left empty and always sets the score; the
// analysis never fails the request, its fallback answer is merged the same way.
func (s *WardrobeService) Create(ctx context.Context, userID uint, req CreateItemRequest) (*models.WardrobeItem, error) {
	item := &models.WardrobeItem{
		UserID:              userID,
		Name:                strings.TrimSpace(req.Name),
		Category:            models.NormalizeCategory(req.Category),
		Type:                req.Type,
		Color:               req.Color,
		Material:            req.Material,
		Style:               req.Style,
		ImageURL:            req.ImageURL,
		ImageData:           req.ImageData,
		SustainabilityScore: req.SustainabilityScore,
		Attributes:          req.Attributes,
		Occasion:            req.Occasion,
		Season:              req.Season,
	}

	if req.ImageData != "" && s.deps.Garments != nil {
		mergeAnalysis(item, s.deps.Garments.AnalyzeGarment(ctx, req.ImageData))
	}
	if item.SustainabilityScore == nil && item.Material != "" {
		score := ai.MaterialScore(item.Material)
		item.SustainabilityScore = &score
	}
	if item.Season == "" {
		item.Season = models.SeasonAll
	}

	created, err := s.deps.Store.CreateWardrobeItem(ctx, item)
	if err != nil {
		return nil, err
	}

	s.deps.Publish(ctx, events.New(events.WardrobeItemCreated, userID, created.ID, map[string]any{
		"category": created.Category,
		"material": created.Material,
	}))
	return created, nil
}

func mergeAnalysis(item *models.WardrobeItem, a ai.GarmentAnalysis) {
	if item.Category == "" && models.IsValidCategory(a.Category) {
		item.Category = a.Category
	}
	item.Type = orElse(item.Type, a.Type)
	item.Color = orElse(item.Color, a.Color)
	item.Material = orElse(item.Material, a.Material)
	item.Style = orElse(item.Style, a.Style)
	item.Occasion = orElse(item.Occasion, a.Occasion)
	item.Season = orElse(item.Season, a.Season)

	score := a.SustainabilityScore
	item.SustainabilityScore = &score

	attrs := make(map[string]any, len(a.Attributes)+len(item.Attributes))
	for k, v := range a.Attributes {
		attrs[k] = v
	}
	for k, v := range item.Attributes {
		attrs[k] = v
	}
	item.Attributes = attrs
}

func orElse(v, fallback string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func (s *WardrobeService) Update(ctx context.Context, userID, id uint, req UpdateItemRequest) (*models.WardrobeItem, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	patch := models.WardrobeItemPatch{
		Name:                req.Name,
		Category:            req.Category,
		Type:                req.Type,
		Color:               req.Color,
		Material:            req.Material,
		Style:               req.Style,
		ImageURL:            req.ImageURL,
		SustainabilityScore: req.SustainabilityScore,
		Attributes:          req.Attributes,
		Occasion:            req.Occasion,
		Season:              req.Season,
	}
	if patch.Category != nil {
		c := models.NormalizeCategory(*patch.Category)
		patch.Category = &c
	}
	return s.deps.Store.UpdateWardrobeItem(ctx, id, patch)
}

// Delete removes an owned item. A missing item is reported as not found so
// the caller can tell a stale id from a foreign one.
func (s *WardrobeService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.deps.Store.DeleteWardrobeItem(ctx, id); err != nil {
		return err
	}
	s.deps.Publish(ctx, events.New(events.WardrobeItemDeleted, userID, id, nil))
	return nil
}

func (s *WardrobeService) MarkWorn(ctx context.Context, userID, id uint) (*models.WardrobeItem, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	item, err := s.deps.Store.UpdateWardrobeItem(ctx, id, models.WardrobeItemPatch{LastWorn: &now})
	if err != nil {
		return nil, err
	}
	s.deps.Publish(ctx, events.New(events.WardrobeItemWorn, userID, id, nil))
	return item, nil
}

func (s *WardrobeService) Analyze(ctx context.Context, imageData string) AnalyzeResponse {
	if s.deps.Garments == nil {
		return AnalyzeResponse{GarmentAnalysis: ai.DefaultGarmentAnalysis(), Fallback: true}
	}
	a := s.deps.Garments.AnalyzeGarment(ctx, imageData)
	return AnalyzeResponse{GarmentAnalysis: a, Fallback: a.IsDefault()}
}
