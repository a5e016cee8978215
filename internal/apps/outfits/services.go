package outfits

import (
	"context"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/events"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/recommend"
)

type OutfitService struct {
	deps *apps.Deps
}

func NewOutfitService(deps *apps.Deps) *OutfitService {
	return &OutfitService{deps: deps}
}

func (s *OutfitService) List(ctx context.Context, userID uint) ([]models.Outfit, error) {
	return s.deps.Store.ListOutfits(ctx, userID)
}

func (s *OutfitService) Get(ctx context.Context, userID, id uint) (*models.Outfit, error) {
	outfit, err := s.deps.Store.GetOutfit(ctx, id)
	if err != nil {
		return nil, err
	}
	if outfit.UserID != userID {
		return nil, fmt.Errorf("%w: outfit %d belongs to another user", apperr.ErrForbidden, id)
	}
	return outfit, nil
}

// Create stores an outfit. Without an explicit score it gets the rounded mean
// of its items' scores, counting unscored items as 60.
func (s *OutfitService) Create(ctx context.Context, userID uint, req CreateOutfitRequest) (*models.Outfit, error) {
	outfit := &models.Outfit{
		UserID:              userID,
		Name:                strings.TrimSpace(req.Name),
		Items:               req.Items,
		Occasion:            req.Occasion,
		Season:              req.Season,
		SustainabilityScore: req.SustainabilityScore,
		IsFavorite:          req.IsFavorite,
	}
	if outfit.SustainabilityScore == nil {
		score, err := s.itemScore(ctx, userID, req.Items)
		if err != nil {
			return nil, err
		}
		outfit.SustainabilityScore = &score
	}

	created, err := s.deps.Store.CreateOutfit(ctx, outfit)
	if err != nil {
		return nil, err
	}
	s.deps.Publish(ctx, events.New(events.OutfitCreated, userID, created.ID, map[string]any{
		"items": created.Items,
	}))
	return created, nil
}

func (s *OutfitService) Update(ctx context.Context, userID, id uint, req UpdateOutfitRequest) (*models.Outfit, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	patch := models.OutfitPatch{
		Name:                req.Name,
		Items:               req.Items,
		Occasion:            req.Occasion,
		Season:              req.Season,
		SustainabilityScore: req.SustainabilityScore,
		IsFavorite:          req.IsFavorite,
	}
	if patch.Items != nil && patch.SustainabilityScore == nil {
		score, err := s.itemScore(ctx, userID, patch.Items)
		if err != nil {
			return nil, err
		}
		patch.SustainabilityScore = &score
	}
	return s.deps.Store.UpdateOutfit(ctx, id, patch)
}

func (s *OutfitService) ToggleFavorite(ctx context.Context, userID, id uint) (*models.Outfit, error) {
	outfit, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	favorite := !outfit.IsFavorite
	return s.deps.Store.UpdateOutfit(ctx, id, models.OutfitPatch{IsFavorite: &favorite})
}

func (s *OutfitService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.deps.Store.DeleteOutfit(ctx, id); err != nil {
		return err
	}
	s.deps.Publish(ctx, events.New(events.OutfitDeleted, userID, id, nil))
	return nil
}

func (s *OutfitService) Recommendations(ctx context.Context, userID uint, occasion string) (*recommend.Result, error) {
	return s.deps.Recommender.Recommend(ctx, userID, occasion)
}

// itemScore scores the given ids against the user's wardrobe. Ids the user
// does not own are skipped here; the store rejects them on write.
func (s *OutfitService) itemScore(ctx context.Context, userID uint, ids []uint) (int, error) {
	items, err := s.deps.Store.ListWardrobeItems(ctx, userID)
	if err != nil {
		return 0, err
	}
	byID := make(map[uint]models.WardrobeItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	picked := make([]models.WardrobeItem, 0, len(ids))
	for _, id := range ids {
		if it, ok := byID[id]; ok {
			picked = append(picked, it)
		}
	}
	return recommend.MeanScore(picked), nil
}
