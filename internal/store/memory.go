package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
)

// MemoryStore keeps every entity in process memory. Ids come from per-type
// counters and restart at 1 with the process. Each operation holds the lock
// for its whole duration; concurrent writers to one record follow
// last-write-wins.
type MemoryStore struct {
	mu sync.RWMutex

	users   map[uint]*models.User
	items   map[uint]*models.WardrobeItem
	outfits map[uint]*models.Outfit
	prefs   map[uint]*models.WeatherPreference // keyed by user id

	nextUserID   uint
	nextItemID   uint
	nextOutfitID uint
	nextPrefID   uint

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[uint]*models.User),
		items:        make(map[uint]*models.WardrobeItem),
		outfits:      make(map[uint]*models.Outfit),
		prefs:        make(map[uint]*models.WeatherPreference),
		nextUserID:   1,
		nextItemID:   1,
		nextOutfitID: 1,
		nextPrefID:   1,
		now:          time.Now,
	}
}

// --- Users ---

func (s *MemoryStore) GetUser(_ context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	if strings.TrimSpace(user.Username) == "" {
		return nil, apperr.Field("username", "is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, user.Username) {
			return nil, apperr.ErrConflict
		}
	}

	rec := *user
	rec.ID = s.nextUserID
	s.nextUserID++
	rec.CreatedAt = s.now()
	rec.UpdatedAt = rec.CreatedAt
	s.users[rec.ID] = &rec

	out := rec
	return &out, nil
}

func (s *MemoryStore) UpdateUser(_ context.Context, id uint, patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	patch.Apply(u)
	u.UpdatedAt = s.now()

	out := *u
	return &out, nil
}

// --- Wardrobe items ---

func (s *MemoryStore) ListWardrobeItems(_ context.Context, userID uint) ([]models.WardrobeItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.WardrobeItem, 0)
	for _, it := range s.items {
		if it.UserID == userID {
			out = append(out, it.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetWardrobeItem(_ context.Context, id uint) (*models.WardrobeItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := it.Clone()
	return &out, nil
}

func (s *MemoryStore) CreateWardrobeItem(_ context.Context, item *models.WardrobeItem) (*models.WardrobeItem, error) {
	rec := item.Clone()
	if err := checkWardrobeItem(&rec); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[rec.UserID]; !ok {
		return nil, unknownUser(rec.UserID)
	}

	rec.ID = s.nextItemID
	s.nextItemID++
	rec.CreatedAt = s.now()
	s.items[rec.ID] = &rec

	out := rec.Clone()
	return &out, nil
}

func (s *MemoryStore) UpdateWardrobeItem(_ context.Context, id uint, patch models.WardrobeItemPatch) (*models.WardrobeItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	next := it.Clone()
	patch.Apply(&next)
	if err := checkWardrobeItem(&next); err != nil {
		return nil, err
	}
	s.items[id] = &next

	out := next.Clone()
	return &out, nil
}

func (s *MemoryStore) DeleteWardrobeItem(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return nil
	}
	delete(s.items, id)

	for _, o := range s.outfits {
		if o.UserID == it.UserID && o.ContainsItem(id) {
			o.Items = withoutItem(o.Items, id)
			score := models.MeanItemScore(s.itemsByID(o.Items))
			o.SustainabilityScore = &score
		}
	}
	return nil
}

func (s *MemoryStore) itemsByID(ids []uint) []models.WardrobeItem {
	out := make([]models.WardrobeItem, 0, len(ids))
	for _, id := range ids {
		if it, ok := s.items[id]; ok {
			out = append(out, *it)
		}
	}
	return out
}

// --- Outfits ---

func (s *MemoryStore) ListOutfits(_ context.Context, userID uint) ([]models.Outfit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Outfit, 0)
	for _, o := range s.outfits {
		if o.UserID == userID {
			out = append(out, o.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetOutfit(_ context.Context, id uint) (*models.Outfit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.outfits[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := o.Clone()
	return &out, nil
}

func (s *MemoryStore) CreateOutfit(_ context.Context, outfit *models.Outfit) (*models.Outfit, error) {
	rec := outfit.Clone()
	if rec.Items == nil {
		rec.Items = []uint{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[rec.UserID]; !ok {
		return nil, unknownUser(rec.UserID)
	}
	if err := checkOutfit(&rec, s.itemOwner); err != nil {
		return nil, err
	}

	rec.ID = s.nextOutfitID
	s.nextOutfitID++
	rec.CreatedAt = s.now()
	s.outfits[rec.ID] = &rec

	out := rec.Clone()
	return &out, nil
}

func (s *MemoryStore) UpdateOutfit(_ context.Context, id uint, patch models.OutfitPatch) (*models.Outfit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.outfits[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	next := o.Clone()
	patch.Apply(&next)
	if err := checkOutfit(&next, s.itemOwner); err != nil {
		return nil, err
	}
	s.outfits[id] = &next

	out := next.Clone()
	return &out, nil
}

func (s *MemoryStore) DeleteOutfit(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.outfits, id)
	return nil
}

// itemOwner must be called with s.mu held.
func (s *MemoryStore) itemOwner(itemID uint) (uint, bool) {
	it, ok := s.items[itemID]
	if !ok {
		return 0, false
	}
	return it.UserID, true
}

// --- Weather preferences ---

func (s *MemoryStore) GetWeatherPreference(_ context.Context, userID uint) (*models.WeatherPreference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.prefs[userID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := *p
	return &out, nil
}

func (s *MemoryStore) SetWeatherPreference(_ context.Context, pref *models.WeatherPreference) (*models.WeatherPreference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[pref.UserID]; !ok {
		return nil, unknownUser(pref.UserID)
	}

	var next models.WeatherPreference
	if existing, ok := s.prefs[pref.UserID]; ok {
		next = *existing
		pref.MergeInto(&next)
	} else {
		next = *pref
		next.ID = 0
		if next.Unit == "" {
			next.Unit = models.UnitMetric
		}
	}
	if err := checkWeatherPreference(&next); err != nil {
		return nil, err
	}
	if next.ID == 0 {
		next.ID = s.nextPrefID
		s.nextPrefID++
	}
	s.prefs[next.UserID] = &next

	out := next
	return &out, nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }
