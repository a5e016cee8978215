package recommend_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/recommend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetWeatherPreference(ctx context.Context, userID uint) (*models.WeatherPreference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeatherPreference), args.Error(1)
}

func (m *MockStore) ListWardrobeItems(ctx context.Context, userID uint) ([]models.WardrobeItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WardrobeItem), args.Error(1)
}

type MockWeather struct {
	mock.Mock
}

func (m *MockWeather) Current(ctx context.Context, location string) (*models.WeatherSnapshot, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeatherSnapshot), args.Error(1)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) SuggestOutfits(ctx context.Context, items []models.WardrobeItem, weather *models.WeatherSnapshot, occasion string) []models.Recommendation {
	args := m.Called(ctx, items, weather, occasion)
	return args.Get(0).([]models.Recommendation)
}

func score(v int) *int { return &v }

func item(id uint, category, season string, s *int) models.WardrobeItem {
	return models.WardrobeItem{ID: id, UserID: 1, Name: category, Category: category, Season: season, SustainabilityScore: s}
}

func scenarioAWardrobe() []models.WardrobeItem {
	return []models.WardrobeItem{
		item(1, models.CategoryTops, "summer", score(80)),
		item(2, models.CategoryTops, "summer", score(60)),
		item(3, models.CategoryBottoms, "summer", score(70)),
		item(4, models.CategoryBottoms, "all-season", score(90)),
	}
}

func TestRecommend_FallbackWhenGeneratorEmpty(t *testing.T) {
	ctx := context.Background()
	st, wx, gen := new(MockStore), new(MockWeather), new(MockGenerator)
	items := scenarioAWardrobe()
	weather := &models.WeatherSnapshot{Location: "Madrid", Temperature: 30}

	st.On("GetWeatherPreference", ctx, uint(1)).Return(&models.WeatherPreference{UserID: 1, Location: "Madrid"}, nil).Once()
	wx.On("Current", ctx, "Madrid").Return(weather, nil).Once()
	st.On("ListWardrobeItems", ctx, uint(1)).Return(items, nil).Once()
	gen.On("SuggestOutfits", ctx, items, weather, "casual").Return([]models.Recommendation{}).Once()

	result, err := recommend.NewEngine(st, wx, gen, "").Recommend(ctx, 1, "casual")
	require.NoError(t, err)

	assert.Equal(t, "Madrid", result.Location)
	require.Len(t, result.Recommendations, 2)
	assert.Equal(t, []uint{1, 3}, result.Recommendations[0].Items)
	assert.Equal(t, 75, result.Recommendations[0].SustainabilityScore)
	assert.Equal(t, []uint{2, 4}, result.Recommendations[1].Items)
	assert.Equal(t, 75, result.Recommendations[1].SustainabilityScore)
	assert.Equal(t, "Summer casual Outfit 1", result.Recommendations[0].Name)
	assert.Equal(t, models.SourceRules, result.Recommendations[0].Source)

	st.AssertExpectations(t)
	wx.AssertExpectations(t)
	gen.AssertExpectations(t)
}

func TestRecommend_EmptyWardrobe(t *testing.T) {
	ctx := context.Background()
	st, wx, gen := new(MockStore), new(MockWeather), new(MockGenerator)

	st.On("GetWeatherPreference", ctx, uint(7)).Return(nil, apperr.ErrNotFound).Once()
	wx.On("Current", ctx, "New York").Return(&models.WeatherSnapshot{Location: "New York", Temperature: 12}, nil).Once()
	st.On("ListWardrobeItems", ctx, uint(7)).Return([]models.WardrobeItem{}, nil).Once()

	result, err := recommend.NewEngine(st, wx, gen, "").Recommend(ctx, 7, "work")
	require.NoError(t, err)

	assert.NotNil(t, result.Recommendations)
	assert.Empty(t, result.Recommendations)
	wx.AssertExpectations(t)
	gen.AssertNotCalled(t, "SuggestOutfits", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecommend_WeatherFailure(t *testing.T) {
	ctx := context.Background()
	st, wx, gen := new(MockStore), new(MockWeather), new(MockGenerator)

	st.On("GetWeatherPreference", ctx, uint(1)).Return(nil, apperr.ErrNotFound).Once()
	wx.On("Current", ctx, "Berlin").Return(nil, errors.New("connection reset")).Once()

	result, err := recommend.NewEngine(st, wx, gen, "Berlin").Recommend(ctx, 1, "casual")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
	st.AssertNotCalled(t, "ListWardrobeItems", mock.Anything, mock.Anything)
	gen.AssertNotCalled(t, "SuggestOutfits", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecommend_PreferenceLookupError(t *testing.T) {
	ctx := context.Background()
	st, wx := new(MockStore), new(MockWeather)
	st.On("GetWeatherPreference", ctx, uint(1)).Return(nil, errors.New("db down")).Once()

	_, err := recommend.NewEngine(st, wx, nil, "").Recommend(ctx, 1, "casual")
	assert.Error(t, err)
	wx.AssertNotCalled(t, "Current", mock.Anything, mock.Anything)
}

func TestRecommend_GeneratorCandidatesAreSanitized(t *testing.T) {
	ctx := context.Background()
	st, wx, gen := new(MockStore), new(MockWeather), new(MockGenerator)
	items := scenarioAWardrobe()
	weather := &models.WeatherSnapshot{Location: "New York", Temperature: 18}

	st.On("GetWeatherPreference", ctx, uint(1)).Return(nil, apperr.ErrNotFound)
	wx.On("Current", ctx, "New York").Return(weather, nil)
	st.On("ListWardrobeItems", ctx, uint(1)).Return(items, nil)
	gen.On("SuggestOutfits", ctx, items, weather, "party").Return([]models.Recommendation{
		{Name: "Night out", Items: []uint{1, 3, 99}, SustainabilityScore: 140, Source: models.SourceAI},
		{Name: "Foreign", Items: []uint{98, 99}, SustainabilityScore: 50},
		{Name: "Lonely", Items: []uint{2, 2}, SustainabilityScore: 50},
	})

	result, err := recommend.NewEngine(st, wx, gen, "").Recommend(ctx, 1, "party")
	require.NoError(t, err)

	require.Len(t, result.Recommendations, 1)
	got := result.Recommendations[0]
	assert.Equal(t, "Night out", got.Name)
	assert.Equal(t, []uint{1, 3}, got.Items)
	assert.Equal(t, 100, got.SustainabilityScore)
	assert.Equal(t, models.SourceAI, got.Source)
}

func TestRecommend_AllCandidatesRejectedFallsBack(t *testing.T) {
	ctx := context.Background()
	st, wx, gen := new(MockStore), new(MockWeather), new(MockGenerator)
	items := scenarioAWardrobe()
	weather := &models.WeatherSnapshot{Location: "New York", Temperature: 28}

	st.On("GetWeatherPreference", ctx, uint(1)).Return(nil, apperr.ErrNotFound)
	wx.On("Current", ctx, "New York").Return(weather, nil)
	st.On("ListWardrobeItems", ctx, uint(1)).Return(items, nil)
	gen.On("SuggestOutfits", ctx, items, weather, "casual").Return([]models.Recommendation{
		{Name: "Ghost", Items: []uint{500, 501}},
	})

	result, err := recommend.NewEngine(st, wx, gen, "").Recommend(ctx, 1, "casual")
	require.NoError(t, err)
	require.NotEmpty(t, result.Recommendations)
	for _, r := range result.Recommendations {
		assert.Equal(t, models.SourceRules, r.Source)
	}
}
