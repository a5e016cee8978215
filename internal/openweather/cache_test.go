package openweather

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	current  int
	forecast int
	err      error
}

func (p *countingProvider) Current(_ context.Context, location string) (*models.WeatherSnapshot, error) {
	p.current++
	if p.err != nil {
		return nil, p.err
	}
	return &models.WeatherSnapshot{Location: location, Temperature: 21, Condition: "Clear"}, nil
}

func (p *countingProvider) Forecast(_ context.Context, location string) ([]models.ForecastDay, error) {
	p.forecast++
	if p.err != nil {
		return nil, p.err
	}
	return []models.ForecastDay{{Date: "2024-06-01", Temperature: 19}}, nil
}

func setupCache(t *testing.T, next Provider) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(next, client, time.Minute), mr
}

func TestCache_CurrentReadThrough(t *testing.T) {
	next := &countingProvider{}
	cache, mr := setupCache(t, next)
	ctx := context.Background()

	first, err := cache.Current(ctx, "New York")
	require.NoError(t, err)
	second, err := cache.Current(ctx, "  new   york ")
	require.NoError(t, err)

	assert.Equal(t, 1, next.current)
	assert.Equal(t, first.Temperature, second.Temperature)
	assert.True(t, mr.Exists("weather:current:new york"))

	mr.FastForward(2 * time.Minute)
	_, err = cache.Current(ctx, "New York")
	require.NoError(t, err)
	assert.Equal(t, 2, next.current)
}

func TestCache_ForecastReadThrough(t *testing.T) {
	next := &countingProvider{}
	cache, _ := setupCache(t, next)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		days, err := cache.Forecast(ctx, "Oslo")
		require.NoError(t, err)
		require.Len(t, days, 1)
		assert.Equal(t, 19, days[0].Temperature)
	}
	assert.Equal(t, 1, next.forecast)
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	next := &countingProvider{err: errors.Join(apperr.ErrUpstreamUnavailable, errors.New("timeout"))}
	cache, mr := setupCache(t, next)
	ctx := context.Background()

	_, err := cache.Current(ctx, "Oslo")
	assert.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
	_, err = cache.Current(ctx, "Oslo")
	assert.Error(t, err)

	assert.Equal(t, 2, next.current)
	assert.False(t, mr.Exists("weather:current:oslo"))
}

func TestCache_RedisDownFallsThrough(t *testing.T) {
	next := &countingProvider{}
	cache, mr := setupCache(t, next)
	mr.Close()

	snap, err := cache.Current(context.Background(), "Oslo")
	require.NoError(t, err)
	assert.Equal(t, 21, snap.Temperature)
	assert.Equal(t, 1, next.current)
}
