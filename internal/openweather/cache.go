package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	currentKeyPrefix  = "weather:current:"  // weather:current:{location}
	forecastKeyPrefix = "weather:forecast:" // weather:forecast:{location}
)

// Cache is a read-through Redis cache in front of another Provider. Redis
// errors are logged and bypassed; upstream errors are never cached.
type Cache struct {
	next   Provider
	client *redis.Client
	ttl    time.Duration
}

func NewCache(next Provider, client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Cache{next: next, client: client, ttl: ttl}
}

func (c *Cache) Current(ctx context.Context, location string) (*models.WeatherSnapshot, error) {
	key := currentKeyPrefix + normalizeLocation(location)

	var cached models.WeatherSnapshot
	if c.load(ctx, key, &cached) {
		return &cached, nil
	}

	snap, err := c.next.Current(ctx, location)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, snap)
	return snap, nil
}

func (c *Cache) Forecast(ctx context.Context, location string) ([]models.ForecastDay, error) {
	key := forecastKeyPrefix + normalizeLocation(location)

	var cached []models.ForecastDay
	if c.load(ctx, key, &cached) {
		return cached, nil
	}

	days, err := c.next.Forecast(ctx, location)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, days)
	return days, nil
}

func (c *Cache) load(ctx context.Context, key string, out interface{}) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		slog.Warn("weather cache read failed", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		slog.Warn("weather cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (c *Cache) store(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Warn("weather cache write failed", "key", key, "error", err)
	}
}

func normalizeLocation(location string) string {
	return strings.Join(strings.Fields(strings.ToLower(location)), " ")
}
