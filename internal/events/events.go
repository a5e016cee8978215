// Package events publishes wardrobe domain events. Publishing is best-effort:
// a failed publish is logged by the caller and never fails the request.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	WardrobeItemCreated = "wardrobe_item.created"
	WardrobeItemDeleted = "wardrobe_item.deleted"
	WardrobeItemWorn    = "wardrobe_item.worn"
	OutfitCreated       = "outfit.created"
	OutfitDeleted       = "outfit.deleted"
)

type Event struct {
	ID         uuid.UUID      `json:"id"`
	Type       string         `json:"type"`
	UserID     uint           `json:"user_id"`
	EntityID   uint           `json:"entity_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

func New(eventType string, userID, entityID uint, payload map[string]any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		UserID:     userID,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher drops every event. Used when RABBITMQ_URL is unset.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
func (NoopPublisher) Close() error                         { return nil }
