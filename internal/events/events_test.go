package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *mockChannel) Close() error {
	return m.Called().Error(0)
}

func TestAMQPPublisher_Publish(t *testing.T) {
	ch := new(mockChannel)
	p := &AMQPPublisher{queue: "wardrobe_events", ch: ch}
	event := New(WardrobeItemCreated, 3, 42, map[string]any{"category": "tops"})

	ch.On("Publish", "", "wardrobe_events", false, false, mock.MatchedBy(func(msg amqp.Publishing) bool {
		var decoded Event
		if err := json.Unmarshal(msg.Body, &decoded); err != nil {
			return false
		}
		return msg.DeliveryMode == amqp.Persistent &&
			msg.ContentType == "application/json" &&
			msg.MessageId == event.ID.String() &&
			decoded.Type == WardrobeItemCreated &&
			decoded.EntityID == 42 &&
			decoded.UserID == 3
	})).Return(nil).Once()

	require.NoError(t, p.Publish(context.Background(), event))
	ch.AssertExpectations(t)
}

func TestAMQPPublisher_PublishError(t *testing.T) {
	ch := new(mockChannel)
	p := &AMQPPublisher{queue: "q", ch: ch}
	ch.On("Publish", "", "q", false, false, mock.Anything).Return(errors.New("channel closed")).Once()

	err := p.Publish(context.Background(), New(OutfitCreated, 1, 1, nil))
	assert.ErrorContains(t, err, "outfit.created")
}

func TestAMQPPublisher_Close(t *testing.T) {
	ch := new(mockChannel)
	p := &AMQPPublisher{queue: "q", ch: ch}
	ch.On("Close").Return(nil).Once()

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	ch.AssertNumberOfCalls(t, "Close", 1)

	err := p.Publish(context.Background(), New(OutfitDeleted, 1, 1, nil))
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	a := New(WardrobeItemDeleted, 1, 2, nil)
	b := New(WardrobeItemDeleted, 1, 2, nil)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.OccurredAt.IsZero())

	var noop Publisher = NoopPublisher{}
	assert.NoError(t, noop.Publish(context.Background(), a))
	assert.NoError(t, noop.Close())
}
