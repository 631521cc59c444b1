package live

import (
	"bytes"
	"context"
	"testing"

	"github.com/shenikar/dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewHub(logger)
}

func TestHub_PublishReachesOnlyIncidentSubscribers(t *testing.T) {
	hub := newTestHub()
	first := hub.Subscribe("INC-0001")
	other := hub.Subscribe("INC-0002")

	err := hub.Publish(context.Background(), models.IncidentEvent{
		Kind:       models.EventStatusChanged,
		IncidentID: "INC-0001",
		Status:     models.StatusDispatched,
	})
	require.NoError(t, err)

	require.Len(t, first.Events, 1)
	event := <-first.Events
	assert.Equal(t, models.StatusDispatched, event.Status)
	assert.Empty(t, other.Events)
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := newTestHub()
	sub := hub.Subscribe("INC-0001")
	assert.Equal(t, 1, hub.Subscribers("INC-0001"))

	hub.Unsubscribe(sub)
	hub.Unsubscribe(sub) // повторный вызов безопасен

	assert.Equal(t, 0, hub.Subscribers("INC-0001"))
	_, open := <-sub.Events
	assert.False(t, open)
	assert.NoError(t, hub.Publish(context.Background(), models.IncidentEvent{IncidentID: "INC-0001"}))
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := newTestHub()
	sub := hub.Subscribe("INC-0001")

	for i := 0; i < subscriberBuffer+5; i++ {
		require.NoError(t, hub.Publish(context.Background(), models.IncidentEvent{IncidentID: "INC-0001"}))
	}

	assert.Len(t, sub.Events, subscriberBuffer)
}
