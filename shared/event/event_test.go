package event_test

import (
	"context"
	"testing"

	"frontdesk/infras/otel/mocks"
	"frontdesk/shared/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishDeliversInOrder(t *testing.T) {
	bus := event.NewBus(mocks.NewOtel())

	var received []string

	bus.Subscribe(event.TopicGuestCheckedIn, func(_ context.Context, evt event.Event) {
		received = append(received, "first:"+evt.Topic)
	})
	bus.Subscribe(event.TopicAll, func(_ context.Context, evt event.Event) {
		received = append(received, "all:"+evt.Topic)
	})
	bus.Subscribe(event.TopicGuestCheckedOut, func(_ context.Context, evt event.Event) {
		received = append(received, "checkout:"+evt.Topic)
	})

	require.NoError(t, bus.Publish(context.Background(), event.TopicGuestCheckedIn, map[string]string{"name": "Jane"}))

	assert.Equal(t, []string{"first:guest-checked-in", "all:guest-checked-in"}, received)
}

func TestBus_EventCarriesPayload(t *testing.T) {
	bus := event.NewBus(mocks.NewOtel())

	var got event.Event

	bus.Subscribe(event.TopicGuestCheckedOut, func(_ context.Context, evt event.Event) {
		got = evt
	})

	require.NoError(t, bus.Publish(context.Background(), event.TopicGuestCheckedOut, "BK12345678"))

	assert.Equal(t, event.TopicGuestCheckedOut, got.Topic)
	assert.Equal(t, "BK12345678", got.Data)
	assert.False(t, got.Timestamp.IsZero())
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := event.NewBus(mocks.NewOtel())

	calls := 0
	unsubscribe := bus.Subscribe(event.TopicGuestCheckedIn, func(context.Context, event.Event) { calls++ })

	assert.Equal(t, 1, bus.SubscriberCount(event.TopicGuestCheckedIn))

	unsubscribe()
	unsubscribe()

	require.NoError(t, bus.Publish(context.Background(), event.TopicGuestCheckedIn, nil))
	assert.Zero(t, calls)
	assert.Zero(t, bus.SubscriberCount(event.TopicGuestCheckedIn))
}

func TestBus_PanickingHandlerDoesNotStopDelivery(t *testing.T) {
	bus := event.NewBus(mocks.NewOtel())

	delivered := false

	bus.Subscribe(event.TopicAll, func(context.Context, event.Event) { panic("broken subscriber") })
	bus.Subscribe(event.TopicAll, func(context.Context, event.Event) { delivered = true })

	assert.NotPanics(t, func() {
		require.NoError(t, bus.Publish(context.Background(), event.TopicGuestCheckedIn, nil))
	})
	assert.True(t, delivered)
}

func TestBus_EmptyTopic(t *testing.T) {
	bus := event.NewBus(mocks.NewOtel())

	assert.ErrorIs(t, bus.Publish(context.Background(), "", nil), event.ErrEmptyTopic)
}
