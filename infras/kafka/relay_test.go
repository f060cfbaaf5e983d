package kafka_test

import (
	"context"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/kafka/mocks"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/shared/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRelay_ForwardsEveryTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Topic = "frontdesk.events"

	var keys []string

	client.EXPECT().
		SendMessages(gomock.Any(), "frontdesk.events", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			if !assert.Len(t, messages, 1) {
				return nil
			}

			keys = append(keys, messages[0].Key)

			evt, ok := messages[0].Value.(event.Event)
			assert.True(t, ok)
			assert.Equal(t, messages[0].Key, evt.Topic)

			return nil
		}).
		Times(2)

	bus := event.NewBus(otelMocks.NewOtel())
	stop := kafka.NewRelay(client, cfg).Start(bus)

	require.NoError(t, bus.Publish(context.Background(), event.TopicGuestCheckedIn, "guest"))
	require.NoError(t, bus.Publish(context.Background(), event.TopicGuestCheckedOut, "checkout"))

	stop()

	assert.Equal(t, []string{event.TopicGuestCheckedIn, event.TopicGuestCheckedOut}, keys)
	assert.Zero(t, bus.SubscriberCount(event.TopicGuestCheckedIn))
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "guest-checked-in", Value: map[string]string{"bookingNumber": "BK00000001"}}

	out, err := msg.ToKafkaMessage("frontdesk.events")
	require.NoError(t, err)

	assert.Equal(t, "frontdesk.events", out.Topic)
	assert.Equal(t, []byte("guest-checked-in"), out.Key)
	assert.JSONEq(t, `{"bookingNumber":"BK00000001"}`, string(out.Value))
}

func TestMessage_ToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage("frontdesk.events")
	assert.Error(t, err)
}

func TestProvideRelay_Disabled(t *testing.T) {
	cfg := &config.Config{}

	assert.Nil(t, kafka.ProvideRelay(cfg))
}

func TestRelay_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Close().Return(nil)

	require.NoError(t, kafka.NewRelay(client, &config.Config{}).Close())
}
