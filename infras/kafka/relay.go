package kafka

import (
	"context"
	"sync"
	"time"

	"frontdesk/config"
	"frontdesk/shared/event"

	"github.com/rs/zerolog/log"
)

const (
	relayBufferSize  = 256
	relaySendTimeout = 5 * time.Second
)

// Relay forwards every bus event to a Kafka topic, keyed by event name.
// Events are queued and written from a single goroutine; when the queue is
// full the event is dropped.
type Relay struct {
	client Client
	topic  string
	queue  chan event.Event
	done   chan struct{}
	once   sync.Once
}

func NewRelay(client Client, config *config.Config) *Relay {
	return &Relay{
		client: client,
		topic:  config.Kafka.Topic,
		queue:  make(chan event.Event, relayBufferSize),
		done:   make(chan struct{}),
	}
}

// ProvideRelay builds the relay when Kafka is enabled and returns nil otherwise.
func ProvideRelay(config *config.Config) *Relay {
	if !config.Kafka.Enable {
		log.Info().Msg("Kafka disabled, events stay in process")

		return nil
	}

	return NewRelay(New(config), config)
}

// Start subscribes the relay to the bus and begins forwarding. The returned
// function unsubscribes and waits for the queue to drain.
func (r *Relay) Start(subscriber event.Subscriber) func() {
	unsubscribe := subscriber.Subscribe(event.TopicAll, r.enqueue)

	go r.run()

	return func() {
		unsubscribe()
		r.once.Do(func() { close(r.queue) })
		<-r.done
	}
}

func (r *Relay) enqueue(_ context.Context, evt event.Event) {
	select {
	case r.queue <- evt:
	default:
		log.Warn().Str("topic", evt.Topic).Msg("Kafka relay queue full, dropping event")
	}
}

func (r *Relay) run() {
	defer close(r.done)

	for evt := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), relaySendTimeout)

		err := r.client.SendMessages(ctx, r.topic, Message{Key: evt.Topic, Value: evt})
		if err != nil {
			log.Error().Err(err).Str("event", evt.Topic).Msg("Failed to relay event to Kafka")
		}

		cancel()
	}
}

// Close releases the Kafka writer. Call it after the stop function returned by Start.
func (r *Relay) Close() error {
	return r.client.Close() //nolint:wrapcheck
}
