package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	TopicGuestCheckedIn  = "guest-checked-in"
	TopicGuestCheckedOut = "guest-checked-out"

	// TopicAll subscribes a handler to every topic.
	TopicAll = constant.Asterix
)

var ErrEmptyTopic = errors.New("event topic is required")

// Topics lists every topic the front desk publishes.
func Topics() []string {
	return []string{TopicGuestCheckedIn, TopicGuestCheckedOut}
}

// Event is a published notification as delivered to subscribers.
type Event struct {
	Topic     string    `json:"event"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

type Handler func(ctx context.Context, evt Event)

type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

type Subscriber interface {
	Subscribe(topic string, handler Handler) (unsubscribe func())
}

type subscription struct {
	id      uint64
	topic   string
	handler Handler
}

// Bus is an in-process publish/subscribe broker. Handlers run synchronously on
// the publishing goroutine in subscription order.
type Bus struct {
	mu            sync.RWMutex
	subscriptions []subscription
	nextID        uint64
	otel          otel.Otel
}

func NewBus(otl otel.Otel) *Bus {
	return &Bus{otel: otl}
}

func (b *Bus) Subscribe(topic string, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID

	b.subscriptions = append(b.subscriptions, subscription{id: id, topic: topic, handler: handler})

	log.Debug().Str("topic", topic).Uint64("subscription", id).Msg("Subscribed to event bus")

	var once sync.Once

	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			b.subscriptions = slices.DeleteFunc(b.subscriptions, func(sub subscription) bool {
				return sub.id == id
			})
		})
	}
}

func (b *Bus) Publish(ctx context.Context, topic string, payload any) error {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	if topic == "" {
		scope.TraceError(ErrEmptyTopic)

		return ErrEmptyTopic
	}

	scope.SetAttribute("event.topic", topic)

	evt := Event{
		Topic:     topic,
		Data:      payload,
		Timestamp: timezone.Now(),
	}

	b.mu.RLock()
	targets := make([]subscription, 0, len(b.subscriptions))

	for _, sub := range b.subscriptions {
		if sub.topic == topic || sub.topic == TopicAll {
			targets = append(targets, sub)
		}
	}
	b.mu.RUnlock()

	scope.SetAttribute("event.subscribers", len(targets))

	for _, sub := range targets {
		deliver(ctx, sub, evt)
	}

	log.Debug().Str("topic", topic).Int("subscribers", len(targets)).Msg("Event published")

	return nil
}

// SubscriberCount reports how many handlers would receive an event on topic.
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := 0

	for _, sub := range b.subscriptions {
		if sub.topic == topic || sub.topic == TopicAll {
			count++
		}
	}

	return count
}

func deliver(ctx context.Context, sub subscription, evt Event) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().
				Str("topic", evt.Topic).
				Uint64("subscription", sub.id).
				Str("panic", fmt.Sprint(rec)).
				Msg("Event handler panicked")
		}
	}()

	sub.handler(ctx, evt)
}
