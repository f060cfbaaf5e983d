package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"

	"frontdesk/config"
	"frontdesk/shared/constant"
	"frontdesk/shared/event"
	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Hub fans bus events out to connected dashboard clients.
type Hub struct {
	clients   map[*Client]struct{}
	clientsMu sync.RWMutex

	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	upgrader   websocket.Upgrader
	sendBuffer int
}

func NewHub(cfg *config.Config) *Hub {
	allowed := cfg.App.CORS.AllowedOrigins

	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		sendBuffer: max(cfg.Realtime.SendBuffer, 1),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")

				return origin == "" || slices.Contains(allowed, constant.Asterix) || slices.Contains(allowed, origin)
			},
		},
	}
}

// Run processes client registration until ctx is done, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	log.Info().Msg("Realtime hub started")

	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.clientsMu.Lock()
			h.clients[client] = struct{}{}
			h.clientsMu.Unlock()

			log.Debug().Str("remote", client.remoteAddr).Strs("topics", client.topicList()).Msg("Realtime client connected")
		case client := <-h.unregister:
			h.remove(client)
		case <-ctx.Done():
			h.clientsMu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.clientsMu.Unlock()

			log.Info().Msg("Realtime hub stopped")

			return
		}
	}
}

// Attach subscribes the hub to every topic on the bus.
func (h *Hub) Attach(subscriber event.Subscriber) func() {
	return subscriber.Subscribe(event.TopicAll, h.Broadcast)
}

// Broadcast sends evt to every client interested in its topic. Clients whose
// send buffer is full are disconnected.
func (h *Hub) Broadcast(_ context.Context, evt event.Event) {
	frame, err := json.Marshal(evt)
	if err != nil {
		log.Error().Err(err).Str("event", evt.Topic).Msg("Failed to encode realtime frame")

		return
	}

	var slow []*Client

	h.clientsMu.RLock()
	for client := range h.clients {
		if !client.wants(evt.Topic) {
			continue
		}

		select {
		case client.send <- frame:
		default:
			slow = append(slow, client)
		}
	}
	h.clientsMu.RUnlock()

	for _, client := range slow {
		log.Warn().Str("remote", client.remoteAddr).Msg("Realtime client too slow, disconnecting")
		h.remove(client)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()

	return len(h.clients)
}

// ServeHTTP upgrades the request and registers the connection. An optional
// topics query parameter restricts the client to a comma separated list.
func (h *Hub) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	topics, err := parseTopics(request.URL.Query().Get(constant.RequestParamTopics))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	conn, err := h.upgrader.Upgrade(writer, request, nil)
	if err != nil {
		log.Warn().Err(err).Str("remote", request.RemoteAddr).Msg("Failed to upgrade realtime connection")

		return
	}

	client := newClient(h, conn, topics, request.RemoteAddr)

	select {
	case h.register <- client:
	case <-h.done:
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
		conn.Close()

		return
	}

	go client.writePump()
	go client.readPump()
}

func (h *Hub) remove(client *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		log.Debug().Str("remote", client.remoteAddr).Msg("Realtime client disconnected")
	}
}

func parseTopics(raw string) (map[string]struct{}, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	known := event.Topics()
	topics := map[string]struct{}{}

	for topic := range strings.SplitSeq(raw, ",") {
		topic = strings.TrimSpace(topic)
		if topic == "" {
			continue
		}

		if !slices.Contains(known, topic) {
			return nil, failure.BadRequestFromString(fmt.Sprintf("unknown topic %q", topic))
		}

		topics[topic] = struct{}{}
	}

	return topics, nil
}
