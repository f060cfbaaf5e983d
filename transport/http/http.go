package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/shared/constant"
	"frontdesk/shared/event"
	"frontdesk/transport/http/response"
	"frontdesk/transport/http/router"
	"frontdesk/transport/websocket"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const readHeaderTimeout = 10 * time.Second

type HTTP struct {
	Config *config.Config
	Router router.Router
	Hub    *websocket.Hub
	Bus    *event.Bus
	Relay  *kafka.Relay
	Otel   otel.Otel
	DB     *postgres.Connection
	Redis  *goRedis.Client

	state     atomic.Int32
	startOnce sync.Once
	handler   http.Handler
	server    *http.Server
	stops     []func()
}

func New(
	cfg *config.Config,
	r router.Router,
	hub *websocket.Hub,
	bus *event.Bus,
	relay *kafka.Relay,
	otl otel.Otel,
	db *postgres.Connection,
	redis *goRedis.Client,
) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		Hub:    hub,
		Bus:    bus,
		Relay:  relay,
		Otel:   otl,
		DB:     db,
		Redis:  redis,
	}
}

// State reports the lifecycle phase of the server.
func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// Start wires the realtime fan-out and builds the handler. It is called once
// by Serve and may be used directly when embedding the handler.
func (h *HTTP) Start(ctx context.Context) http.Handler {
	h.startOnce.Do(func() {
		go h.Hub.Run(ctx)

		h.stops = append(h.stops, h.Hub.Attach(h.Bus))

		if h.Relay != nil {
			h.stops = append(h.stops, h.Relay.Start(h.Bus))
		}

		h.handler = h.Router.Handler(h.Health)
		h.state.Store(int32(ServerStateReady))
	})

	return h.handler
}

// ServeHTTP lets the server be mounted as a plain handler.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Start(context.Background()).ServeHTTP(w, r)
}

// Health answers 503 while shutting down or when the database is gone.
func (h *HTTP) Health(w http.ResponseWriter, r *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	if h.DB != nil {
		if err := h.DB.Ping(); err != nil {
			log.Error().Err(err).Msg("Health check failed to reach database")

			response.WithUnhealthy(w)

			return
		}
	}

	router.Health(w, r)
}

// Serve listens until SIGINT or SIGTERM, then drains and releases resources.
func (h *HTTP) Serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hubCtx, stopHub := context.WithCancel(context.Background())

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.Start(hubCtx),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)

	go func() {
		log.Info().Str("addr", h.server.Addr).Msg("Starting up HTTP server.")

		serveErr <- h.server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("HTTP server stopped unexpectedly")
		}
	case <-ctx.Done():
		h.shutdown()
	}

	stopHub()
	h.cleanup()
}

func (h *HTTP) shutdown() {
	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
	} else {
		log.Info().Msg("Received SIGTERM.")
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

		h.state.Store(int32(ServerStateInGracePeriod))

		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)
	}

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server did not drain in time")
	}
}

func (h *HTTP) cleanup() {
	for i := len(h.stops) - 1; i >= 0; i-- {
		h.stops[i]()
	}

	if h.Relay != nil {
		if err := h.Relay.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka writer")
		}
	}

	if err := h.DB.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database")
	}

	if h.Redis != nil {
		if err := h.Redis.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Redis")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.Config.Server.Shutdown.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
