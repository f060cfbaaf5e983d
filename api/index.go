package handler

import (
	"context"
	"net/http"
	"sync"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

var (
	once   sync.Once
	server http.Handler
)

// Handler is the serverless entrypoint. The application is built and seeded
// on the first request of each instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		timezone.Init(cfg.App.Timezone)

		app := di.InitializeApp()

		if err := app.Seeder.Seed(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to seed records")
		}

		server = app.HTTP.Start(context.Background())
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
