package main

import (
	"context"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/helper"
	"frontdesk/shared/logger"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	if cfg.UsePostgres() && cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	app := di.InitializeApp()

	if err := app.Seeder.Seed(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed records")
	}

	app.HTTP.Serve()
}
