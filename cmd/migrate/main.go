package main

import (
	"os"

	"frontdesk/config"
	"frontdesk/helper"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Run front desk database migrations",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		cfg := config.Get()

		logger.InitLogger(cfg)
		logger.SetLogLevel(cfg)
	},
}

func action(use, short, name string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return helper.Runner(config.Get(), name)
		},
	}
}

func init() {
	rootCmd.AddCommand(
		action("up", "Apply all up migrations", helper.ActionUp),
		action("down", "Roll back the last migration", helper.ActionDown),
		action("step-up", "Apply the next migration", helper.ActionStepUp),
		action("drop", "Roll back every migration", helper.ActionDrop),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Migration failed")
		os.Exit(1)
	}
}
