package main

import (
	"github.com/spf13/cobra"

	"github.com/tsdice/emojisummary/internal/config"
	"github.com/tsdice/emojisummary/internal/logger"
	"github.com/tsdice/emojisummary/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			log := logger.ForService(logger.New(cfg.Observability.Logging, cmd.ErrOrStderr()), cfg.Observability)

			srv := server.New(cfg, log)
			if err := srv.Start(cmd.Context()); err != nil {
				log.Error().Err(err).Msg("server exited")
				return err
			}
			log.Info().Msg("server stopped")
			return nil
		},
	}
}
