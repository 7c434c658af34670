package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ironsheep/rankboard-ocr/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP tool server on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			// stdout carries the protocol; logs must stay on stderr.
			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			server.Version = Version
			logger.Info("mcp server starting",
				slog.String("version", Version),
				slog.String("config", ctx.configPath))

			srv := server.New(cfg, newRecognizerFactory(cfg), logger)
			return srv.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
