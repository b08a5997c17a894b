package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pricelens/backend/internal/app"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web form and JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		port := servePort
		if port == "" {
			port = cfg.Server.Port
		}
		return app.Serve(ctx, cfg, port)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
