// Package cmd - serve command
package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"snackbar/api"
	"snackbar/internal/config"
	"snackbar/internal/logging"
)

var serveAddr string

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the pricing HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	server := api.NewServer(eng, api.Options{
		Version:        version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         logging.Named("api"),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer logging.Sync()

	return server.Run(ctx, cfg.Server.Addr)
}
