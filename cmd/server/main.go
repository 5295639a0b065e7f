// Package main - Entry point for the snackbar pricing API server
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"snackbar/adapters/menu"
	"snackbar/api"
	"snackbar/core/catalog"
	"snackbar/core/engine"
	"snackbar/core/ingredient"
	"snackbar/core/promotion"
	"snackbar/internal/config"
	"snackbar/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "", "config file (JSON)")
	addr := flag.String("addr", "", "server address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg.LoadEnv()
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		log.Fatal(err)
	}
	defer logging.Sync()
	gin.SetMode(gin.ReleaseMode)

	var prices ingredient.PriceTable = ingredient.DefaultTable{}
	if cfg.Menu.Path != "" {
		table, err := menu.NewLoader(logging.Named("menu")).LoadFile(cfg.Menu.Path)
		if err != nil {
			logging.Logger.Fatal("failed to load menu", zap.Error(err))
		}
		prices = table
	}

	eng := engine.New(catalog.New(prices), promotion.DefaultRegistry(),
		engine.WithLogger(logging.Named("engine")))

	server := api.NewServer(eng, api.Options{
		Version:        version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         logging.Named("api"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg.Server.Addr); err != nil {
		logging.Logger.Fatal("server stopped", zap.Error(err))
	}
}
