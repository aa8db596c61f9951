package main

import (
	"log/slog"
	"math/rand"
	"net"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"flipseven/internal/app"
	"flipseven/internal/bot"
	"flipseven/internal/config"
	"flipseven/internal/ports/web"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	registry := app.NewRegistry(rng)
	hub := web.NewHub(logger)
	svc := app.NewService(registry, hub, bot.Standard{}, app.Delays{
		Deal:      cfg.Pacing.Deal,
		Reveal:    cfg.Pacing.Reveal,
		Advance:   cfg.Pacing.Advance,
		FirstTurn: cfg.Pacing.FirstTurn,
		BotThink:  cfg.Pacing.BotThink,
	}, logger)

	router := gin.Default()
	web.NewController(svc, hub, logger).RegisterRoutes(router)

	addr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
	logger.Info("flip seven server listening", "addr", addr)
	if err := router.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
