package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// HTTPServer addresses the delivery listener.
type HTTPServer struct {
	Host string
	Port string
}

// Pacing holds the delays that pace deals, reveals and bot turns. All values
// come from *_MS environment variables.
type Pacing struct {
	Deal      time.Duration
	Reveal    time.Duration
	Advance   time.Duration
	FirstTurn time.Duration
	BotThink  time.Duration
}

// Config is the full server configuration.
type Config struct {
	HTTP   HTTPServer
	Pacing Pacing
}

// Load reads configuration from the environment, optionally seeded from a
// .env file when one is present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Printf("[config] loaded env from .env")
	}

	return &Config{
		HTTP: HTTPServer{
			Host: getenv("HTTP_HOST", "0.0.0.0"),
			Port: getenv("HTTP_PORT", "3001"),
		},
		Pacing: Pacing{
			Deal:      getms("DEAL_DELAY_MS", 1000),
			Reveal:    getms("REVEAL_DELAY_MS", 800),
			Advance:   getms("ADVANCE_DELAY_MS", 1000),
			FirstTurn: getms("FIRST_TURN_DELAY_MS", 1500),
			BotThink:  getms("BOT_THINK_DELAY_MS", 1200),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getms(key string, fallback int) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return time.Duration(fallback) * time.Millisecond
	}
	ms, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("[config] %s: %v, using default %dms", key, err, fallback)
		return time.Duration(fallback) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}
