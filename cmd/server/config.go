package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/dkim-bro/omok2025/engine"
)

type serverConfig struct {
	Port      string
	CachePath string
	Engine    engine.Options
}

// loadConfig reads the optional .env file and the process environment.
// Every value has a working default; the server boots with nothing set.
func loadConfig() serverConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("[server] no .env file, using environment only")
	}

	opts := engine.DefaultOptions()
	opts.BoardSize = getenvInt("BOARD_SIZE", opts.BoardSize)
	opts.MaxSearchDepth = getenvInt("MAX_SEARCH_DEPTH", opts.MaxSearchDepth)
	opts.TimeLimitMs = getenvInt("TIME_LIMIT_MS", opts.TimeLimitMs)
	opts.CacheCap = getenvInt("CACHE_CAP", opts.CacheCap)
	opts.VCFDepthSelf = getenvInt("VCF_DEPTH_SELF", opts.VCFDepthSelf)
	opts.VCFDepthOpponent = getenvInt("VCF_DEPTH_OPPONENT", opts.VCFDepthOpponent)

	return serverConfig{
		Port:      getenv("PORT", "8080"),
		CachePath: getenv("CACHE_PATH", "engine_cache.gob"),
		Engine:    opts,
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[server] ignoring %s=%q: %v", key, value, err)
		return fallback
	}
	return parsed
}
