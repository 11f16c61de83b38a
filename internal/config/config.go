// Package config loads environment-variable configuration for the
// networked adapters (gateway, event bus). The core engine and the batch
// replay tool take no configuration.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// GatewayConfig configures the HTTP + WebSocket front-end.
type GatewayConfig struct {
	Port          string
	NATSURL       string
	SnapshotDepth int
}

// LoadGatewayConfig reads GatewayConfig from the environment, falling back
// to a .env file in the working directory if present (missing .env is not
// an error — it's the common case in production).
func LoadGatewayConfig() GatewayConfig {
	_ = godotenv.Load()

	return GatewayConfig{
		Port:          getEnv("MATCHBOOK_GATEWAY_PORT", "8080"),
		NATSURL:       getEnv("MATCHBOOK_NATS_URL", "nats://localhost:4222"),
		SnapshotDepth: getEnvInt("MATCHBOOK_SNAPSHOT_DEPTH", 5),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
