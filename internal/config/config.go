package config

import "os"

// Config holds the process-level settings. Everything the core needs lives in
// memory; config covers only the deployment surface around it.
type Config struct {
	ListenAddr    string
	WebDir        string
	OTLPCollector string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads configuration from the environment, falling back to defaults
// that work for local development.
func Load() Config {
	return Config{
		ListenAddr:    getenv("DUEL_LISTEN_ADDR", ":3001"),
		WebDir:        getenv("DUEL_WEB_DIR", "./web"),
		OTLPCollector: getenv("OTEL_COLLECTOR_ADDR", "otel-collector:4317"),
	}
}
