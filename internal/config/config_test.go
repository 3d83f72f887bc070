package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DUEL_LISTEN_ADDR", "")
	t.Setenv("DUEL_WEB_DIR", "")
	t.Setenv("OTEL_COLLECTOR_ADDR", "")

	cfg := Load()
	assert.Equal(t, ":3001", cfg.ListenAddr)
	assert.Equal(t, "./web", cfg.WebDir)
	assert.Equal(t, "otel-collector:4317", cfg.OTLPCollector)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DUEL_LISTEN_ADDR", ":9000")
	t.Setenv("DUEL_WEB_DIR", "/srv/duel/web")

	cfg := Load()
	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "/srv/duel/web", cfg.WebDir)
}
