package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATA_PATH", "HOST", "PORT", "DEBUG", "HEARTBEAT_SPEC", "GLOBAL_TREND_FALLBACK"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "./data/output_EDA_analysis.csv", cfg.DataPath)
	assert.Equal(t, 8050, cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "*/10 * * * *", cfg.HeartbeatSpec)
	assert.True(t, cfg.GlobalTrendFallback, "legacy trend fallback stays on by default")
	assert.Equal(t, ":8050", cfg.Addr())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATA_PATH", "/srv/risk/indicators.csv")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("DEBUG", "true")
	t.Setenv("GLOBAL_TREND_FALLBACK", "false")

	cfg := Load()
	assert.Equal(t, "/srv/risk/indicators.csv", cfg.DataPath)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.GlobalTrendFallback)
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("DEBUG", "yep")

	cfg := Load()
	assert.Equal(t, 8050, cfg.Port)
	assert.False(t, cfg.Debug)
}
