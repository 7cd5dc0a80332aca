package config

import (
	"os"
	"strconv"
)

// Config holds every external knob of the service. All values come from the
// environment (a .env file is loaded in main before this runs) with working
// defaults, so the binary starts with no setup at all.
type Config struct {
	// DataPath is the location of the source CSV. Externalized on purpose:
	// the dashboard must never carry a hard-coded data path.
	DataPath string

	Host  string
	Port  int
	Debug bool

	// HeartbeatSpec is the cron expression for the dataset heartbeat job.
	HeartbeatSpec string

	// GlobalTrendFallback keeps the legacy behavior where a selection that
	// matches no rows still shows the global trend series (with zero KPIs).
	// Turning it off renders an empty trend chart instead. Kept behind a
	// flag until there is a product decision on which one is right.
	GlobalTrendFallback bool
}

func Load() Config {
	return Config{
		DataPath:            getEnv("DATA_PATH", "./data/output_EDA_analysis.csv"),
		Host:                getEnv("HOST", ""),
		Port:                getEnvInt("PORT", 8050),
		Debug:               getEnvBool("DEBUG", false),
		HeartbeatSpec:       getEnv("HEARTBEAT_SPEC", "*/10 * * * *"),
		GlobalTrendFallback: getEnvBool("GLOBAL_TREND_FALLBACK", true),
	}
}

// Addr returns the host:port the server listens on.
func (c Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
