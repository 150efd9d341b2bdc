package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVICE_NAME", "ENV", "METRICS_PORT", "STORE_BACKEND",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "SEED_DEMO_DATA",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "electrostore", cfg.ServiceName)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.MetricsPort)
	assert.Equal(t, StoreBackendMemory, cfg.StoreBackend)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.True(t, cfg.SeedDemoData)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVICE_NAME", "electrostore-eu")
	t.Setenv("ENV", "prod")
	t.Setenv("METRICS_PORT", "9100")
	t.Setenv("STORE_BACKEND", StoreBackendRedis)
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SEED_DEMO_DATA", "false")

	cfg := Load()

	assert.Equal(t, "electrostore-eu", cfg.ServiceName)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, StoreBackendRedis, cfg.StoreBackend)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "secret", cfg.RedisPassword)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.False(t, cfg.SeedDemoData)
}

func TestMetricsAddress(t *testing.T) {
	cfg := Config{MetricsPort: "9100"}
	assert.Equal(t, ":9100", cfg.MetricsAddress())
}

func TestLoadMalformedSeedFlagFallsBackToTrue(t *testing.T) {
	t.Setenv("SEED_DEMO_DATA", "yes please")

	assert.True(t, Load().SeedDemoData)
}
