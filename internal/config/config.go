package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	StoreBackendMemory = "memory"
	StoreBackendRedis  = "redis"
)

type Config struct {
	ServiceName   string
	Env           string
	MetricsPort   string
	StoreBackend  string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SeedDemoData  bool
}

func Load() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	seed, err := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "true"))
	if err != nil {
		seed = true
	}

	return Config{
		ServiceName:   getEnv("SERVICE_NAME", "electrostore"),
		Env:           getEnv("ENV", "dev"),
		MetricsPort:   getEnv("METRICS_PORT", "8080"),
		StoreBackend:  getEnv("STORE_BACKEND", StoreBackendMemory),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		SeedDemoData:  seed,
	}
}

func (c Config) MetricsAddress() string {
	return fmt.Sprintf(":%s", c.MetricsPort)
}

func getEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}
