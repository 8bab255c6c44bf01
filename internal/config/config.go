package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr           string
	DBConnString       string
	ShutdownTimeout    time.Duration
	CartStorageKey     string
	PriceRangeMax      int64 // whole currency units
	OrderDelay         time.Duration
	CORSAllowedOrigins []string
}

// FromEnv builds Config with defaults, overridden by environment variables.
// An empty DB_DSN selects the in-memory catalog and cart storage.
func FromEnv() Config {
	return Config{
		HTTPAddr:           envOrDefault("HTTP_ADDR", ":8080"),
		DBConnString:       envOrDefault("DB_DSN", ""),
		ShutdownTimeout:    envDuration("SHUTDOWN_TIMEOUT_SECONDS", time.Second, 10*time.Second),
		CartStorageKey:     envOrDefault("CART_STORAGE_KEY", "cart"),
		PriceRangeMax:      envInt("PRICE_RANGE_MAX", 200),
		OrderDelay:         envDuration("ORDER_DELAY_MS", time.Millisecond, 1500*time.Millisecond),
		CORSAllowedOrigins: envList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

// PriceRangeMaxCents returns PriceRangeMax in cents.
func (c Config) PriceRangeMaxCents() int64 {
	return c.PriceRangeMax * 100
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envDuration(key string, unit, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n >= 0 {
			return time.Duration(n) * unit
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
