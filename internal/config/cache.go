package config

import (
    "os"
    "strconv"
    "time"
)

// CacheConfig defines settings for the response cache middleware.  When
// Enabled is false or no Redis client is configured, caching is disabled.
// The cache only ever applies to the routes it is explicitly mounted on;
// the reservations snapshot and the SSE streams are never cached because
// clients reconcile their local state from them.
type CacheConfig struct {
    Enabled bool
    TTL     time.Duration
    Prefix  string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled: getenv("CACHE_ENABLED", "true") == "true",
        TTL:     parseDur(getenv("CACHE_TTL", "30s")),
        Prefix:  getenv("CACHE_PREFIX", "cache"),
    }
}

// Helper functions shared with ratelimit.go
func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func atoi(s string) int {
    i, _ := strconv.Atoi(s)
    return i
}

func parseDur(s string) time.Duration {
    d, err := time.ParseDuration(s)
    if err != nil {
        return time.Second
    }
    return d
}
