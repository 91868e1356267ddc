package config

import (
    "time"
)

// RateLimitConfig drives the Redis token-bucket limiter applied to the
// booking endpoints.  The bucket refills RefillTokens every RefillInterval
// up to Capacity; TTL bounds how long idle buckets survive in Redis.
type RateLimitConfig struct {
    Enabled        bool
    Capacity       int
    RefillTokens   int
    RefillInterval time.Duration
    TTL            time.Duration
    Prefix         string
}

// LoadRateLimitConfig reads environment variables to build a
// RateLimitConfig, clamping nonsensical values to safe minimums.
func LoadRateLimitConfig() RateLimitConfig {
    cfg := RateLimitConfig{
        Enabled:        getenv("RATE_LIMIT_ENABLED", "true") == "true",
        Capacity:       atoi(getenv("RATE_LIMIT_CAPACITY", "60")),
        RefillTokens:   atoi(getenv("RATE_LIMIT_REFILL_TOKENS", "1")),
        RefillInterval: parseDur(getenv("RATE_LIMIT_REFILL_INTERVAL", "1s")),
        TTL:            parseDur(getenv("RATE_LIMIT_TTL", "10m")),
        Prefix:         getenv("RATE_LIMIT_PREFIX", "rl"),
    }
    if cfg.Capacity < 1 {
        cfg.Capacity = 1
    }
    if cfg.RefillTokens < 1 {
        cfg.RefillTokens = 1
    }
    if cfg.RefillInterval <= 0 {
        cfg.RefillInterval = time.Second
    }
    if minTTL := 5 * cfg.RefillInterval; cfg.TTL < minTTL {
        cfg.TTL = minTTL
    }
    return cfg
}
