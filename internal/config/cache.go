package config

import (
    "os"
    "strconv"
    "time"
)

// CacheConfig defines settings for the replay-page response cache.  When
// Enabled is false or no Redis client is configured, caching is disabled and
// every request renders the page from the document store.  The TTL default
// matches the one-hour shared-cache window advertised in the Cache-Control
// header, so CDN caches and this server-side cache expire together.
type CacheConfig struct {
    Enabled      bool
    TTL          time.Duration
    Prefix       string
    MaxBodyBytes int
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled:      getenv("CACHE_ENABLED", "true") == "true",
        TTL:          parseDur(getenv("CACHE_TTL", "1h")),
        Prefix:       getenv("CACHE_PREFIX", "replaycache"),
        MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", "1048576")),
    }
}

// Helper functions reused from redis.go and ratelimit.go
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
