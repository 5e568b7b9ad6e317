package content

import (
	"os"
	"time"
)

// Config selects where question sets come from. The first non-empty of Pack,
// URL and Dir wins.
type Config struct {
	Dir  string
	URL  string
	Pack string

	// RedisAddr enables the content cache when set.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisTTL      time.Duration

	// HTTPTimeout bounds a single HTTP fetch. Default: 10s.
	HTTPTimeout time.Duration
}

// DefaultConfig returns a Config reading from ./data.
func DefaultConfig() Config {
	return Config{
		Dir:         "data",
		RedisTTL:    time.Hour,
		HTTPTimeout: 10 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if d := os.Getenv("FLASHLINGO_CONTENT_DIR"); d != "" {
		cfg.Dir = d
	}
	if u := os.Getenv("FLASHLINGO_CONTENT_URL"); u != "" {
		cfg.URL = u
	}
	if p := os.Getenv("FLASHLINGO_PACK"); p != "" {
		cfg.Pack = p
	}

	if a := os.Getenv("FLASHLINGO_REDIS_ADDR"); a != "" {
		cfg.RedisAddr = a
	}
	if p := os.Getenv("FLASHLINGO_REDIS_PASSWORD"); p != "" {
		cfg.RedisPassword = p
	}
	if t := os.Getenv("FLASHLINGO_REDIS_TTL"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.RedisTTL = d
		}
	}

	return cfg
}
