package engine

import "time"

// Defaults applied when a Config field is left zero.
const (
	DefaultFetchTimeout = 30 * time.Second
	DefaultMaxBodyBytes = 10 * 1024 * 1024
	DefaultMaxRedirects = 10
)

// Config holds all engine configuration, injected from main.
type Config struct {
	FetchTimeout time.Duration
	MaxBodyBytes int64
	MaxRedirects int
	UserAgent    string // empty = random browser UA per request
}

var cfg Config

// Init initializes the engine with the given configuration.
// Call once at startup, before serving any request.
func Init(c Config) {
	cfg = c
}

func (c *Config) fetchTimeout() time.Duration {
	if c.FetchTimeout <= 0 {
		return DefaultFetchTimeout
	}
	return c.FetchTimeout
}

func (c *Config) maxBodyBytes() int64 {
	if c.MaxBodyBytes <= 0 {
		return DefaultMaxBodyBytes
	}
	return c.MaxBodyBytes
}

func (c *Config) maxRedirects() int {
	if c.MaxRedirects <= 0 {
		return DefaultMaxRedirects
	}
	return c.MaxRedirects
}
