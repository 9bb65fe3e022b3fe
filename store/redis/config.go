package redis

// Config holds Redis connection settings.
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379/0)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// KeyPrefix namespaces every key written by the store
	KeyPrefix string
}

// DefaultConfig returns defaults for a local Redis.
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     4,
		MinIdleConns: 1,
		KeyPrefix:    "arcade",
	}
}
