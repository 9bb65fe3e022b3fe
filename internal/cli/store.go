package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/plus3/blockfall/store"
	"github.com/plus3/blockfall/store/file"
	"github.com/plus3/blockfall/store/memory"
	redisstore "github.com/plus3/blockfall/store/redis"
)

// openStore opens the high score backend named by cfg. The returned close
// function is never nil.
func openStore(cfg *Config, logger *slog.Logger) (store.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store {
	case StoreMemory:
		logger.Debug("using memory store")
		return memory.New(), noop, nil

	case StoreFile:
		if err := os.MkdirAll(filepath.Dir(cfg.StorePath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create store directory: %w", err)
		}
		s, err := file.New(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("using file store", "path", s.Path())
		return s, noop, nil

	case StoreRedis:
		redisCfg := redisstore.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		s, err := redisstore.New(redisCfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("using redis store", "url", cfg.RedisURL)
		return s, s.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
}
