package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilConfig is returned when Load receives a nil pointer.
var ErrNilConfig = errors.New("config: nil pointer passed to Load")

var (
	loadEnvOnce sync.Once

	cacheMu sync.RWMutex
	cache   = make(map[reflect.Type]any)
)

// Load parses environment variables into the given config struct.
// The result is cached per struct type: the first call parses the
// environment, subsequent calls for the same type return the cached value.
// A .env file in the working directory is loaded once, if present.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	// Missing .env is not an error; explicit environment always works.
	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)

	cacheMu.RLock()
	if cached, ok := cache[typ]; ok {
		cacheMu.RUnlock()
		*cfg = cached.(T)
		return nil
	}
	cacheMu.RUnlock()

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", typ, err)
	}

	cacheMu.Lock()
	cache[typ] = *cfg
	cacheMu.Unlock()

	return nil
}

// MustLoad is like Load but panics on failure. Intended for application
// startup where a missing required variable should abort immediately.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
