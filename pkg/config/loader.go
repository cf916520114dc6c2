package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu      sync.RWMutex
	cache   = make(map[string]any)
	envLoad sync.Once
)

// Load populates cfg from environment variables using `env` field tags,
// consulting a `.env` file in the working directory when present. Each
// configuration type is parsed at most once per process; later calls return
// the cached copy.
//
//	type RunConfig struct {
//		Threads int     `env:"SIMKIT_NUM_THREADS" envDefault:"1"`
//		Spacing float64 `env:"SIMKIT_TRACK_SPACING" envDefault:"0.1"`
//	}
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}
	envLoad.Do(func() {
		// The .env file is optional; absence is not an error.
		_ = godotenv.Load()
	})

	key := typeName[T]()

	mu.RLock()
	cached, ok := cache[key]
	mu.RUnlock()
	if ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	mu.Lock()
	cache[key] = *cfg
	mu.Unlock()
	return nil
}

// MustLoad works like Load but panics on failure. Intended for configuration
// without which the tool cannot start.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops every cached configuration so the next Load re-reads the
// environment. Only tests should need this.
func Reset() {
	mu.Lock()
	cache = make(map[string]any)
	mu.Unlock()
}

// typeName returns a stable cache key for the generic type T.
func typeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
