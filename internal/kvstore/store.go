package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	MemoryBackend = "memory"
	RedisBackend  = "redis"
	SQLiteBackend = "sqlite"
)

var ErrKeyNotFound = errors.New("kvstore: key not found")

// Store is the persisted local key-value store backing the account
// registry, the session snapshot and the favorites mirror. Values are
// opaque byte slices; callers encode JSON via the helpers below.
type Store interface {
	// Get returns the value or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Keys returns all keys with the given prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
	// Close releases backend resources.
	Close() error
}

// Config selects and tunes a backend.
type Config struct {
	Backend string `env:"STORE_BACKEND" env-default:"sqlite"`
	Path    string `env:"STORE_PATH" env-default:"atlas.db"`
	Redis   RedisOptions
}

// New constructs a Store for the configured backend.
func New(cfg *Config) (Store, error) {
	switch cfg.Backend {
	case MemoryBackend:
		return NewMemoryStore(), nil
	case RedisBackend:
		return NewRedisStore(&cfg.Redis), nil
	case SQLiteBackend:
		return NewSQLiteStore(cfg.Path)
	default:
		return nil, fmt.Errorf("kvstore: unknown backend %q", cfg.Backend)
	}
}

// GetJSON reads key and unmarshals it into out.
func GetJSON(ctx context.Context, s Store, key string, out interface{}) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// SetJSON marshals value and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data)
}
