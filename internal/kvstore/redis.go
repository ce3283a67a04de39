package kvstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions holds client tuning and operation-level settings.
type RedisOptions struct {
	Addr            string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password        string        `env:"REDIS_PASSWORD"`
	DB              int           `env:"REDIS_DB" env-default:"0"`
	PoolSize        int           `env:"REDIS_POOL_SIZE" env-default:"10"`
	MinIdleConns    int           `env:"REDIS_MIN_IDLE_CONNS" env-default:"1"`
	MaxRetries      int           `env:"REDIS_MAX_RETRIES" env-default:"2"`
	MinRetryBackoff time.Duration `env:"REDIS_MIN_RETRY_BACKOFF" env-default:"8ms"`
	MaxRetryBackoff time.Duration `env:"REDIS_MAX_RETRY_BACKOFF" env-default:"512ms"`
	OpTimeout       time.Duration `env:"REDIS_OP_TIMEOUT" env-default:"250ms"`
}

// RedisStore persists keys in a Redis database, for deployments where the
// store should outlive the process host.
type RedisStore struct {
	client    *redis.Client
	opTimeout time.Duration
}

func NewRedisStore(opts *RedisOptions) *RedisStore {
	if opts.OpTimeout == 0 {
		opts.OpTimeout = 250 * time.Millisecond
	}
	client := redis.NewClient(&redis.Options{
		Addr:            opts.Addr,
		Password:        opts.Password,
		DB:              opts.DB,
		PoolSize:        opts.PoolSize,
		MinIdleConns:    opts.MinIdleConns,
		MaxRetries:      opts.MaxRetries,
		MinRetryBackoff: opts.MinRetryBackoff,
		MaxRetryBackoff: opts.MaxRetryBackoff,
	})
	return &RedisStore{client: client, opTimeout: opts.OpTimeout}
}

func (rs *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, rs.opTimeout)
	defer cancel()

	data, err := rs.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	return data, err
}

func (rs *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, rs.opTimeout)
	defer cancel()
	return rs.client.Set(ctx, key, value, 0).Err()
}

func (rs *RedisStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, rs.opTimeout)
	defer cancel()
	return rs.client.Del(ctx, key).Err()
}

func (rs *RedisStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, rs.opTimeout)
	defer cancel()

	var keys []string
	iter := rs.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	return keys, iter.Err()
}

func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
