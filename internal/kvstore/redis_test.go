package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	s, err := miniredis.Run()
	assert.NoError(t, err)
	opts := &RedisOptions{
		Addr:            s.Addr(),
		Password:        "",
		DB:              0,
		PoolSize:        5,
		MinIdleConns:    1,
		MaxRetries:      1,
		MinRetryBackoff: 1 * time.Millisecond,
		MaxRetryBackoff: 10 * time.Millisecond,
		OpTimeout:       100 * time.Millisecond,
	}
	return NewRedisStore(opts), s
}

func TestRedisStoreDefaultOpTimeout_NoPanic(t *testing.T) {
	s, err := miniredis.Run()
	assert.NoError(t, err)
	defer s.Close()

	rs := NewRedisStore(&RedisOptions{Addr: s.Addr()})
	defer rs.Close()

	ctx := context.Background()
	assert.NoError(t, rs.Set(ctx, "foo", []byte("bar")))
	v, err := rs.Get(ctx, "foo")
	assert.NoError(t, err)
	assert.Equal(t, []byte("bar"), v)
}

func TestRedisStoreBasicAndEdgeCases(t *testing.T) {
	rs, s := setupRedisStore(t)
	defer func() {
		rs.Close()
		s.Close()
	}()
	ctx := context.Background()

	assert.NoError(t, rs.Set(ctx, "key", []byte("value")))
	v, err := rs.Get(ctx, "key")
	assert.NoError(t, err)
	assert.Equal(t, []byte("value"), v)

	_, err = rs.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.NoError(t, rs.Delete(ctx, "key"))
	_, err = rs.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisStoreKeysByPrefix(t *testing.T) {
	rs, s := setupRedisStore(t)
	defer func() {
		rs.Close()
		s.Close()
	}()
	ctx := context.Background()

	assert.NoError(t, rs.Set(ctx, "favorites_1", []byte("[]")))
	assert.NoError(t, rs.Set(ctx, "favorites_2", []byte("[]")))
	assert.NoError(t, rs.Set(ctx, "users", []byte("[]")))

	keys, err := rs.Keys(ctx, "favorites_")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"favorites_1", "favorites_2"}, keys)
}
