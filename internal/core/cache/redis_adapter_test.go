package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"warehouse-gateway/internal/core/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) (*RedisAdapter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	adapter := NewRedisAdapter(config.RedisConfig{
		Host:   mr.Host(),
		Port:   port,
		Prefix: "warehouse",
	})
	t.Cleanup(func() { _ = adapter.Close() })

	return adapter, mr
}

func TestRedisAdapter_GetSet(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	err := adapter.Set(ctx, "test_key", []byte("test_value"), 10*time.Second)
	assert.NoError(t, err)

	retrievedValue, err := adapter.Get(ctx, "test_key")
	assert.NoError(t, err)
	assert.Equal(t, []byte("test_value"), retrievedValue)
}

func TestRedisAdapter_KeysArePrefixed(t *testing.T) {
	adapter, mr := newTestAdapter(t)

	require.NoError(t, adapter.Set(context.Background(), "token:shiprelay", []byte("abc"), 0))

	stored, err := mr.Get("warehouse:token:shiprelay")
	require.NoError(t, err)
	assert.Equal(t, "abc", stored)
	assert.False(t, mr.Exists("token:shiprelay"))
}

func TestRedisAdapter_GetNotFound(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	_, err := adapter.Get(context.Background(), "non_existent_key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisAdapter_SetReplaces(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "token:mintsoft", []byte("old"), 0))
	require.NoError(t, adapter.Set(ctx, "token:mintsoft", []byte("new"), time.Minute))

	value, err := adapter.Get(ctx, "token:mintsoft")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
}

func TestRedisAdapter_TTL(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "ttl_test", []byte("expires_soon"), time.Second))

	_, err := adapter.Get(ctx, "ttl_test")
	assert.NoError(t, err)
	assert.Equal(t, time.Second, mr.TTL("warehouse:ttl_test"))

	mr.FastForward(2 * time.Second)

	_, err = adapter.Get(ctx, "ttl_test")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisAdapter_Ping(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	assert.NoError(t, adapter.Ping(context.Background()))
}

func TestRedisAdapter_PingUnreachable(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	mr.Close()

	err := adapter.Ping(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping failed")
}

func TestNewRedisAdapterFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	adapter, err := NewRedisAdapterFromURL("redis://"+mr.Addr(), "")
	require.NoError(t, err)
	defer adapter.Close()

	require.NoError(t, adapter.Set(context.Background(), "plain", []byte("v"), 0))
	assert.True(t, mr.Exists("plain"))
}

func TestNewRedisAdapterFromURL_Invalid(t *testing.T) {
	_, err := NewRedisAdapterFromURL("invalid://url", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}

func TestNewFromConfig(t *testing.T) {
	t.Run("URLWins", func(t *testing.T) {
		mr := miniredis.RunT(t)

		adapter, err := NewFromConfig(config.RedisConfig{
			URL:    "redis://" + mr.Addr() + "/0",
			Host:   "unreachable.invalid",
			Port:   1,
			Prefix: "warehouse",
		})
		require.NoError(t, err)
		defer adapter.Close()

		require.NoError(t, adapter.Ping(context.Background()))
		require.NoError(t, adapter.Set(context.Background(), "token:shiprelay", []byte("t"), 0))
		assert.True(t, mr.Exists("warehouse:token:shiprelay"))
	})

	t.Run("HostAndPort", func(t *testing.T) {
		mr := miniredis.RunT(t)
		port, err := strconv.Atoi(mr.Port())
		require.NoError(t, err)

		adapter, err := NewFromConfig(config.RedisConfig{Host: mr.Host(), Port: port})
		require.NoError(t, err)
		defer adapter.Close()

		assert.NoError(t, adapter.Ping(context.Background()))
	})

	t.Run("BadURL", func(t *testing.T) {
		_, err := NewFromConfig(config.RedisConfig{URL: "invalid://url"})
		assert.ErrorContains(t, err, "failed to parse Redis URL")
	})
}
