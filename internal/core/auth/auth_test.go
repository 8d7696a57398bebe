package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"warehouse-gateway/internal/core/apperror"
	"warehouse-gateway/internal/core/cache"
	"warehouse-gateway/internal/core/config"
	"warehouse-gateway/internal/core/i18n"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingAuth struct {
	token string
	err   error
	calls int
}

func (c *countingAuth) Authenticate(_ context.Context) (string, error) {
	c.calls++
	return c.token, c.err
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection reset")
}

func (brokenStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection reset")
}
func (brokenStore) Ping(context.Context) error { return nil }
func (brokenStore) Close() error               { return nil }

func newRedisCache(t *testing.T) (*TokenCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	adapter := cache.NewRedisAdapter(config.RedisConfig{Host: mr.Host(), Port: port, Prefix: "test"})
	t.Cleanup(func() { _ = adapter.Close() })

	return NewTokenCache(adapter), mr
}

func TestAPIKeyAuth(t *testing.T) {
	token, err := APIKeyAuth{Provider: "mintsoft", Key: "key-123"}.Authenticate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "key-123", token)
}

func TestAPIKeyAuth_MissingKey(t *testing.T) {
	_, err := APIKeyAuth{Provider: "mintsoft"}.Authenticate(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrAuthentication)
}

func TestLoginAuth_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ops@example.com", body["email"])
		assert.Equal(t, "secret", body["password"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"bearer-abc","token_type":"Bearer"}`))
	}))
	defer ts.Close()

	a := LoginAuth{Provider: "shiprelay", BaseURL: ts.URL + "/", Email: "ops@example.com", Password: "secret", Client: ts.Client()}

	token, err := a.Authenticate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bearer-abc", token)
}

func TestLoginAuth_InvalidCredentials(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer ts.Close()

	a := LoginAuth{Provider: "shiprelay", BaseURL: ts.URL, Client: ts.Client()}

	_, err := a.Authenticate(context.Background())
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindAuthentication, appErr.Kind)
	assert.Equal(t, i18n.T(i18n.InvalidCredentials), appErr.Message)
	assert.Equal(t, http.StatusUnauthorized, appErr.Details.(map[string]any)["status"])
}

func TestLoginAuth_UpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("bad gateway"))
	}))
	defer ts.Close()

	a := LoginAuth{Provider: "shiprelay", BaseURL: ts.URL, Client: ts.Client()}

	_, err := a.Authenticate(context.Background())
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindAuthentication, appErr.Kind)
	assert.Equal(t, i18n.T(i18n.LoginFailed), appErr.Message)
	assert.Equal(t, map[string]any{"status": http.StatusBadGateway, "body": "bad gateway"}, appErr.Details)
}

func TestLoginAuth_MissingToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	a := LoginAuth{Provider: "shiprelay", BaseURL: ts.URL, Client: ts.Client()}

	_, err := a.Authenticate(context.Background())
	assert.ErrorIs(t, err, apperror.ErrAuthentication)
}

func TestLoginAuth_NetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := LoginAuth{Provider: "shiprelay", BaseURL: url}.Authenticate(context.Background())
	assert.ErrorIs(t, err, apperror.ErrAuthentication)
}

func TestTokenCache_RoundTrip(t *testing.T) {
	tc, _ := newRedisCache(t)
	ctx := context.Background()

	require.NoError(t, tc.Set(ctx, "token:shiprelay", "abc", time.Hour))

	token, found, err := tc.Get(ctx, "token:shiprelay")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "abc", token)
}

func TestTokenCache_Absent(t *testing.T) {
	tc, _ := newRedisCache(t)

	token, found, err := tc.Get(context.Background(), "token:mintsoft")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, token)
}

func TestTokenSource_CacheHitSkipsAuthentication(t *testing.T) {
	tc, _ := newRedisCache(t)
	require.NoError(t, tc.Set(context.Background(), TokenKey("shiprelay"), "cached", time.Hour))

	a := &countingAuth{token: "fresh"}
	src := NewTokenSource("shiprelay", tc, a, time.Hour, nil)

	token, err := src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cached", token)
	assert.Equal(t, 0, a.calls)
}

func TestTokenSource_MissAuthenticatesOnceAndCaches(t *testing.T) {
	tc, mr := newRedisCache(t)
	a := &countingAuth{token: "fresh"}
	ttl := 8760 * time.Hour
	src := NewTokenSource("shiprelay", tc, a, ttl, nil)

	token, err := src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
	assert.Equal(t, 1, a.calls)

	stored, err := mr.Get("test:token:shiprelay")
	require.NoError(t, err)
	assert.Equal(t, "fresh", stored)
	assert.Equal(t, ttl, mr.TTL("test:token:shiprelay"))

	_, err = src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, a.calls)
}

func TestTokenSource_ExpiredTokenReauthenticates(t *testing.T) {
	tc, mr := newRedisCache(t)
	a := &countingAuth{token: "fresh"}
	src := NewTokenSource("mintsoft", tc, a, time.Minute, nil)

	_, err := src.Token(context.Background())
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, a.calls)
}

func TestTokenSource_RefreshBypassesCache(t *testing.T) {
	tc, mr := newRedisCache(t)
	require.NoError(t, tc.Set(context.Background(), TokenKey("shiprelay"), "stale", time.Hour))

	a := &countingAuth{token: "fresh"}
	src := NewTokenSource("shiprelay", tc, a, time.Hour, nil)

	token, err := src.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
	assert.Equal(t, 1, a.calls)

	stored, _ := mr.Get("test:token:shiprelay")
	assert.Equal(t, "fresh", stored)
}

func TestTokenSource_AuthenticationFailure(t *testing.T) {
	tc, mr := newRedisCache(t)
	a := &countingAuth{err: apperror.Authentication("bad credentials")}
	src := NewTokenSource("shiprelay", tc, a, time.Hour, nil)

	_, err := src.Token(context.Background())
	assert.ErrorIs(t, err, apperror.ErrAuthentication)
	assert.False(t, mr.Exists("test:token:shiprelay"))
}

func TestTokenSource_BrokenCacheFallsBackToAuthentication(t *testing.T) {
	a := &countingAuth{token: "fresh"}
	src := NewTokenSource("mintsoft", NewTokenCache(brokenStore{}), a, time.Hour, nil)

	token, err := src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
	assert.Equal(t, 1, a.calls)
}
