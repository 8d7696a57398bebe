package httpclient

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"warehouse-gateway/internal/core/logger"
	"warehouse-gateway/internal/core/proxy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggingRoundTripper verifies that requests pass through the logging transport.
func TestLoggingRoundTripper(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key-1", r.Header.Get("ms-apikey"))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	require.NoError(t, logger.Init("development", "debug"))

	client := NewClient("mintsoft", time.Second, proxy.Settings{})
	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)
	req.Header.Set("ms-apikey", "key-1")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestLoggingRoundTripper_Error verifies that failed requests are returned.
func TestLoggingRoundTripper_Error(t *testing.T) {
	require.NoError(t, logger.Init("development", "debug"))

	client := NewClient("shiprelay", time.Second, proxy.Settings{})
	_, err := client.Get("http://invalid-url-that-does-not-exist.local")
	require.Error(t, err)
}

// TestNewClient_Timeout verifies that slow upstreams are cut off.
func TestNewClient_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	client := NewClient("shiprelay", 50*time.Millisecond, proxy.Settings{})
	_, err := client.Get(ts.URL)
	require.Error(t, err)
}

// TestNewClient_Proxy verifies that the configured proxy is used by the transport.
func TestNewClient_Proxy(t *testing.T) {
	settings := proxy.Settings{Enabled: true, Hostname: "proxy.local", Port: 3128}
	client := NewClient("mintsoft", time.Second, settings)

	lrt, ok := client.Transport.(*LoggingRoundTripper)
	require.True(t, ok)
	assert.Equal(t, "mintsoft", lrt.Provider)

	transport, ok := lrt.Proxied.(*http.Transport)
	require.True(t, ok)

	target, _ := url.Parse("https://api.mintsoft.co.uk/api/Product/List")
	proxyURL, err := transport.Proxy(&http.Request{URL: target})
	require.NoError(t, err)
	require.NotNil(t, proxyURL)
	assert.Equal(t, "proxy.local:3128", proxyURL.Host)
}
