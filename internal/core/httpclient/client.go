package httpclient

import (
	"net/http"
	"time"

	"warehouse-gateway/internal/core/logger"
	"warehouse-gateway/internal/core/proxy"

	"go.uber.org/zap"
)

// LoggingRoundTripper logs outbound provider requests.
// Request headers are never logged since they carry credentials.
type LoggingRoundTripper struct {
	// Provider labels every log entry.
	Provider string
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logger.Ctx(req.Context())

	// Query strings are kept; credentials only travel in headers.
	log.Debug("HTTP Request Started",
		zap.String("provider", lrt.Provider),
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		log.Error("HTTP Request Failed",
			zap.String("provider", lrt.Provider),
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	log.Debug("HTTP Request Completed",
		zap.String("provider", lrt.Provider),
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client for one provider with logging middleware,
// a per-request timeout and the optional outbound proxy.
func NewClient(provider string, timeout time.Duration, proxySettings proxy.Settings) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = proxySettings.Func()

	return &http.Client{
		Transport: &LoggingRoundTripper{
			Provider: provider,
			Proxied:  transport,
		},
		Timeout: timeout,
	}
}
