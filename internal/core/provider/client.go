// Package provider performs authenticated calls against a warehouse provider API.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"warehouse-gateway/internal/core/apperror"
	"warehouse-gateway/internal/core/i18n"
	"warehouse-gateway/internal/core/logger"
	"warehouse-gateway/internal/core/retry"
	"warehouse-gateway/internal/core/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// TokenSource supplies the credential attached to each call.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Refresh(ctx context.Context) (string, error)
}

// HeaderFunc maps a token to the header that carries it.
type HeaderFunc func(token string) (name, value string)

// BearerHeader sends the token as "Authorization: Bearer <token>".
func BearerHeader(token string) (string, string) {
	return "Authorization", "Bearer " + token
}

// APIKeyHeader sends the token verbatim in the named header.
func APIKeyHeader(name string) HeaderFunc {
	return func(token string) (string, string) {
		return name, token
	}
}

// Options configures a Client.
type Options struct {
	Name        string
	BaseURL     string
	HTTP        *http.Client
	Tokens      TokenSource
	Header      HeaderFunc
	MaxAttempts int
	Metrics     *telemetry.Metrics
	Tracer      trace.Tracer
}

// Client issues calls to one provider. It is safe for concurrent use.
type Client struct {
	name        string
	baseURL     string
	http        *http.Client
	tokens      TokenSource
	header      HeaderFunc
	maxAttempts int
	metrics     *telemetry.Metrics
	tracer      trace.Tracer
}

// New creates a provider client.
func New(opts Options) *Client {
	c := &Client{
		name:        opts.Name,
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		http:        opts.HTTP,
		tokens:      opts.Tokens,
		header:      opts.Header,
		maxAttempts: opts.MaxAttempts,
		metrics:     opts.Metrics,
		tracer:      opts.Tracer,
	}
	if c.http == nil {
		c.http = http.DefaultClient
	}
	if c.header == nil {
		c.header = BearerHeader
	}
	if c.tracer == nil {
		c.tracer = telemetry.Tracer("warehouse-gateway/provider")
	}
	return c
}

// Name returns the provider name.
func (c *Client) Name() string {
	return c.name
}

// Call describes one upstream request.
type Call struct {
	// Operation names the call in metrics, spans and logs, e.g. "product.list".
	Operation string
	Method    string
	Path      string
	Query     url.Values
	// Body is JSON-encoded when non-nil.
	Body any
	// NotFoundKey is the message key used when the provider answers 404.
	// Empty means a 404 is reported as an upstream failure.
	NotFoundKey string
}

// Do runs the call, re-authenticating when the provider rejects the token.
func (c *Client) Do(ctx context.Context, call Call) (json.RawMessage, error) {
	ctx, span := c.tracer.Start(ctx, c.name+"."+call.Operation, trace.WithAttributes(
		attribute.String("provider", c.name),
		attribute.String("http.method", call.Method),
		attribute.String("http.route", call.Path),
	))
	defer span.End()

	var token string
	coordinator := retry.Coordinator{
		MaxAttempts: c.maxAttempts,
		Refresh: func(ctx context.Context) error {
			fresh, err := c.tokens.Refresh(ctx)
			if err != nil {
				return err
			}
			token = fresh
			return nil
		},
		OnRetry: func(attempt int, err error) {
			c.metrics.RecordRetry(c.name)
			logger.Ctx(ctx).Warn("Provider rejected token, re-authenticating",
				zap.String("provider", c.name),
				zap.String("operation", call.Operation),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		},
	}

	body, err := retry.Do(ctx, coordinator, func(ctx context.Context) (json.RawMessage, error) {
		if token == "" {
			t, err := c.tokens.Token(ctx)
			if err != nil {
				return nil, err
			}
			token = t
		}
		return c.send(ctx, call, token)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return body, nil
}

func (c *Client) send(ctx context.Context, call Call, token string) (json.RawMessage, error) {
	endpoint := c.baseURL + call.Path
	if len(call.Query) > 0 {
		endpoint += "?" + call.Query.Encode()
	}

	var reader io.Reader
	if call.Body != nil {
		payload, err := json.Marshal(call.Body)
		if err != nil {
			return nil, apperror.Internal("failed to encode request body").WithCause(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, endpoint, reader)
	if err != nil {
		return nil, apperror.Internal("failed to create request").WithCause(err)
	}
	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	name, value := c.header(token)
	req.Header.Set(name, value)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.RecordRequest(c.name, call.Operation, "error", time.Since(start).Seconds())
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, apperror.Upstream(i18n.T(i18n.UpstreamError)).WithProvider(c.name).WithCause(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	c.metrics.RecordRequest(c.name, call.Operation, strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if err != nil {
		return nil, apperror.Upstream(i18n.T(i18n.UpstreamError)).WithProvider(c.name).WithCause(err)
	}

	return c.classify(call, resp.StatusCode, body)
}

// classify maps an upstream response to a body or an error.
func (c *Client) classify(call Call, status int, body []byte) (json.RawMessage, error) {
	switch {
	case status >= 200 && status < 300:
		return normalize(body), nil
	case status == http.StatusUnauthorized:
		return nil, apperror.Unauthorized(i18n.T(i18n.UnauthorizedError)).
			WithProvider(c.name).
			WithDetails(apperror.ResponseDetails(status, body))
	case status == http.StatusNotFound && call.NotFoundKey != "":
		return nil, apperror.NotFound(i18n.T(call.NotFoundKey)).
			WithProvider(c.name).
			WithDetails(apperror.ResponseDetails(status, body))
	default:
		return nil, apperror.Upstream(i18n.T(i18n.UpstreamError)).
			WithProvider(c.name).
			WithDetails(apperror.ResponseDetails(status, body))
	}
}

// normalize makes any success body safe to embed in a JSON response.
func normalize(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	quoted, _ := json.Marshal(string(trimmed))
	return quoted
}
