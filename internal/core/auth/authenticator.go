// Package auth acquires provider credentials and keeps them in the token cache.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"warehouse-gateway/internal/core/apperror"
	"warehouse-gateway/internal/core/i18n"
)

// Authenticator produces a credential a provider accepts on every call.
type Authenticator interface {
	Authenticate(ctx context.Context) (string, error)
}

// APIKeyAuth is the authenticator of providers that accept a static key.
// No network call is made.
type APIKeyAuth struct {
	Provider string
	Key      string
}

// Authenticate returns the configured key.
func (a APIKeyAuth) Authenticate(_ context.Context) (string, error) {
	if a.Key == "" {
		return "", apperror.Authentication(i18n.T(i18n.MissingAPIKeyError)).WithProvider(a.Provider)
	}
	return a.Key, nil
}

// LoginAuth exchanges an email and password for a bearer token.
type LoginAuth struct {
	Provider string
	BaseURL  string
	Email    string
	Password string
	Client   *http.Client
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Authenticate posts the credentials to <BaseURL>/login once. It never retries.
func (a LoginAuth) Authenticate(ctx context.Context) (string, error) {
	payload, err := json.Marshal(loginRequest{Email: a.Email, Password: a.Password})
	if err != nil {
		return "", apperror.Internal("failed to encode login request").WithCause(err)
	}

	url := strings.TrimRight(a.BaseURL, "/") + "/login"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", apperror.Internal("failed to create login request").WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := a.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", a.failure(i18n.LoginFailed).WithCause(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", a.failure(i18n.LoginFailed).WithCause(err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return "", a.failure(i18n.InvalidCredentials).WithDetails(apperror.ResponseDetails(resp.StatusCode, body))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", a.failure(i18n.LoginFailed).
			WithDetails(apperror.ResponseDetails(resp.StatusCode, body)).
			WithCause(fmt.Errorf("login returned status %d", resp.StatusCode))
	}

	var parsed loginResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", a.failure(i18n.LoginFailed).WithCause(err)
	}
	if parsed.AccessToken == "" {
		return "", a.failure(i18n.MissingAccessTokenText)
	}

	return parsed.AccessToken, nil
}

func (a LoginAuth) failure(key string) *apperror.Error {
	return apperror.Authentication(i18n.T(key)).WithProvider(a.Provider)
}
