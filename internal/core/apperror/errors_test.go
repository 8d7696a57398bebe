package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"warehouse-gateway/internal/core/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	err := apperror.NotFound("Product not found").WithProvider("mintsoft")
	assert.Equal(t, "mintsoft not_found error: Product not found", err.Error())
}

func TestError_ErrorWithCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperror.Upstream("request failed").WithCause(cause)

	assert.Contains(t, err.Error(), "request failed")
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))
}

func TestError_IsByKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", apperror.Unauthorized("token rejected").WithProvider("shiprelay"))

	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))
	assert.False(t, errors.Is(err, apperror.ErrAuthentication))
}

func TestKind_Status(t *testing.T) {
	tests := []struct {
		kind   apperror.Kind
		status int
	}{
		{apperror.KindValidation, http.StatusBadRequest},
		{apperror.KindAuthentication, http.StatusUnauthorized},
		{apperror.KindUnauthorized, http.StatusUnauthorized},
		{apperror.KindNotFound, http.StatusNotFound},
		{apperror.KindUpstream, http.StatusBadRequest},
		{apperror.KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.status, tt.kind.Status())
			assert.Equal(t, tt.status, apperror.New(tt.kind, "msg").Status)
		})
	}
}

func TestValidation_Details(t *testing.T) {
	err := apperror.Validation("invalid", map[string]string{"limit": "Limit must be at least 1"})

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"limit": "Limit must be at least 1"}, appErr.Details)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(apperror.NotFound("x")))
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(errors.New("plain")))
}

func TestIsTokenRejected(t *testing.T) {
	assert.True(t, apperror.IsTokenRejected(apperror.Unauthorized("expired")))
	assert.False(t, apperror.IsTokenRejected(apperror.Authentication("bad password")))
	assert.False(t, apperror.IsTokenRejected(apperror.Upstream("boom")))
	assert.False(t, apperror.IsTokenRejected(nil))
}

func TestResponseDetails(t *testing.T) {
	assert.Equal(t,
		map[string]any{"status": 422, "body": map[string]any{"message": "SKU taken"}},
		apperror.ResponseDetails(422, []byte(`{"message":"SKU taken"}`)))
	assert.Equal(t,
		map[string]any{"status": 502, "body": "bad gateway"},
		apperror.ResponseDetails(502, []byte("bad gateway")))
	assert.Equal(t,
		map[string]any{"status": 500},
		apperror.ResponseDetails(500, nil))
}
