package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/nikolayk812/storefront/internal/api"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	_, err := api.New(api.Config{BaseURL: "https://api.example.com"}, nil)
	require.EqualError(t, err, "storage is nil")

	_, err = api.New(api.Config{BaseURL: "api.example.com"}, newMemoryStore())
	require.EqualError(t, err, `base URL "api.example.com" is not absolute`)
}

func TestClientAttachesBearerToken(t *testing.T) {
	var rec recorder
	client, store := newTestClient(t, rec.wrap(jsonHandler(http.StatusOK, `[]`)))

	result := client.Categories(t.Context())
	require.True(t, result.Success, result.Error)
	assert.Empty(t, rec.last().Auth)
	assert.Equal(t, "/v1/categories", rec.last().Path)

	require.NoError(t, store.Set(t.Context(), domain.SessionTokenKey, "tok-123"))

	result = client.Categories(t.Context())
	require.True(t, result.Success, result.Error)
	assert.Equal(t, "Bearer tok-123", rec.last().Auth)
}

func TestClientTokenReadFailureStillSendsRequest(t *testing.T) {
	var rec recorder
	client, store := newTestClient(t, rec.wrap(jsonHandler(http.StatusOK, `[]`)))
	store.err = errors.New("disk unavailable")

	result := client.Banners(t.Context())
	assert.True(t, result.Success)
	require.Equal(t, 1, rec.count())
	assert.Empty(t, rec.last().Auth)
}

func TestClientUnauthorizedClearsSession(t *testing.T) {
	var hookCalls int
	client, store := newTestClient(t,
		jsonHandler(http.StatusUnauthorized, ``),
		api.WithUnauthorizedHook(func(context.Context) { hookCalls++ }),
	)

	ctx := t.Context()
	require.NoError(t, store.Set(ctx, domain.SessionTokenKey, "tok"))
	require.NoError(t, store.Set(ctx, domain.SessionProfileKey, `{"id":"1"}`))

	result := client.Addresses(ctx)

	assert.False(t, result.Success)
	assert.Equal(t, api.ErrUnauthorized.Error(), result.Error)
	assert.False(t, store.has(domain.SessionTokenKey))
	assert.False(t, store.has(domain.SessionProfileKey))
	assert.Equal(t, 1, hookCalls)
}

func TestClientUnauthorizedKeepsServerMessage(t *testing.T) {
	client, store := newTestClient(t, jsonHandler(http.StatusUnauthorized, `{"message":"jwt expired"}`))
	require.NoError(t, store.Set(t.Context(), domain.SessionTokenKey, "tok"))

	result := client.Addresses(t.Context())

	assert.False(t, result.Success)
	assert.Equal(t, "jwt expired", result.Error)
	assert.False(t, store.has(domain.SessionTokenKey))
}

func TestClientErrorMessages(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "top level message", status: http.StatusBadRequest, body: `{"message":"Invalid phone"}`, want: "Invalid phone"},
		{name: "nested error message", status: http.StatusConflict, body: `{"error":{"message":"Email taken"}}`, want: "Email taken"},
		{name: "error string", status: http.StatusNotFound, body: `{"error":"Not found"}`, want: "Not found"},
		{name: "errors array", status: http.StatusUnprocessableEntity, body: `{"errors":[{"message":"Too short"}]}`, want: "Too short"},
		{name: "plain text body", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, want: "request failed with status 502"},
		{name: "empty body", status: http.StatusInternalServerError, body: ``, want: "request failed with status 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, jsonHandler(tt.status, tt.body))

			result := client.Stocks(t.Context())
			assert.False(t, result.Success)
			assert.Equal(t, tt.want, result.Error)
		})
	}
}

func TestClientNetworkFailure(t *testing.T) {
	client, err := api.New(api.Config{BaseURL: "http://127.0.0.1:1"}, newMemoryStore())
	require.NoError(t, err)

	result := client.Categories(t.Context())
	assert.False(t, result.Success)
	assert.Equal(t, "network error, please check your connection", result.Error)
}

func TestClientTimeout(t *testing.T) {
	release := make(chan struct{})
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer close(release)

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	result := client.Products(ctx, api.ProductQuery{})
	assert.False(t, result.Success)
	assert.Equal(t, "the request timed out, please try again", result.Error)
}

func TestClientMalformedPayload(t *testing.T) {
	client, _ := newTestClient(t, jsonHandler(http.StatusOK, `{"data":[{"id":"1","name":"x","retailUnitPrice":"abc"}]}`))

	result := client.Products(t.Context(), api.ProductQuery{})
	assert.False(t, result.Success)
	assert.Equal(t, "unexpected response from the server", result.Error)
}
