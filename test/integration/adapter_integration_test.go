//go:build integration

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/motivation-page/internal/adapters/clients"
	"github.com/jsamuelsen/motivation-page/internal/adapters/clients/acl"
	"github.com/jsamuelsen/motivation-page/internal/domain"
)

// newAPODAdapter wires a real HTTP client against the given base URL.
func newAPODAdapter(t *testing.T, baseURL string) *acl.APODClient {
	t.Helper()

	client, err := clients.New(&clients.Config{
		ServiceName: "apod",
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
	})
	require.NoError(t, err)

	return acl.NewAPODClient(client, "DEMO_KEY")
}

// TestAPODAdapter_FetchToday_Integration verifies the full flow of
// fetching the picture of the day through the adapter.
func TestAPODAdapter_FetchToday_Integration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/planetary/apod", r.URL.Path)
		assert.Equal(t, "DEMO_KEY", r.URL.Query().Get("api_key"))
		assert.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"url": "https://apod.nasa.gov/apod/image/today.jpg",
			"hdurl": "https://apod.nasa.gov/apod/image/today_hd.jpg",
			"title": "A Test Nebula",
			"explanation": "Dust and gas.",
			"media_type": "image"
		}`))
	}))
	defer server.Close()

	adapter := newAPODAdapter(t, server.URL)

	picture, err := adapter.FetchToday(context.Background())

	require.NoError(t, err)
	require.NotNil(t, picture.URL)
	assert.Equal(t, "https://apod.nasa.gov/apod/image/today.jpg", *picture.URL)
	require.NotNil(t, picture.Title)
	assert.Equal(t, "A Test Nebula", *picture.Title)
	assert.False(t, picture.IsVideo())
	assert.Nil(t, picture.Copyright)
}

// TestAPODAdapter_ErrorMapping_Integration verifies that provider
// failures map to domain Unavailable errors, and that the client makes
// exactly one attempt per fetch.
func TestAPODAdapter_ErrorMapping_Integration(t *testing.T) {
	var calls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	adapter := newAPODAdapter(t, server.URL)

	picture, err := adapter.FetchToday(context.Background())

	require.Error(t, err)
	assert.Nil(t, picture)
	assert.True(t, domain.IsUnavailable(err))
	assert.Equal(t, int64(1), calls.Load())
}
