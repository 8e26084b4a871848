package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturelabs/vlops/internal/common"
	"github.com/venturelabs/vlops/internal/service"
)

func newTestClient(t *testing.T, handler http.Handler, retries int) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
		UserAgent:  "vlops/test",
		Retry: service.RetryOptions{
			MaxAttempts:  retries,
			InitialDelay: time.Millisecond,
			MaxDelay:     2 * time.Millisecond,
		},
	})
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNew_ValidatesBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"empty uses default", "", false},
		{"http", "http://localhost:8000", false},
		{"https with prefix", "https://ops.example.com/backend", false},
		{"bad scheme", "ftp://example.com", true},
		{"no host", "http://", true},
		{"unparsable", "http://[::1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(Config{BaseURL: tt.baseURL})
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestNew_DefaultBaseURL(t *testing.T) {
	client, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.BaseURL())
}

func TestClient_SetsRequestHeaders(t *testing.T) {
	var gotID, gotUA, gotAccept string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get(RequestIDHeader)
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		writeJSON(t, w, []any{})
	}), 1)

	_, err := client.ListPerks(context.Background())
	require.NoError(t, err)

	_, parseErr := uuid.Parse(gotID)
	assert.NoError(t, parseErr, "request id should be a uuid")
	assert.Equal(t, "vlops/test", gotUA)
	assert.Equal(t, "application/json", gotAccept)
}

func TestClient_RequestIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[r.Header.Get(RequestIDHeader)] = true
		writeJSON(t, w, []any{})
	}), 1)

	for range 3 {
		_, err := client.ListPerks(context.Background())
		require.NoError(t, err)
	}
	assert.Len(t, seen, 3)
}

func TestClient_RetriesServerErrorsOnReads(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "upstream down", http.StatusBadGateway)
			return
		}
		writeJSON(t, w, []any{})
	}), 3)

	perks, err := client.ListPerks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, perks)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}), 3)

	_, err := client.GetPerk(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestClient_DoesNotRetryMutations(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}), 3)

	_, err := client.ScrapeAll(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, KindServer, Categorize(err))
}

func TestClient_ExhaustedRetriesKeepStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}), 2)

	_, err := client.DashboardStats(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMaxRetries)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, "maintenance", statusErr.Body)
}

func TestClient_MalformedPayload(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"perks": [`))
	}), 1)

	_, err := client.ListPerks(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPayload)
	assert.Equal(t, KindGeneric, Categorize(err))
}

func TestClient_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	client, err := New(Config{BaseURL: baseURL, Timeout: time.Second})
	require.NoError(t, err)

	_, err = client.ListPerks(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindConnectivity, Categorize(err))
	assert.Equal(t, "Unable to connect to server. Please check your connection.", UserMessage(err))
}

func TestClient_CanceledContext(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []any{})
	}), 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListPerks(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, KindGeneric, Categorize(err))
}

func TestClient_BaseURLPrefix(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeJSON(t, w, map[string]string{})
	}))
	t.Cleanup(srv.Close)

	client, err := New(Config{BaseURL: srv.URL + "/backend", HTTPClient: srv.Client()})
	require.NoError(t, err)

	_, err = client.SystemStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/backend/api/system/status", gotPath)
}
