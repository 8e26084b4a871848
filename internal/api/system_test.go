package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturelabs/vlops/internal/common"
	"github.com/venturelabs/vlops/internal/model"
)

func TestSystemStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/system/status", r.URL.Path)
		_, _ = w.Write([]byte(`{"api":"operational","scraper":"error","analyzer":"maintenance"}`))
	}), 1)

	status, err := client.SystemStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.SystemStatus{
		"api":      model.ComponentOperational,
		"scraper":  model.ComponentError,
		"analyzer": model.ComponentMaintenance,
	}, status)
}

func TestDashboardStats(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dashboard/stats", r.URL.Path)
		_, _ = w.Write([]byte(`{"perks":{"total":156,"successfulUpdates":142,"failedUpdates":14},
			"pitchdecks":{"total":48,"pending":12,"analyzed":30,"approved":4,"rejected":2}}`))
	}), 1)

	stats, err := client.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 156, stats.Perks.Total)
	assert.InDelta(t, 91.0, stats.Perks.SuccessRate(), 0.001)
	assert.Equal(t, 12, stats.PitchDecks.Pending)
}

func TestRecentActivity(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dashboard/activity", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1,"type":"perk_update","title":"AWS Activate updated","status":"success","timestamp":"2024-03-15T10:30:00Z"}]`))
	}), 1)

	activity, err := client.RecentActivity(context.Background())
	require.NoError(t, err)
	require.Len(t, activity, 1)
	assert.Equal(t, "perk_update", activity[0].Type)
}

func TestLogs(t *testing.T) {
	tests := []struct {
		name      string
		service   string
		wantPath  string
		wantQuery string
		limit     int
	}{
		{name: "with limit", service: "scraper", limit: 50, wantPath: "/api/logs/scraper", wantQuery: "limit=50"},
		{name: "server default", service: "analyzer", wantPath: "/api/logs/analyzer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				writeJSON(t, w, []model.LogEntry{{Level: "INFO", Service: tt.service, Message: "ok"}})
			}), 1)

			entries, err := client.Logs(context.Background(), tt.service, tt.limit)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.service, entries[0].Service)
		})
	}
}

func TestLogs_RequiresService(t *testing.T) {
	client, err := New(Config{})
	require.NoError(t, err)

	_, err = client.Logs(context.Background(), " ", 10)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
