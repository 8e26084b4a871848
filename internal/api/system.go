package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/venturelabs/vlops/internal/common"
	"github.com/venturelabs/vlops/internal/model"
)

// SystemStatus fetches the health of each backend component.
func (c *Client) SystemStatus(ctx context.Context) (model.SystemStatus, error) {
	var status model.SystemStatus
	if err := c.get(ctx, "/api/system/status", nil, &status); err != nil {
		return nil, fmt.Errorf("failed to get system status: %w", err)
	}
	return status, nil
}

// DashboardStats fetches the headline numbers for the overview screen.
func (c *Client) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := c.get(ctx, "/api/dashboard/stats", nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return &stats, nil
}

// RecentActivity fetches the activity feed, newest first.
func (c *Client) RecentActivity(ctx context.Context) ([]model.Activity, error) {
	var activity []model.Activity
	if err := c.get(ctx, "/api/dashboard/activity", nil, &activity); err != nil {
		return nil, fmt.Errorf("failed to get recent activity: %w", err)
	}
	return activity, nil
}

// Logs fetches recent log lines of a backend service. A limit of zero leaves
// the page size to the server.
func (c *Client) Logs(ctx context.Context, service string, limit int) ([]model.LogEntry, error) {
	service = strings.TrimSpace(service)
	if service == "" {
		return nil, fmt.Errorf("%w: service name is required", common.ErrInvalidInput)
	}

	var query url.Values
	if limit > 0 {
		query = url.Values{"limit": []string{strconv.Itoa(limit)}}
	}

	var entries []model.LogEntry
	if err := c.get(ctx, "/api/logs/"+url.PathEscape(service), query, &entries); err != nil {
		return nil, fmt.Errorf("failed to get %s logs: %w", service, err)
	}
	return entries, nil
}
