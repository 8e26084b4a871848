package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/venturelabs/vlops/internal/common"
	"github.com/venturelabs/vlops/internal/model"
)

// ListPerks fetches every perk.
func (c *Client) ListPerks(ctx context.Context) ([]model.Perk, error) {
	var perks []model.Perk
	if err := c.get(ctx, "/api/perks", nil, &perks); err != nil {
		return nil, fmt.Errorf("failed to list perks: %w", err)
	}
	return perks, nil
}

// GetPerk fetches a single perk.
func (c *Client) GetPerk(ctx context.Context, id int64) (*model.Perk, error) {
	var perk model.Perk
	if err := c.get(ctx, idPath("/api/perks/%d", id), nil, &perk); err != nil {
		return nil, fmt.Errorf("failed to get perk %d: %w", id, err)
	}
	return &perk, nil
}

// CreatePerk adds a perk. Name and URL are required.
func (c *Client) CreatePerk(ctx context.Context, input model.PerkInput) (*model.Perk, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.URL) == "" {
		return nil, fmt.Errorf("%w: perk name and url are required", common.ErrInvalidInput)
	}

	var perk model.Perk
	if err := c.send(ctx, http.MethodPost, "/api/perks", input, &perk); err != nil {
		return nil, fmt.Errorf("failed to create perk: %w", err)
	}
	return &perk, nil
}

// UpdatePerk replaces the editable fields of a perk and returns the new record.
func (c *Client) UpdatePerk(ctx context.Context, id int64, input model.PerkInput) (*model.Perk, error) {
	var perk model.Perk
	if err := c.send(ctx, http.MethodPut, idPath("/api/perks/%d", id), input, &perk); err != nil {
		return nil, fmt.Errorf("failed to update perk %d: %w", id, err)
	}
	return &perk, nil
}

// DeletePerk removes a perk.
func (c *Client) DeletePerk(ctx context.Context, id int64) error {
	if err := c.send(ctx, http.MethodDelete, idPath("/api/perks/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete perk %d: %w", id, err)
	}
	return nil
}

// ScrapeAll asks the backend to re-scrape every perk.
func (c *Client) ScrapeAll(ctx context.Context) (*model.ActionResult, error) {
	var result model.ActionResult
	if err := c.send(ctx, http.MethodPost, "/api/perks/scrape", nil, &result); err != nil {
		return nil, fmt.Errorf("failed to start scraper: %w", err)
	}
	return &result, nil
}

// ScrapePerk asks the backend to re-scrape one perk.
func (c *Client) ScrapePerk(ctx context.Context, id int64) (*model.ActionResult, error) {
	var result model.ActionResult
	if err := c.send(ctx, http.MethodPost, idPath("/api/perks/%d/scrape", id), nil, &result); err != nil {
		return nil, fmt.Errorf("failed to scrape perk %d: %w", id, err)
	}
	return &result, nil
}

// ScraperStatus reports whether the scraper is running and how its last run went.
func (c *Client) ScraperStatus(ctx context.Context) (*model.ScraperStatus, error) {
	var status model.ScraperStatus
	if err := c.get(ctx, "/api/perks/scraper-status", nil, &status); err != nil {
		return nil, fmt.Errorf("failed to get scraper status: %w", err)
	}
	return &status, nil
}
