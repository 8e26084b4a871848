package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/venturelabs/vlops/internal/common"
	"github.com/venturelabs/vlops/internal/model"
	"github.com/venturelabs/vlops/internal/service"
)

// ListApplications fetches applications, filtered server-side.
func (c *Client) ListApplications(ctx context.Context, filter service.ApplicationFilter) ([]model.Application, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Sector != "" {
		query.Set("sector", filter.Sector)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	var apps []model.Application
	if err := c.get(ctx, "/api/pitchdecks", query, &apps); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// GetApplication fetches one application with its extracted fields and comments.
func (c *Client) GetApplication(ctx context.Context, id int64) (*model.Application, error) {
	var app model.Application
	if err := c.get(ctx, idPath("/api/pitchdecks/%d", id), nil, &app); err != nil {
		return nil, fmt.Errorf("failed to get application %d: %w", id, err)
	}
	return &app, nil
}

// UploadApplication sends a pitch deck and its metadata as a multipart form.
func (c *Client) UploadApplication(ctx context.Context, req model.UploadRequest) (*model.Application, error) {
	if req.File == nil {
		return nil, fmt.Errorf("%w: pitch deck file is required", common.ErrInvalidInput)
	}
	if strings.TrimSpace(req.TeamName) == "" {
		return nil, fmt.Errorf("%w: team name is required", common.ErrInvalidInput)
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	fields := []struct{ name, value string }{
		{"team_name", req.TeamName},
		{"company_name", req.CompanyName},
		{"sector", req.Sector},
		{"stage", req.Stage},
		{"funding_asked", req.FundingAsked},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := form.WriteField(f.name, f.value); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", f.name, err)
		}
	}

	name := filepath.Base(req.FileName)
	if name == "." || name == string(filepath.Separator) {
		name = "pitch.pdf"
	}
	part, err := form.CreateFormFile("file", name)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, req.File); err != nil {
		return nil, fmt.Errorf("failed to read pitch deck: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish upload form: %w", err)
	}

	var app model.Application
	if err := c.do(ctx, http.MethodPost, "/api/pitchdecks/upload", nil, &body, form.FormDataContentType(), &app); err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	return &app, nil
}

// AnalyzeApplication queues the AI analysis of one application.
func (c *Client) AnalyzeApplication(ctx context.Context, id int64) (*model.ActionResult, error) {
	var result model.ActionResult
	if err := c.send(ctx, http.MethodPost, idPath("/api/pitchdecks/%d/analyze", id), nil, &result); err != nil {
		return nil, fmt.Errorf("failed to analyze application %d: %w", id, err)
	}
	return &result, nil
}

// AnalyzeBatch queues the analysis of several applications in one request.
func (c *Client) AnalyzeBatch(ctx context.Context, ids []int64) (*model.ActionResult, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no applications to analyze", common.ErrInvalidInput)
	}

	payload := struct {
		ApplicationIDs []int64 `json:"application_ids"`
	}{ApplicationIDs: ids}

	var result model.ActionResult
	if err := c.send(ctx, http.MethodPost, "/api/pitchdecks/analyze-batch", payload, &result); err != nil {
		return nil, fmt.Errorf("failed to analyze %d applications: %w", len(ids), err)
	}
	return &result, nil
}

// AnalysisStatus reports the progress of an application's analysis.
func (c *Client) AnalysisStatus(ctx context.Context, id int64) (*model.AnalysisProgress, error) {
	var progress model.AnalysisProgress
	if err := c.get(ctx, idPath("/api/pitchdecks/%d/analysis-status", id), nil, &progress); err != nil {
		return nil, fmt.Errorf("failed to get analysis status for %d: %w", id, err)
	}
	return &progress, nil
}

// UpdateReview records the human review decision and returns the updated
// application.
func (c *Client) UpdateReview(ctx context.Context, id int64, status model.ReviewStatus) (*model.Application, error) {
	if !status.Settable() {
		return nil, fmt.Errorf("%w: review status %q", common.ErrInvalidInput, status)
	}

	payload := struct {
		Status model.ReviewStatus `json:"status"`
	}{Status: status}

	var app model.Application
	if err := c.send(ctx, http.MethodPut, idPath("/api/pitchdecks/%d/review", id), payload, &app); err != nil {
		return nil, fmt.Errorf("failed to update review for %d: %w", id, err)
	}
	return &app, nil
}

// AddComment attaches a reviewer comment to an application.
func (c *Client) AddComment(ctx context.Context, id int64, comment string) (*model.Comment, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, common.NewUserError("Comment cannot be empty.", fmt.Errorf("%w: comment is empty", common.ErrInvalidInput))
	}

	payload := struct {
		Comment string `json:"comment"`
	}{Comment: comment}

	var created model.Comment
	if err := c.send(ctx, http.MethodPost, idPath("/api/pitchdecks/%d/comments", id), payload, &created); err != nil {
		return nil, fmt.Errorf("failed to add comment to %d: %w", id, err)
	}
	return &created, nil
}
