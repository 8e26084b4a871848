package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturelabs/vlops/internal/common"
	"github.com/venturelabs/vlops/internal/model"
	"github.com/venturelabs/vlops/internal/service"
)

func TestListApplications_QueryParameters(t *testing.T) {
	tests := []struct {
		name   string
		filter service.ApplicationFilter
		want   string
	}{
		{name: "no filter", want: ""},
		{name: "status only", filter: service.ApplicationFilter{Status: "pending"}, want: "status=pending"},
		{
			name:   "all fields",
			filter: service.ApplicationFilter{Status: "analyzed", Sector: "FinTech", Search: "pay"},
			want:   "search=pay&sector=FinTech&status=analyzed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/pitchdecks", r.URL.Path)
				assert.Equal(t, tt.want, r.URL.RawQuery)
				writeJSON(t, w, []model.Application{})
			}), 1)

			apps, err := client.ListApplications(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Empty(t, apps)
		})
	}
}

func TestGetApplication_DecodesAnalysis(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/pitchdecks/2", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":2,"teamName":"HealthAI","status":"analyzed","aiScore":0,
			"humanReview":"pending","analysisStatus":"completed",
			"extractedFields":{"problem":"Diagnostics are slow","market_size":"$12B"},
			"comments":[{"id":1,"author":"Dana","content":"Strong team"}]}`))
	}), 1)

	app, err := client.GetApplication(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, app.AIScore)
	assert.Equal(t, 0, *app.AIScore)
	assert.Equal(t, model.ScoreLow, app.Band())
	assert.Equal(t, []string{"market_size", "problem"}, app.ExtractedFields.Keys())
	require.Len(t, app.Comments, 1)
	assert.Equal(t, "Dana", app.Comments[0].Author)
}

func TestUploadApplication_Multipart(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/pitchdecks/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Orbit", r.FormValue("team_name"))
		assert.Equal(t, "Orbit Labs", r.FormValue("company_name"))
		assert.Equal(t, "SpaceTech", r.FormValue("sector"))
		assert.Empty(t, r.MultipartForm.Value["stage"])

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "deck.pdf", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4", string(content))

		writeJSON(t, w, model.Application{ID: 11, TeamName: "Orbit", Status: model.ApplicationPending})
	}), 1)

	app, err := client.UploadApplication(context.Background(), model.UploadRequest{
		File:        strings.NewReader("%PDF-1.4"),
		FileName:    "/tmp/decks/deck.pdf",
		TeamName:    "Orbit",
		CompanyName: "Orbit Labs",
		Sector:      "SpaceTech",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), app.ID)
}

func TestUploadApplication_Validation(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request")
	}), 1)

	_, err := client.UploadApplication(context.Background(), model.UploadRequest{TeamName: "Orbit"})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = client.UploadApplication(context.Background(), model.UploadRequest{File: strings.NewReader("x")})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestAnalyzeBatch(t *testing.T) {
	t.Run("sends ids", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/pitchdecks/analyze-batch", r.URL.Path)
			var body map[string][]int64
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, []int64{1, 3}, body["application_ids"])
			writeJSON(t, w, model.ActionResult{Message: "queued", IDs: body["application_ids"]})
		}), 1)

		result, err := client.AnalyzeBatch(context.Background(), []int64{1, 3})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 3}, result.IDs)
	})

	t.Run("empty ids", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected request")
		}), 1)

		_, err := client.AnalyzeBatch(context.Background(), nil)
		assert.ErrorIs(t, err, common.ErrInvalidInput)
	})
}

func TestAnalyzeAndStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/pitchdecks/5/analyze":
			assert.Equal(t, http.MethodPost, r.Method)
			writeJSON(t, w, model.ActionResult{Message: "Analysis started"})
		case "/api/pitchdecks/5/analysis-status":
			writeJSON(t, w, model.AnalysisProgress{ApplicationID: 5, Status: model.AnalysisPending, Progress: 40})
		default:
			http.NotFound(w, r)
		}
	}), 1)

	result, err := client.AnalyzeApplication(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Analysis started", result.Message)

	progress, err := client.AnalysisStatus(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 40, progress.Progress)
	assert.Equal(t, model.AnalysisPending, progress.Status)
}

func TestUpdateReview(t *testing.T) {
	t.Run("sends status", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/pitchdecks/2/review", r.URL.Path)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "approved", body["status"])
			writeJSON(t, w, model.Application{ID: 2, HumanReview: model.ReviewApproved, Status: model.ApplicationApproved})
		}), 1)

		app, err := client.UpdateReview(context.Background(), 2, model.ReviewApproved)
		require.NoError(t, err)
		assert.Equal(t, model.ReviewApproved, app.HumanReview)
	})

	t.Run("rejects not_started", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected request")
		}), 1)

		_, err := client.UpdateReview(context.Background(), 2, model.ReviewNotStarted)
		assert.ErrorIs(t, err, common.ErrInvalidInput)
	})
}

func TestAddComment(t *testing.T) {
	t.Run("trims and sends", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/pitchdecks/2/comments", r.URL.Path)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Great traction", body["comment"])
			writeJSON(t, w, model.Comment{ID: 7, Author: "Admin User", Content: body["comment"]})
		}), 1)

		comment, err := client.AddComment(context.Background(), 2, "  Great traction \n")
		require.NoError(t, err)
		assert.Equal(t, int64(7), comment.ID)
	})

	t.Run("blank comment", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected request")
		}), 1)

		_, err := client.AddComment(context.Background(), 2, "   ")
		assert.ErrorIs(t, err, common.ErrInvalidInput)
		assert.Equal(t, "Comment cannot be empty.", UserMessage(err))
	})
}
