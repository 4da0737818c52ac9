package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSearchSearch_SoftDisabledWithoutKey(t *testing.T) {
	p := NewJSearchProvider("")

	jobs, err := p.Search(context.Background(), SearchParams{Query: "developer"})

	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestJSearchSearch_MapsFields(t *testing.T) {
	posted := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, "backend engineer", r.URL.Query().Get("query"))
		assert.Equal(t, "true", r.URL.Query().Get("remote_jobs_only"))

		_ = json.NewEncoder(w).Encode(jsearchResponse{Data: []jsearchJob{{
			Title:          "Backend Engineer",
			EmployerName:   "Acme",
			City:           "Colombo",
			Description:    "Build APIs",
			RequiredSkills: []string{"Go", "PostgreSQL"},
			EmploymentType: "FULLTIME",
			IsRemote:       true,
			ApplyLink:      "https://example.com/apply",
			PostedAtUTC:    posted.Format(time.RFC3339),
		}}})
	}))
	defer srv.Close()

	p := NewJSearchProvider("test-key")
	p.baseURL = srv.URL

	jobs, err := p.Search(context.Background(), SearchParams{Query: "backend engineer", Remote: true})

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	job := jobs[0]
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "Colombo", job.Location)
	assert.Equal(t, "Go, PostgreSQL", job.Requirements)
	assert.Equal(t, "FULLTIME", job.JobType)
	assert.Equal(t, "LinkedIn/Indeed", job.Source)
	assert.Equal(t, "https://example.com/apply", job.SourceURL)
	assert.True(t, job.PostedDate.Equal(posted))
}

func TestJSearchNormalize_Defaults(t *testing.T) {
	p := NewJSearchProvider("test-key")

	job := p.normalize(jsearchJob{Title: "Engineer", EmployerName: "Acme", GoogleLink: "https://google.com/jobs/1"})

	assert.Equal(t, "Remote", job.Location, "empty city/state/country defaults to Remote")
	assert.Equal(t, "full-time", job.JobType)
	assert.Equal(t, "https://google.com/jobs/1", job.SourceURL, "apply link falls back to google link")
	assert.Equal(t, "", job.Requirements)
	assert.False(t, job.PostedDate.IsZero())
}

func TestJSearchSearch_UpstreamErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	p := NewJSearchProvider("test-key")
	p.baseURL = srv.URL

	_, err := p.Search(context.Background(), SearchParams{Query: "go"})

	require.Error(t, err)
}
