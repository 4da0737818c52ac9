package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdzunaSearch_SoftDisabledWithoutCredentials(t *testing.T) {
	for _, p := range []*AdzunaProvider{
		NewAdzunaProvider("", "key"),
		NewAdzunaProvider("app", ""),
	} {
		jobs, err := p.Search(context.Background(), SearchParams{Query: "developer"})
		require.NoError(t, err)
		assert.Empty(t, jobs)
	}
}

func TestAdzunaSearch_CountryMappingAndFields(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, "app", r.URL.Query().Get("app_id"))
		assert.Equal(t, "key", r.URL.Query().Get("app_key"))
		assert.Equal(t, "backend", r.URL.Query().Get("what"))

		_ = json.NewEncoder(w).Encode(adzunaResponse{Results: []adzunaJob{{
			Title:       "Backend Developer",
			Description: "APIs and services",
			Company:     adzunaCompany{DisplayName: "Acme Ltd"},
			Location:    adzunaLocation{DisplayName: "Remote, UK"},
			Category:    adzunaCategory{Label: "IT Jobs"},
			SalaryMin:   50000,
			SalaryMax:   70000,
			RedirectURL: "https://adzuna.example/j/1",
			Created:     "2026-08-15T00:00:00Z",
		}}})
	}))
	defer srv.Close()

	p := NewAdzunaProvider("app", "key")
	p.baseURL = srv.URL

	jobs, err := p.Search(context.Background(), SearchParams{Query: "backend", Location: "sri lanka"})

	require.NoError(t, err)
	// Sri Lanka has no Adzuna catalog; the gb endpoint is used instead.
	assert.Equal(t, "/gb/search/1", gotPath)

	require.Len(t, jobs, 1)
	job := jobs[0]
	assert.Equal(t, "Acme Ltd", job.Company)
	assert.Equal(t, "$50000 - $70000", job.Salary)
	assert.Equal(t, "IT Jobs", job.Requirements)
	assert.True(t, job.Remote, "location containing 'remote' flags the job remote")
	assert.Equal(t, "Adzuna", job.Source)
	assert.Equal(t, "https://adzuna.example/j/1", job.SourceURL)
}

func TestAdzunaCountryCode_UnknownDefaultsToUS(t *testing.T) {
	p := NewAdzunaProvider("app", "key")

	assert.Equal(t, "us", p.countryCode("atlantis"))
	assert.Equal(t, "in", p.countryCode("India"))
	assert.Equal(t, "us", p.countryCode(""))
}

func TestAdzunaNormalize_NoSalaryWhenMaxMissing(t *testing.T) {
	p := NewAdzunaProvider("app", "key")

	job := p.normalize(adzunaJob{Title: "Engineer", SalaryMin: 40000})

	assert.Equal(t, "", job.Salary)
	assert.Equal(t, "full_time", job.JobType)
}
