package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SoapDevX/pathfinder-ai/internal/types"
)

const jsearchDefaultHost = "jsearch.p.rapidapi.com"

// JSearchProvider queries the RapidAPI JSearch endpoint, which aggregates
// LinkedIn/Indeed-style boards behind a keyword search API.
type JSearchProvider struct {
	apiKey  string
	host    string
	baseURL string
	client  *http.Client
}

// NewJSearchProvider constructs the adapter. An empty apiKey soft-disables it.
func NewJSearchProvider(apiKey string) *JSearchProvider {
	return &JSearchProvider{
		apiKey:  apiKey,
		host:    jsearchDefaultHost,
		baseURL: "https://" + jsearchDefaultHost,
		client:  newHTTPClient(),
	}
}

// jsearchResponse mirrors the top-level JSearch response.
type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

// jsearchJob mirrors a single JSearch listing.
type jsearchJob struct {
	Title          string   `json:"job_title"`
	EmployerName   string   `json:"employer_name"`
	City           string   `json:"job_city"`
	State          string   `json:"job_state"`
	Country        string   `json:"job_country"`
	Description    string   `json:"job_description"`
	RequiredSkills []string `json:"job_required_skills"`
	Salary         string   `json:"job_salary"`
	EmploymentType string   `json:"job_employment_type"`
	IsRemote       bool     `json:"job_is_remote"`
	ApplyLink      string   `json:"job_apply_link"`
	GoogleLink     string   `json:"job_google_link"`
	PostedAtUTC    string   `json:"job_posted_at_datetime_utc"`
}

// Name implements Provider.
func (p *JSearchProvider) Name() string { return "JSearch" }

// Search runs a keyword search against the upstream API.
func (p *JSearchProvider) Search(ctx context.Context, params SearchParams) ([]types.Job, error) {
	if p.apiKey == "" {
		return nil, nil
	}

	q := url.Values{}
	q.Set("query", params.Query)
	q.Set("num_pages", "1")
	q.Set("page", "1")
	if params.Location != "" {
		q.Set("location", params.Location)
	}
	if params.Remote {
		q.Set("remote_jobs_only", "true")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", p.apiKey)
	req.Header.Set("X-RapidAPI-Host", p.host)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jsearch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jsearch HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var parsed jsearchResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	jobs := make([]types.Job, 0, len(parsed.Data))
	for _, r := range parsed.Data {
		jobs = append(jobs, p.normalize(r))
	}
	return jobs, nil
}

// normalize maps one JSearch listing into the common shape.
func (p *JSearchProvider) normalize(r jsearchJob) types.Job {
	location := r.City
	if location == "" {
		location = r.State
	}
	if location == "" {
		location = r.Country
	}
	if location == "" {
		location = "Remote"
	}

	jobType := r.EmploymentType
	if jobType == "" {
		jobType = "full-time"
	}

	sourceURL := r.ApplyLink
	if sourceURL == "" {
		sourceURL = r.GoogleLink
	}

	posted := time.Now()
	if r.PostedAtUTC != "" {
		if t, err := time.Parse(time.RFC3339, r.PostedAtUTC); err == nil {
			posted = t
		}
	}

	return types.Job{
		Title:        r.Title,
		Company:      r.EmployerName,
		Location:     location,
		Description:  r.Description,
		Requirements: strings.Join(r.RequiredSkills, ", "),
		Salary:       r.Salary,
		JobType:      jobType,
		Remote:       r.IsRemote,
		Source:       "LinkedIn/Indeed",
		SourceURL:    sourceURL,
		PostedDate:   posted,
	}
}
