package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SoapDevX/pathfinder-ai/internal/types"
)

const (
	theirStackDefaultURL = "https://api.theirstack.com/v1"
	theirStackBulkLimit  = 200
)

// TheirStackProvider fetches jobs from the TheirStack bulk API. The upstream
// search endpoint accepts only a page-size limit, so title, location and
// remote filtering all happen client-side after the fetch.
type TheirStackProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewTheirStackProvider constructs the adapter. An empty apiKey soft-disables it.
func NewTheirStackProvider(apiKey string) *TheirStackProvider {
	return &TheirStackProvider{
		apiKey:  apiKey,
		baseURL: theirStackDefaultURL,
		client:  newHTTPClient(),
	}
}

// theirStackResponse mirrors the top-level TheirStack search response.
type theirStackResponse struct {
	Data []theirStackJob `json:"data"`
}

// theirStackJob mirrors a single TheirStack listing.
type theirStackJob struct {
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	Country     string `json:"country"`
	Description string `json:"description"`
	SalaryText  string `json:"salary_string"`
	JobType     string `json:"employment_type"`
	Remote      bool   `json:"remote"`
	URL         string `json:"url"`
	DatePosted  string `json:"date_posted"`
}

// Name implements Provider.
func (p *TheirStackProvider) Name() string { return "TheirStack" }

// Search fetches a bulk page and filters it by title, location and remote
// flag in-process.
func (p *TheirStackProvider) Search(ctx context.Context, params SearchParams) ([]types.Job, error) {
	if p.apiKey == "" {
		return nil, nil
	}

	raw, err := p.fetchBulk(ctx, theirStackBulkLimit)
	if err != nil {
		return nil, err
	}

	queryLower := strings.ToLower(params.Query)
	locationLower := strings.ToLower(params.Location)

	jobs := make([]types.Job, 0, len(raw))
	for _, r := range raw {
		if queryLower != "" && !strings.Contains(strings.ToLower(r.Title), queryLower) {
			continue
		}
		if locationLower != "" &&
			!strings.Contains(strings.ToLower(r.Location), locationLower) &&
			!strings.Contains(strings.ToLower(r.Country), locationLower) {
			continue
		}
		if params.Remote && !r.Remote {
			continue
		}
		jobs = append(jobs, p.normalize(r))
	}
	return jobs, nil
}

func (p *TheirStackProvider) fetchBulk(ctx context.Context, limit int) ([]theirStackJob, error) {
	// The endpoint accepts only a limit; no query or location parameters.
	body, err := json.Marshal(map[string]int{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/jobs/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("theirstack request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("theirstack HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var parsed theirStackResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return parsed.Data, nil
}

// normalize maps one TheirStack listing into the common shape, applying
// defaults exactly once.
func (p *TheirStackProvider) normalize(r theirStackJob) types.Job {
	location := r.Location
	if location == "" {
		location = r.Country
	}

	jobType := r.JobType
	if jobType == "" {
		jobType = "full-time"
	}

	posted := time.Now()
	if r.DatePosted != "" {
		if t, err := time.Parse(time.RFC3339, r.DatePosted); err == nil {
			posted = t
		} else if t, err := time.Parse("2006-01-02", r.DatePosted); err == nil {
			posted = t
		}
	}

	return types.Job{
		Title:       r.Title,
		Company:     r.CompanyName,
		Location:    location,
		Description: r.Description,
		Salary:      r.SalaryText,
		JobType:     jobType,
		Remote:      r.Remote || strings.Contains(strings.ToLower(location), "remote"),
		Source:      "TheirStack",
		SourceURL:   r.URL,
		PostedDate:  posted,
	}
}
