package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SoapDevX/pathfinder-ai/internal/types"
)

const (
	adzunaDefaultURL   = "https://api.adzuna.com/v1/api/jobs"
	adzunaDefaultLimit = 50
)

// adzunaCountryCodes maps common country names to Adzuna country codes.
// Adzuna has no Sri Lanka endpoint; the nearest catalog (gb) is used.
var adzunaCountryCodes = map[string]string{
	"sri lanka":      "gb",
	"srilanka":       "gb",
	"india":          "in",
	"united states":  "us",
	"usa":            "us",
	"uk":             "gb",
	"united kingdom": "gb",
}

// AdzunaProvider queries the Adzuna classifieds search API.
type AdzunaProvider struct {
	appID   string
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewAdzunaProvider constructs the adapter. Both credentials are required;
// missing either one soft-disables it.
func NewAdzunaProvider(appID, apiKey string) *AdzunaProvider {
	return &AdzunaProvider{
		appID:   appID,
		apiKey:  apiKey,
		baseURL: adzunaDefaultURL,
		client:  newHTTPClient(),
	}
}

// adzunaResponse mirrors the top-level Adzuna search response.
type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
}

// adzunaJob mirrors a single Adzuna listing.
type adzunaJob struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Company      adzunaCompany  `json:"company"`
	Location     adzunaLocation `json:"location"`
	Category     adzunaCategory `json:"category"`
	SalaryMin    float64        `json:"salary_min"`
	SalaryMax    float64        `json:"salary_max"`
	ContractType string         `json:"contract_type"`
	RedirectURL  string         `json:"redirect_url"`
	Created      string         `json:"created"`
}

type adzunaCompany struct {
	DisplayName string `json:"display_name"`
}

type adzunaLocation struct {
	DisplayName string `json:"display_name"`
}

type adzunaCategory struct {
	Label string `json:"label"`
}

// Name implements Provider.
func (p *AdzunaProvider) Name() string { return "Adzuna" }

// Search queries Adzuna's per-country search endpoint.
func (p *AdzunaProvider) Search(ctx context.Context, params SearchParams) ([]types.Job, error) {
	if p.appID == "" || p.apiKey == "" {
		return nil, nil
	}

	limit := params.Limit
	if limit <= 0 {
		limit = adzunaDefaultLimit
	}

	q := url.Values{}
	q.Set("app_id", p.appID)
	q.Set("app_key", p.apiKey)
	q.Set("what", params.Query)
	if params.Location != "" {
		q.Set("where", params.Location)
	}
	q.Set("results_per_page", strconv.Itoa(limit))

	endpoint := fmt.Sprintf("%s/%s/search/1?%s", p.baseURL, p.countryCode(params.Location), q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adzuna request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("adzuna HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var parsed adzunaResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	jobs := make([]types.Job, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		jobs = append(jobs, p.normalize(r))
	}
	return jobs, nil
}

func (p *AdzunaProvider) countryCode(location string) string {
	if code, ok := adzunaCountryCodes[strings.ToLower(strings.TrimSpace(location))]; ok {
		return code
	}
	return "us"
}

// normalize maps one Adzuna listing into the common shape. Remote detection
// is a substring heuristic on the free-text location; Adzuna has no explicit
// remote flag.
func (p *AdzunaProvider) normalize(r adzunaJob) types.Job {
	salary := ""
	if r.SalaryMax > 0 {
		salary = fmt.Sprintf("$%.0f - $%.0f", r.SalaryMin, r.SalaryMax)
	}

	jobType := r.ContractType
	if jobType == "" {
		jobType = "full_time"
	}

	posted := time.Now()
	if r.Created != "" {
		if t, err := time.Parse(time.RFC3339, r.Created); err == nil {
			posted = t
		}
	}

	return types.Job{
		Title:        r.Title,
		Company:      r.Company.DisplayName,
		Location:     r.Location.DisplayName,
		Description:  r.Description,
		Requirements: r.Category.Label,
		Salary:       salary,
		JobType:      jobType,
		Remote:       strings.Contains(strings.ToLower(r.Location.DisplayName), "remote"),
		Source:       "Adzuna",
		SourceURL:    r.RedirectURL,
		PostedDate:   posted,
	}
}
