package providers

import (
	"context"
	"strings"
	"time"

	"github.com/SoapDevX/pathfinder-ai/internal/types"
)

// MockProvider serves a small fixed catalog of postings. It is the
// guaranteed fallback source when every real provider comes back empty, so
// the matcher always has something to work with in development and in
// regions the real APIs do not cover.
type MockProvider struct {
	now func() time.Time
}

// NewMockProvider constructs the fallback provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{now: time.Now}
}

// Name implements Provider.
func (p *MockProvider) Name() string { return "Mock" }

// Search filters the static catalog by keyword containment against
// title+description+requirements and by location substring, both
// case-insensitive.
func (p *MockProvider) Search(_ context.Context, params SearchParams) ([]types.Job, error) {
	return p.SearchBySkills([]string{params.Query}, params.Location), nil
}

// SearchBySkills filters the catalog by a set of skill/keyword terms. A job
// matches when any term appears in its combined text.
func (p *MockProvider) SearchBySkills(skills []string, location string) []types.Job {
	catalog := p.catalog()

	filtered := catalog
	if location != "" {
		locationLower := strings.ToLower(location)
		filtered = make([]types.Job, 0, len(catalog))
		for _, job := range catalog {
			if strings.Contains(strings.ToLower(job.Location), locationLower) {
				filtered = append(filtered, job)
			}
		}
	}

	terms := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			terms = append(terms, strings.ToLower(s))
		}
	}
	if len(terms) == 0 {
		return filtered
	}

	matched := make([]types.Job, 0, len(filtered))
	for _, job := range filtered {
		searchText := strings.ToLower(job.Title + " " + job.Description + " " + job.Requirements)
		for _, term := range terms {
			if strings.Contains(searchText, term) {
				matched = append(matched, job)
				break
			}
		}
	}
	return matched
}

// catalog returns the fixed postings with a fresh posted date.
func (p *MockProvider) catalog() []types.Job {
	posted := p.now()
	return []types.Job{
		{
			Title:        "Senior Full Stack Developer",
			Company:      "TechCorp Sri Lanka",
			Location:     "Colombo, Sri Lanka",
			Description:  "We are looking for an experienced Full Stack Developer to join our Colombo office. Work on cutting-edge web applications using modern technologies.",
			Requirements: "Required: 5+ years JavaScript, React, Node.js, TypeScript, PostgreSQL. AWS/Docker preferred.",
			Salary:       "LKR 200k - 300k",
			JobType:      "full-time",
			Remote:       false,
			Source:       "Mock",
			SourceURL:    "https://example.com/job/1",
			PostedDate:   posted,
		},
		{
			Title:        "Web Developer",
			Company:      "Digital Solutions Lanka",
			Location:     "Kandy, Sri Lanka",
			Description:  "Join our team to build modern web applications for international clients.",
			Requirements: "Required: HTML, CSS, JavaScript, React. 2+ years experience.",
			Salary:       "LKR 120k - 180k",
			JobType:      "full-time",
			Remote:       true,
			Source:       "Mock",
			SourceURL:    "https://example.com/job/2",
			PostedDate:   posted,
		},
		{
			Title:        "Frontend Developer",
			Company:      "StartupLK",
			Location:     "Colombo, Sri Lanka",
			Description:  "Create beautiful, responsive web interfaces using React and modern CSS.",
			Requirements: "Required: React, TypeScript, Tailwind CSS. 3+ years experience.",
			Salary:       "LKR 150k - 220k",
			JobType:      "full-time",
			Remote:       false,
			Source:       "Mock",
			SourceURL:    "https://example.com/job/3",
			PostedDate:   posted,
		},
		{
			Title:        "Backend Engineer",
			Company:      "CloudTech Lanka",
			Location:     "Remote, Sri Lanka",
			Description:  "Build scalable microservices and APIs for global clients.",
			Requirements: "Required: Node.js, Express, MongoDB, Redis. GraphQL, Kubernetes preferred.",
			Salary:       "LKR 180k - 250k",
			JobType:      "full-time",
			Remote:       true,
			Source:       "Mock",
			SourceURL:    "https://example.com/job/4",
			PostedDate:   posted,
		},
		{
			Title:        "Full Stack Engineer",
			Company:      "FinTech Lanka",
			Location:     "Colombo, Sri Lanka",
			Description:  "Build financial applications using React, Node.js, and PostgreSQL.",
			Requirements: "Required: JavaScript, React, Node.js, SQL. Financial systems experience a plus.",
			Salary:       "LKR 200k - 280k",
			JobType:      "full-time",
			Remote:       false,
			Source:       "Mock",
			SourceURL:    "https://example.com/job/5",
			PostedDate:   posted,
		},
	}
}
