// Package types defines shared domain types for the job aggregation and
// matching pipeline.
package types

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Job is the provider-agnostic representation of a job posting. Every
// provider adapter normalizes its upstream schema into this shape exactly
// once, at the adapter boundary.
type Job struct {
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Salary       string    `json:"salary,omitempty"`
	JobType      string    `json:"jobType"`
	Remote       bool      `json:"remote"`
	Source       string    `json:"source"`
	SourceURL    string    `json:"sourceUrl"`
	PostedDate   time.Time `json:"postedDate"`
}

// DedupeKey derives the posting's identity for deduplication and storage.
// No upstream ID is trusted across providers; identity is the
// case-insensitive title+company pair. Two real postings that share title
// and company collapse into one, a known imprecision: no stronger signal
// is available from all providers.
func (j Job) DedupeKey() string {
	return strings.ToLower(j.Title) + "-" + strings.ToLower(j.Company)
}

// SkillRating is one entry of a user's ranked skill list.
type SkillRating struct {
	Skill      string  `json:"skill"`
	Level      string  `json:"level"`
	Percentage float64 `json:"percentage"`
}

// SkillProfile is the skill summary produced by the GitHub analysis side of
// the product. The matching pipeline treats it as opaque input.
type SkillProfile struct {
	TopLanguages  map[string]int `json:"topLanguages"`
	TopSkills     []SkillRating  `json:"topSkills"`
	TotalRepos    int            `json:"totalRepos"`
	TotalCommits  int            `json:"totalCommits"`
	ActivityScore int            `json:"activityScore"`
}

// JobMatch is the scorer's verdict for a single job. Matches live only for
// the duration of one pipeline invocation; only the underlying Job plus
// MatchedSkills is persisted.
type JobMatch struct {
	Job            Job      `json:"job"`
	MatchScore     int      `json:"matchScore"`
	MatchReason    string   `json:"matchReason"`
	MatchedSkills  []string `json:"matchedSkills"`
	MissingSkills  []string `json:"missingSkills"`
	Recommendation string   `json:"recommendation"`
}

// MatchRequest is the body of POST /api/jobs/match.
type MatchRequest struct {
	UserSkills *SkillProfile `json:"userSkills" validate:"required"`
	TargetRole string        `json:"targetRole" validate:"required"`
	Location   string        `json:"location,omitempty"`
	Remote     bool          `json:"remote,omitempty"`
}

// Validate checks the request for required fields.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
