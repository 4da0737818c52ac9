// Package matching scores candidate jobs against a user's skill profile and
// orchestrates the search-score-persist pipeline.
package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/SoapDevX/pathfinder-ai/internal/llm"
	"github.com/SoapDevX/pathfinder-ai/internal/prompts"
	"github.com/SoapDevX/pathfinder-ai/internal/schemas"
	"github.com/SoapDevX/pathfinder-ai/internal/types"
)

const (
	// descriptionLimit and requirementsLimit bound the prompt context built
	// from free-text provider fields.
	descriptionLimit  = 500
	requirementsLimit = 300

	fallbackScore          = 50
	fallbackReason         = "Basic match"
	fallbackRecommendation = "Review manually"
)

// matchResponseSchema validates the shape of the scorer's JSON completion.
// Fields are individually optional; missing ones take defaults. A response
// that is not an object of these types counts as malformed and falls back.
const matchResponseSchema = `{
  "type": "object",
  "properties": {
    "matchScore": {"type": "number"},
    "matchReason": {"type": "string"},
    "missingSkills": {"type": "array", "items": {"type": "string"}},
    "matchedSkills": {"type": "array", "items": {"type": "string"}},
    "recommendation": {"type": "string"}
  }
}`

// scorerResponse is the parsed completion payload. The score decodes as a
// float because the schema admits any number; it is rounded on the way out.
type scorerResponse struct {
	MatchScore     *float64 `json:"matchScore"`
	MatchReason    string   `json:"matchReason"`
	MissingSkills  []string `json:"missingSkills"`
	MatchedSkills  []string `json:"matchedSkills"`
	Recommendation string   `json:"recommendation"`
}

// JobScorer scores a single job against a profile and target role.
type JobScorer interface {
	Score(ctx context.Context, job types.Job, profile *types.SkillProfile, targetRole string) types.JobMatch
}

// Scorer delegates match scoring to the LLM completion boundary. Every
// failure mode of the completion call is absorbed into a fixed neutral
// fallback match; Score never fails.
type Scorer struct {
	client llm.Client
	logger *log.Logger
}

// NewScorer creates a scorer over the given completion client.
func NewScorer(client llm.Client, logger *log.Logger) *Scorer {
	if logger == nil {
		logger = log.Default()
	}
	return &Scorer{client: client, logger: logger}
}

// Score asks the model how well the job fits the profile. On any completion
// or parse failure it returns the neutral fallback match.
func (s *Scorer) Score(ctx context.Context, job types.Job, profile *types.SkillProfile, targetRole string) types.JobMatch {
	prompt := buildScorePrompt(job, profile, targetRole)

	raw, err := s.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		s.logger.Printf("[matcher] scoring %q at %q failed: %v", job.Title, job.Company, err)
		return fallbackMatch(job)
	}

	parsed, err := parseScorerResponse(raw)
	if err != nil {
		s.logger.Printf("[matcher] unusable response for %q at %q: %v", job.Title, job.Company, err)
		return fallbackMatch(job)
	}

	return matchFromResponse(job, parsed)
}

// parseScorerResponse validates and decodes the completion payload.
func parseScorerResponse(raw string) (*scorerResponse, error) {
	raw = llm.CleanJSONBlock(raw)

	if err := schemas.ValidateJSONString(matchResponseSchema, raw); err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	var resp scorerResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &resp, nil
}

// matchFromResponse applies per-field defaults for a parseable but partially
// filled response.
func matchFromResponse(job types.Job, resp *scorerResponse) types.JobMatch {
	score := fallbackScore
	if resp.MatchScore != nil {
		score = int(math.Round(*resp.MatchScore))
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	matched := resp.MatchedSkills
	if matched == nil {
		matched = []string{}
	}
	missing := resp.MissingSkills
	if missing == nil {
		missing = []string{}
	}

	return types.JobMatch{
		Job:            job,
		MatchScore:     score,
		MatchReason:    resp.MatchReason,
		MatchedSkills:  matched,
		MissingSkills:  missing,
		Recommendation: resp.Recommendation,
	}
}

func fallbackMatch(job types.Job) types.JobMatch {
	return types.JobMatch{
		Job:            job,
		MatchScore:     fallbackScore,
		MatchReason:    fallbackReason,
		MatchedSkills:  []string{},
		MissingSkills:  []string{},
		Recommendation: fallbackRecommendation,
	}
}

// buildScorePrompt assembles a bounded prompt from the job and the profile.
func buildScorePrompt(job types.Job, profile *types.SkillProfile, targetRole string) string {
	languages := make([]string, 0, len(profile.TopLanguages))
	for lang := range profile.TopLanguages {
		languages = append(languages, lang)
	}

	skills := make([]string, 0, len(profile.TopSkills))
	for _, s := range profile.TopSkills {
		skills = append(skills, s.Skill)
	}

	requirements := truncate(job.Requirements, requirementsLimit)
	if requirements == "" {
		requirements = "Not specified"
	}

	template := prompts.MustGet("matching.json", "score-job")
	return prompts.Format(template, map[string]string{
		"Title":        job.Title,
		"Company":      job.Company,
		"Description":  truncate(job.Description, descriptionLimit),
		"Requirements": requirements,
		"Languages":    strings.Join(languages, ", "),
		"Skills":       strings.Join(skills, ", "),
		"Activity":     fmt.Sprintf("%d", profile.ActivityScore),
		"Target":       targetRole,
	})
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
