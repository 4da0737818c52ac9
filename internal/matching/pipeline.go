package matching

import (
	"context"
	"log"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/SoapDevX/pathfinder-ai/internal/providers"
	"github.com/SoapDevX/pathfinder-ai/internal/types"
)

const (
	// candidateLimit is the search limit passed to the aggregator.
	candidateLimit = 100
	// maxScoredJobs caps how many candidates get a completion call.
	maxScoredJobs = 30
	// scoreConcurrency bounds in-flight completion calls per pipeline run.
	scoreConcurrency = 10
	// minMatchScore filters out weak matches.
	minMatchScore = 50
	// maxSavedMatches caps how many matches are persisted per run.
	maxSavedMatches = 10
)

// Searcher is the aggregated job search the pipeline draws candidates from.
type Searcher interface {
	SearchJobs(ctx context.Context, params providers.SearchParams) []types.Job
}

// JobStore persists matched jobs. Upserts are keyed by the job's identity
// key (case-insensitive title+company), last write wins.
type JobStore interface {
	UpsertJob(ctx context.Context, job types.Job, skills []string) error
	ListRecentJobs(ctx context.Context, limit int) ([]types.Job, error)
}

// Pipeline runs search → score → filter/sort → persist for one request.
type Pipeline struct {
	search Searcher
	scorer JobScorer
	store  JobStore
	logger *log.Logger
}

// NewPipeline wires the pipeline's collaborators together.
func NewPipeline(search Searcher, scorer JobScorer, store JobStore, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{search: search, scorer: scorer, store: store, logger: logger}
}

// FindMatchingJobs returns scored matches for the profile and target role,
// sorted by descending score with input order preserved on ties. The top
// matches are persisted best-effort; a store failure never affects the
// returned list.
func (p *Pipeline) FindMatchingJobs(ctx context.Context, profile *types.SkillProfile, targetRole, location string, remote bool) ([]types.JobMatch, error) {
	p.logger.Printf("[matcher] searching for %q in %q", targetRole, locationOrAnywhere(location))

	candidates := p.search.SearchJobs(ctx, providers.SearchParams{
		Query:    targetRole,
		Location: location,
		Remote:   remote,
		Limit:    candidateLimit,
	})
	p.logger.Printf("[matcher] %d candidate jobs", len(candidates))

	if len(candidates) == 0 {
		return []types.JobMatch{}, nil
	}
	if len(candidates) > maxScoredJobs {
		candidates = candidates[:maxScoredJobs]
	}

	matches := make([]types.JobMatch, len(candidates))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(scoreConcurrency)
	for i, job := range candidates {
		g.Go(func() error {
			// Score absorbs its own failures; nothing to propagate.
			matches[i] = p.scorer.Score(gCtx, job, profile, targetRole)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kept := make([]types.JobMatch, 0, len(matches))
	for _, m := range matches {
		if m.MatchScore >= minMatchScore {
			kept = append(kept, m)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].MatchScore > kept[j].MatchScore
	})
	p.logger.Printf("[matcher] %d matches at or above score %d", len(kept), minMatchScore)

	p.saveTopMatches(ctx, kept)

	return kept, nil
}

// SavedJobs returns previously persisted jobs, newest first. Without a
// store there is nothing saved.
func (p *Pipeline) SavedJobs(ctx context.Context, limit int) ([]types.Job, error) {
	if p.store == nil {
		return []types.Job{}, nil
	}
	return p.store.ListRecentJobs(ctx, limit)
}

// saveTopMatches upserts the strongest matches. Failures are logged and
// swallowed: persistence is a best-effort side effect of a match run.
func (p *Pipeline) saveTopMatches(ctx context.Context, matches []types.JobMatch) {
	if p.store == nil {
		return
	}

	top := matches
	if len(top) > maxSavedMatches {
		top = top[:maxSavedMatches]
	}
	for _, m := range top {
		if err := p.store.UpsertJob(ctx, m.Job, m.MatchedSkills); err != nil {
			p.logger.Printf("[matcher] save %q at %q failed: %v", m.Job.Title, m.Job.Company, err)
		}
	}
}

func locationOrAnywhere(location string) string {
	if location == "" {
		return "anywhere"
	}
	return location
}
