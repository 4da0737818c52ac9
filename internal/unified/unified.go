// Package unified merges the individual provider adapters into one search
// surface with failure isolation, deterministic ordering, deduplication and
// a synthetic fallback.
package unified

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/SoapDevX/pathfinder-ai/internal/providers"
	"github.com/SoapDevX/pathfinder-ai/internal/types"
)

// Aggregator fans a search out to every configured provider concurrently.
// It never fails: a provider error contributes zero jobs, and an all-empty
// result falls back to the mock catalog.
type Aggregator struct {
	providers []providers.Provider
	fallback  providers.Provider
	logger    *log.Logger
}

// New creates an aggregator over the given real providers, with fallback as
// the synthetic source of last resort. The provider slice order is the
// order results are concatenated in, so it must be stable.
func New(real []providers.Provider, fallback providers.Provider, logger *log.Logger) *Aggregator {
	if logger == nil {
		logger = log.Default()
	}
	return &Aggregator{providers: real, fallback: fallback, logger: logger}
}

// SearchJobs queries all providers concurrently, joins the settled results
// in fixed provider order, applies the fallback when everything came back
// empty, and deduplicates by the title+company identity key.
func (a *Aggregator) SearchJobs(ctx context.Context, params providers.SearchParams) []types.Job {
	results := make([][]types.Job, len(a.providers))

	var g errgroup.Group
	for i, p := range a.providers {
		g.Go(func() error {
			jobs, err := p.Search(ctx, params)
			if err != nil {
				// Failure isolation: log and contribute zero jobs.
				a.logger.Printf("[unified] %s failed: %v", p.Name(), err)
				return nil
			}
			a.logger.Printf("[unified] %s: %d jobs", p.Name(), len(jobs))
			results[i] = jobs
			return nil
		})
	}
	// Errors are absorbed per-provider above; Wait only joins.
	_ = g.Wait()

	var all []types.Job
	for _, jobs := range results {
		all = append(all, jobs...)
	}

	if len(all) == 0 && a.fallback != nil {
		a.logger.Printf("[unified] no real jobs found, using %s fallback", a.fallback.Name())
		fallbackJobs, err := a.fallback.Search(ctx, params)
		if err != nil {
			a.logger.Printf("[unified] fallback failed: %v", err)
			return []types.Job{}
		}
		all = fallbackJobs
	}

	return dedupe(all)
}

// dedupe removes postings sharing the identity key, keeping first-seen order.
func dedupe(jobs []types.Job) []types.Job {
	seen := make(map[string]struct{}, len(jobs))
	out := make([]types.Job, 0, len(jobs))
	for _, job := range jobs {
		key := job.DedupeKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, job)
	}
	return out
}
