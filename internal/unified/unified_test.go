package unified

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoapDevX/pathfinder-ai/internal/providers"
	"github.com/SoapDevX/pathfinder-ai/internal/types"
)

// stubProvider is a configurable in-memory provider.
type stubProvider struct {
	name  string
	jobs  []types.Job
	err   error
	delay time.Duration

	mu    sync.Mutex
	calls int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Search(ctx context.Context, _ providers.SearchParams) ([]types.Job, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.jobs, s.err
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func job(title, company, source string) types.Job {
	return types.Job{Title: title, Company: company, Source: source}
}

func TestSearchJobs_NeverFailsWhenAllProvidersError(t *testing.T) {
	real := []providers.Provider{
		&stubProvider{name: "A", err: errors.New("boom")},
		&stubProvider{name: "B", err: errors.New("rate limited")},
	}
	fallback := &stubProvider{name: "Mock", jobs: []types.Job{job("Backend Engineer", "CloudTech", "Mock")}}
	agg := New(real, fallback, testLogger())

	jobs := agg.SearchJobs(context.Background(), providers.SearchParams{Query: "backend"})

	require.Len(t, jobs, 1)
	assert.Equal(t, "Mock", jobs[0].Source)
}

func TestSearchJobs_StableProviderOrder(t *testing.T) {
	// The slower provider is listed first and must still appear first.
	real := []providers.Provider{
		&stubProvider{name: "A", delay: 30 * time.Millisecond, jobs: []types.Job{job("T1", "C1", "A")}},
		&stubProvider{name: "B", jobs: []types.Job{job("T2", "C2", "B")}},
	}
	agg := New(real, nil, testLogger())

	jobs := agg.SearchJobs(context.Background(), providers.SearchParams{Query: "any"})

	require.Len(t, jobs, 2)
	assert.Equal(t, "A", jobs[0].Source)
	assert.Equal(t, "B", jobs[1].Source)
}

func TestSearchJobs_DedupeIsCaseInsensitive(t *testing.T) {
	real := []providers.Provider{
		&stubProvider{name: "A", jobs: []types.Job{job("Backend Engineer", "Acme", "A")}},
		&stubProvider{name: "B", jobs: []types.Job{job("BACKEND ENGINEER", "ACME", "B")}},
	}
	agg := New(real, nil, testLogger())

	jobs := agg.SearchJobs(context.Background(), providers.SearchParams{Query: "backend"})

	require.Len(t, jobs, 1)
	assert.Equal(t, "A", jobs[0].Source, "first-seen wins")
}

func TestSearchJobs_FallbackNotCalledWhenRealJobsExist(t *testing.T) {
	fallback := &stubProvider{name: "Mock", jobs: []types.Job{job("X", "Y", "Mock")}}
	real := []providers.Provider{
		&stubProvider{name: "A", jobs: []types.Job{job("T1", "C1", "A")}},
	}
	agg := New(real, fallback, testLogger())

	jobs := agg.SearchJobs(context.Background(), providers.SearchParams{Query: "any"})

	require.Len(t, jobs, 1)
	assert.Equal(t, 0, fallback.calls)
}

func TestSearchJobs_AllEmptyAndNoFallbackReturnsEmpty(t *testing.T) {
	real := []providers.Provider{&stubProvider{name: "A"}}
	agg := New(real, nil, testLogger())

	jobs := agg.SearchJobs(context.Background(), providers.SearchParams{Query: "any"})

	assert.Empty(t, jobs)
}

func TestSearchJobs_ProvidersRunConcurrently(t *testing.T) {
	delay := 50 * time.Millisecond
	real := []providers.Provider{
		&stubProvider{name: "A", delay: delay, jobs: []types.Job{job("T1", "C1", "A")}},
		&stubProvider{name: "B", delay: delay, jobs: []types.Job{job("T2", "C2", "B")}},
		&stubProvider{name: "C", delay: delay, jobs: []types.Job{job("T3", "C3", "C")}},
	}
	agg := New(real, nil, testLogger())

	start := time.Now()
	jobs := agg.SearchJobs(context.Background(), providers.SearchParams{Query: "any"})
	elapsed := time.Since(start)

	require.Len(t, jobs, 3)
	assert.Less(t, elapsed, 3*delay, "fan-out should overlap provider calls")
}
