// Package providers contains one adapter per upstream job source. Each
// adapter owns its upstream credentials and performs a single normalization
// pass from the provider's native schema into types.Job. An adapter with
// missing credentials is soft-disabled: Search returns an empty result and
// no error.
package providers

import (
	"context"
	"net/http"
	"time"

	"github.com/SoapDevX/pathfinder-ai/internal/types"
)

// SearchParams are the common inputs accepted by every adapter.
type SearchParams struct {
	Query    string
	Location string
	Remote   bool
	Limit    int
}

// Provider is implemented by every job source adapter.
type Provider interface {
	// Name returns the stable label used for logging and provider ordering.
	Name() string
	// Search returns normalized jobs for the given parameters. Upstream
	// failures surface as errors; the aggregator decides policy.
	Search(ctx context.Context, params SearchParams) ([]types.Job, error)
}

// requestTimeout bounds every upstream call so a stalled provider cannot
// hold up the aggregator's join.
const requestTimeout = 15 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}
