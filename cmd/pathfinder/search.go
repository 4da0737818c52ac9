package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/SoapDevX/pathfinder-ai/internal/observability"
	"github.com/SoapDevX/pathfinder-ai/internal/providers"
	"github.com/SoapDevX/pathfinder-ai/internal/unified"
)

var (
	searchQuery    string
	searchLocation string
	searchRemote   bool
	searchLimit    int
	searchPretty   bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search jobs across all configured providers",
	Long:  `Run the unified multi-provider job search and print the normalized results as JSON. Providers without credentials are skipped; the mock catalog backs the search when no provider returns anything.`,
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Search query (required)")
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "", "Preferred location")
	searchCmd.Flags().BoolVar(&searchRemote, "remote", false, "Remote positions only")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 50, "Maximum number of results")
	searchCmd.Flags().BoolVar(&searchPretty, "pretty", false, "Print a human-readable summary instead of JSON")
	_ = searchCmd.MarkFlagRequired("query")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	logger := log.New(os.Stderr, "", log.LstdFlags)

	aggregator := unified.New(
		[]providers.Provider{
			providers.NewTheirStackProvider(os.Getenv("THEIRSTACK_API_KEY")),
			providers.NewJSearchProvider(os.Getenv("RAPIDAPI_KEY")),
			providers.NewAdzunaProvider(os.Getenv("ADZUNA_APP_ID"), os.Getenv("ADZUNA_API_KEY")),
		},
		providers.NewMockProvider(),
		logger,
	)

	jobs := aggregator.SearchJobs(ctx, providers.SearchParams{
		Query:    searchQuery,
		Location: searchLocation,
		Remote:   searchRemote,
		Limit:    searchLimit,
	})

	if searchPretty {
		observability.NewPrinter(os.Stdout).PrintJobs(jobs)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jobs)
}
