package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/SoapDevX/pathfinder-ai/internal/config"
	"github.com/SoapDevX/pathfinder-ai/internal/db"
	"github.com/SoapDevX/pathfinder-ai/internal/llm"
	"github.com/SoapDevX/pathfinder-ai/internal/matching"
	"github.com/SoapDevX/pathfinder-ai/internal/observability"
	"github.com/SoapDevX/pathfinder-ai/internal/providers"
	"github.com/SoapDevX/pathfinder-ai/internal/types"
	"github.com/SoapDevX/pathfinder-ai/internal/unified"
)

var (
	matchProfilePath string
	matchRole        string
	matchLocation    string
	matchRemote      bool
	matchPretty      bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Run the full search-and-score pipeline from the command line",
	Long: `Search all configured providers, score the results against a skill
profile with the LLM, and print the matches. The profile file uses the same
JSON shape as the userSkills field of POST /api/jobs/match.

When DATABASE_URL is set the top matches are also persisted; without it the
pipeline runs in memory only.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchProfilePath, "profile", "p", "", "Path to skill profile JSON file (required)")
	matchCmd.Flags().StringVarP(&matchRole, "role", "r", "", "Target role (required)")
	matchCmd.Flags().StringVarP(&matchLocation, "location", "l", "", "Preferred location")
	matchCmd.Flags().BoolVar(&matchRemote, "remote", false, "Remote positions only")
	matchCmd.Flags().BoolVar(&matchPretty, "pretty", false, "Print a human-readable summary instead of JSON")
	_ = matchCmd.MarkFlagRequired("profile")
	_ = matchCmd.MarkFlagRequired("role")
	rootCmd.AddCommand(matchCmd)
}

// matchConfig loads configuration for a match run. Unlike serve, only the
// completion key is required; DATABASE_URL merely enables persistence.
func matchConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	return cfg, nil
}

func runMatch(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	logger := log.New(os.Stderr, "", log.LstdFlags)

	data, err := os.ReadFile(matchProfilePath)
	if err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}
	var profile types.SkillProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("failed to parse profile: %w", err)
	}

	cfg, err := matchConfig()
	if err != nil {
		return err
	}

	llmClient, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = llmClient.Close() }()

	var store matching.JobStore
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
		store = database
	}

	aggregator := unified.New(
		[]providers.Provider{
			providers.NewTheirStackProvider(cfg.TheirStackAPIKey),
			providers.NewJSearchProvider(cfg.RapidAPIKey),
			providers.NewAdzunaProvider(cfg.AdzunaAppID, cfg.AdzunaAPIKey),
		},
		providers.NewMockProvider(),
		logger,
	)

	pipeline := matching.NewPipeline(aggregator, matching.NewScorer(llmClient, logger), store, logger)

	matches, err := pipeline.FindMatchingJobs(ctx, &profile, matchRole, matchLocation, matchRemote)
	if err != nil {
		return fmt.Errorf("match pipeline failed: %w", err)
	}

	if matchPretty {
		observability.NewPrinter(os.Stdout).PrintMatches(matches)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(matches)
}
