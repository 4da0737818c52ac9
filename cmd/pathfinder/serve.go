package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/SoapDevX/pathfinder-ai/internal/config"
	"github.com/SoapDevX/pathfinder-ai/internal/db"
	"github.com/SoapDevX/pathfinder-ai/internal/llm"
	"github.com/SoapDevX/pathfinder-ai/internal/matching"
	"github.com/SoapDevX/pathfinder-ai/internal/providers"
	"github.com/SoapDevX/pathfinder-ai/internal/server"
	"github.com/SoapDevX/pathfinder-ai/internal/unified"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the job search and match endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT env var)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	llmClient, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = llmClient.Close() }()

	aggregator := unified.New(
		[]providers.Provider{
			providers.NewTheirStackProvider(cfg.TheirStackAPIKey),
			providers.NewJSearchProvider(cfg.RapidAPIKey),
			providers.NewAdzunaProvider(cfg.AdzunaAppID, cfg.AdzunaAPIKey),
		},
		providers.NewMockProvider(),
		logger,
	)

	scorer := matching.NewScorer(llmClient, logger)
	pipeline := matching.NewPipeline(aggregator, scorer, database, logger)

	srv, err := server.New(cfg, pipeline, aggregator)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
