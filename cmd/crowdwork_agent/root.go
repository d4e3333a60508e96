package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/crowdwork-analyzer/internal/analysis"
	"github.com/jonathan/crowdwork-analyzer/internal/classifier"
	"github.com/jonathan/crowdwork-analyzer/internal/config"
	"github.com/jonathan/crowdwork-analyzer/internal/logger"
	"github.com/jonathan/crowdwork-analyzer/internal/pipeline"
	"github.com/jonathan/crowdwork-analyzer/internal/runs"
	"github.com/jonathan/crowdwork-analyzer/internal/youtube"
)

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

// loadConfig merges the optional config file, built-in defaults, and the
// environment. Flags are applied on top by each command.
func loadConfig() (config.Config, error) {
	cfg := config.Defaults()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		if err := fileCfg.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	if key := os.Getenv("YOUTUBE_API_KEY"); key != "" {
		cfg.APIKey = key
	}

	return cfg, nil
}

// buildOrchestrator wires the collaborator client, registry, and pipeline.
func buildOrchestrator(ctx context.Context, cfg config.Config, log *logger.Logger) (*pipeline.Orchestrator, *runs.Registry, error) {
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("YOUTUBE_API_KEY environment variable is required")
	}

	source, err := youtube.NewClient(ctx, cfg.APIKey, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create youtube client: %w", err)
	}

	registry := runs.NewRegistry()
	aggregator := analysis.NewAggregator(classifier.New())
	orchestrator := pipeline.New(source, registry, aggregator, log, pipeline.Options{
		Language: cfg.Language,
	})

	return orchestrator, registry, nil
}
