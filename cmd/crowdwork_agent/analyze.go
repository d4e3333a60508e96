package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/crowdwork-analyzer/internal/logger"
	"github.com/jonathan/crowdwork-analyzer/internal/observability"
	"github.com/jonathan/crowdwork-analyzer/internal/report"
	"github.com/jonathan/crowdwork-analyzer/internal/types"
)

var (
	analyzeChannel   string
	analyzeMaxVideos int
	analyzeOut       string
	analyzeVerbose   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one channel synchronously",
	Long:  `Run the full analysis pipeline for a channel and print the crowdwork breakdown. Optionally export the result to an .xlsx workbook.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeChannel, "channel", "", "Channel URL, @handle, or UC id (required)")
	analyzeCmd.Flags().IntVar(&analyzeMaxVideos, "max-videos", 0, "Maximum candidate videos to analyze (default from config, or 5)")
	analyzeCmd.Flags().StringVar(&analyzeOut, "out", "", "Write the result to this .xlsx file")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print per-segment classifications")
	_ = analyzeCmd.MarkFlagRequired("channel")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if analyzeMaxVideos != 0 {
		cfg.MaxVideos = analyzeMaxVideos
	}

	ctx := context.Background()
	log := logger.New()

	orchestrator, registry, err := buildOrchestrator(ctx, cfg, log)
	if err != nil {
		return err
	}

	run := registry.Create(analyzeChannel)
	orchestrator.Execute(ctx, run.ID, analyzeChannel, cfg.MaxVideos)

	run, err = registry.Get(run.ID)
	if err != nil {
		return err
	}
	if run.Status == types.StatusFailed {
		return fmt.Errorf("analysis failed: %s", run.Error)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRunResult(run.Result)
	if analyzeVerbose {
		for i := range run.Result.Videos {
			printer.PrintAnalysis(&run.Result.Videos[i].TranscriptAnalysis)
		}
	}

	if analyzeOut != "" {
		if err := report.WriteXLSX(analyzeOut, run.Result); err != nil {
			return fmt.Errorf("exporting report failed: %w", err)
		}
		fmt.Printf("Report written to %s\n", analyzeOut)
	}

	return nil
}
