package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/crowdwork-analyzer/internal/logger"
	"github.com/jonathan/crowdwork-analyzer/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that accepts channel analysis requests and exposes run status for polling.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	log := logger.New()
	orchestrator, registry, err := buildOrchestrator(context.Background(), cfg, log)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{Port: cfg.Port}, registry, orchestrator, log)
	return srv.Start()
}
