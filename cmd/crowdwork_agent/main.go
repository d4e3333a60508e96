// Package main provides the entry point for the crowdwork analyzer CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crowdwork_agent",
	Short: "Crowdwork Analyzer",
	Long:  "Crowdwork Analyzer classifies stand-up transcript segments as crowdwork or prepared material and reports duration-weighted percentages per video and per channel.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
