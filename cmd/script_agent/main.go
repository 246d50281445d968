// Package main provides the entry point for the Lead Scripter HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "script_agent",
	Short: "Lead Scripter HTTP API Server",
	Long:  "Lead Scripter generates personalized outreach scripts from a company website and a LinkedIn profile via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
