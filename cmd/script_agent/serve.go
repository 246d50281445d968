package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/lead-scripter/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the script-generation endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Collaborator credentials are read from the environment at call time,
	// so the server starts even when some of them are absent.
	srv := server.New(server.Config{Port: servePort})
	return srv.Start()
}
