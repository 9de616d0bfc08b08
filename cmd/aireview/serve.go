package main

import (
	"github.com/spf13/cobra"

	"github.com/aireview/aireview/internal/server"
	"github.com/aireview/aireview/service"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis HTTP API",
		Long: `Run an HTTP server exposing the analyzer.

Routes:
  GET  /        service identity
  GET  /health  liveness probe
  POST /analyze multipart file upload, returns the issues as JSON`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":8000", "Listen address")
	cmd.Flags().StringP("config", "c", "", "Path to a configuration file")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	configPath, _ := cmd.Flags().GetString("config")

	cfg := service.NewConfigLoader().LoadForPath(configPath, "")
	return server.New(cfg).Run(addr)
}
