package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mockapi",
	Short: "Mock API backend for exercising fullstack tooling",
	Long: `mockapi - A static JSON API server used as a stand-in backend.

It serves three fixed endpoints with permissive CORS, so scaffolders,
proxies and test harnesses have something real to talk to.

Core Commands:
  serve            Start the API server (default port 5000, PORT env override)
  healthcheck      Wait until a running instance answers its health endpoint
  init             Generate a mockapi.yaml config interactively`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
