package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spboyer/mockapi/internal/config"
	"github.com/spboyer/mockapi/internal/probe"
	"github.com/spboyer/mockapi/internal/ui"
)

var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Wait until a running mockapi instance is ready",
	Long: `Poll the health endpoint of a running mockapi instance with
exponential backoff until it answers, or fail after the timeout.

Examples:
  mockapi healthcheck                  # Check port 5000 (or PORT env)
  mockapi healthcheck --port 6000
  mockapi healthcheck --timeout 30s`,
	RunE: runHealthcheck,
}

var (
	healthcheckPort    int
	healthcheckPath    string
	healthcheckTimeout time.Duration
)

func init() {
	rootCmd.AddCommand(healthcheckCmd)

	healthcheckCmd.Flags().IntVarP(&healthcheckPort, "port", "p", 0, "Port of the running instance (defaults to PORT env or 5000)")
	healthcheckCmd.Flags().StringVar(&healthcheckPath, "path", "/api/health", "Health endpoint path")
	healthcheckCmd.Flags().DurationVar(&healthcheckTimeout, "timeout", 10*time.Second, "How long to keep polling before giving up")
}

func runHealthcheck(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.ResolvePort(healthcheckPort); err != nil {
		return err
	}

	url := fmt.Sprintf("http://%s:%d%s", cfg.Server.Host, cfg.Server.Port, healthcheckPath)

	fmt.Printf("%s Waiting for %s\n", ui.StyleCyan.Render("⏳"), ui.StyleDim.Render(url))

	if err := probe.WaitReady(url, healthcheckTimeout); err != nil {
		return err
	}

	fmt.Printf("%s Service is ready\n", ui.StyleSuccess.Render("✓"))
	return nil
}
