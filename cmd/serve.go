package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/spboyer/mockapi/internal/api"
	"github.com/spboyer/mockapi/internal/config"
	"github.com/spboyer/mockapi/internal/logger"
	"github.com/spboyer/mockapi/internal/ui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mock API server",
	Long: `Start the mock API server on the loopback interface.

Port resolution order: --port flag, PORT environment variable,
mockapi.yaml, then the default 5000.

Examples:
  mockapi serve               # Start on default port 5000
  mockapi serve --port 6000   # Start on custom port
  PORT=6000 mockapi serve     # Same, via environment`,
	RunE: runServe,
}

var (
	servePort    int
	serveConfig  string
	serveVerbose bool
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides PORT env and config file)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to mockapi.yaml")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Enable request logging")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveVerbose {
		logger.SetDefaultLevel(logger.LevelDebug)
	}

	// Fullstack fixtures conventionally keep PORT in a .env file.
	_ = godotenv.Load()

	var cfg *config.Config
	if serveConfig != "" {
		loaded, err := config.Load(serveConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg = config.LoadOrDefault()
	}

	if err := cfg.ResolvePort(servePort); err != nil {
		return err
	}

	srv, err := api.New(*cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Setup graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println()
		fmt.Printf("%s Shutting down...\n", ui.StyleYellow.Render("⚠"))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			logger.Error("shutdown error: %v", err)
		}
	}()

	fmt.Printf("%s API server starting on %s\n", ui.StyleCyan.Render("🚀"), srv.URL())
	fmt.Println()
	fmt.Printf("  %s %s/\n", ui.StyleDim.Render("Home:"), srv.URL())
	fmt.Printf("  %s %s/api/data\n", ui.StyleDim.Render("Data:"), srv.URL())
	fmt.Printf("  %s %s/api/health\n", ui.StyleDim.Render("Health:"), srv.URL())
	fmt.Println()
	fmt.Println(ui.StyleDim.Render("Press Ctrl+C to stop"))
	fmt.Println()

	if err := srv.Start(); err != nil {
		return err
	}

	fmt.Printf("%s Server stopped\n", ui.StyleGreen.Render("✓"))
	return nil
}
