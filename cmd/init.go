package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spboyer/mockapi/internal/config"
	"github.com/spboyer/mockapi/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a mockapi.yaml config interactively",
	RunE:  runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing mockapi.yaml")
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(config.DefaultConfigFile); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", config.DefaultConfigFile)
	}

	cfg, err := runInitWizard()
	if err != nil {
		return err
	}

	if err := cfg.Save(config.DefaultConfigFile); err != nil {
		return err
	}

	fmt.Printf("%s Wrote %s\n", ui.StyleSuccess.Render("✓"), config.DefaultConfigFile)
	fmt.Println(ui.StyleDim.Render("Run 'mockapi serve' to start the server"))
	return nil
}

// runInitWizard prompts for the configurable settings, seeded with defaults
func runInitWizard() (*config.Config, error) {
	cfg := config.Default()

	fmt.Println(ui.StyleHeader.Render("Mock API setup"))
	fmt.Println()

	name, err := ui.PromptDefault("Service name", cfg.Service.Name)
	if err != nil {
		return nil, err
	}
	cfg.Service.Name = name

	portInput, err := ui.PromptDefault("Port", strconv.Itoa(cfg.Server.Port))
	if err != nil {
		return nil, err
	}
	port, err := strconv.Atoi(portInput)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", portInput, err)
	}
	if err := config.ValidatePort(port); err != nil {
		return nil, err
	}
	cfg.Server.Port = port

	ok, err := ui.PromptConfirm(fmt.Sprintf("Write %s?", config.DefaultConfigFile), true)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("aborted")
	}

	return cfg, nil
}
