package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spboyer/mockapi/internal/ui"
)

// Build-time variables, set via -ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(GetVersionString())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// GetVersionString returns the styled version string
func GetVersionString() string {
	return fmt.Sprintf("%s %s\n%s %s\n%s %s",
		ui.StyleBold.Render("mockapi"), ui.StyleCyan.Render(Version),
		ui.StyleDim.Render("commit:"), GitCommit,
		ui.StyleDim.Render("built:"), BuildDate,
	)
}
