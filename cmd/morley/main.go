package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/morleydemo/morley/internal/app"
	"github.com/morleydemo/morley/version"
)

var rootCmd = &cobra.Command{
	Use:   "morley",
	Short: "Interactive demonstration of Morley's trisector theorem",
	Long: `Morley shows that the angle trisectors of any triangle meet in an
equilateral triangle. Run without a subcommand to open the interactive
viewer and drag the corners; the subcommands compute and export the
construction without a window.`,
	Version: version.GetFullVersion(),
	Run: func(cmd *cobra.Command, args []string) {
		app.Run()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
