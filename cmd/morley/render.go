package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/morleydemo/morley/pkg/export"
)

var (
	renderOutput string
	renderWidth  int
	renderHeight int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Rasterize the trisector construction to PNG",
	Args:  cobra.NoArgs,
	Run:   runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addTriangleFlags(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "morley.png", "Output PNG file")
	renderCmd.Flags().IntVar(&renderWidth, "width", 800, "Canvas width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 600, "Canvas height in pixels")
}

func runRender(cmd *cobra.Command, args []string) {
	snapshot := sceneFromFlags().Snapshot()

	if err := export.RenderPNG(snapshot, renderWidth, renderHeight, renderOutput); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d)\n", renderOutput, renderWidth, renderHeight)
}
