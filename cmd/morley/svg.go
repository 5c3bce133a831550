package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/morleydemo/morley/pkg/export"
	"github.com/morleydemo/morley/pkg/scene"
)

var svgOutput string

var svgCmd = &cobra.Command{
	Use:   "svg",
	Short: "Export the trisector construction as SVG",
	Long:  "Write a vector drawing of the triangle, its trisectors and the derived Morley triangle to a file or stdout.",
	Args:  cobra.NoArgs,
	Run:   runSVG,
}

func init() {
	rootCmd.AddCommand(svgCmd)
	addTriangleFlags(svgCmd)
	svgCmd.Flags().StringVarP(&svgOutput, "output", "o", "-", "Output file, - for stdout")
}

func runSVG(cmd *cobra.Command, args []string) {
	snapshot := sceneFromFlags().Snapshot()

	out := os.Stdout
	if svgOutput != "-" {
		file, err := os.Create(svgOutput)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		out = file
	}

	if err := export.WriteSVG(out, snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing SVG: %v\n", err)
		os.Exit(1)
	}
}

func sceneFromFlags() *scene.Scene {
	s := scene.New()
	tri := triangleFromFlags()
	s.SetVertex(0, tri.A)
	s.SetVertex(1, tri.B)
	s.SetVertex(2, tri.C)
	return s
}
