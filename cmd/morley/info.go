package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/morleydemo/morley/pkg/analysis"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display measurements of a triangle and its trisector construction",
	Long:  "Show side lengths, interior angles, area, circumcircle and the derived Morley triangle for the given vertices.",
	Args:  cobra.NoArgs,
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	addTriangleFlags(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	result := analysis.AnalyzeTriangle(triangleFromFlags())

	fmt.Println("Triangle Information")
	fmt.Println("====================")
	fmt.Printf("Vertices: %s %s %s\n\n",
		analysis.FormatVector(result.Main.A),
		analysis.FormatVector(result.Main.B),
		analysis.FormatVector(result.Main.C),
	)

	if result.Degenerate {
		fmt.Println("The vertices are collinear: angles and the trisector")
		fmt.Println("construction are undefined.")
		return
	}

	fmt.Println("Sides:")
	labels := []string{"AB", "BC", "CA"}
	for i, length := range result.SideLengths {
		fmt.Printf("  %s: %.6f units\n", labels[i], length)
	}

	fmt.Println("\nInterior angles:")
	for i, angle := range result.Angles {
		fmt.Printf("  %c: %s\n", 'A'+i, analysis.FormatAngle(angle))
	}

	fmt.Printf("\nPerimeter: %.6f units\n", result.Perimeter)
	fmt.Printf("Area: %.6f square units\n", result.Area)
	fmt.Printf("Centroid: %s\n", analysis.FormatVector(result.Centroid))
	if result.HasCircle {
		fmt.Printf("Circumcircle: center %s, radius %.6f\n",
			analysis.FormatVector(result.Circumcircle.Center), result.Circumcircle.Radius)
	}

	if result.HasMorley {
		fmt.Printf("\nMorley side: %.6f units\n", result.MorleySide)
		fmt.Printf("Largest side deviation: %.2e units\n", result.MaxDeviation)
	}
}
