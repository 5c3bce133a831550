package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/morleydemo/morley/pkg/analysis"
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Compute the Morley triangle for three vertices",
	Long: `Trisect all three vertex angles, intersect the adjacent trisectors and
print the resulting inner triangle together with an equilateral check.`,
	Args: cobra.NoArgs,
	Run:  runDerive,
}

func init() {
	rootCmd.AddCommand(deriveCmd)
	addTriangleFlags(deriveCmd)
}

func runDerive(cmd *cobra.Command, args []string) {
	result := analysis.AnalyzeTriangle(triangleFromFlags())

	if !result.HasMorley {
		fmt.Fprintln(os.Stderr, "Error: the vertices are collinear, no trisector construction exists")
		os.Exit(1)
	}

	fmt.Println("Morley Triangle")
	fmt.Println("===============")
	fmt.Printf("Main vertices: %s %s %s\n\n",
		analysis.FormatVector(result.Main.A),
		analysis.FormatVector(result.Main.B),
		analysis.FormatVector(result.Main.C),
	)

	fmt.Println("Derived vertices:")
	for i, vertex := range result.Morley.Vertices() {
		fmt.Printf("  %d: %s\n", i+1, analysis.FormatVector(vertex))
	}

	sides := result.Morley.SideLengths()
	fmt.Println("\nDerived side lengths:")
	for i, side := range sides {
		fmt.Printf("  %d: %.6f units\n", i+1, side)
	}

	fmt.Printf("\nSide length: %.6f units\n", result.MorleySide)
	fmt.Printf("Largest side deviation: %.2e units\n", result.MaxDeviation)
	for i, angle := range result.Morley.Angles() {
		fmt.Printf("Interior angle %d: %s\n", i+1, analysis.FormatAngle(angle))
	}
}
