package main

import (
	"github.com/spf13/cobra"

	"github.com/morleydemo/morley/pkg/geometry"
)

// Vertex flags shared by the headless subcommands. Defaults match the
// startup triangle of the interactive viewer.
var (
	point1X, point1Y float64
	point2X, point2Y float64
	point3X, point3Y float64
)

func addTriangleFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&point1X, "x1", 300, "X coordinate of the first vertex")
	cmd.Flags().Float64Var(&point1Y, "y1", 100, "Y coordinate of the first vertex")
	cmd.Flags().Float64Var(&point2X, "x2", 700, "X coordinate of the second vertex")
	cmd.Flags().Float64Var(&point2Y, "y2", 400, "Y coordinate of the second vertex")
	cmd.Flags().Float64Var(&point3X, "x3", 100, "X coordinate of the third vertex")
	cmd.Flags().Float64Var(&point3Y, "y3", 400, "Y coordinate of the third vertex")
}

func triangleFromFlags() geometry.Triangle {
	return geometry.NewTriangle(
		geometry.NewVector2(point1X, point1Y),
		geometry.NewVector2(point2X, point2Y),
		geometry.NewVector2(point3X, point3Y),
	)
}
