package analysis

import (
	"fmt"
	"math"

	"github.com/morleydemo/morley/pkg/geometry"
)

// MeasurementResult contains various measurements of the trisector
// construction for one main triangle
type MeasurementResult struct {
	Main         geometry.Triangle
	SideLengths  [3]float64
	Angles       [3]float64 // Interior angles in radians
	Perimeter    float64
	Area         float64
	Centroid     geometry.Vector2
	Circumcircle geometry.Circle
	HasCircle    bool
	Morley       geometry.Triangle
	HasMorley    bool
	MorleySide   float64 // Side length of the derived triangle
	MaxDeviation float64 // Largest side-length deviation of the derived triangle
	Degenerate   bool
}

// AnalyzeTriangle performs comprehensive analysis on a main triangle and its
// derived Morley triangle
func AnalyzeTriangle(main geometry.Triangle) *MeasurementResult {
	result := &MeasurementResult{
		Main:        main,
		SideLengths: main.SideLengths(),
		Angles:      main.Angles(),
		Perimeter:   main.Perimeter(),
		Area:        main.Area(),
		Centroid:    main.Centroid(),
		Degenerate:  main.IsDegenerate(),
	}

	result.Circumcircle, result.HasCircle = geometry.Circumcircle(main)

	result.Morley, result.HasMorley = geometry.MorleyTriangle(main)
	if result.HasMorley {
		sides := result.Morley.SideLengths()
		result.MorleySide = sides[0]
		for _, side := range sides {
			deviation := math.Abs(side - sides[0])
			if deviation > result.MaxDeviation {
				result.MaxDeviation = deviation
			}
		}
	}

	return result
}

// FormatVector formats a 2D point
func FormatVector(v geometry.Vector2) string {
	return fmt.Sprintf("(%.6f, %.6f)", v.X, v.Y)
}

// FormatAngle formats an angle in degrees
func FormatAngle(radians float64) string {
	return fmt.Sprintf("%.6f°", radians*180.0/math.Pi)
}
