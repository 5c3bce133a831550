package analysis

import (
	"math"
	"testing"

	"github.com/morleydemo/morley/pkg/geometry"
)

func TestAnalyzeTriangle(t *testing.T) {
	tri := geometry.NewTriangle(
		geometry.NewVector2(0, 0),
		geometry.NewVector2(4, 0),
		geometry.NewVector2(0, 3),
	)

	result := AnalyzeTriangle(tri)

	if result.Degenerate {
		t.Fatal("proper triangle reported as degenerate")
	}
	if math.Abs(result.Perimeter-12.0) > 1e-10 {
		t.Errorf("Perimeter failed: expected 12, got %v", result.Perimeter)
	}
	if math.Abs(result.Area-6.0) > 1e-10 {
		t.Errorf("Area failed: expected 6, got %v", result.Area)
	}
	if !result.HasCircle {
		t.Error("expected a circumcircle")
	}
	if !result.HasMorley {
		t.Fatal("expected a Morley triangle")
	}
	if result.MorleySide <= 0 {
		t.Errorf("MorleySide failed: got %v", result.MorleySide)
	}
	if result.MaxDeviation > 1e-6*result.MorleySide {
		t.Errorf("MaxDeviation too large: %v", result.MaxDeviation)
	}
}

func TestAnalyzeTriangleDegenerate(t *testing.T) {
	tri := geometry.NewTriangle(
		geometry.NewVector2(0, 0),
		geometry.NewVector2(1, 1),
		geometry.NewVector2(2, 2),
	)

	result := AnalyzeTriangle(tri)

	if !result.Degenerate {
		t.Error("collinear triangle not reported as degenerate")
	}
	if result.HasMorley {
		t.Error("expected no Morley triangle for collinear vertices")
	}
	if result.HasCircle {
		t.Error("expected no circumcircle for collinear vertices")
	}
}

func TestFormatAngle(t *testing.T) {
	formatted := FormatAngle(math.Pi / 2)
	expected := "90.000000°"
	if formatted != expected {
		t.Errorf("FormatAngle failed: expected %q, got %q", expected, formatted)
	}
}
