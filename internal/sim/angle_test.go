package sim

import (
	"math"
	"testing"
)

func TestAngularError(t *testing.T) {
	tests := []struct {
		name     string
		desired  float64
		current  float64
		expected float64
	}{
		{"zero", 0, 0, 0},
		{"simple", 90, 0, 90},
		{"negative", 0, 90, -90},
		{"wrap positive", 10, 350, 20},
		{"wrap negative", 350, 10, -20},
		{"half turn", 180, 0, 180},
		{"half turn reversed", 0, 180, 180},
		{"just past half", 181, 0, -179},
		{"full turn", 360, 0, 0},
		{"unwrapped current", 90, 720, 90},
		{"negative multiple", 10, -350, 0},
		{"far outside", 3730, -3590, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngularError(tt.desired, tt.current)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("AngularError(%v, %v) = %v, want %v", tt.desired, tt.current, got, tt.expected)
			}
		})
	}
}

func TestAngularErrorRange(t *testing.T) {
	for d := 0.0; d < 360; d += 7.3 {
		for c := 0.0; c < 360; c += 11.1 {
			e := AngularError(d, c)
			if e <= -180 || e > 180 {
				t.Fatalf("AngularError(%v, %v) = %v outside (-180, 180]", d, c, e)
			}
		}
	}
}

func TestWrapHeading(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{725, 5},
		{-10, 350},
		{-360, 0},
	}

	for _, tt := range tests {
		if got := WrapHeading(tt.in); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("WrapHeading(%v) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}
