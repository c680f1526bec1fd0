package autodesign

import (
	"math"
	"testing"

	tongue "Towbar/internal/calc/tongue"
)

func TestAxle(t *testing.T) {
	out, err := Axle(AxleAutoInput{
		Loads:         []tongue.Load{{WeightLb: 1000, DistanceIn: 30}},
		TargetPercent: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a = 30000 / (1000 * 0.9)
	if math.Abs(out.AxlePositionIn-100.0/3.0) > 1e-9 {
		t.Errorf("axle position = %v, want 33.33", out.AxlePositionIn)
	}
	if math.Abs(out.Result.TonguePercent-10) > 1e-9 {
		t.Errorf("resulting percent = %v, want 10", out.Result.TonguePercent)
	}
	if out.Result.Status != tongue.StatusInRange {
		t.Errorf("resulting status = %v", out.Result.Status)
	}
}

func TestAxleMultipleLoads(t *testing.T) {
	out, err := Axle(AxleAutoInput{
		Loads: []tongue.Load{
			{WeightLb: 2000, DistanceIn: 100},
			{WeightLb: 500, DistanceIn: 150},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Default target is the middle of the recommended band.
	if math.Abs(out.Result.TonguePercent-12.5) > 1e-9 {
		t.Errorf("resulting percent = %v, want 12.5", out.Result.TonguePercent)
	}
}

func TestAxleInvalid(t *testing.T) {
	cases := []struct {
		name string
		in   AxleAutoInput
	}{
		{"no loads", AxleAutoInput{}},
		{"zero moment", AxleAutoInput{Loads: []tongue.Load{{WeightLb: 1000, DistanceIn: 0}}}},
		{"target too high", AxleAutoInput{
			Loads:         []tongue.Load{{WeightLb: 1000, DistanceIn: 30}},
			TargetPercent: 120,
		}},
	}
	for _, c := range cases {
		if _, err := Axle(c.in); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}
