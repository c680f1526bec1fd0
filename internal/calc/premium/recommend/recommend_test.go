package recommend

import (
	"math"
	"testing"

	tongue "Towbar/internal/calc/tongue"
)

func TestBallast(t *testing.T) {
	// 4000 lb at 90 in on a 100 in axle sits at exactly 10%; ballast at
	// 50 in must be (0.125*4000-400)/(0.5-0.125) = 266.67 lb for 12.5%.
	in := BallastInput{
		Config: tongue.Config{
			Loads: []tongue.Load{{WeightLb: 4000, DistanceIn: 90}},
			Axles: []tongue.Axle{{DistanceIn: 100}},
		},
		BallastDistanceIn: 50,
		TargetPercent:     12.5,
	}
	out, err := Ballast(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(out.BallastWeightLb-266.666666667) > 1e-6 {
		t.Errorf("ballast = %v, want 266.67", out.BallastWeightLb)
	}
	if math.Abs(out.Result.TonguePercent-12.5) > 1e-9 {
		t.Errorf("resulting percent = %v, want 12.5", out.Result.TonguePercent)
	}
	if out.Result.Status != tongue.StatusInRange {
		t.Errorf("resulting status = %v", out.Result.Status)
	}
}

func TestBallastDefaultsToMidBand(t *testing.T) {
	in := BallastInput{
		Config: tongue.Config{
			Loads: []tongue.Load{{WeightLb: 4000, DistanceIn: 90}},
			Axles: []tongue.Axle{{DistanceIn: 100}},
		},
		BallastDistanceIn: 50,
	}
	out, err := Ballast(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(out.Result.TonguePercent-12.5) > 1e-9 {
		t.Errorf("resulting percent = %v, want midpoint 12.5", out.Result.TonguePercent)
	}
}

func TestBallastBehindAxlesReducesTongue(t *testing.T) {
	// 18% tongue, ballast hung behind the axle pulls it down to 15%.
	in := BallastInput{
		Config: tongue.Config{
			Loads: []tongue.Load{{WeightLb: 4000, DistanceIn: 82}},
			Axles: []tongue.Axle{{DistanceIn: 100}},
		},
		BallastDistanceIn: 150,
		TargetPercent:     15,
	}
	out, err := Ballast(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.BallastWeightLb <= 0 {
		t.Fatalf("ballast = %v, want positive", out.BallastWeightLb)
	}
	if math.Abs(out.Result.TonguePercent-15) > 1e-9 {
		t.Errorf("resulting percent = %v, want 15", out.Result.TonguePercent)
	}
}

func TestBallastUnreachable(t *testing.T) {
	// Tongue is below target but the mounting point is behind the axles,
	// so any added weight moves the percent the wrong way.
	in := BallastInput{
		Config: tongue.Config{
			Loads: []tongue.Load{{WeightLb: 4000, DistanceIn: 90}},
			Axles: []tongue.Axle{{DistanceIn: 100}},
		},
		BallastDistanceIn: 150,
		TargetPercent:     12.5,
	}
	if _, err := Ballast(in); err == nil {
		t.Fatalf("expected error for unreachable target")
	}
}

func TestBallastAlreadyOnTarget(t *testing.T) {
	in := BallastInput{
		Config: tongue.Config{
			Loads: []tongue.Load{{WeightLb: 4000, DistanceIn: 87.5}},
			Axles: []tongue.Axle{{DistanceIn: 100}},
		},
		BallastDistanceIn: 50,
		TargetPercent:     12.5,
	}
	out, err := Ballast(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.BallastWeightLb != 0 {
		t.Errorf("ballast = %v, want 0", out.BallastWeightLb)
	}
}
