package autodesign

import (
	"fmt"

	tongue "Towbar/internal/calc/tongue"
)

type AxleAutoInput struct {
	Loads         []tongue.Load `json:"loads"`
	TargetPercent float64       `json:"target_percent"`
}

type AxleAutoResult struct {
	AxlePositionIn float64       `json:"axle_position_in"`
	Result         tongue.Result `json:"result"`
	Notes          string        `json:"notes"`
}

// Axle places the axle group for a fixed set of loads. Since the tongue
// weight is W - M/a, the position that yields a target fraction p is
// a = M / (W*(1-p)).
func Axle(in AxleAutoInput) (AxleAutoResult, error) {
	if len(in.Loads) == 0 {
		return AxleAutoResult{}, fmt.Errorf("invalid input")
	}
	if in.TargetPercent <= 0 {
		in.TargetPercent = (tongue.MinTonguePercent + tongue.MaxTonguePercent) / 2
	}
	if in.TargetPercent >= 100 {
		return AxleAutoResult{}, fmt.Errorf("invalid target percent")
	}

	total := 0.0
	moment := 0.0
	for _, l := range in.Loads {
		total += l.WeightLb
		moment += l.WeightLb * l.DistanceIn
	}
	if total <= 0 {
		return AxleAutoResult{}, fmt.Errorf("invalid input")
	}
	if moment <= 0 {
		// Everything sits on the hitch; no axle position changes that.
		return AxleAutoResult{}, fmt.Errorf("loads have no moment about the hitch")
	}

	p := in.TargetPercent / 100.0
	a := moment / (total * (1.0 - p))

	res, err := tongue.Calculate(tongue.Config{
		Loads: in.Loads,
		Axles: []tongue.Axle{{DistanceIn: a}},
	})
	if err != nil {
		return AxleAutoResult{}, err
	}
	return AxleAutoResult{
		AxlePositionIn: a,
		Result:         res,
		Notes:          fmt.Sprintf("Axle group placed for %.1f%% tongue weight.", in.TargetPercent),
	}, nil
}
