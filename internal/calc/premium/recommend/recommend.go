package recommend

import (
	"fmt"
	"math"

	tongue "Towbar/internal/calc/tongue"
)

type BallastInput struct {
	Config            tongue.Config `json:"config"`
	BallastDistanceIn float64       `json:"ballast_distance_in"`
	TargetPercent     float64       `json:"target_percent"`
}

type BallastResult struct {
	BallastWeightLb float64       `json:"ballast_weight_lb"`
	Result          tongue.Result `json:"result"`
	Notes           string        `json:"notes"`
}

// Ballast sizes a single weight at the given mounting distance so the tongue
// percent lands on target. From the moment balance, a ballast B at distance
// xb shifts the tongue to T + B*(1 - xb/a) out of a total W + B, so
// B = (p*W - T) / ((1 - xb/a) - p) with p the target as a fraction.
func Ballast(in BallastInput) (BallastResult, error) {
	if in.TargetPercent <= 0 {
		in.TargetPercent = (tongue.MinTonguePercent + tongue.MaxTonguePercent) / 2
	}
	if in.TargetPercent >= 100 {
		return BallastResult{}, fmt.Errorf("invalid target percent")
	}
	if in.BallastDistanceIn < 0 {
		return BallastResult{}, fmt.Errorf("invalid ballast distance")
	}

	base, err := tongue.Calculate(in.Config)
	if err != nil {
		return BallastResult{}, err
	}

	p := in.TargetPercent / 100.0
	share := 1.0 - in.BallastDistanceIn/base.AxlePositionIn
	num := p*base.TotalWeightLb - base.TongueWeightLb
	if math.Abs(num) < 1e-9 {
		return BallastResult{
			BallastWeightLb: 0,
			Result:          base,
			Notes:           "Configuration already on target; no ballast needed.",
		}, nil
	}
	denom := share - p
	if denom == 0 {
		return BallastResult{}, fmt.Errorf("ballast at this position cannot move the tongue percent")
	}
	b := num / denom
	if b <= 0 {
		return BallastResult{}, fmt.Errorf("ballast at this position cannot reach the target")
	}

	cfg := in.Config
	cfg.Loads = append(append([]tongue.Load(nil), cfg.Loads...),
		tongue.Load{WeightLb: b, DistanceIn: in.BallastDistanceIn})
	res, err := tongue.Calculate(cfg)
	if err != nil {
		return BallastResult{}, err
	}
	return BallastResult{
		BallastWeightLb: b,
		Result:          res,
		Notes:           fmt.Sprintf("Ballast sized for %.1f%% tongue weight at %.0f in from hitch.", in.TargetPercent, in.BallastDistanceIn),
	}, nil
}
