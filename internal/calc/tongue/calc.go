package tongue

import (
	"errors"
	"fmt"
	"math"
)

// Recommended tongue weight band, percent of total trailer weight.
// Bounds are inclusive.
const (
	MinTonguePercent = 10.0
	MaxTonguePercent = 15.0
)

type Status string

const (
	StatusInRange Status = "IN_RANGE"
	StatusTooLow  Status = "TOO_LOW"
	StatusTooHigh Status = "TOO_HIGH"
)

var ErrInvalidConfig = errors.New("invalid trailer configuration")

// Load is one cargo item on the trailer deck, positioned along the
// longitudinal axis with the hitch at distance 0.
type Load struct {
	WeightLb   float64 `json:"weight_lb"`
	DistanceIn float64 `json:"distance_in"`
}

type Axle struct {
	DistanceIn float64 `json:"distance_in"`
}

type Config struct {
	Loads []Load `json:"loads"`
	Axles []Axle `json:"axles"`
}

type Result struct {
	TotalWeightLb  float64 `json:"total_weight_lb"`
	TongueWeightLb float64 `json:"tongue_weight_lb"`
	TonguePercent  float64 `json:"tongue_percent"`
	AxlePositionIn float64 `json:"axle_position_in"`
	Status         Status  `json:"status"`
	Notes          string  `json:"notes"`
}

// Calculate solves the hitch reaction for a trailer treated as a beam on two
// supports: the hitch at the origin and the axle group collapsed to the mean
// of its axle positions. Each load contributes weight*(1 - distance/axlePos)
// to the tongue; per-axle load split under staggered spacing is not modeled.
func Calculate(in Config) (Result, error) {
	if len(in.Loads) == 0 {
		return Result{}, fmt.Errorf("%w: no loads", ErrInvalidConfig)
	}
	if len(in.Axles) == 0 {
		return Result{}, fmt.Errorf("%w: no axles", ErrInvalidConfig)
	}

	total := 0.0
	for _, l := range in.Loads {
		if !finite(l.WeightLb) || !finite(l.DistanceIn) || l.WeightLb < 0 || l.DistanceIn < 0 {
			return Result{}, fmt.Errorf("%w: load weight and distance must be finite and non-negative", ErrInvalidConfig)
		}
		total += l.WeightLb
	}
	if total <= 0 {
		return Result{}, fmt.Errorf("%w: total weight must be positive", ErrInvalidConfig)
	}

	axleSum := 0.0
	for _, a := range in.Axles {
		if !finite(a.DistanceIn) || a.DistanceIn < 0 {
			return Result{}, fmt.Errorf("%w: axle distance must be finite and non-negative", ErrInvalidConfig)
		}
		axleSum += a.DistanceIn
	}
	axlePos := axleSum / float64(len(in.Axles))
	if axlePos <= 0 {
		return Result{}, fmt.Errorf("%w: axle group position must be ahead of the hitch", ErrInvalidConfig)
	}

	tongueWt := 0.0
	for _, l := range in.Loads {
		tongueWt += l.WeightLb * (1.0 - l.DistanceIn/axlePos)
	}
	pct := 100.0 * tongueWt / total

	return Result{
		TotalWeightLb:  total,
		TongueWeightLb: tongueWt,
		TonguePercent:  pct,
		AxlePositionIn: axlePos,
		Status:         classify(pct),
		Notes:          "Single-point axle group (mean of axle positions); moment balance about the hitch.",
	}, nil
}

func classify(pct float64) Status {
	switch {
	case pct < MinTonguePercent:
		return StatusTooLow
	case pct > MaxTonguePercent:
		return StatusTooHigh
	default:
		return StatusInRange
	}
}

// Message is the operator-facing advisory for a classification.
func (s Status) Message() string {
	switch s {
	case StatusTooLow:
		return "Tongue weight is too low - risk of trailer sway."
	case StatusTooHigh:
		return "Tongue weight is too high - risk of overloading the tow vehicle."
	default:
		return "Tongue weight is within the recommended 10-15% range."
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
