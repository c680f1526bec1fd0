package diagram

import (
	"fmt"

	tongue "Towbar/internal/calc/tongue"
)

// EndMarginIn is the extra rail drawn past the rearmost marker so labels
// near the end of the trailer have room.
const EndMarginIn = 20.0

type Marker struct {
	PositionIn float64 `json:"position_in"`
	Label      string  `json:"label"`
}

// Layout is the schematic of one configuration: a rail from the hitch to
// TrailerLengthIn with load markers above it, axle markers below it and the
// tongue-weight annotation anchored between hitch and first axle.
type Layout struct {
	TrailerLengthIn float64  `json:"trailer_length_in"`
	Hitch           Marker   `json:"hitch"`
	Loads           []Marker `json:"loads"`
	Axles           []Marker `json:"axles"`
	AnnotationXIn   float64  `json:"annotation_x_in"`
	Annotation      string   `json:"annotation"`
}

func Build(cfg tongue.Config, res tongue.Result) (Layout, error) {
	if len(cfg.Loads) == 0 || len(cfg.Axles) == 0 {
		return Layout{}, fmt.Errorf("%w: nothing to draw", tongue.ErrInvalidConfig)
	}

	maxPos := 0.0
	for _, l := range cfg.Loads {
		if l.DistanceIn > maxPos {
			maxPos = l.DistanceIn
		}
	}
	minAxle := cfg.Axles[0].DistanceIn
	for _, a := range cfg.Axles {
		if a.DistanceIn > maxPos {
			maxPos = a.DistanceIn
		}
		if a.DistanceIn < minAxle {
			minAxle = a.DistanceIn
		}
	}

	lay := Layout{
		TrailerLengthIn: maxPos + EndMarginIn,
		Hitch:           Marker{PositionIn: 0, Label: "Hitch (0 in)"},
		AnnotationXIn:   minAxle / 2.0,
		Annotation: fmt.Sprintf("Tongue Weight: %.2f lbs (%.2f%%)",
			res.TongueWeightLb, res.TonguePercent),
	}
	for i, l := range cfg.Loads {
		lay.Loads = append(lay.Loads, Marker{
			PositionIn: l.DistanceIn,
			Label:      fmt.Sprintf("Load %d (%.0f lbs)", i+1, l.WeightLb),
		})
	}
	for i, a := range cfg.Axles {
		lay.Axles = append(lay.Axles, Marker{
			PositionIn: a.DistanceIn,
			Label:      fmt.Sprintf("Axle %d (%.0f in)", i+1, a.DistanceIn),
		})
	}
	return lay, nil
}
