package batch

import (
	"fmt"

	tongue "Towbar/internal/calc/tongue"
)

type TongueBatchInput struct {
	Items []tongue.Config `json:"items"`
}

type TongueBatchResult struct {
	Results []tongue.Result `json:"results"`
}

func CalculateTongue(in TongueBatchInput) (TongueBatchResult, error) {
	if len(in.Items) == 0 {
		return TongueBatchResult{}, fmt.Errorf("no items")
	}
	out := TongueBatchResult{Results: make([]tongue.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := tongue.Calculate(item)
		if err != nil {
			return TongueBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
