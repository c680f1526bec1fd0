package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	tongue "Towbar/internal/calc/tongue"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type TongueImportResult struct {
	Count   int             `json:"count"`
	Results []tongue.Result `json:"results"`
}

// Tongue accepts an XLSX upload where each data row is one single-load
// configuration. Multi-load setups go through the JSON batch endpoint.
func (h *Handler) Tongue(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []tongue.Result
	for i := 1; i < len(rows); i++ {
		cfg, err := parseTongueRow(rows[i])
		if err != nil {
			continue
		}
		res, err := tongue.Calculate(cfg)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TongueImportResult{Count: len(results), Results: results})
}

func parseTongueRow(row []string) (tongue.Config, error) {
	// expected: weight_lb, load_distance_in, axle1_in[, axle2_in, ...]
	if len(row) < 3 {
		return tongue.Config{}, fmt.Errorf("bad row")
	}
	weight, err := toFloat(row[0])
	if err != nil {
		return tongue.Config{}, err
	}
	distance, err := toFloat(row[1])
	if err != nil {
		return tongue.Config{}, err
	}
	var axles []tongue.Axle
	for _, cell := range row[2:] {
		if cell == "" {
			continue
		}
		pos, err := toFloat(cell)
		if err != nil {
			return tongue.Config{}, err
		}
		axles = append(axles, tongue.Axle{DistanceIn: pos})
	}
	if len(axles) == 0 {
		return tongue.Config{}, fmt.Errorf("bad row")
	}
	return tongue.Config{
		Loads: []tongue.Load{{WeightLb: weight, DistanceIn: distance}},
		Axles: axles,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
