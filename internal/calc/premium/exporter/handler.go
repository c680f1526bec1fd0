package exporter

import (
	"encoding/json"
	"net/http"

	batch "Towbar/internal/calc/premium/batch"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

// Tongue computes a batch of configurations and returns the results as an
// XLSX workbook, one row per configuration.
func (h *Handler) Tongue(w http.ResponseWriter, r *http.Request) {
	var input batch.TongueBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	out, err := batch.CalculateTongue(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := []interface{}{"config", "total_weight_lb", "tongue_weight_lb", "tongue_percent", "axle_position_in", "status"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	for i, res := range out.Results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			http.Error(w, "Export error", http.StatusInternalServerError)
			return
		}
		row := []interface{}{
			i + 1,
			res.TotalWeightLb,
			res.TongueWeightLb,
			res.TonguePercent,
			res.AxlePositionIn,
			string(res.Status),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			http.Error(w, "Export error", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"tongue_results.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
