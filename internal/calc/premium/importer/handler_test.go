package importer

import (
	"bytes"
	"encoding/json"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	tongue "Towbar/internal/calc/tongue"

	"github.com/xuri/excelize/v2"
)

func TestParseTongueRow(t *testing.T) {
	cfg, err := parseTongueRow([]string{"3000", "80", "95", "105"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Loads) != 1 || cfg.Loads[0].WeightLb != 3000 || cfg.Loads[0].DistanceIn != 80 {
		t.Errorf("load = %+v", cfg.Loads)
	}
	if len(cfg.Axles) != 2 || cfg.Axles[1].DistanceIn != 105 {
		t.Errorf("axles = %+v", cfg.Axles)
	}
}

func TestParseTongueRowBad(t *testing.T) {
	bad := [][]string{
		{"3000", "80"},         // no axles
		{"abc", "80", "100"},   // weight not a number
		{"3000", "80", "", ""}, // blank axle cells only
		{"3000", "abc", "100"}, // distance not a number
	}
	for _, row := range bad {
		if _, err := parseTongueRow(row); err == nil {
			t.Errorf("row %v: expected error", row)
		}
	}
}

func TestTongueImport(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"weight_lb", "load_distance_in", "axle1_in", "axle2_in"},
		{3000, 80, 95, 105},
		{"bad", "row", "skipped"},
		{5000, 105, 115, 125},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	wb, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "configs.xlsx")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := part.Write(wb.Bytes()); err != nil {
		t.Fatalf("write part: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/tools/import/tongue", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).Tongue(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	var out TongueImportResult
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("count = %d, want 2 (bad row skipped)", out.Count)
	}
	if math.Abs(out.Results[0].TongueWeightLb-600) > 1e-6 || out.Results[0].Status != tongue.StatusTooHigh {
		t.Errorf("first result = %+v", out.Results[0])
	}
	if out.Results[1].Status != tongue.StatusInRange {
		t.Errorf("second result = %+v", out.Results[1])
	}
}
