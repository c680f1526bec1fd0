package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	diagram "Towbar/internal/calc/diagram"
	tongue "Towbar/internal/calc/tongue"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string        `json:"project"`
	Author  string        `json:"author"`
	Title   string        `json:"title"`
	Notes   string        `json:"notes"`
	Config  tongue.Config `json:"config"`
}

type Handler struct{}

// Generate writes the full report: project header, computed metrics, the
// advisory line and the layout schematic on a second page.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Trailer Tongue Weight Report"
	}

	res, err := tongue.Calculate(input.Config)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	lay, err := diagram.Build(input.Config, res)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Total Trailer Weight: %.2f lbs", res.TotalWeightLb))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Tongue Weight: %.2f lbs", res.TongueWeightLb))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Tongue %% of Total: %.2f%%", res.TonguePercent))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Axle Group Position: %.2f in", res.AxlePositionIn))
	pdf.Ln(10)

	if res.Status != tongue.StatusInRange {
		pdf.SetTextColor(200, 0, 0)
	} else {
		pdf.SetTextColor(0, 130, 0)
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.MultiCell(0, 6, res.Status.Message(), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, input.Notes, "", "L", false)

	pdf.AddPageFormat("L", gofpdf.SizeType{Wd: pageW, Ht: pageH})
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginX, 15)
	pdf.Cell(0, 10, "Trailer Load Layout")
	drawSchematic(pdf, lay, res)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

// Diagram writes the schematic alone.
func (h *Handler) Diagram(w http.ResponseWriter, r *http.Request) {
	var input tongue.Config
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := tongue.Calculate(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	pdf, err := SchematicPDF(input, res)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"layout.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
