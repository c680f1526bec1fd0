package report

import (
	diagram "Towbar/internal/calc/diagram"
	tongue "Towbar/internal/calc/tongue"

	"github.com/phpdave11/gofpdf"
)

// Landscape A4 page geometry for the schematic, in mm.
const (
	pageW   = 297.0
	pageH   = 210.0
	marginX = 15.0
	railY   = 120.0
	// The rail starts 10 in ahead of the hitch so the hitch label is not
	// pinned to the page edge.
	leadInIn = 10.0
)

// SchematicPDF renders the trailer layout the way the interactive tool draws
// it: rail line, hitch and load markers above, axle markers below, and the
// tongue-weight callout between hitch and axle group.
func SchematicPDF(cfg tongue.Config, res tongue.Result) (*gofpdf.Fpdf, error) {
	lay, err := diagram.Build(cfg, res)
	if err != nil {
		return nil, err
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Trailer Load Layout")
	drawSchematic(pdf, lay, res)
	return pdf, nil
}

func drawSchematic(pdf *gofpdf.Fpdf, lay diagram.Layout, res tongue.Result) {
	scale := (pageW - 2*marginX) / (lay.TrailerLengthIn + leadInIn)
	toX := func(posIn float64) float64 {
		return marginX + (posIn+leadInIn)*scale
	}

	// Trailer rail, hitch to rear.
	pdf.SetLineWidth(0.6)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(toX(0), railY, toX(lay.TrailerLengthIn), railY)

	label := func(x, y float64, text string) {
		pdf.SetXY(x-20, y)
		pdf.CellFormat(40, 4, text, "", 0, "C", false, 0, "")
	}

	// Hitch.
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetFillColor(200, 0, 0)
	pdf.Circle(toX(lay.Hitch.PositionIn), railY, 1.5, "F")
	pdf.SetTextColor(200, 0, 0)
	label(toX(lay.Hitch.PositionIn), railY-10, lay.Hitch.Label)

	// Loads above the rail.
	pdf.SetDrawColor(0, 0, 200)
	pdf.SetFillColor(0, 0, 200)
	pdf.SetTextColor(0, 0, 200)
	for _, m := range lay.Loads {
		pdf.Circle(toX(m.PositionIn), railY, 1.5, "F")
		label(toX(m.PositionIn), railY-10, m.Label)
	}

	// Axles below the rail.
	pdf.SetDrawColor(0, 130, 0)
	pdf.SetFillColor(0, 130, 0)
	pdf.SetTextColor(0, 130, 0)
	for _, m := range lay.Axles {
		pdf.Rect(toX(m.PositionIn)-1.5, railY-1.5, 3, 3, "F")
		label(toX(m.PositionIn), railY+6, m.Label)
	}

	// Tongue weight callout, tied back to the hitch.
	boxW, boxH := 70.0, 12.0
	boxX := toX(lay.AnnotationXIn) - boxW/2
	boxY := railY - 45
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetFillColor(255, 255, 210)
	pdf.Rect(boxX, boxY, boxW, boxH, "FD")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(boxX, boxY+4)
	pdf.CellFormat(boxW, 4, lay.Annotation, "", 0, "C", false, 0, "")
	pdf.SetLineWidth(0.3)
	pdf.Line(boxX+boxW/2, boxY+boxH, toX(0), railY-2)

	if res.Status != tongue.StatusInRange {
		pdf.SetTextColor(200, 0, 0)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetXY(marginX, pageH-25)
		pdf.CellFormat(pageW-2*marginX, 6, res.Status.Message(), "", 0, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}
