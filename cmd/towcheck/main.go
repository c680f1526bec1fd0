package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	report "Towbar/internal/calc/report"
	tongue "Towbar/internal/calc/tongue"
)

func main() {
	inPath := flag.String("in", "", "configuration JSON file (default stdin)")
	pdfPath := flag.String("pdf", "", "write the layout schematic PDF to this path")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			log.Fatalf("open %s: %v", *inPath, err)
		}
		defer f.Close()
		r = f
	}

	var cfg tongue.Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		log.Fatalf("decode configuration: %v", err)
	}

	res, err := tongue.Calculate(cfg)
	if err != nil {
		log.Fatalf("calculate: %v", err)
	}

	fmt.Printf("Total Trailer Weight: %.2f lbs\n", res.TotalWeightLb)
	fmt.Printf("Tongue Weight:        %.2f lbs\n", res.TongueWeightLb)
	fmt.Printf("Tongue %% of Total:    %.2f%%\n", res.TonguePercent)
	fmt.Printf("Axle Group Position:  %.2f in\n", res.AxlePositionIn)
	fmt.Println(res.Status.Message())

	if *pdfPath != "" {
		pdf, err := report.SchematicPDF(cfg, res)
		if err != nil {
			log.Fatalf("schematic: %v", err)
		}
		if err := pdf.OutputFileAndClose(*pdfPath); err != nil {
			log.Fatalf("write %s: %v", *pdfPath, err)
		}
		log.Println("Layout written to", *pdfPath)
	}
}
