// Package document assembles the weekly report PDF from the summary
// views and the chart artifacts on disk.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/spec-kit/ticket-reports/internal/domain"
	"github.com/spec-kit/ticket-reports/internal/render"
)

// Letter geometry in inches.
const (
	pageWidth = 8.5
	margin    = 0.5
)

// Params fixes the document's text and sources for one run.
type Params struct {
	Title       string
	WindowLabel string
	ChartsDir   string
	GeneratedAt time.Time
}

// Generate writes the document to path, then validates the artifact
// and returns its page count. A missing chart artifact drops only the
// image; its heading still prints.
func Generate(path string, p Params, views domain.SummaryViews) (int, error) {
	if err := build(path, p, views); err != nil {
		return 0, err
	}
	return Verify(path)
}

func build(path string, p Params, views domain.SummaryViews) error {
	pdf := fpdf.New("P", "in", "Letter", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(0x2c, 0x3e, 0x50)
	pdf.CellFormat(0, 0.35, p.Title, "", 1, "C", false, 0, "")
	pdf.Ln(0.1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 0.2, "Closed Tickets - "+p.WindowLabel, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 0.2, "Generated: "+p.GeneratedAt.Format("January 02, 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(0.3)

	heading(pdf, "Top Stores with Closed Tickets")
	placeImage(pdf, filepath.Join(p.ChartsDir, render.StoresPieFile), 6.0, 4.8)

	heading(pdf, "Top Stores with Closed Tickets")
	placeImage(pdf, filepath.Join(p.ChartsDir, render.TopStoresFile), 6.5, 4.3)

	pdf.AddPage()

	heading(pdf, "Closed Tickets by Assignee")
	placeImage(pdf, filepath.Join(p.ChartsDir, render.TechsFile), 6.0, 3.6)
	pdf.Ln(0.1)

	heading(pdf, "Complete Store Report")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 0.2, "All Stores - Closed Tickets ("+p.WindowLabel+")", "", 1, "L", false, 0, "")
	pdf.Ln(0.2)

	writeCatalogTable(pdf, views.Catalog)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func heading(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0x34, 0x49, 0x5e)
	pdf.CellFormat(0, 0.25, text, "", 1, "L", false, 0, "")
	pdf.Ln(0.05)
}

// placeImage centers one chart artifact at its print size. Absent
// artifacts are skipped; the renderer already logged why.
func placeImage(pdf *fpdf.Fpdf, path string, w, h float64) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	x := (pageWidth - w) / 2
	pdf.ImageOptions(path, x, 0, w, h, true, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	pdf.Ln(0.2)
}

// writeCatalogTable prints the full catalog view, one row per store,
// already sorted descending by the aggregator.
func writeCatalogTable(pdf *fpdf.Fpdf, catalog []domain.GroupCount) {
	const (
		nameWidth  = 4.0
		countWidth = 1.5
		rowHeight  = 0.22
	)
	left := margin + (pageWidth-2*margin-nameWidth-countWidth)/2

	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.5 / 72)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(0x34, 0x98, 0xdb)
	pdf.SetTextColor(245, 245, 245)
	pdf.SetX(left)
	pdf.CellFormat(nameWidth, rowHeight, "Store", "1", 0, "L", true, 0, "")
	pdf.CellFormat(countWidth, rowHeight, "Closed Tickets", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for i, g := range catalog {
		if i%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(211, 211, 211)
		}
		pdf.SetX(left)
		pdf.CellFormat(nameWidth, rowHeight, g.Name, "1", 0, "L", true, 0, "")
		pdf.CellFormat(countWidth, rowHeight, strconv.Itoa(g.Count), "1", 1, "L", true, 0, "")
	}
}
