// Package report lays out the final PDF: one page per chart, with a
// textual summary standing in for any chart that could not be rendered.
package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/sqlchart/internal/dataset"
)

// fallbackLimit is how many (label, value) pairs the textual summary shows
// before collapsing the rest into an overflow count.
const fallbackLimit = 10

// Entry is one report page: a title with either a rendered chart image or,
// when Image is nil, the points to list textually.
type Entry struct {
	Title  string
	Image  []byte
	Points []dataset.Point
}

// Write lays the entries out one per page and writes the PDF to path.
func Write(path string, entries []Entry) error {
	pdf := fpdf.New(fpdf.OrientationLandscape, "mm", "A4", "")
	pdf.SetTitle("sqlchart report", true)

	for i, e := range entries {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 12, e.Title, "", 1, "C", false, 0, "")

		if len(e.Image) > 0 {
			addChartImage(pdf, i, e.Image)
			continue
		}
		addFallbackListing(pdf, e.Points)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func addChartImage(pdf *fpdf.Fpdf, idx int, img []byte) {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	name := fmt.Sprintf("chart-%d", idx)
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))
	// A4 landscape is 297mm wide; keep margins and let height follow the
	// image's 3:2 aspect ratio.
	pdf.ImageOptions(name, 15, 25, 267, 0, false, opts, 0, "")
}

func addFallbackListing(pdf *fpdf.Fpdf, points []dataset.Point) {
	pdf.SetFont("Courier", "", 10)
	pdf.MultiCell(0, 5, FallbackListing(points), "", "L", false)
}

// FallbackListing renders the textual stand-in for a failed chart: the
// first fallbackLimit (label, value) pairs as a table, plus an overflow
// count when more points exist.
func FallbackListing(points []dataset.Point) string {
	if len(points) == 0 {
		return "(no data points)"
	}

	shown := len(points)
	if shown > fallbackLimit {
		shown = fallbackLimit
	}

	w := table.NewWriter()
	w.AppendHeader(table.Row{"Label", "Value"})
	for _, p := range points[:shown] {
		w.AppendRow(table.Row{p.X, strconv.FormatFloat(p.Y, 'f', -1, 64)})
	}

	out := w.Render()
	if rest := len(points) - shown; rest > 0 {
		out += fmt.Sprintf("\n... and %d more", rest)
	}
	return out
}
