package report

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/phpdave11/gofpdf"
)

const (
	fontFamily = "Helvetica"
	rowHeight  = 6.0
)

// WritePDF renders the analysis as a single A4 report
func WritePDF(w io.Writer, a *beam.Analysis, meta Meta) error {
	meta = meta.withDefaults()
	r := a.Results

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(meta.Title, false)
	if meta.Author != "" {
		pdf.SetAuthor(meta.Author, false)
	}
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)
	pdf.SetFont(fontFamily, "", 11)
	if meta.Project != "" {
		pdf.Cell(0, rowHeight, fmt.Sprintf("Project: %s", meta.Project))
		pdf.Ln(rowHeight)
	}
	if meta.Author != "" {
		pdf.Cell(0, rowHeight, fmt.Sprintf("Author: %s", meta.Author))
		pdf.Ln(rowHeight)
	}
	pdf.Cell(0, rowHeight, fmt.Sprintf("Date: %s", meta.Date.Format("2006-01-02")))
	pdf.Ln(10)

	heading(pdf, "Input")
	keyValues(pdf, [][2]string{
		{"Beam length", fmt.Sprintf("%.3f m", a.Input.BeamLength)},
		{"Elastic modulus E", fmt.Sprintf("%.4g Pa", a.Input.ElasticModulus)},
		{"Moment of inertia I", fmt.Sprintf("%.4g m^4", a.Input.MomentOfInertia)},
	})

	heading(pdf, "Reactions")
	header := []string{"Support", "Type", "Position (m)", "Reaction (N)"}
	widths := []float64{30, 30, 40, 40}
	tableHeader(pdf, header, widths)
	for i, rx := range r.Reactions {
		tableRow(pdf, widths, []string{
			fmt.Sprintf("R%d", i+1),
			string(rx.Type),
			fmt.Sprintf("%.3f", rx.Position),
			fmt.Sprintf("%.2f", rx.Value),
		})
	}
	pdf.Ln(4)

	heading(pdf, "Maximum Values")
	keyValues(pdf, [][2]string{
		{"Max |V|", fmt.Sprintf("%.2f N", r.Maxima.Shear)},
		{"Max |M|", fmt.Sprintf("%.2f N-m", r.Maxima.Moment)},
		{"Max |deflection|", fmt.Sprintf("%.3f mm", r.Maxima.Deflection*1000)},
	})

	heading(pdf, "Load Summary")
	keyValues(pdf, [][2]string{
		{"Total point loads", fmt.Sprintf("%.2f N", r.LoadSummary.TotalPointLoads)},
		{"Total distributed load", fmt.Sprintf("%.2f N", r.LoadSummary.TotalDistributedLoad)},
		{"Total applied moment", fmt.Sprintf("%.2f N-m", r.LoadSummary.TotalMoment)},
	})

	heading(pdf, "Diagram Values")
	header = []string{"x (m)", "V (N)", "M (N-m)", "Deflection (mm)"}
	widths = []float64{35, 45, 45, 45}
	tableHeader(pdf, header, widths)
	for _, i := range SampleIndices(len(r.ShearForce), MaxTableRows) {
		tableRow(pdf, widths, []string{
			fmt.Sprintf("%.3f", r.ShearForce[i].X),
			fmt.Sprintf("%.2f", r.ShearForce[i].Value),
			fmt.Sprintf("%.2f", r.BendingMoment[i].Value),
			fmt.Sprintf("%.4f", r.Deflection[i].Value*1000),
		})
	}

	if meta.Notes != "" {
		pdf.Ln(6)
		heading(pdf, "Notes")
		pdf.MultiCell(0, rowHeight, meta.Notes, "", "L", false)
	}

	return pdf.Output(w)
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont(fontFamily, "B", 12)
	pdf.Cell(0, 8, text)
	pdf.Ln(8)
	pdf.SetFont(fontFamily, "", 10)
}

func keyValues(pdf *gofpdf.Fpdf, rows [][2]string) {
	for _, kv := range rows {
		pdf.CellFormat(60, rowHeight, kv[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, rowHeight, kv[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func tableHeader(pdf *gofpdf.Fpdf, cols []string, widths []float64) {
	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, c := range cols {
		pdf.CellFormat(widths[i], rowHeight, c, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(fontFamily, "", 10)
}

func tableRow(pdf *gofpdf.Fpdf, widths []float64, cells []string) {
	for i, c := range cells {
		pdf.CellFormat(widths[i], rowHeight, c, "1", 0, "R", false, 0, "")
	}
	pdf.Ln(-1)
}
