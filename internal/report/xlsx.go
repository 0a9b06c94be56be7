package report

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/xuri/excelize/v2"
)

// Sheet names
const (
	SummarySheet  = "Summary"
	DiagramsSheet = "Diagrams"
)

// WriteXLSX renders the analysis as a workbook with a Summary sheet and a
// Diagrams sheet holding one row per grid point.
func WriteXLSX(w io.Writer, a *beam.Analysis, meta Meta) error {
	meta = meta.withDefaults()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(DiagramsSheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := writeSummary(f, a, meta, bold); err != nil {
		return fmt.Errorf("summary sheet: %w", err)
	}
	if err := writeDiagrams(f, a, bold); err != nil {
		return fmt.Errorf("diagrams sheet: %w", err)
	}

	return f.Write(w)
}

func writeSummary(f *excelize.File, a *beam.Analysis, meta Meta, bold int) error {
	r := a.Results
	rows := [][]interface{}{
		{meta.Title},
		{"Project", meta.Project},
		{"Date", meta.Date.Format("2006-01-02")},
		{},
		{"Input"},
		{"Beam length (m)", a.Input.BeamLength},
		{"Elastic modulus (Pa)", a.Input.ElasticModulus},
		{"Moment of inertia (m^4)", a.Input.MomentOfInertia},
		{},
		{"Reactions", "Type", "Position (m)", "Value (N)"},
	}
	for i, rx := range r.Reactions {
		rows = append(rows, []interface{}{fmt.Sprintf("R%d", i+1), string(rx.Type), rx.Position, rx.Value})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Maximum values"},
		[]interface{}{"Max |V| (N)", r.Maxima.Shear},
		[]interface{}{"Max |M| (N·m)", r.Maxima.Moment},
		[]interface{}{"Max |δ| (m)", r.Maxima.Deflection},
		[]interface{}{},
		[]interface{}{"Load summary"},
		[]interface{}{"Total point loads (N)", r.LoadSummary.TotalPointLoads},
		[]interface{}{"Total distributed load (N)", r.LoadSummary.TotalDistributedLoad},
		[]interface{}{"Total applied moment (N·m)", r.LoadSummary.TotalMoment},
	)

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return err
		}
		// Section titles are the single-cell rows
		if len(row) == 1 {
			if err := f.SetCellStyle(SummarySheet, cell, cell, bold); err != nil {
				return err
			}
		}
	}
	return f.SetColWidth(SummarySheet, "A", "D", 26)
}

func writeDiagrams(f *excelize.File, a *beam.Analysis, bold int) error {
	r := a.Results
	header := []interface{}{"x (m)", "Shear V (N)", "Moment M (N·m)", "Deflection δ (m)"}
	if err := f.SetSheetRow(DiagramsSheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(DiagramsSheet, "A1", "D1", bold); err != nil {
		return err
	}

	for i := range r.ShearForce {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			r.ShearForce[i].X,
			r.ShearForce[i].Value,
			r.BendingMoment[i].Value,
			r.Deflection[i].Value,
		}
		if err := f.SetSheetRow(DiagramsSheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SetColWidth(DiagramsSheet, "A", "D", 18)
}
