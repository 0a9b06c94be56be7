package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/report"
)

// outputOptions are the output flags shared by beam and project analyze
type outputOptions struct {
	JSON    bool
	Diagram bool
	Image   string
	PDF     string
	XLSX    string
}

const rule = "───────────────────────────────────────────────────────────────"

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

// emit prints the analysis and writes every requested export
func emit(b *beam.Beam, a *beam.Analysis, name string, opts outputOptions) error {
	if opts.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(a); err != nil {
			return err
		}
	} else {
		printAnalysis(b, a, name)
	}

	if opts.Diagram && !opts.JSON {
		fmt.Print(diagram.DrawBeamSchematic(b))
		fmt.Print(diagram.DrawShearDiagram(a))
		fmt.Print(diagram.DrawMomentDiagram(a))
		fmt.Print(diagram.DrawDeflectionDiagram(a))
		fmt.Println()
		fmt.Print(diagram.DrawSummary(a))
		fmt.Println()
	}

	meta := report.Meta{Project: name}
	exports := []struct {
		path  string
		kind  string
		write func(string) error
	}{
		{opts.Image, "diagram", func(p string) error { return diagram.ExportDiagrams(a, p) }},
		{opts.PDF, "report", func(p string) error { return report.SavePDF(p, a, meta) }},
		{opts.XLSX, "spreadsheet", func(p string) error { return report.SaveXLSX(p, a, meta) }},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := e.write(e.path); err != nil {
			return fmt.Errorf("export %s: %w", e.kind, err)
		}
		logger.Info("exported", "kind", e.kind, "path", e.path)
		if !opts.JSON {
			fmt.Printf("  %s exported to: %s\n", e.kind, e.path)
		}
	}
	return nil
}

func printAnalysis(b *beam.Beam, a *beam.Analysis, name string) {
	r := a.Results

	title := "SIMPLY-SUPPORTED BEAM ANALYSIS"
	if name != "" {
		title += " - " + name
	}
	printHeader(title)

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam Length (L):\t%.3f m\n", a.Input.BeamLength)
	fmt.Fprintf(w, "  Elastic Modulus (E):\t%.4g Pa\n", a.Input.ElasticModulus)
	fmt.Fprintf(w, "  Moment of Inertia (I):\t%.4g m⁴\n", a.Input.MomentOfInertia)
	fmt.Fprintf(w, "  Flexural Rigidity (EI):\t%.4g N·m²\n", b.EI())
	fmt.Fprintf(w, "  Grid:\t%d intervals of %.4g m\n", b.NumPoints, b.Step())
	w.Flush()
	fmt.Println()

	fmt.Println("LOADS:")
	fmt.Println(rule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  #\tType\tPosition (m)\tLength (m)\tValue")
	for i, l := range b.Loads() {
		switch l := l.(type) {
		case beam.PointLoad:
			fmt.Fprintf(w, "  %d\tpoint\t%.3f\t-\t%.2f N\n", i+1, l.Position, l.Value)
		case beam.DistributedLoad:
			fmt.Fprintf(w, "  %d\tdistributed\t%.3f\t%.3f\t%.2f N/m\n", i+1, l.Position, l.Length, l.Value)
		case beam.MomentLoad:
			fmt.Fprintf(w, "  %d\tmoment\t%.3f\t-\t%.2f N·m\n", i+1, l.Position, l.Value)
		}
	}
	w.Flush()
	fmt.Println()

	fmt.Println("SUPPORT REACTIONS:")
	fmt.Println(rule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, rx := range r.Reactions {
		fmt.Fprintf(w, "  R%d (%s, x = %.3f m):\t%.2f N\n", i+1, rx.Type, rx.Position, rx.Value)
	}
	fmt.Fprintf(w, "  ΣR:\t%.2f N\n", r.Reactions[0].Value+r.Reactions[1].Value)
	w.Flush()
	fmt.Println()

	fmt.Println("MAXIMUM VALUES:")
	fmt.Println(rule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max |V|:\t%.2f N\n", r.Maxima.Shear)
	fmt.Fprintf(w, "  Max |M|:\t%.2f N·m\n", r.Maxima.Moment)
	fmt.Fprintf(w, "  Max |δ|:\t%.3f mm\n", r.Maxima.Deflection*1000)
	if r.Maxima.Deflection > 0 {
		fmt.Fprintf(w, "  Span/deflection:\tL/%.0f\n", a.Input.BeamLength/r.Maxima.Deflection)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("LOAD SUMMARY:")
	fmt.Println(rule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total point loads:\t%.2f N\n", r.LoadSummary.TotalPointLoads)
	fmt.Fprintf(w, "  Total distributed load:\t%.2f N\n", r.LoadSummary.TotalDistributedLoad)
	fmt.Fprintf(w, "  Total applied moment:\t%.2f N·m\n", r.LoadSummary.TotalMoment)
	w.Flush()
	fmt.Println()
}
