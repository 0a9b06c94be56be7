package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	shearColor      = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	momentColor     = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	deflectionColor = color.RGBA{R: 0, G: 100, B: 0, A: 255}
)

// ExportDiagrams writes the shear, moment and deflection diagrams stacked
// in one image. The format follows the file extension (.png, .svg, .pdf);
// any other extension gets ".png" appended.
func ExportDiagrams(a *beam.Analysis, filename string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	switch format {
	case "png", "svg", "pdf":
	default:
		format = "png"
		filename += ".png"
	}

	deflectionMM := make(beam.Series, len(a.Results.Deflection))
	for i, s := range a.Results.Deflection {
		deflectionMM[i] = beam.Sample{X: s.X, Value: s.Value * 1000}
	}

	specs := []struct {
		title, ylabel string
		data          beam.Series
		color         color.Color
	}{
		{"Shear Force Diagram", "V (N)", a.Results.ShearForce, shearColor},
		{"Bending Moment Diagram", "M (N·m)", a.Results.BendingMoment, momentColor},
		{"Deflection", "δ (mm)", deflectionMM, deflectionColor},
	}

	plots := make([][]*plot.Plot, len(specs))
	for i, s := range specs {
		p, err := seriesPlot(s.title, s.ylabel, s.data, s.color, a.Input.BeamLength)
		if err != nil {
			return fmt.Errorf("%s: %w", s.title, err)
		}
		plots[i] = []*plot.Plot{p}
	}

	width := 8 * vg.Inch
	height := 10 * vg.Inch
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return err
	}
	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      1,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	// Create directory if needed
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func seriesPlot(title, ylabel string, s beam.Series, col color.Color, length float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = ylabel
	p.X.Min = 0
	p.X.Max = length
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(s))
	for i, sm := range s {
		pts[i] = plotter.XY{X: sm.X, Y: sm.Value}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = col
	p.Add(line)

	// Zero reference line
	axis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: length, Y: 0}})
	if err != nil {
		return nil, err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = color.Gray{Y: 128}
	axis.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(axis)

	return p, nil
}
