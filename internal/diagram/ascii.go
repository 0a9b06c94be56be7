package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/guptarohit/asciigraph"
)

// Terminal plot size in characters
const (
	PlotWidth  = 60
	PlotHeight = 12
)

// Schematic symbols
const (
	symbolSupport     = '△'
	symbolPoint       = '↓'
	symbolDistributed = '═'
	symbolMoment      = '↻'
	symbolBeam        = '━'
)

// DrawShearDiagram plots the shear force series
func DrawShearDiagram(a *beam.Analysis) string {
	return plotSeries(a.Results.ShearForce, "Shear Force V (N)", 1)
}

// DrawMomentDiagram plots the bending moment series
func DrawMomentDiagram(a *beam.Analysis) string {
	return plotSeries(a.Results.BendingMoment, "Bending Moment M (N·m)", 1)
}

// DrawDeflectionDiagram plots deflection in millimetres
func DrawDeflectionDiagram(a *beam.Analysis) string {
	mm := make(beam.Series, len(a.Results.Deflection))
	for i, s := range a.Results.Deflection {
		mm[i] = beam.Sample{X: s.X, Value: s.Value * 1000}
	}
	return plotSeries(mm, "Deflection δ (mm)", 3)
}

func plotSeries(s beam.Series, caption string, precision uint) string {
	if len(s) == 0 {
		return ""
	}
	graph := asciigraph.Plot(s.Values(),
		asciigraph.Height(PlotHeight),
		asciigraph.Width(PlotWidth),
		asciigraph.Precision(precision),
		asciigraph.Caption(caption),
	)
	return "\n" + graph + "\n"
}

// DrawBeamSchematic renders the beam as a row of loads above the span, the
// span itself and a row of supports below it.
func DrawBeamSchematic(b *beam.Beam) string {
	width := PlotWidth
	col := func(x float64) int {
		c := int(math.Round(x / b.Length * float64(width-1)))
		if c < 0 {
			return 0
		}
		if c >= width {
			return width - 1
		}
		return c
	}

	loads := []rune(strings.Repeat(" ", width))
	supports := []rune(strings.Repeat(" ", width))

	// Distributed spans first so concentrated loads stay visible on top
	for _, l := range b.Loads() {
		if d, ok := l.(beam.DistributedLoad); ok {
			for c := col(d.Start()); c <= col(d.End()); c++ {
				loads[c] = symbolDistributed
			}
		}
	}
	for _, l := range b.Loads() {
		switch l := l.(type) {
		case beam.PointLoad:
			loads[col(l.Position)] = symbolPoint
		case beam.MomentLoad:
			loads[col(l.Position)] = symbolMoment
		}
	}
	for _, s := range b.Supports() {
		supports[col(s.Position)] = symbolSupport
	}

	scale := fmt.Sprintf("%-*s%s", width-len(fmt.Sprintf("%g m", b.Length)), "0", fmt.Sprintf("%g m", b.Length))

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  BEAM\n")
	sb.WriteString("  ────\n")
	sb.WriteString("  " + strings.TrimRight(string(loads), " ") + "\n")
	sb.WriteString("  " + strings.Repeat(string(symbolBeam), width) + "\n")
	sb.WriteString("  " + strings.TrimRight(string(supports), " ") + "\n")
	sb.WriteString("  " + scale + "\n")
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %c support  %c point load  %c distributed load  %c moment\n",
		symbolSupport, symbolPoint, symbolDistributed, symbolMoment))
	return sb.String()
}

// DrawSummary boxes the reactions and extreme values of an analysis
func DrawSummary(a *beam.Analysis) string {
	r := a.Results
	lines := make([]string, 0, len(r.Reactions)+4)
	for i, rx := range r.Reactions {
		lines = append(lines, fmt.Sprintf("R%d at x = %.3f m:  %.2f N", i+1, rx.Position, rx.Value))
	}
	lines = append(lines,
		fmt.Sprintf("Max |V|:  %.2f N", r.Maxima.Shear),
		fmt.Sprintf("Max |M|:  %.2f N·m", r.Maxima.Moment),
		fmt.Sprintf("Max |δ|:  %.3f mm", r.Maxima.Deflection*1000),
	)
	return DrawSummaryBox("ANALYSIS SUMMARY", lines)
}

// DrawSummaryBox creates a boxed summary display
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
