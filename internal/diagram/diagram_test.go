package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() beam.Request {
	return beam.Request{
		BeamLength: 10,
		Loads: []beam.LoadSpec{
			{Type: beam.LoadPoint, Position: 3, Value: 1000},
			{Type: beam.LoadDistributed, Position: 5, Length: 4, Value: 200},
			{Type: beam.LoadMoment, Position: 8, Value: 300},
		},
		Supports: []beam.SupportSpec{
			{Type: beam.SupportSimple, Position: 0},
			{Type: beam.SupportSimple, Position: 10},
		},
		NumPoints: 50,
	}
}

func testAnalysis(t *testing.T) (*beam.Beam, *beam.Analysis) {
	t.Helper()
	b, err := beam.New(testRequest())
	require.NoError(t, err)
	a, err := b.Analyze()
	require.NoError(t, err)
	return b, a
}

func TestDrawBeamSchematic(t *testing.T) {
	b, _ := testAnalysis(t)
	out := DrawBeamSchematic(b)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 7)

	loads, span, supports := []rune(lines[3]), lines[4], lines[5]
	assert.Equal(t, 2, strings.Count(supports, string(symbolSupport)))
	assert.Equal(t, PlotWidth+2, utf8.RuneCountInString(span))

	// Columns offset by the two-space indent
	col := func(x float64) int { return 2 + int(x/10*float64(PlotWidth-1)+0.5) }
	assert.Equal(t, symbolPoint, loads[col(3)])
	assert.Equal(t, symbolMoment, loads[col(8)])
	assert.Equal(t, symbolDistributed, loads[col(6)])
	assert.Equal(t, symbolSupport, []rune(supports)[col(0)])
	assert.Equal(t, symbolSupport, []rune(supports)[col(10)])
	assert.Contains(t, out, "10 m")
}

func TestPlots(t *testing.T) {
	_, a := testAnalysis(t)

	assert.Contains(t, DrawShearDiagram(a), "Shear Force V (N)")
	assert.Contains(t, DrawMomentDiagram(a), "Bending Moment M (N·m)")
	assert.Contains(t, DrawDeflectionDiagram(a), "Deflection δ (mm)")
	assert.Empty(t, plotSeries(nil, "empty", 1))
}

func TestDrawSummaryBoxIsRectangular(t *testing.T) {
	out := DrawSummaryBox("TITLE", []string{"short", "Max |δ|:  1.234 mm"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)

	width := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(l), l)
	}
}

func TestDrawSummary(t *testing.T) {
	_, a := testAnalysis(t)
	out := DrawSummary(a)
	assert.Contains(t, out, "ANALYSIS SUMMARY")
	assert.Contains(t, out, "R1 at x = 0.000 m")
	assert.Contains(t, out, "R2 at x = 10.000 m")
}

func TestExportDiagrams(t *testing.T) {
	_, a := testAnalysis(t)
	dir := t.TempDir()

	for _, name := range []string{"beam.png", "beam.svg", "nested/beam.pdf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, ExportDiagrams(a, path), name)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	require.NoError(t, ExportDiagrams(a, filepath.Join(dir, "beam.gif")))
	_, err := os.Stat(filepath.Join(dir, "beam.gif.png"))
	assert.NoError(t, err)
}
