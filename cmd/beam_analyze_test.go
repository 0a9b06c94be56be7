package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lintelYAML = `
name: lintel
length: 6
material: wood
elasticModulus: 12e9
section:
  type: rectangle
  width: 0.1
  height: 0.2
momentOfInertia: 5e-5
numPoints: 60
supports:
  - {type: simple, position: 0}
  - {type: simple, position: 6}
loads:
  - {type: point, position: 3, value: 2000}
`

// resetAnalyzeFlags clears the analyze flag variables before and after a test
func resetAnalyzeFlags(t *testing.T) {
	t.Helper()
	reset := func() {
		analyzeFile, analyzeLength = "", 0
		analyzePoint, analyzeUDL, analyzeMoment, analyzeSupport = nil, nil, nil, nil
		analyzeMaterial, analyzePreset = "", ""
		analyzeE, analyzeI, analyzeNumPts = 0, 0, 0
	}
	reset()
	t.Cleanup(reset)
}

func TestAnalyzeDefinitionFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lintel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(lintelYAML), 0o644))

	rect := &section.Spec{Type: section.ShapeRectangle, Width: 0.1, Height: 0.2}

	tests := []struct {
		name         string
		set          func()
		wantMaterial string
		wantE        float64
		wantPreset   string
		wantSection  *section.Spec
		wantI        float64
		wantPoints   int
	}{
		{
			name:         "file as written",
			set:          func() {},
			wantMaterial: "wood",
			wantE:        12e9,
			wantSection:  rect,
			wantI:        5e-5,
			wantPoints:   60,
		},
		{
			name:         "material clears the file modulus",
			set:          func() { analyzeMaterial = "steel" },
			wantMaterial: "steel",
			wantSection:  rect,
			wantI:        5e-5,
			wantPoints:   60,
		},
		{
			name:         "section preset clears the file section and inertia",
			set:          func() { analyzePreset = "i_beam_200" },
			wantMaterial: "wood",
			wantE:        12e9,
			wantPreset:   "i_beam_200",
			wantPoints:   60,
		},
		{
			name: "explicit E and I win over presets",
			set: func() {
				analyzeMaterial = "steel"
				analyzePreset = "i_beam_200"
				analyzeE = 200e9
				analyzeI = 8e-6
			},
			wantMaterial: "steel",
			wantE:        200e9,
			wantPreset:   "i_beam_200",
			wantI:        8e-6,
			wantPoints:   60,
		},
		{
			name:         "points",
			set:          func() { analyzeNumPts = 500 },
			wantMaterial: "wood",
			wantE:        12e9,
			wantSection:  rect,
			wantI:        5e-5,
			wantPoints:   500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetAnalyzeFlags(t)
			analyzeFile = path
			tt.set()

			def, err := analyzeDefinition()
			require.NoError(t, err)

			assert.Equal(t, "lintel", def.Name)
			assert.Equal(t, 6.0, def.Length)
			assert.Equal(t, tt.wantMaterial, def.Material)
			assert.Equal(t, tt.wantE, def.ElasticModulus)
			assert.Equal(t, tt.wantPreset, def.SectionPreset)
			assert.Equal(t, tt.wantSection, def.Section)
			assert.Equal(t, tt.wantI, def.MomentOfInertia)
			assert.Equal(t, tt.wantPoints, def.NumPoints)
			assert.Len(t, def.Loads, 1)
		})
	}
}

func TestAnalyzeDefinitionFromFlags(t *testing.T) {
	resetAnalyzeFlags(t)
	analyzeLength = 8
	analyzePoint = []string{"4:1000"}
	analyzeUDL = []string{"0:8:250"}

	def, err := analyzeDefinition()
	require.NoError(t, err)

	assert.Len(t, def.Loads, 2)
	assert.Equal(t, []beam.SupportSpec{
		{Type: beam.SupportSimple, Position: 0},
		{Type: beam.SupportSimple, Position: 8},
	}, def.Supports)
}

func TestAnalyzeDefinitionSupportFlagsReplaceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lintel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(lintelYAML), 0o644))

	resetAnalyzeFlags(t)
	analyzeFile = path
	analyzeSupport = []string{"1", "5"}

	def, err := analyzeDefinition()
	require.NoError(t, err)
	assert.Equal(t, []beam.SupportSpec{
		{Type: beam.SupportSimple, Position: 1},
		{Type: beam.SupportSimple, Position: 5},
	}, def.Supports)
}

func TestAnalyzeDefinitionRejectsLoadFlagsWithFile(t *testing.T) {
	resetAnalyzeFlags(t)
	analyzeFile = "lintel.yaml"
	analyzePoint = []string{"3:100"}

	_, err := analyzeDefinition()
	assert.EqualError(t, err, "load flags cannot be combined with --file")
}
