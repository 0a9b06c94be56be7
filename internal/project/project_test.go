package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/catalog"
	"github.com/alexiusacademia/gobeam/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseDefinition() Definition {
	return Definition{
		Name:   "floor joist",
		Length: 4,
		Supports: []beam.SupportSpec{
			{Type: beam.SupportSimple, Position: 0},
			{Type: beam.SupportSimple, Position: 4},
		},
		Loads: []beam.LoadSpec{{Type: beam.LoadDistributed, Position: 0, Length: 4, Value: 2000}},
	}
}

func TestRequestResolution(t *testing.T) {
	defaults := Defaults{ElasticModulus: 200e9, MomentOfInertia: 2e-6, NumPoints: 40}

	t.Run("falls back to defaults", func(t *testing.T) {
		d := baseDefinition()
		req, err := d.Request(defaults)
		require.NoError(t, err)
		assert.Equal(t, 200e9, req.ElasticModulus)
		assert.Equal(t, 2e-6, req.MomentOfInertia)
		assert.Equal(t, 40, req.NumPoints)
		assert.Equal(t, 4.0, req.BeamLength)
	})

	t.Run("material and section", func(t *testing.T) {
		d := baseDefinition()
		d.Material = "wood"
		d.Section = &section.Spec{Type: section.ShapeRectangle, Width: 0.1, Height: 0.2}

		req, err := d.Request(defaults)
		require.NoError(t, err)
		assert.Equal(t, 11e9, req.ElasticModulus)
		assert.InEpsilon(t, 6.6667e-5, req.MomentOfInertia, 1e-4)
	})

	t.Run("section preset", func(t *testing.T) {
		d := baseDefinition()
		d.SectionPreset = "i_beam_200"

		want, err := catalog.SectionByID("i_beam_200")
		require.NoError(t, err)

		req, err := d.Request(defaults)
		require.NoError(t, err)
		assert.Equal(t, want.Properties.MomentOfInertia, req.MomentOfInertia)
	})

	t.Run("explicit values win", func(t *testing.T) {
		d := baseDefinition()
		d.Material = "steel"
		d.ElasticModulus = 70e9
		d.SectionPreset = "circular_100"
		d.MomentOfInertia = 3e-6
		d.NumPoints = 10

		req, err := d.Request(defaults)
		require.NoError(t, err)
		assert.Equal(t, 70e9, req.ElasticModulus)
		assert.Equal(t, 3e-6, req.MomentOfInertia)
		assert.Equal(t, 10, req.NumPoints)
	})

	t.Run("unknown material", func(t *testing.T) {
		d := baseDefinition()
		d.Material = "cheese"
		_, err := d.Request(defaults)
		assert.ErrorIs(t, err, catalog.ErrUnknownMaterial)
	})

	t.Run("unsupported section", func(t *testing.T) {
		d := baseDefinition()
		d.Section = &section.Spec{Type: "tee"}
		_, err := d.Request(defaults)

		var target *section.UnsupportedSectionError
		assert.ErrorAs(t, err, &target)
	})
}

func TestAnalyze(t *testing.T) {
	d := baseDefinition()
	a, err := d.Analyze(Defaults{})
	require.NoError(t, err)

	assert.InDelta(t, 4000, a.Results.Reactions[0].Value, 1e-6)
	assert.Len(t, a.Results.Deflection, beam.DefaultNumPoints+1)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "lintel.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
length: 3
material: concrete
section:
  type: rectangle
  width: 0.2
  height: 0.3
supports:
  - {type: simple, position: 0}
  - {type: simple, position: 3}
loads:
  - {type: point, position: 1.5, value: 12000}
  - {type: distributed, position: 0, length: 3, value: 1500}
`), 0o644))

	d, err := LoadFromFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "lintel", d.Name)
	assert.Equal(t, 3.0, d.Length)
	require.NotNil(t, d.Section)
	assert.Equal(t, section.ShapeRectangle, d.Section.Type)
	require.Len(t, d.Loads, 2)
	assert.Equal(t, beam.LoadDistributed, d.Loads[1].Type)
	assert.Equal(t, 3.0, d.Loads[1].Length)

	jsonPath := filepath.Join(dir, "cantilever.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
		"name": "walkway",
		"length": 6,
		"supports": [{"type": "simple", "position": 0}, {"type": "simple", "position": 6}],
		"loads": [{"type": "moment", "position": 2, "value": 500}]
	}`), 0o644))

	d, err = LoadFromFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "walkway", d.Name)
	assert.Equal(t, beam.LoadMoment, d.Loads[0].Type)

	_, err = LoadFromFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`{"length": "long"}`), 0o644))
	_, err = LoadFromFile(badPath)
	assert.ErrorContains(t, err, "parse")
}
