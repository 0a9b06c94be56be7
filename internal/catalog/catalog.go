package catalog

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/section"
)

var (
	ErrUnknownMaterial = errors.New("unknown material")
	ErrUnknownSection  = errors.New("unknown section")
)

// Material is a linear-elastic material preset
type Material struct {
	ID             string  `json:"id" yaml:"id"`
	Name           string  `json:"name" yaml:"name"`
	ElasticModulus float64 `json:"elasticModulus" yaml:"elasticModulus"` // Pa
	Density        float64 `json:"density" yaml:"density"`               // kg/m³
	YieldStrength  float64 `json:"yieldStrength" yaml:"yieldStrength"`   // Pa
}

// Materials commonly used for beams
var Materials = []Material{
	{
		ID:             "steel",
		Name:           "Structural Steel",
		ElasticModulus: 210e9,
		Density:        7850,
		YieldStrength:  250e6,
	},
	{
		ID:             "aluminum",
		Name:           "Aluminum 6061-T6",
		ElasticModulus: 69e9,
		Density:        2700,
		YieldStrength:  240e6,
	},
	{
		ID:             "concrete",
		Name:           "Concrete (25 MPa)",
		ElasticModulus: 30e9,
		Density:        2400,
		YieldStrength:  25e6,
	},
	{
		ID:             "wood",
		Name:           "Wood (Oak)",
		ElasticModulus: 11e9,
		Density:        720,
		YieldStrength:  40e6,
	},
	{
		ID:             "titanium",
		Name:           "Titanium Ti6Al4V",
		ElasticModulus: 110e9,
		Density:        4430,
		YieldStrength:  880e6,
	},
}

// SectionPreset is a named cross-section with its computed properties
type SectionPreset struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Section    section.Spec       `json:"section"`
	Properties section.Properties `json:"properties"`
}

var sectionSpecs = []struct {
	id, name string
	spec     section.Spec
}{
	{
		id:   "rectangular_100x50",
		name: "Rectangular 100x50mm",
		spec: section.Spec{Type: section.ShapeRectangle, Width: 0.1, Height: 0.05},
	},
	{
		id:   "circular_100",
		name: "Circular Ø100mm",
		spec: section.Spec{Type: section.ShapeCircle, Diameter: 0.1},
	},
	{
		id:   "i_beam_200",
		name: "I-Beam 200mm",
		spec: section.Spec{
			Type:            section.ShapeIBeam,
			Width:           0.1,
			Height:          0.2,
			WebThickness:    0.008,
			FlangeThickness: 0.012,
		},
	},
}

// Sections returns the section presets with properties evaluated
func Sections() []SectionPreset {
	out := make([]SectionPreset, 0, len(sectionSpecs))
	for _, s := range sectionSpecs {
		props, err := section.Calculate(s.spec)
		if err != nil {
			// presets are constants; a failure here is a programming error
			panic(fmt.Sprintf("catalog: section %s: %v", s.id, err))
		}
		out = append(out, SectionPreset{ID: s.id, Name: s.name, Section: s.spec, Properties: props})
	}
	return out
}

// MaterialByID finds a material preset
func MaterialByID(id string) (Material, error) {
	for _, m := range Materials {
		if m.ID == id {
			return m, nil
		}
	}
	return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, id)
}

// SectionByID finds a section preset
func SectionByID(id string) (SectionPreset, error) {
	for _, s := range Sections() {
		if s.ID == id {
			return s, nil
		}
	}
	return SectionPreset{}, fmt.Errorf("%w: %q", ErrUnknownSection, id)
}
