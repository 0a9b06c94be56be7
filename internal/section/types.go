package section

import "fmt"

// Shape is the wire tag of a cross-section variant
type Shape string

const (
	ShapeRectangle Shape = "rectangle"
	ShapeCircle    Shape = "circle"
	ShapeIBeam     Shape = "i_beam"
)

// Section is one of Rectangle, Circle or IBeam. Dimensions are in metres.
type Section interface {
	Shape() Shape
	// Properties evaluates the closed-form geometric properties
	Properties() Properties
	validate() error
}

// Rectangle is a solid rectangular section
type Rectangle struct {
	Width  float64 // b
	Height float64 // h
}

// Circle is a solid circular section
type Circle struct {
	Diameter float64
}

// IBeam is a doubly symmetric I-shaped section. The web spans the clear
// height between the flanges.
//
//	      Width
//	  ┌───────────┐ ─┬─ FlangeThickness
//	  └───┐   ┌───┘
//	      │   │  ← WebThickness
//	  ┌───┘   └───┐
//	  └───────────┘ Height overall
type IBeam struct {
	Height          float64
	Width           float64
	WebThickness    float64
	FlangeThickness float64
}

func (Rectangle) Shape() Shape { return ShapeRectangle }
func (Circle) Shape() Shape    { return ShapeCircle }
func (IBeam) Shape() Shape     { return ShapeIBeam }

// Properties holds the geometric properties about the strong axis
type Properties struct {
	Area            float64 `json:"area"`            // m²
	MomentOfInertia float64 `json:"momentOfInertia"` // m⁴
	SectionModulus  float64 `json:"sectionModulus"`  // m³
}

// Spec is the flat wire form of a section, tagged by Type
type Spec struct {
	Type            Shape   `json:"type" yaml:"type"`
	Width           float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height          float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Diameter        float64 `json:"diameter,omitempty" yaml:"diameter,omitempty"`
	WebThickness    float64 `json:"webThickness,omitempty" yaml:"webThickness,omitempty"`
	FlangeThickness float64 `json:"flangeThickness,omitempty" yaml:"flangeThickness,omitempty"`
}

// ValidationError represents invalid section dimensions
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// UnsupportedSectionError reports a section shape with no formulas
type UnsupportedSectionError struct {
	Shape Shape
}

func (e *UnsupportedSectionError) Error() string {
	return fmt.Sprintf("unsupported section type: %q", e.Shape)
}
