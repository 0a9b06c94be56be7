package section

import (
	"fmt"
	"math"
)

// Properties of a rectangle: A = bh, I = bh³/12, Z = bh²/6
func (r Rectangle) Properties() Properties {
	return Properties{
		Area:            r.Width * r.Height,
		MomentOfInertia: r.Width * math.Pow(r.Height, 3) / 12,
		SectionModulus:  r.Width * math.Pow(r.Height, 2) / 6,
	}
}

// Properties of a circle: A = πr², I = πr⁴/4, Z = πr³/4
func (c Circle) Properties() Properties {
	r := c.Diameter / 2
	return Properties{
		Area:            math.Pi * r * r,
		MomentOfInertia: math.Pi * math.Pow(r, 4) / 4,
		SectionModulus:  math.Pi * math.Pow(r, 3) / 4,
	}
}

// Properties of an I-beam. Each flange contributes its own inertia plus the
// parallel-axis term about mid-height; the web contributes over the clear
// height h - 2tf.
func (b IBeam) Properties() Properties {
	tf, tw := b.FlangeThickness, b.WebThickness
	web := b.Height - 2*tf

	flangeI := b.Width*math.Pow(tf, 3)/12 + b.Width*tf*math.Pow(b.Height/2-tf/2, 2)
	inertia := 2*flangeI + tw*math.Pow(web, 3)/12

	return Properties{
		Area:            2*b.Width*tf + tw*web,
		MomentOfInertia: inertia,
		SectionModulus:  inertia / (b.Height / 2),
	}
}

func (r Rectangle) validate() error {
	return positive("width", r.Width, "height", r.Height)
}

func (c Circle) validate() error {
	return positive("diameter", c.Diameter)
}

func (b IBeam) validate() error {
	if err := positive("height", b.Height, "width", b.Width,
		"web thickness", b.WebThickness, "flange thickness", b.FlangeThickness); err != nil {
		return err
	}
	if 2*b.FlangeThickness >= b.Height {
		return &ValidationError{msg: fmt.Sprintf("flanges (2 × %g) must be thinner than the height %g", b.FlangeThickness, b.Height)}
	}
	if b.WebThickness > b.Width {
		return &ValidationError{msg: fmt.Sprintf("web thickness %g must not exceed the flange width %g", b.WebThickness, b.Width)}
	}
	return nil
}

// positive checks name/value pairs in order
func positive(pairs ...any) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		name := pairs[i].(string)
		v := pairs[i+1].(float64)
		if !(v > 0) || math.IsInf(v, 0) {
			return &ValidationError{msg: fmt.Sprintf("%s must be positive", name)}
		}
	}
	return nil
}

// Parse converts a wire spec into its concrete section. An unknown Type
// yields *UnsupportedSectionError; bad dimensions yield *ValidationError.
func Parse(s Spec) (Section, error) {
	var sec Section
	switch s.Type {
	case ShapeRectangle:
		sec = Rectangle{Width: s.Width, Height: s.Height}
	case ShapeCircle:
		sec = Circle{Diameter: s.Diameter}
	case ShapeIBeam:
		sec = IBeam{
			Height:          s.Height,
			Width:           s.Width,
			WebThickness:    s.WebThickness,
			FlangeThickness: s.FlangeThickness,
		}
	default:
		return nil, &UnsupportedSectionError{Shape: s.Type}
	}
	if err := sec.validate(); err != nil {
		return nil, err
	}
	return sec, nil
}

// Calculate parses the spec and returns its properties
func Calculate(s Spec) (Properties, error) {
	sec, err := Parse(s)
	if err != nil {
		return Properties{}, err
	}
	return sec.Properties(), nil
}

// SpecOf returns the wire form of a section
func SpecOf(sec Section) Spec {
	switch s := sec.(type) {
	case Rectangle:
		return Spec{Type: ShapeRectangle, Width: s.Width, Height: s.Height}
	case Circle:
		return Spec{Type: ShapeCircle, Diameter: s.Diameter}
	case IBeam:
		return Spec{
			Type:            ShapeIBeam,
			Height:          s.Height,
			Width:           s.Width,
			WebThickness:    s.WebThickness,
			FlangeThickness: s.FlangeThickness,
		}
	}
	return Spec{}
}

// Describe returns a short human label such as "I 200×100 (tw 8, tf 12) mm"
func Describe(sec Section) string {
	mm := func(m float64) float64 { return m * 1000 }
	switch s := sec.(type) {
	case Rectangle:
		return fmt.Sprintf("Rectangle %.4g×%.4g mm", mm(s.Width), mm(s.Height))
	case Circle:
		return fmt.Sprintf("Circle Ø%.4g mm", mm(s.Diameter))
	case IBeam:
		return fmt.Sprintf("I %.4g×%.4g (tw %.4g, tf %.4g) mm", mm(s.Height), mm(s.Width), mm(s.WebThickness), mm(s.FlangeThickness))
	}
	return "unknown section"
}
