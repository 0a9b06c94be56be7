package beam

import "math"

// Sample is one (x, value) pair of a diagram
type Sample struct {
	X     float64 `json:"x"`
	Value float64 `json:"value"`
}

// Series is a diagram sampled on the beam grid, NumPoints+1 samples long
type Series []Sample

// Values returns the sampled values without abscissae
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// MaxAbs returns the largest absolute value in the series
func (s Series) MaxAbs() float64 {
	var m float64
	for _, p := range s {
		m = math.Max(m, math.Abs(p.Value))
	}
	return m
}

// nonFinite returns the index of the first NaN or infinite value, or -1
func (s Series) nonFinite() int {
	for i, p := range s {
		if !finite(p.Value) {
			return i
		}
	}
	return -1
}

// Grid returns NumPoints+1 evenly spaced abscissae from 0 to the beam length.
// The last abscissa is exactly the length.
func Grid(b *Beam) []float64 {
	n := b.NumPoints
	dx := b.Step()
	xs := make([]float64, n+1)
	for i := range xs {
		xs[i] = float64(i) * dx
	}
	xs[n] = b.Length
	return xs
}

// index returns the grid index nearest to x
func (b *Beam) index(x float64) int {
	i := int(math.Round(x / b.Step()))
	return max(0, min(i, b.NumPoints))
}

// reached reports whether grid abscissa x is at or past position p,
// ignoring rounding noise well below one grid step.
func (b *Beam) reached(x, p float64) bool {
	return p <= x+b.Step()*1e-9
}

func series(xs, values []float64) Series {
	s := make(Series, len(xs))
	for i := range xs {
		s[i] = Sample{X: xs[i], Value: values[i]}
	}
	return s
}

// ShearForce computes the shear diagram. At each grid point the shear is the
// sum of reactions to its left, minus point loads to its left, minus the
// distributed load accumulated up to it. Concentrated moments do not
// contribute.
func ShearForce(b *Beam, r *Reactions) Series {
	xs := Grid(b)
	v := make([]float64, len(xs))

	for i, x := range xs {
		for _, rc := range r.Reactions {
			if b.reached(x, rc.Position) {
				v[i] += rc.Value
			}
		}
		for _, load := range b.loads {
			switch l := load.(type) {
			case PointLoad:
				if b.reached(x, l.Position) {
					v[i] -= l.Value
				}
			case DistributedLoad:
				switch {
				case b.reached(x, l.End()):
					v[i] -= l.Total()
				case x > l.Start():
					v[i] -= l.Value * (x - l.Start())
				}
			}
		}
	}
	return series(xs, v)
}

// BendingMoment integrates the shear diagram with left rectangles, then adds
// each concentrated moment as a step starting at its nearest grid index.
func BendingMoment(b *Beam, shear Series) Series {
	xs := Grid(b)
	dx := b.Step()
	m := make([]float64, len(xs))

	for i := 1; i < len(m); i++ {
		m[i] = m[i-1] + shear[i-1].Value*dx
	}

	for _, load := range b.loads {
		if l, ok := load.(MomentLoad); ok {
			for i := b.index(l.Position); i < len(m); i++ {
				m[i] += l.Value
			}
		}
	}
	return series(xs, m)
}

// Deflection integrates curvature M/EI twice from x = 0, then subtracts the
// line through the raw curve at both support grid points so that the
// deflection there is exactly zero.
func Deflection(b *Beam, moment Series) (Series, error) {
	xs := Grid(b)
	dx := b.Step()
	n := len(xs)

	slope := make([]float64, n)
	for i := 1; i < n; i++ {
		slope[i] = slope[i-1] + moment[i-1].Value/b.ei*dx
	}
	d := make([]float64, n)
	for i := 1; i < n; i++ {
		d[i] = d[i-1] + slope[i-1]*dx
	}

	if len(b.supports) < 2 {
		return nil, invalid("deflection needs two supports, got %d", len(b.supports))
	}
	ia, ib := b.index(b.supports[0].Position), b.index(b.supports[1].Position)
	if ia == ib {
		return nil, invalid("grid of %d points cannot separate supports at %g and %g",
			b.NumPoints, b.supports[0].Position, b.supports[1].Position)
	}

	da, db := d[ia], d[ib]
	span := float64(ib - ia)
	for i := range d {
		wa := float64(ib-i) / span
		wb := float64(i-ia) / span
		d[i] -= da*wa + db*wb
	}
	return series(xs, d), nil
}
