package beam

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-6

func simplySupported(length float64, loads ...LoadSpec) Request {
	return Request{
		BeamLength: length,
		Loads:      loads,
		Supports: []SupportSpec{
			{Type: SupportSimple, Position: 0},
			{Type: SupportSimple, Position: length},
		},
	}
}

func point(pos, value float64) LoadSpec {
	return LoadSpec{Type: LoadPoint, Position: pos, Value: value}
}

func udl(pos, length, value float64) LoadSpec {
	return LoadSpec{Type: LoadDistributed, Position: pos, Length: length, Value: value}
}

func moment(pos, value float64) LoadSpec {
	return LoadSpec{Type: LoadMoment, Position: pos, Value: value}
}

func mustBeam(t *testing.T, req Request) *Beam {
	t.Helper()
	b, err := New(req)
	require.NoError(t, err)
	return b
}

func TestSolveReactionsPointLoadAtMidspan(t *testing.T) {
	b := mustBeam(t, simplySupported(10, point(5, 1000)))

	r, err := SolveReactions(b)
	require.NoError(t, err)
	require.Len(t, r.Reactions, 2)

	assert.InDelta(t, 500, r.Reactions[0].Value, tol)
	assert.InDelta(t, 500, r.Reactions[1].Value, tol)
	assert.Equal(t, 0.0, r.Reactions[0].Position)
	assert.Equal(t, 10.0, r.Reactions[1].Position)
	assert.InDelta(t, 1000, r.SumForces, tol)
}

func TestSolveReactionsUniformLoad(t *testing.T) {
	b := mustBeam(t, simplySupported(10, udl(0, 10, 100)))

	r, err := SolveReactions(b)
	require.NoError(t, err)
	assert.InDelta(t, 500, r.Reactions[0].Value, tol)
	assert.InDelta(t, 500, r.Reactions[1].Value, tol)
}

func TestSolveReactionsMixedLoads(t *testing.T) {
	// Rb = (1000·3 + 800·3 + 500) / 10 = 590
	b := mustBeam(t, simplySupported(10, point(3, 1000), udl(2, 2, 400), moment(7, 500)))

	r, err := SolveReactions(b)
	require.NoError(t, err)
	assert.InDelta(t, 1210, r.Reactions[0].Value, tol)
	assert.InDelta(t, 590, r.Reactions[1].Value, tol)
}

func TestSolveReactionsOrdersSupportsByPosition(t *testing.T) {
	req := Request{
		BeamLength: 10,
		Loads:      []LoadSpec{point(2, 1000)},
		Supports: []SupportSpec{
			{Type: SupportSimple, Position: 10},
			{Type: SupportSimple, Position: 0},
		},
	}
	r, err := SolveReactions(mustBeam(t, req))
	require.NoError(t, err)

	assert.Equal(t, 0.0, r.Reactions[0].Position)
	assert.InDelta(t, 800, r.Reactions[0].Value, tol)
	assert.InDelta(t, 200, r.Reactions[1].Value, tol)
}

func TestSolveReactionsClipsDistributedLoadToSupports(t *testing.T) {
	req := simplySupported(10, udl(0, 10, 100))
	req.Supports[0].Position = 2
	req.Supports[1].Position = 8

	r, err := SolveReactions(mustBeam(t, req))
	require.NoError(t, err)
	assert.InDelta(t, 300, r.Reactions[0].Value, tol)
	assert.InDelta(t, 300, r.Reactions[1].Value, tol)
}

func TestEquilibrium(t *testing.T) {
	cases := map[string]Request{
		"point":       simplySupported(6, point(1.5, 2500)),
		"partial udl": simplySupported(8, udl(1, 3, 1200)),
		"mixed":       simplySupported(12, point(2, 300), point(11, 900), udl(4, 6, 250), moment(6, -4000)),
		"moment only": simplySupported(5, moment(2, 1500)),
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			b := mustBeam(t, req)
			r, err := SolveReactions(b)
			require.NoError(t, err)

			s := Summarize(b.Loads())
			want := s.TotalPointLoads + s.TotalDistributedLoad
			assert.InDelta(t, want, r.Reactions[0].Value+r.Reactions[1].Value, tol)
			assert.InDelta(t, want, r.SumForces, tol)
		})
	}
}

func TestSolveReactionsUnsupportedConfiguration(t *testing.T) {
	cases := map[string][]SupportSpec{
		"three supports": {
			{Type: SupportSimple, Position: 0},
			{Type: SupportSimple, Position: 5},
			{Type: SupportSimple, Position: 10},
		},
		"fixed support": {
			{Type: SupportFixed, Position: 0},
			{Type: SupportSimple, Position: 10},
		},
		"roller support": {
			{Type: SupportSimple, Position: 0},
			{Type: SupportRoller, Position: 10},
		},
		"coincident": {
			{Type: SupportSimple, Position: 5},
			{Type: SupportSimple, Position: 5},
		},
	}

	for name, supports := range cases {
		t.Run(name, func(t *testing.T) {
			req := simplySupported(10, point(5, 1000))
			req.Supports = supports

			_, err := Analyze(req)
			var target *UnsupportedConfigurationError
			assert.ErrorAs(t, err, &target)
		})
	}
}

func TestShearForce(t *testing.T) {
	t.Run("point load steps at its position", func(t *testing.T) {
		b := mustBeam(t, simplySupported(10, point(5, 1000)))
		r, err := SolveReactions(b)
		require.NoError(t, err)

		v := ShearForce(b, r)
		assert.InDelta(t, 500, v[0].Value, tol)
		assert.InDelta(t, 500, v[49].Value, tol)
		assert.InDelta(t, -500, v[50].Value, tol)
		assert.InDelta(t, 0, v[100].Value, tol)
	})

	t.Run("distributed load ramps across its span", func(t *testing.T) {
		b := mustBeam(t, simplySupported(10, udl(0, 10, 100)))
		r, err := SolveReactions(b)
		require.NoError(t, err)

		v := ShearForce(b, r)
		assert.InDelta(t, 500, v[0].Value, tol)
		assert.InDelta(t, 250, v[25].Value, tol)
		assert.InDelta(t, 0, v[50].Value, tol)
		assert.InDelta(t, -400, v[90].Value, tol)
		assert.InDelta(t, 0, v[100].Value, tol)
	})

	t.Run("partial distributed load holds its total past the span", func(t *testing.T) {
		b := mustBeam(t, simplySupported(10, udl(2, 2, 400)))
		r, err := SolveReactions(b)
		require.NoError(t, err)

		v := ShearForce(b, r)
		ra := r.Reactions[0].Value
		assert.InDelta(t, ra, v[20].Value, tol)
		assert.InDelta(t, ra-400, v[30].Value, tol)
		assert.InDelta(t, ra-800, v[40].Value, tol)
		assert.InDelta(t, ra-800, v[70].Value, tol)
	})

	t.Run("moments do not contribute", func(t *testing.T) {
		b := mustBeam(t, simplySupported(10, moment(4, 1000)))
		r, err := SolveReactions(b)
		require.NoError(t, err)

		v := ShearForce(b, r)
		assert.InDelta(t, -100, v[39].Value, tol)
		assert.InDelta(t, -100, v[40].Value, tol)
		assert.InDelta(t, -100, v[41].Value, tol)
	})
}

func TestBendingMoment(t *testing.T) {
	t.Run("point load peaks at PL/4", func(t *testing.T) {
		b := mustBeam(t, simplySupported(10, point(5, 1000)))
		r, err := SolveReactions(b)
		require.NoError(t, err)

		m := BendingMoment(b, ShearForce(b, r))
		assert.Equal(t, 0.0, m[0].Value)
		assert.InDelta(t, 2500, m[50].Value, tol)
		assert.InDelta(t, 0, m[100].Value, tol)
	})

	t.Run("concentrated moment jumps at nearest index", func(t *testing.T) {
		b := mustBeam(t, simplySupported(10, point(7, 300), moment(4, 1000)))
		r, err := SolveReactions(b)
		require.NoError(t, err)

		v := ShearForce(b, r)
		m := BendingMoment(b, v)
		dx := b.Step()
		k := b.index(4)
		require.Equal(t, 40, k)

		for i := 1; i < len(m); i++ {
			step := m[i].Value - m[i-1].Value - v[i-1].Value*dx
			if i == k {
				assert.InDelta(t, 1000, step, tol, "index %d", i)
			} else {
				assert.InDelta(t, 0, step, tol, "index %d", i)
			}
		}
		assert.InDelta(t, 0, m[100].Value, tol)
	})
}

func TestDeflection(t *testing.T) {
	t.Run("zero at supports on the beam ends", func(t *testing.T) {
		a, err := Analyze(simplySupported(10, point(5, 1000)))
		require.NoError(t, err)

		d := a.Results.Deflection
		assert.Equal(t, 0.0, d[0].Value)
		assert.Equal(t, 0.0, d[100].Value)
		assert.Less(t, d[50].Value, 0.0)
	})

	t.Run("zero at interior supports", func(t *testing.T) {
		req := simplySupported(10, point(5, 1000), udl(0, 10, 150), moment(9, 200))
		req.Supports[0].Position = 2
		req.Supports[1].Position = 8.04
		req.NumPoints = 50

		b := mustBeam(t, req)
		a, err := b.Analyze()
		require.NoError(t, err)

		d := a.Results.Deflection
		assert.Equal(t, 0.0, d[b.index(2)].Value)
		assert.Equal(t, 0.0, d[b.index(8.04)].Value)
	})

	t.Run("matches closed form for midspan point load", func(t *testing.T) {
		// δmax = PL³ / 48EI
		req := simplySupported(10, point(5, 1000))
		a, err := Analyze(req)
		require.NoError(t, err)

		ei := DefaultElasticModulus * DefaultMomentOfInertia
		want := 1000 * 10 * 10 * 10 / (48 * ei)
		assert.InEpsilon(t, want, a.Results.Maxima.Deflection, 0.05)
	})

	t.Run("supports on the same grid index", func(t *testing.T) {
		req := simplySupported(10, point(5, 1000))
		req.Supports[0].Position = 4
		req.Supports[1].Position = 4.5
		req.NumPoints = 1

		_, err := Analyze(req)
		var target *ValidationError
		assert.ErrorAs(t, err, &target)
	})
}

func TestSeriesShape(t *testing.T) {
	for _, n := range []int{1, 7, 100, 250} {
		req := simplySupported(7.5, point(3, 100), udl(1, 4, 20))
		req.NumPoints = n

		a, err := Analyze(req)
		require.NoError(t, err)

		dx := 7.5 / float64(n)
		for _, s := range []Series{a.Results.ShearForce, a.Results.BendingMoment, a.Results.Deflection} {
			require.Len(t, s, n+1)
			assert.Equal(t, 0.0, s[0].X)
			assert.Equal(t, 7.5, s[n].X)
			for i := 1; i <= n; i++ {
				assert.InDelta(t, dx, s[i].X-s[i-1].X, 1e-9)
			}
		}
	}
}

func TestAnalyzeAppliesDefaults(t *testing.T) {
	a, err := Analyze(simplySupported(10, point(5, 1000)))
	require.NoError(t, err)

	assert.Equal(t, Input{BeamLength: 10, ElasticModulus: 210e9, MomentOfInertia: 1e-6}, a.Input)
	assert.Len(t, a.Results.ShearForce, DefaultNumPoints+1)
}

func TestAggregate(t *testing.T) {
	a, err := Analyze(simplySupported(10, point(5, 1000), udl(0, 4, 50), moment(8, -120)))
	require.NoError(t, err)

	res := a.Results
	assert.Equal(t, LoadSummary{TotalPointLoads: 1000, TotalDistributedLoad: 200, TotalMoment: -120}, res.LoadSummary)
	assert.Equal(t, res.ShearForce.MaxAbs(), res.Maxima.Shear)
	assert.Equal(t, res.BendingMoment.MaxAbs(), res.Maxima.Moment)
	assert.Equal(t, res.Deflection.MaxAbs(), res.Maxima.Deflection)
	assert.Len(t, res.Reactions, 2)
}

func TestAnalyzeRejectsNonFiniteResults(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantMsg string
	}{
		{
			name:    "reaction overflow",
			req:     simplySupported(10, point(10, 1e308)),
			wantMsg: "reaction",
		},
		{
			name: "deflection overflow",
			req: func() Request {
				r := simplySupported(10, point(5, 1000))
				r.ElasticModulus = 1e-160
				r.MomentOfInertia = 1e-160
				return r
			}(),
			wantMsg: "deflection",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze(tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNonFinite))
			assert.Contains(t, err.Error(), tt.wantMsg)

			var verr *ValidationError
			assert.False(t, errors.As(err, &verr))
		})
	}
}
