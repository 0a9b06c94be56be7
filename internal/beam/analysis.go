package beam

import (
	"errors"
	"fmt"
)

// ErrNonFinite is returned when an analysis overflows floating point.
// Inputs that pass validation can still be too large to integrate.
var ErrNonFinite = errors.New("analysis result is not a finite number")

// Maxima holds the largest absolute value of each diagram
type Maxima struct {
	Shear      float64 `json:"shear"`
	Moment     float64 `json:"moment"`
	Deflection float64 `json:"deflection"`
}

// LoadSummary totals the applied loads by kind
type LoadSummary struct {
	TotalPointLoads      float64 `json:"totalPointLoads"`
	TotalDistributedLoad float64 `json:"totalDistributedLoad"`
	TotalMoment          float64 `json:"totalMoment"`
}

// AnalysisResult holds everything computed for one beam
type AnalysisResult struct {
	Reactions     []Reaction  `json:"reactions"`
	ShearForce    Series      `json:"shearForce"`
	BendingMoment Series      `json:"bendingMoment"`
	Deflection    Series      `json:"deflection"`
	Maxima        Maxima      `json:"maxValues"`
	LoadSummary   LoadSummary `json:"loadSummary"`
}

// Input echoes the effective beam properties used by an analysis
type Input struct {
	BeamLength      float64 `json:"beamLength"`
	ElasticModulus  float64 `json:"elasticModulus"`
	MomentOfInertia float64 `json:"momentOfInertia"`
}

// Analysis is the engine output
type Analysis struct {
	Input   Input          `json:"input"`
	Results AnalysisResult `json:"results"`
}

// Analyze validates the request and runs the full pipeline:
// reactions, shear, moment, deflection, then aggregation.
func Analyze(req Request) (*Analysis, error) {
	b, err := New(req)
	if err != nil {
		return nil, err
	}
	return b.Analyze()
}

// Analyze runs the pipeline on an already validated beam
func (b *Beam) Analyze() (*Analysis, error) {
	r, err := SolveReactions(b)
	if err != nil {
		return nil, err
	}
	for _, re := range r.Reactions {
		if !finite(re.Value) {
			return nil, fmt.Errorf("%w: reaction at x = %g", ErrNonFinite, re.Position)
		}
	}
	shear := ShearForce(b, r)
	moment := BendingMoment(b, shear)
	deflection, err := Deflection(b, moment)
	if err != nil {
		return nil, err
	}
	diagrams := []struct {
		name string
		s    Series
	}{
		{"shear", shear},
		{"moment", moment},
		{"deflection", deflection},
	}
	for _, d := range diagrams {
		if i := d.s.nonFinite(); i >= 0 {
			return nil, fmt.Errorf("%w: %s at x = %g", ErrNonFinite, d.name, d.s[i].X)
		}
	}

	return &Analysis{
		Input: Input{
			BeamLength:      b.Length,
			ElasticModulus:  b.ElasticModulus,
			MomentOfInertia: b.MomentOfInertia,
		},
		Results: Aggregate(b, r, shear, moment, deflection),
	}, nil
}

// Aggregate combines the stage outputs into an AnalysisResult
func Aggregate(b *Beam, r *Reactions, shear, moment, deflection Series) AnalysisResult {
	return AnalysisResult{
		Reactions:     append([]Reaction(nil), r.Reactions...),
		ShearForce:    shear,
		BendingMoment: moment,
		Deflection:    deflection,
		Maxima: Maxima{
			Shear:      shear.MaxAbs(),
			Moment:     moment.MaxAbs(),
			Deflection: deflection.MaxAbs(),
		},
		LoadSummary: Summarize(b.loads),
	}
}

// Summarize totals point forces, distributed resultants and moments
func Summarize(loads []Load) LoadSummary {
	var s LoadSummary
	for _, load := range loads {
		switch l := load.(type) {
		case PointLoad:
			s.TotalPointLoads += l.Value
		case DistributedLoad:
			s.TotalDistributedLoad += l.Total()
		case MomentLoad:
			s.TotalMoment += l.Value
		}
	}
	return s
}
