package beam

import "math"

// LoadSpec is the wire form of a load
type LoadSpec struct {
	Type     LoadKind `json:"type" yaml:"type"`
	Position float64  `json:"position" yaml:"position"`
	Value    float64  `json:"value" yaml:"value"`
	Length   float64  `json:"length,omitempty" yaml:"length,omitempty"`
}

// SupportSpec is the wire form of a support
type SupportSpec struct {
	Type     SupportKind `json:"type" yaml:"type"`
	Position float64     `json:"position" yaml:"position"`
}

// Request is the engine input. Zero-valued ElasticModulus, MomentOfInertia
// and NumPoints take the package defaults.
type Request struct {
	BeamLength      float64       `json:"beamLength" yaml:"beamLength"`
	Loads           []LoadSpec    `json:"loads" yaml:"loads"`
	Supports        []SupportSpec `json:"supports" yaml:"supports"`
	ElasticModulus  float64       `json:"elasticModulus,omitempty" yaml:"elasticModulus,omitempty"`
	MomentOfInertia float64       `json:"momentOfInertia,omitempty" yaml:"momentOfInertia,omitempty"`
	NumPoints       int           `json:"numPoints,omitempty" yaml:"numPoints,omitempty"`
}

// withDefaults returns a copy of r with zero values replaced by defaults
func (r Request) withDefaults() Request {
	if r.ElasticModulus == 0 {
		r.ElasticModulus = DefaultElasticModulus
	}
	if r.MomentOfInertia == 0 {
		r.MomentOfInertia = DefaultMomentOfInertia
	}
	if r.NumPoints == 0 {
		r.NumPoints = DefaultNumPoints
	}
	return r
}

// New validates the request and builds an immutable Beam.
// The first violated check is returned as a *ValidationError.
func New(req Request) (*Beam, error) {
	req = req.withDefaults()
	L := req.BeamLength

	if !(L > 0) || math.IsInf(L, 0) {
		return nil, invalid("beam length must be greater than zero")
	}
	if len(req.Loads) == 0 {
		return nil, invalid("at least one load must be defined")
	}
	if len(req.Supports) < 2 {
		return nil, invalid("at least two supports must be defined")
	}

	supports := make([]Support, 0, len(req.Supports))
	for i, s := range req.Supports {
		if !within(s.Position, L) {
			return nil, invalid("support %d position %g must lie within the beam length %g", i+1, s.Position, L)
		}
		if !s.Type.valid() {
			return nil, invalid("invalid support type: %q", s.Type)
		}
		supports = append(supports, Support{Position: s.Position, Kind: s.Type})
	}

	loads := make([]Load, 0, len(req.Loads))
	for i, spec := range req.Loads {
		load, err := parseLoad(i, spec, L)
		if err != nil {
			return nil, err
		}
		if !finite(spec.Value) {
			return nil, invalid("load %d value %g must be a finite number", i+1, spec.Value)
		}
		loads = append(loads, load)
	}

	if req.NumPoints < 1 {
		return nil, invalid("number of points must be at least 1, got %d", req.NumPoints)
	}
	if !(req.ElasticModulus > 0) || math.IsInf(req.ElasticModulus, 0) {
		return nil, invalid("elastic modulus must be greater than zero")
	}
	if !(req.MomentOfInertia > 0) || math.IsInf(req.MomentOfInertia, 0) {
		return nil, invalid("moment of inertia must be greater than zero")
	}
	ei := req.ElasticModulus * req.MomentOfInertia
	if !(ei > 0) || math.IsInf(ei, 0) {
		return nil, invalid("flexural rigidity EI = %g is out of range", ei)
	}

	return &Beam{
		Length:          L,
		ElasticModulus:  req.ElasticModulus,
		MomentOfInertia: req.MomentOfInertia,
		NumPoints:       req.NumPoints,
		loads:           loads,
		supports:        supports,
		ei:              ei,
	}, nil
}

func parseLoad(i int, spec LoadSpec, L float64) (Load, error) {
	switch spec.Type {
	case LoadPoint:
		if !within(spec.Position, L) {
			return nil, invalid("load %d position %g must lie within the beam length %g", i+1, spec.Position, L)
		}
		return PointLoad{Position: spec.Position, Value: spec.Value}, nil
	case LoadDistributed:
		if !within(spec.Position, L) || spec.Position+spec.Length > L {
			return nil, invalid("distributed load %d must lie within the beam length %g", i+1, L)
		}
		if !(spec.Length > 0) {
			return nil, invalid("distributed load %d length must be greater than zero", i+1)
		}
		return DistributedLoad{Position: spec.Position, Length: spec.Length, Value: spec.Value}, nil
	case LoadMoment:
		if !within(spec.Position, L) {
			return nil, invalid("moment %d position %g must lie within the beam length %g", i+1, spec.Position, L)
		}
		return MomentLoad{Position: spec.Position, Value: spec.Value}, nil
	default:
		return nil, invalid("invalid load type: %q", spec.Type)
	}
}

func within(x, L float64) bool {
	return x >= 0 && x <= L
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
