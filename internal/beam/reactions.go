package beam

import (
	"fmt"
	"math"
	"sort"
)

// Reaction is the vertical force a support exerts on the beam
type Reaction struct {
	Position float64     `json:"position"`
	Value    float64     `json:"value"`
	Type     SupportKind `json:"type"`
}

// Reactions holds the solved support reactions
type Reactions struct {
	Reactions []Reaction `json:"reactions"`
	SumForces float64    `json:"sumForces"`
}

// SolveReactions solves global equilibrium for a beam on exactly two simple
// supports. Moments are summed about the left support a:
//
//	Rb = ΣM_a / (b - a)
//	Ra = ΣF - Rb
func SolveReactions(b *Beam) (*Reactions, error) {
	if len(b.supports) != 2 {
		return nil, &UnsupportedConfigurationError{
			msg: fmt.Sprintf("only two simple supports are supported, got %d supports", len(b.supports)),
		}
	}
	for _, s := range b.supports {
		if s.Kind != SupportSimple {
			return nil, &UnsupportedConfigurationError{
				msg: fmt.Sprintf("only simple supports are supported, got %q", s.Kind),
			}
		}
	}

	ordered := b.Supports()
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})
	a, c := ordered[0].Position, ordered[1].Position
	if c-a <= 0 {
		return nil, &UnsupportedConfigurationError{
			msg: fmt.Sprintf("supports must be at distinct positions, both are at %g", a),
		}
	}

	var sumMoment, sumForce float64
	for _, load := range b.loads {
		switch l := load.(type) {
		case PointLoad:
			sumMoment += l.Value * (l.Position - a)
			sumForce += l.Value
		case DistributedLoad:
			s := math.Max(l.Start(), a)
			e := math.Min(l.End(), c)
			if s < e {
				total := l.Value * (e - s)
				centroid := (s + e) / 2
				sumMoment += total * (centroid - a)
				sumForce += total
			}
		case MomentLoad:
			sumMoment += l.Value
		}
	}

	rb := sumMoment / (c - a)
	ra := sumForce - rb

	return &Reactions{
		Reactions: []Reaction{
			{Position: a, Value: ra, Type: SupportSimple},
			{Position: c, Value: rb, Type: SupportSimple},
		},
		SumForces: ra + rb,
	}, nil
}
