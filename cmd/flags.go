package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// splitNumbers parses a colon separated list of exactly n numbers
func splitNumbers(s string, n int, format string) ([]float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != n {
		return nil, fmt.Errorf("invalid value %q, expected %s", s, format)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q, expected %s: %w", s, format, err)
		}
		out[i] = v
	}
	return out, nil
}

// parsePointLoad reads "pos:value"
func parsePointLoad(s string) (beam.LoadSpec, error) {
	v, err := splitNumbers(s, 2, "pos:value")
	if err != nil {
		return beam.LoadSpec{}, err
	}
	return beam.LoadSpec{Type: beam.LoadPoint, Position: v[0], Value: v[1]}, nil
}

// parseDistributedLoad reads "pos:length:value"
func parseDistributedLoad(s string) (beam.LoadSpec, error) {
	v, err := splitNumbers(s, 3, "pos:length:value")
	if err != nil {
		return beam.LoadSpec{}, err
	}
	return beam.LoadSpec{Type: beam.LoadDistributed, Position: v[0], Length: v[1], Value: v[2]}, nil
}

// parseMomentLoad reads "pos:value"
func parseMomentLoad(s string) (beam.LoadSpec, error) {
	v, err := splitNumbers(s, 2, "pos:value")
	if err != nil {
		return beam.LoadSpec{}, err
	}
	return beam.LoadSpec{Type: beam.LoadMoment, Position: v[0], Value: v[1]}, nil
}

// parseSupport reads "pos" or "pos:kind"
func parseSupport(s string) (beam.SupportSpec, error) {
	pos, kind, found := strings.Cut(s, ":")
	v, err := strconv.ParseFloat(strings.TrimSpace(pos), 64)
	if err != nil {
		return beam.SupportSpec{}, fmt.Errorf("invalid support %q, expected pos[:kind]: %w", s, err)
	}
	spec := beam.SupportSpec{Type: beam.SupportSimple, Position: v}
	if found {
		spec.Type = beam.SupportKind(strings.TrimSpace(kind))
	}
	return spec, nil
}

// collectLoads parses all load flags in point, distributed, moment order
func collectLoads(points, udls, moments []string) ([]beam.LoadSpec, error) {
	var loads []beam.LoadSpec
	for _, group := range []struct {
		values []string
		parse  func(string) (beam.LoadSpec, error)
	}{
		{points, parsePointLoad},
		{udls, parseDistributedLoad},
		{moments, parseMomentLoad},
	} {
		for _, s := range group.values {
			l, err := group.parse(s)
			if err != nil {
				return nil, err
			}
			loads = append(loads, l)
		}
	}
	return loads, nil
}
