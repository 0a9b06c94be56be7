package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/catalog"
	"github.com/alexiusacademia/gobeam/internal/section"
	"gopkg.in/yaml.v3"
)

// Definition describes a beam the way a user saves it: by material and
// section rather than raw E and I.
//
// E resolves from ElasticModulus, then Material. I resolves from
// MomentOfInertia, then Section, then SectionPreset. Anything left unset
// falls back to Defaults.
type Definition struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Length float64 `json:"length" yaml:"length" validate:"gt=0"` // m

	Material       string  `json:"material,omitempty" yaml:"material,omitempty"`
	ElasticModulus float64 `json:"elasticModulus,omitempty" yaml:"elasticModulus,omitempty"`

	Section         *section.Spec `json:"section,omitempty" yaml:"section,omitempty"`
	SectionPreset   string        `json:"sectionPreset,omitempty" yaml:"sectionPreset,omitempty"`
	MomentOfInertia float64       `json:"momentOfInertia,omitempty" yaml:"momentOfInertia,omitempty"`

	Supports  []beam.SupportSpec `json:"supports" yaml:"supports" validate:"required"`
	Loads     []beam.LoadSpec    `json:"loads" yaml:"loads" validate:"required"`
	NumPoints int                `json:"numPoints,omitempty" yaml:"numPoints,omitempty"`
}

// Defaults fill engine inputs a definition leaves open
type Defaults struct {
	ElasticModulus  float64 `yaml:"elasticModulus"`
	MomentOfInertia float64 `yaml:"momentOfInertia"`
	NumPoints       int     `yaml:"numPoints"`
}

// Project is a saved definition with its most recent analysis
type Project struct {
	ID string `json:"id"`
	Definition
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Results   *beam.Analysis `json:"results,omitempty"`
}

// Request resolves the definition into an engine request
func (d *Definition) Request(def Defaults) (beam.Request, error) {
	req := beam.Request{
		BeamLength:      d.Length,
		Loads:           d.Loads,
		Supports:        d.Supports,
		ElasticModulus:  def.ElasticModulus,
		MomentOfInertia: def.MomentOfInertia,
		NumPoints:       def.NumPoints,
	}

	switch {
	case d.ElasticModulus != 0:
		req.ElasticModulus = d.ElasticModulus
	case d.Material != "":
		m, err := catalog.MaterialByID(d.Material)
		if err != nil {
			return beam.Request{}, err
		}
		req.ElasticModulus = m.ElasticModulus
	}

	switch {
	case d.MomentOfInertia != 0:
		req.MomentOfInertia = d.MomentOfInertia
	case d.Section != nil:
		props, err := section.Calculate(*d.Section)
		if err != nil {
			return beam.Request{}, fmt.Errorf("section: %w", err)
		}
		req.MomentOfInertia = props.MomentOfInertia
	case d.SectionPreset != "":
		p, err := catalog.SectionByID(d.SectionPreset)
		if err != nil {
			return beam.Request{}, err
		}
		req.MomentOfInertia = p.Properties.MomentOfInertia
	}

	if d.NumPoints != 0 {
		req.NumPoints = d.NumPoints
	}
	return req, nil
}

// Analyze resolves and analyzes the definition
func (d *Definition) Analyze(def Defaults) (*beam.Analysis, error) {
	req, err := d.Request(def)
	if err != nil {
		return nil, err
	}
	return beam.Analyze(req)
}

// LoadFromFile reads a definition from a JSON or YAML file, chosen by
// extension
func LoadFromFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var d Definition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &d)
	default:
		err = json.Unmarshal(data, &d)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &d, nil
}
