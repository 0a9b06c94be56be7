package beam

import "fmt"

// Default engine inputs applied when a request leaves them at zero
const (
	DefaultElasticModulus  = 210e9 // Pa, structural steel
	DefaultMomentOfInertia = 1e-6  // m⁴
	DefaultNumPoints       = 100
)

// LoadKind is the wire tag of a load variant
type LoadKind string

const (
	LoadPoint       LoadKind = "point"
	LoadDistributed LoadKind = "distributed"
	LoadMoment      LoadKind = "moment"
)

// SupportKind is the wire tag of a support
type SupportKind string

const (
	SupportSimple SupportKind = "simple"
	SupportFixed  SupportKind = "fixed"
	SupportRoller SupportKind = "roller"
)

func (k SupportKind) valid() bool {
	switch k {
	case SupportSimple, SupportFixed, SupportRoller:
		return true
	}
	return false
}

// Load is one of PointLoad, DistributedLoad or MomentLoad.
// The set is closed: only this package can add variants.
type Load interface {
	Kind() LoadKind
	// Start and End bound the load's footprint on the beam axis
	Start() float64
	End() float64
	isLoad()
}

// PointLoad is a concentrated force (N), positive downward
type PointLoad struct {
	Position float64
	Value    float64
}

// DistributedLoad is a uniform force per unit length (N/m) over
// [Position, Position+Length]
type DistributedLoad struct {
	Position float64
	Length   float64
	Value    float64
}

// MomentLoad is a concentrated moment (N·m)
type MomentLoad struct {
	Position float64
	Value    float64
}

func (PointLoad) Kind() LoadKind       { return LoadPoint }
func (DistributedLoad) Kind() LoadKind { return LoadDistributed }
func (MomentLoad) Kind() LoadKind      { return LoadMoment }

func (l PointLoad) Start() float64       { return l.Position }
func (l PointLoad) End() float64         { return l.Position }
func (l DistributedLoad) Start() float64 { return l.Position }
func (l DistributedLoad) End() float64   { return l.Position + l.Length }
func (l MomentLoad) Start() float64      { return l.Position }
func (l MomentLoad) End() float64        { return l.Position }

func (PointLoad) isLoad()       {}
func (DistributedLoad) isLoad() {}
func (MomentLoad) isLoad()      {}

// Total returns the resultant force of the full distributed load
func (l DistributedLoad) Total() float64 {
	return l.Value * l.Length
}

// Support is a point restraint on the beam axis
type Support struct {
	Position float64
	Kind     SupportKind
}

// Beam is a validated, immutable beam description.
// Build one with New; the zero value is not usable.
type Beam struct {
	Length          float64
	ElasticModulus  float64
	MomentOfInertia float64
	NumPoints       int

	loads    []Load
	supports []Support
	ei       float64
}

// Loads returns a copy of the beam's loads in input order
func (b *Beam) Loads() []Load {
	return append([]Load(nil), b.loads...)
}

// Supports returns a copy of the beam's supports in input order
func (b *Beam) Supports() []Support {
	return append([]Support(nil), b.supports...)
}

// EI returns the flexural rigidity
func (b *Beam) EI() float64 {
	return b.ei
}

// Step returns the grid spacing
func (b *Beam) Step() float64 {
	return b.Length / float64(b.NumPoints)
}

// ValidationError reports inconsistent beam geometry or loading
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalid(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// UnsupportedConfigurationError reports a support set the solver has no
// closed-form path for
type UnsupportedConfigurationError struct {
	msg string
}

func (e *UnsupportedConfigurationError) Error() string {
	return e.msg
}
