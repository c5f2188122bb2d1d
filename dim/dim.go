// Package dim is the minimal hook the out-of-scope dimensional-units
// collaborator (spec.md's "dimensional_scalar" mentions) attaches to: a
// tag type recording a physical dimension and a thin wrapper pairing it
// with a dscalar.Kind value, with no arithmetic of its own — dimensional
// arithmetic is explicitly out of this module's scope, only the naming
// hook is.
package dim

import "github.com/sixitbb/sixit-dmath/dscalar"

// Dimension names a physical dimension a Scalar is tagged with.
type Dimension int

const (
	Dimensionless Dimension = iota
	Length
	Time
	Mass
	Angle
)

// Scalar pairs a dscalar.Kind value with a Dimension tag. It carries no
// arithmetic: combining dimensions (e.g. Length/Time) is the out-of-scope
// collaborator's job, not this module's.
type Scalar[T dscalar.Kind] struct {
	Value T
	Dim   Dimension
}

// New tags a value with a dimension.
func New[T dscalar.Kind](value T, d Dimension) Scalar[T] {
	return Scalar[T]{Value: value, Dim: d}
}
