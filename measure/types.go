// Package measure - shared contracts.
//
// Measures are small immutable value structs over manifold descriptors.
// The interfaces below are the whole external surface: log-density for
// every measure, log-mass for the primitives, sampling where an exact
// algorithm exists, and a closed-form mode for the vMF family.
package measure

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/tkraev/mfdmeasure/manifold"
)

// Measure is the minimal contract every measure in this package fulfills:
// it knows its sample space and evaluates a log-density there.
//
// Densities of the parameterized families are taken relative to the
// normalized Hausdorff measure on the same manifold; the primitives are
// their own reference (log-density identically zero).
//
// Evaluating at a point that is not on the manifold (see
// manifold.Manifold.IsPoint) is undefined behavior by contract.
type Measure interface {
	Manifold() manifold.Manifold
	LogDensity(x *mat.Dense) (float64, error)
}

// Massive is a measure with a finite total mass available in closed form.
// The primitives (Hausdorff, Haar) and Normalized implement it.
type Massive interface {
	Measure

	// LogMass returns the natural logarithm of the measure's total
	// integral over the manifold.
	LogMass() (float64, error)
}

// Sampler produces exact draws. Sample allocates a fresh point;
// SampleInto fills a caller-provided buffer of the manifold's Shape()
// for allocation-sensitive callers. Both consume the supplied Source
// only, so a fixed seed reproduces the sequence exactly.
type Sampler interface {
	Sample(src rand.Source) (*mat.Dense, error)
	SampleInto(src rand.Source, dst *mat.Dense) error
}

// Direction distinguishes left- from right-invariant Haar measures.
type Direction int

const (
	// Left invariance: μ(gA) = μ(A) for every group element g.
	Left Direction = iota

	// Right invariance: μ(Ag) = μ(A) for every group element g.
	Right
)

// String implements fmt.Stringer for diagnostics.
func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}
