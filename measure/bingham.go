// Package measure - Bingham distribution.
package measure

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/tkraev/mfdmeasure/manifold"
	"github.com/tkraev/mfdmeasure/specfn"
)

// Bingham is the quadratic exponential-family distribution proportional
// to exp(tr(XᵀBX)) for a symmetric (not necessarily definite) parameter
// B, relative to the normalized Hausdorff base measure.
//
// Non-identifiability: adding c·I to B multiplies the density by the
// point-independent constant e^{ck}, so B and B+cI describe the same
// distribution. This is intrinsic to the family, not a defect.
//
// The normalizing constant is the confluent hypergeometric function
// 1F1(k/2; n/2; B) of matrix argument; only the 1×1 argument is
// implemented (specfn.ErrNotImplemented beyond), and no exact sampler is
// known for the general case — both gaps are surfaced loudly rather than
// papered over.
type Bingham struct {
	M manifold.Manifold
	B *mat.SymDense
}

// NewBingham returns the Bingham distribution with parameter B. No
// validation (lightweight-constructor policy).
func NewBingham(m manifold.Manifold, b *mat.SymDense) Bingham {
	return Bingham{M: m, B: b}
}

// Manifold returns the sample space descriptor.
func (b Bingham) Manifold() manifold.Manifold { return b.M }

// LogKernel returns the unnormalized log-density tr(XᵀBX). Exported so
// that shape comparisons and parameterization checks remain possible on
// manifolds where the normalizer is not implemented.
func (b Bingham) LogKernel(x *mat.Dense) (float64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	var bx mat.Dense
	bx.Mul(b.B, x)
	return frobDot(x, &bx), nil
}

// LogDensity returns tr(XᵀBX) − log 1F1(k/2; n/2; B). The matrix-argument
// hypergeometric normalizer is implemented for the 1×1 argument only;
// larger arguments propagate specfn.ErrNotImplemented.
func (b Bingham) LogDensity(x *mat.Dense) (float64, error) {
	kern, err := b.LogKernel(x)
	if err != nil {
		return 0, err
	}
	r, c := b.M.Shape()
	logNorm, err := logBinghamNorm(float64(c)/2, float64(r)/2, b.B)
	if err != nil {
		return 0, err
	}
	return kern - logNorm, nil
}

// Sample is not available: no exact sampler for the general Bingham
// distribution is part of this design (open gap). Always ErrNoSampler.
func (b Bingham) Sample(_ rand.Source) (*mat.Dense, error) {
	return nil, ErrNoSampler
}

// SampleInto is not available; see Sample.
func (b Bingham) SampleInto(_ rand.Source, _ *mat.Dense) error {
	return ErrNoSampler
}

// logBinghamNorm returns log 1F1(a; b; B) for the symmetric matrix
// argument B, delegating to the specfn kernel (1×1 exact, larger
// arguments ErrNotImplemented).
func logBinghamNorm(a, b float64, B *mat.SymDense) (float64, error) {
	return specfn.LogHypergeom1F1Matrix(a, b, B)
}

// check gates the manifold/field combinations the Bingham family is
// defined for (the quadratic form is phase-invariant, so projective-type
// quotients are fine).
func (b Bingham) check() error {
	switch b.M.Kind {
	case manifold.KindSphere, manifold.KindProjectiveSpace:
		return nil
	case manifold.KindStiefel, manifold.KindGrassmann:
		if b.M.Field != manifold.Real {
			return ErrUnsupportedField
		}
		return nil
	default:
		return ErrUnsupportedManifold
	}
}
