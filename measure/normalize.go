// Package measure - normalization combinator.
package measure

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/tkraev/mfdmeasure/manifold"
)

// Normalized wraps a base measure ν as the probability measure ν/mass(ν).
// Its log-density is the base log-density shifted by −log mass(ν), its
// own log-mass is zero by construction, and sampling passes through
// unchanged (normalization rescales, it does not reshape).
type Normalized struct {
	Base Massive
}

// Normalize wraps base into its probability-normalized counterpart.
// Normalizing is a fixed point: Normalize(Normalize(ν)) == Normalize(ν),
// because a Normalized base is returned as-is rather than re-wrapped.
// The base mass is never computed here — only when a density is asked
// for (lightweight-constructor policy).
func Normalize(base Massive) Normalized {
	if n, ok := base.(Normalized); ok {
		return n
	}
	return Normalized{Base: base}
}

// Manifold returns the base measure's sample space.
func (n Normalized) Manifold() manifold.Manifold { return n.Base.Manifold() }

// LogDensity returns base.LogDensity(x) − base.LogMass().
func (n Normalized) LogDensity(x *mat.Dense) (float64, error) {
	ld, err := n.Base.LogDensity(x)
	if err != nil {
		return 0, err
	}
	lm, err := n.Base.LogMass()
	if err != nil {
		return 0, err
	}
	return ld - lm, nil
}

// LogMass is zero by construction: the wrapped measure integrates to one.
func (n Normalized) LogMass() (float64, error) { return 0, nil }

// Sample delegates to the base sampler; ErrNoSampler when the base does
// not sample.
func (n Normalized) Sample(src rand.Source) (*mat.Dense, error) {
	s, ok := n.Base.(Sampler)
	if !ok {
		return nil, ErrNoSampler
	}
	return s.Sample(src)
}

// SampleInto delegates to the base sampler; ErrNoSampler when the base
// does not sample.
func (n Normalized) SampleInto(src rand.Source, dst *mat.Dense) error {
	s, ok := n.Base.(Sampler)
	if !ok {
		return ErrNoSampler
	}
	return s.SampleInto(src, dst)
}
