// Package measure - Haar (group-invariant) measure.
package measure

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/tkraev/mfdmeasure/manifold"
)

// Haar is the left- or right-invariant measure on a group manifold
// (Rotations, Circle). On the compact groups served here Haar and
// Hausdorff coincide up to normalization, so mass and sampling delegate
// to the Hausdorff measure on the same manifold; the direction flag is
// carried for downstream invariance reasoning, it does not change any
// number this package computes.
type Haar struct {
	M   manifold.Manifold
	Dir Direction
}

// NewHaar returns the Haar measure on m with the given invariance
// direction. No validation at construction; non-group manifolds are
// rejected lazily by every operation with ErrNotAGroup.
func NewHaar(m manifold.Manifold, dir Direction) Haar { return Haar{M: m, Dir: dir} }

// Manifold returns the sample space descriptor.
func (h Haar) Manifold() manifold.Manifold { return h.M }

// LogDensity is identically zero on the group; ErrNotAGroup otherwise.
func (h Haar) LogDensity(_ *mat.Dense) (float64, error) {
	if !h.M.IsGroup() {
		return 0, ErrNotAGroup
	}
	return 0, nil
}

// LogMass delegates to the Hausdorff mass of the group.
func (h Haar) LogMass() (float64, error) {
	if !h.M.IsGroup() {
		return 0, ErrNotAGroup
	}
	return hausdorffLogMass(h.M)
}

// Sample draws an exact group element into a fresh buffer.
func (h Haar) Sample(src rand.Source) (*mat.Dense, error) {
	dst := h.M.NewPoint()
	if err := h.SampleInto(src, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// SampleInto delegates to the Hausdorff sampler; there is no distinct
// Haar sampling algorithm for the compact groups supported.
func (h Haar) SampleInto(src rand.Source, dst *mat.Dense) error {
	if !h.M.IsGroup() {
		return ErrNotAGroup
	}
	return Hausdorff{M: h.M}.SampleInto(src, dst)
}
