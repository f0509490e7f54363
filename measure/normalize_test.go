package measure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/tkraev/mfdmeasure/manifold"
	"github.com/tkraev/mfdmeasure/measure"
)

// massOnly is a Massive without a sampler, for the delegation error path.
type massOnly struct{ m manifold.Manifold }

func (s massOnly) Manifold() manifold.Manifold              { return s.m }
func (s massOnly) LogDensity(_ *mat.Dense) (float64, error) { return 0, nil }
func (s massOnly) LogMass() (float64, error)                { return 1.5, nil }

var _ measure.Massive = massOnly{}

// TestNormalize_UnitMass: the wrapped measure integrates to one by
// construction, whatever the base mass.
func TestNormalize_UnitMass(t *testing.T) {
	n := measure.Normalize(measure.NewHausdorff(manifold.Sphere(3)))
	lm, err := n.LogMass()
	assert.NoError(t, err)
	assert.Equal(t, 0.0, lm)
}

// TestNormalize_UniformSphereDensity: the normalized Hausdorff measure on
// S² has constant density 1/(4π).
func TestNormalize_UniformSphereDensity(t *testing.T) {
	n := measure.Normalize(measure.NewHausdorff(manifold.Sphere(2)))

	x := mat.NewDense(3, 1, []float64{0, 0, 1})
	ld, err := n.LogDensity(x)
	assert.NoError(t, err)
	assert.InDelta(t, -math.Log(4*math.Pi), ld, 1e-12)
}

// TestNormalize_Idempotent: Normalize is a fixed point, not a re-wrap.
func TestNormalize_Idempotent(t *testing.T) {
	base := measure.NewHausdorff(manifold.Circle())
	once := measure.Normalize(base)
	twice := measure.Normalize(once)
	assert.Equal(t, once, twice)
}

// TestNormalize_SamplePassthrough: sampling rescales nothing — the
// normalized measure reproduces the base stream draw for draw.
func TestNormalize_SamplePassthrough(t *testing.T) {
	m := manifold.Sphere(2)
	base := measure.NewHausdorff(m)
	n := measure.Normalize(base)

	x, err := n.Sample(measure.NewSource(9))
	assert.NoError(t, err)
	assert.True(t, m.IsPoint(x, 1e-9))

	y, err := base.Sample(measure.NewSource(9))
	assert.NoError(t, err)
	assert.True(t, mat.Equal(x, y))
}

// TestNormalize_NoSampler: a base without a sampler surfaces
// ErrNoSampler through the wrapper.
func TestNormalize_NoSampler(t *testing.T) {
	n := measure.Normalize(massOnly{m: manifold.Sphere(2)})

	_, err := n.Sample(measure.NewSource(1))
	assert.ErrorIs(t, err, measure.ErrNoSampler)

	err = n.SampleInto(measure.NewSource(1), mat.NewDense(3, 1, nil))
	assert.ErrorIs(t, err, measure.ErrNoSampler)

	// The density still works: base shifted by the base mass.
	ld, err := n.LogDensity(mat.NewDense(3, 1, []float64{1, 0, 0}))
	assert.NoError(t, err)
	assert.InDelta(t, -1.5, ld, 1e-15)
}
