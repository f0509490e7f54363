package measure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/tkraev/mfdmeasure/manifold"
	"github.com/tkraev/mfdmeasure/measure"
)

// logMass is a test shorthand: the Hausdorff log-mass of m, failing the
// test on error.
func logMass(t *testing.T, m manifold.Manifold) float64 {
	t.Helper()
	lm, err := measure.NewHausdorff(m).LogMass()
	assert.NoError(t, err)
	return lm
}

// TestHausdorffLogMass_KnownVolumes pins the closed forms against the
// textbook values: |S⁰|=2, |S¹|=2π, |S²|=4π, |S³|=2π², |ℝP¹|=π,
// |SO(2)|=2π, |SO(3)|=8π², |Circle|=2π.
func TestHausdorffLogMass_KnownVolumes(t *testing.T) {
	cases := []struct {
		name string
		m    manifold.Manifold
		vol  float64
	}{
		{"S0", manifold.Sphere(0), 2},
		{"S1", manifold.Sphere(1), 2 * math.Pi},
		{"S2", manifold.Sphere(2), 4 * math.Pi},
		{"S3", manifold.Sphere(3), 2 * math.Pi * math.Pi},
		{"RP1", manifold.ProjectiveSpace(1, manifold.Real), math.Pi},
		{"SO2", manifold.Rotations(2), 2 * math.Pi},
		{"SO3", manifold.Rotations(3), 8 * math.Pi * math.Pi},
		{"Circle", manifold.Circle(), 2 * math.Pi},
	}
	for _, tc := range cases {
		assert.InDelta(t, math.Log(tc.vol), logMass(t, tc.m), 1e-12, tc.name)
	}
}

// TestHausdorffLogMass_ComplexSphere: S_ℂ^n is the real sphere of
// dimension 2n+1, so |S_ℂ¹| = |S³| = 2π².
func TestHausdorffLogMass_ComplexSphere(t *testing.T) {
	got := logMass(t, manifold.SphereF(1, manifold.Complex))
	assert.InDelta(t, math.Log(2*math.Pi*math.Pi), got, 1e-12)

	// Quaternionic S⁰ is the real S³.
	got = logMass(t, manifold.SphereF(0, manifold.Quaternion))
	assert.InDelta(t, math.Log(2*math.Pi*math.Pi), got, 1e-12)
}

// TestHausdorffLogMass_StiefelRecursion checks the defining telescoping
// identity vol St(n,k) = vol S^{n−1} · vol St(n−1,k−1) over every field.
func TestHausdorffLogMass_StiefelRecursion(t *testing.T) {
	fields := []manifold.Field{manifold.Real, manifold.Complex, manifold.Quaternion}
	for _, f := range fields {
		for _, nk := range [][2]int{{3, 1}, {4, 2}, {5, 3}, {6, 6}} {
			n, k := nk[0], nk[1]
			lhs := logMass(t, manifold.StiefelF(n, k, f))
			rhs := logMass(t, manifold.SphereF(n-1, f)) +
				logMass(t, manifold.StiefelF(n-1, k-1, f))
			assert.InDelta(t, rhs, lhs, 1e-9, "field=%v St(%d,%d)", f, n, k)
		}
	}
}

// TestHausdorffLogMass_QuotientIdentities: the Grassmann, projective and
// rotation masses are quotients of Stiefel/sphere masses.
func TestHausdorffLogMass_QuotientIdentities(t *testing.T) {
	// Gr(n,k) = St(n,k) / St(k,k).
	got := logMass(t, manifold.Grassmann(5, 2))
	want := logMass(t, manifold.Stiefel(5, 2)) - logMass(t, manifold.Stiefel(2, 2))
	assert.InDelta(t, want, got, 1e-12)

	// SO(n) is half of O(n) = St(n,n).
	got = logMass(t, manifold.Rotations(4))
	want = logMass(t, manifold.Stiefel(4, 4)) - math.Ln2
	assert.InDelta(t, want, got, 1e-12)

	// 𝔽P(n) = S_𝔽^n / S_𝔽^0.
	got = logMass(t, manifold.ProjectiveSpace(2, manifold.Complex))
	want = logMass(t, manifold.SphereF(2, manifold.Complex)) -
		logMass(t, manifold.SphereF(0, manifold.Complex))
	assert.InDelta(t, want, got, 1e-12)
}

// TestHausdorffLogMass_Degenerate: out-of-range frames surface as NaN,
// the empty frame has unit mass.
func TestHausdorffLogMass_Degenerate(t *testing.T) {
	assert.True(t, math.IsNaN(logMass(t, manifold.Stiefel(2, 3))), "k > n")
	assert.Equal(t, 0.0, logMass(t, manifold.Stiefel(4, 0)), "St(n,0)")
}

// TestHausdorffLogDensity is the base-measure contract: identically zero.
func TestHausdorffLogDensity(t *testing.T) {
	h := measure.NewHausdorff(manifold.Sphere(2))
	ld, err := h.LogDensity(mat.NewDense(3, 1, []float64{0, 0, 1}))
	assert.NoError(t, err)
	assert.Equal(t, 0.0, ld)
}

// TestHausdorffSample_Membership: every draw lands on its manifold.
func TestHausdorffSample_Membership(t *testing.T) {
	cases := []manifold.Manifold{
		manifold.Sphere(2),
		manifold.SphereF(1, manifold.Complex),
		manifold.Stiefel(5, 2),
		manifold.Grassmann(4, 3),
		manifold.Rotations(3),
		manifold.Circle(),
		manifold.CircleF(manifold.Complex),
	}
	src := measure.NewSource(42)
	for _, m := range cases {
		h := measure.NewHausdorff(m)
		for i := 0; i < 25; i++ {
			x, err := h.Sample(src)
			assert.NoError(t, err)
			assert.True(t, m.IsPoint(x, 1e-9), "kind=%v draw %d", m.Kind, i)
		}
	}
}

// TestHausdorffSample_RotationsDeterminant: every SO(n) draw has det +1,
// including the det-flip repair path.
func TestHausdorffSample_RotationsDeterminant(t *testing.T) {
	h := measure.NewHausdorff(manifold.Rotations(4))
	src := measure.NewSource(3)
	for i := 0; i < 100; i++ {
		x, err := h.Sample(src)
		assert.NoError(t, err)
		assert.InDelta(t, 1.0, mat.Det(x), 1e-9, "draw %d", i)
	}
}

// TestHausdorffSample_Deterministic: equal seeds, equal streams.
func TestHausdorffSample_Deterministic(t *testing.T) {
	h := measure.NewHausdorff(manifold.Stiefel(4, 2))

	a, err := h.Sample(measure.NewSource(7))
	assert.NoError(t, err)
	b, err := h.Sample(measure.NewSource(7))
	assert.NoError(t, err)
	assert.True(t, mat.Equal(a, b))

	c, err := h.Sample(measure.NewSource(8))
	assert.NoError(t, err)
	assert.False(t, mat.Equal(a, c))
}

// TestHausdorffSample_UnsupportedField: complex matrix points have a
// mass but no representation to sample.
func TestHausdorffSample_UnsupportedField(t *testing.T) {
	h := measure.NewHausdorff(manifold.StiefelF(4, 2, manifold.Complex))
	_, err := h.Sample(measure.NewSource(1))
	assert.ErrorIs(t, err, measure.ErrUnsupportedField)
}

// TestDeriveSource: derived streams are deterministic per stream id and
// distinct across ids.
func TestDeriveSource(t *testing.T) {
	a := measure.DeriveSource(measure.NewSource(5), 1)
	b := measure.DeriveSource(measure.NewSource(5), 1)
	c := measure.DeriveSource(measure.NewSource(5), 2)

	va, vb, vc := a.Uint64(), b.Uint64(), c.Uint64()
	assert.Equal(t, va, vb)
	assert.NotEqual(t, va, vc)
}
