package measure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/tkraev/mfdmeasure/manifold"
	"github.com/tkraev/mfdmeasure/measure"
)

// splitCovariance factorizes an SPD Σ into the two equivalent ACG
// parameter records: the precision P = Σ⁻¹ and the lower Cholesky L.
func splitCovariance(t *testing.T, sigma *mat.SymDense) (measure.ACGPrecision, measure.ACGCholesky) {
	t.Helper()
	var ch mat.Cholesky
	assert.True(t, ch.Factorize(sigma))

	n := sigma.SymmetricDim()
	l := mat.NewTriDense(n, mat.Lower, nil)
	ch.LTo(l)

	p := mat.NewSymDense(n, nil)
	assert.NoError(t, ch.InverseTo(p))
	return measure.ACGPrecision{P: p}, measure.ACGCholesky{L: l}
}

// TestACG_IdentityIsUniform: P = I makes the quadratic form 1 on unit
// vectors and the determinant term 0, so the log-density vanishes
// everywhere.
func TestACG_IdentityIsUniform(t *testing.T) {
	m := manifold.Sphere(2)
	eye := mat.NewSymDense(3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	a := measure.NewACG(m, measure.ACGPrecision{P: eye})

	src := measure.NewSource(4)
	h := measure.NewHausdorff(m)
	for i := 0; i < 20; i++ {
		x, err := h.Sample(src)
		assert.NoError(t, err)
		ld, err := a.LogDensity(x)
		assert.NoError(t, err)
		assert.InDelta(t, 0.0, ld, 1e-12, "draw %d", i)
	}
}

// TestACG_ParamEquivalence_Vector: the precision and Cholesky records of
// one Σ give identical densities at every point of the sphere.
func TestACG_ParamEquivalence_Vector(t *testing.T) {
	sigma := mat.NewSymDense(3, []float64{
		4, 1, 0.5,
		1, 3, -0.25,
		0.5, -0.25, 2,
	})
	prec, chol := splitCovariance(t, sigma)

	m := manifold.Sphere(2)
	ap := measure.NewACG(m, prec)
	al := measure.NewACG(m, chol)

	src := measure.NewSource(15)
	h := measure.NewHausdorff(m)
	for i := 0; i < 50; i++ {
		x, err := h.Sample(src)
		assert.NoError(t, err)

		lp, err := ap.LogDensity(x)
		assert.NoError(t, err)
		ll, err := al.LogDensity(x)
		assert.NoError(t, err)
		assert.InDelta(t, lp, ll, 1e-9, "draw %d", i)
	}
}

// TestACG_ParamEquivalence_Matrix: the same equivalence on Stiefel
// points, where the quadratic form is a k×k determinant.
func TestACG_ParamEquivalence_Matrix(t *testing.T) {
	sigma := mat.NewSymDense(4, []float64{
		3, 0.5, 0, 0.2,
		0.5, 2, 0.1, 0,
		0, 0.1, 5, -0.3,
		0.2, 0, -0.3, 1,
	})
	prec, chol := splitCovariance(t, sigma)

	m := manifold.Stiefel(4, 2)
	ap := measure.NewACG(m, prec)
	al := measure.NewACG(m, chol)

	src := measure.NewSource(23)
	h := measure.NewHausdorff(m)
	for i := 0; i < 30; i++ {
		x, err := h.Sample(src)
		assert.NoError(t, err)

		lp, err := ap.LogDensity(x)
		assert.NoError(t, err)
		ll, err := al.LogDensity(x)
		assert.NoError(t, err)
		assert.InDelta(t, lp, ll, 1e-8, "draw %d", i)
	}
}

// TestACG_AntipodalSymmetry: the ACG density is even, as a projective
// push-forward must be.
func TestACG_AntipodalSymmetry(t *testing.T) {
	sigma := mat.NewSymDense(3, []float64{2, 0.4, 0, 0.4, 1, 0.1, 0, 0.1, 3})
	prec, _ := splitCovariance(t, sigma)
	a := measure.NewACG(manifold.ProjectiveSpace(2, manifold.Real), prec)

	x := manifold.Sphere(2).Project(mat.NewDense(3, 1, []float64{1, -2, 0.5}))
	var neg mat.Dense
	neg.Scale(-1, x)

	lp, err := a.LogDensity(x)
	assert.NoError(t, err)
	ln, err := a.LogDensity(&neg)
	assert.NoError(t, err)
	assert.InDelta(t, lp, ln, 1e-12)
}

// TestACG_IndefinitePrecisionIsNaN: an indefinite P fails the Cholesky
// factorization and yields NaN, not an error.
func TestACG_IndefinitePrecisionIsNaN(t *testing.T) {
	bad := mat.NewSymDense(2, []float64{1, 2, 2, 1})
	a := measure.NewACG(manifold.Sphere(1), measure.ACGPrecision{P: bad})

	ld, err := a.LogDensity(mat.NewDense(2, 1, []float64{1, 0}))
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(ld))
}

// TestACG_Sample_Membership: Cholesky-form draws land on the manifold,
// and equal seeds reproduce the stream.
func TestACG_Sample_Membership(t *testing.T) {
	l := mat.NewTriDense(3, mat.Lower, []float64{
		2, 0, 0,
		0.5, 1, 0,
		0, 0.25, 1,
	})
	m := manifold.Sphere(2)
	a := measure.NewACG(m, measure.ACGCholesky{L: l})

	src := measure.NewSource(31)
	for i := 0; i < 50; i++ {
		x, err := a.Sample(src)
		assert.NoError(t, err)
		assert.True(t, m.IsPoint(x, 1e-9), "draw %d", i)
	}

	x, err := a.Sample(measure.NewSource(6))
	assert.NoError(t, err)
	y, err := a.Sample(measure.NewSource(6))
	assert.NoError(t, err)
	assert.True(t, mat.Equal(x, y))
}

// TestACG_Sample_Concentration: with Σ = diag(100,1,1) the mass piles up
// near ±e₁; a Monte Carlo average of x₁² must reflect that.
func TestACG_Sample_Concentration(t *testing.T) {
	l := mat.NewTriDense(3, mat.Lower, []float64{
		10, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	a := measure.NewACG(manifold.Sphere(2), measure.ACGCholesky{L: l})

	src := measure.NewSource(77)
	const draws = 2000
	sq := make([]float64, draws)
	for i := range sq {
		x, err := a.Sample(src)
		assert.NoError(t, err)
		sq[i] = x.At(0, 0) * x.At(0, 0)
	}
	assert.Greater(t, stat.Mean(sq, nil), 0.8, "mean x₁² under a 100:1 covariance")
}

// TestACG_Sample_MatrixPoint: Cholesky-form draws on Stiefel are
// orthonormal frames (polar retraction of L·Z).
func TestACG_Sample_MatrixPoint(t *testing.T) {
	l := mat.NewTriDense(4, mat.Lower, []float64{
		2, 0, 0, 0,
		0.1, 1, 0, 0,
		0, 0, 1, 0,
		0.3, 0, 0.2, 1,
	})
	m := manifold.Stiefel(4, 2)
	a := measure.NewACG(m, measure.ACGCholesky{L: l})

	src := measure.NewSource(19)
	for i := 0; i < 20; i++ {
		x, err := a.Sample(src)
		assert.NoError(t, err)
		assert.True(t, m.IsPoint(x, 1e-9), "draw %d", i)
	}
}

// TestACG_PrecisionHasNoSampler: the intentional asymmetry of the two
// parameter records.
func TestACG_PrecisionHasNoSampler(t *testing.T) {
	eye := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	a := measure.NewACG(manifold.Sphere(1), measure.ACGPrecision{P: eye})

	_, err := a.Sample(measure.NewSource(1))
	assert.ErrorIs(t, err, measure.ErrNoSampler)
}

// TestACG_Gating: the circle is out, and matrix kinds demand the real
// field.
func TestACG_Gating(t *testing.T) {
	eye := mat.NewSymDense(1, []float64{1})
	a := measure.NewACG(manifold.Circle(), measure.ACGPrecision{P: eye})
	_, err := a.LogDensity(mat.NewDense(1, 1, []float64{0}))
	assert.ErrorIs(t, err, measure.ErrUnsupportedManifold)

	a = measure.NewACG(manifold.StiefelF(3, 2, manifold.Complex), measure.ACGPrecision{P: eye})
	_, err = a.LogDensity(mat.NewDense(3, 2, nil))
	assert.ErrorIs(t, err, measure.ErrUnsupportedField)
}
