// Package measure - Angular Central Gaussian distribution.
//
// The ACG on a projective-type manifold is the push-forward of a centered
// Gaussian N(0, Σ) through the projection onto the manifold; its density
// relative to the normalized Hausdorff measure is proportional to
//
//	det(Σ)^{-k/2} · (xᴴ Σ⁻¹ x)^{-nd/2}
//
// for an (n,k)-shaped point over a field of real dimension d. Two
// equivalent parameterizations are carried: the precision matrix P = Σ⁻¹
// and the lower Cholesky factor L of Σ. Equivalence invariant:
// logdet(P) = −2·logdet(L), so both forms produce identical log-density
// values at every point.
package measure

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/tkraev/mfdmeasure/manifold"
)

// ACGParam is the closed sum of ACG parameterizations.
type ACGParam interface{ isACGParam() }

// ACGPrecision parameterizes by the precision matrix P = Σ⁻¹. P must be
// symmetric positive definite; this is deliberately unchecked — an
// indefinite P yields NaN densities downstream, never a construction
// error. This form carries no sampler (no derivation of a direct draw
// from P alone is confirmed; use the Cholesky form to sample).
type ACGPrecision struct {
	P *mat.SymDense
}

func (ACGPrecision) isACGParam() {}

// ACGCholesky parameterizes by the lower Cholesky factor L of Σ (not of
// Σ⁻¹). Densities use a forward-substitution triangular solve, never an
// explicit inverse; sampling pushes L·Z through the manifold projection.
type ACGCholesky struct {
	L *mat.TriDense
}

func (ACGCholesky) isACGParam() {}

// ACG is the Angular Central Gaussian on Sphere, ProjectiveSpace,
// Stiefel, Grassmann or Rotations manifolds (real field; vector kinds
// over other fields are served through their real embedding dimension).
// Base measure: the normalized Hausdorff measure on the same manifold.
type ACG struct {
	M     manifold.Manifold
	Param ACGParam
}

// NewACG returns the ACG with the given parameterization. No validation
// (lightweight-constructor policy).
func NewACG(m manifold.Manifold, p ACGParam) ACG { return ACG{M: m, Param: p} }

// Manifold returns the sample space descriptor.
func (a ACG) Manifold() manifold.Manifold { return a.M }

// LogDensity evaluates the ACG log-density at x relative to the
// normalized Hausdorff base measure. In field terms the density is
// d/2·(k·logdet P − n·logq); everything here lives in the real embedding
// (parameters included), where the field factors cancel into plain
// embedding dimensions:
//
//	precision form:  (k·logdet P − p·logq) / 2,   p = embedding rows,
//	                 logq = log(xᵀPx) for k = 1, logdet(XᵀPX) otherwise
//	cholesky form:   same with P = I on Z = L⁻¹X, corrected by −k·logdet L
//
// The k = 1 branch avoids a needless 1×1 determinant. An indefinite P or
// a singular L yields NaN, not an error.
func (a ACG) LogDensity(x *mat.Dense) (float64, error) {
	if err := a.check(); err != nil {
		return 0, err
	}
	r, c := a.M.Shape()
	fp, fk := float64(r), float64(c)

	switch p := a.Param.(type) {
	case ACGPrecision:
		var ch mat.Cholesky
		if !ch.Factorize(p.P) {
			return math.NaN(), nil
		}
		logDetP := ch.LogDet()
		return (fk*logDetP - fp*logQuad(p.P, x, c)) / 2, nil

	case ACGCholesky:
		z := mat.NewDense(r, c, nil)
		forwardSolveInto(z, p.L, x)
		return -fp/2*logQuad(nil, z, c) - fk*logDetLowerTri(p.L), nil

	default:
		return 0, ErrUnsupportedParam
	}
}

// Sample draws an exact ACG point into a fresh buffer. See SampleInto.
func (a ACG) Sample(src rand.Source) (*mat.Dense, error) {
	dst := a.M.NewPoint()
	if err := a.SampleInto(src, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// SampleInto draws an exact ACG point into dst: a standard-normal matrix
// of the ambient shape is left-multiplied by L and retracted onto the
// manifold (normalization for vector points, the polar factor for matrix
// points). Only the Cholesky form samples; the precision form returns
// ErrNoSampler — an intentional asymmetry of the design, not an
// oversight (see ACGPrecision).
func (a ACG) SampleInto(src rand.Source, dst *mat.Dense) error {
	if err := a.check(); err != nil {
		return err
	}
	p, ok := a.Param.(ACGCholesky)
	if !ok {
		return ErrNoSampler
	}

	rng := rand.New(src)
	r, c := a.M.Shape()
	z := mat.NewDense(r, c, nil)
	fillNormal(rng, z)

	var y mat.Dense
	y.Mul(p.L, z)
	a.M.ProjectInto(dst, &y)
	return nil
}

// check gates the manifold/field combinations the ACG is defined for.
func (a ACG) check() error {
	switch a.M.Kind {
	case manifold.KindSphere, manifold.KindProjectiveSpace:
		return nil
	case manifold.KindStiefel, manifold.KindGrassmann, manifold.KindRotations:
		if a.M.Field != manifold.Real {
			return ErrUnsupportedField
		}
		return nil
	default:
		return ErrUnsupportedManifold
	}
}

// logQuad returns log(xᵀPx) for column vectors (k = 1) and
// logdet(XᵀPX) for matrix points; p == nil means P = I.
func logQuad(p *mat.SymDense, x *mat.Dense, k int) float64 {
	if p == nil {
		if k == 1 {
			n := mat.Norm(x, 2)
			return 2 * math.Log(n)
		}
		return logDetGram(x)
	}

	var px mat.Dense
	px.Mul(p, x)
	if k == 1 {
		return math.Log(frobDot(x, &px))
	}

	var q mat.Dense
	q.Mul(x.T(), &px)
	kk, _ := q.Dims()
	sym := mat.NewSymDense(kk, nil)
	for i := 0; i < kk; i++ {
		for j := i; j < kk; j++ {
			sym.SetSym(i, j, (q.At(i, j)+q.At(j, i))/2)
		}
	}
	var ch mat.Cholesky
	if !ch.Factorize(sym) {
		return math.NaN()
	}
	return ch.LogDet()
}
