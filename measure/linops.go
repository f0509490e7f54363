// Package measure - small dense linear-algebra helpers shared by the
// measure implementations. Anything requiring a factorization goes
// through gonum/mat; these are the few primitives the density formulas
// need in forms gonum does not expose directly (notably the explicit
// forward substitution mandated for the Cholesky-form ACG).
package measure

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// frobDot returns the Frobenius inner product Σ_ij a_ij·b_ij, which is
// tr(AᵀB) for equal-shaped matrices and the plain dot product for
// column vectors.
func frobDot(a, b *mat.Dense) float64 {
	r, c := a.Dims()
	s := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			s += a.At(i, j) * b.At(i, j)
		}
	}
	return s
}

// forwardSolveInto solves L·Z = X for Z by forward substitution, where L
// is lower triangular n×n and X is n×k. Never forms L⁻¹. A zero pivot
// produces ±Inf/NaN entries per IEEE semantics (lightweight-constructor
// policy: invalid parameters surface downstream, they do not raise).
//
// Complexity: O(n²k).
func forwardSolveInto(z *mat.Dense, l *mat.TriDense, x *mat.Dense) {
	n, k := x.Dims()
	for j := 0; j < k; j++ {
		for i := 0; i < n; i++ {
			s := x.At(i, j)
			for t := 0; t < i; t++ {
				s -= l.At(i, t) * z.At(t, j)
			}
			z.Set(i, j, s/l.At(i, i))
		}
	}
}

// logDetLowerTri returns Σ log L_ii, the log-determinant of a lower
// triangular matrix with positive diagonal; NaN if any pivot is ≤ 0.
func logDetLowerTri(l *mat.TriDense) float64 {
	n, _ := l.Dims()
	s := 0.0
	for i := 0; i < n; i++ {
		s += math.Log(l.At(i, i))
	}
	return s
}

// logDetGram returns logdet(XᵀX) for an n×k matrix X via a Cholesky
// factorization of the Gram matrix; NaN when the Gram matrix is not
// positive definite (rank-deficient X).
func logDetGram(x *mat.Dense) float64 {
	_, k := x.Dims()
	var g mat.Dense
	g.Mul(x.T(), x)
	sym := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			sym.SetSym(i, j, g.At(i, j))
		}
	}
	var ch mat.Cholesky
	if !ch.Factorize(sym) {
		return math.NaN()
	}
	return ch.LogDet()
}

// householderReflectInto overwrites the column vector y with H·y, where
// H = I − 2vvᵀ/(vᵀv) is the Householder reflection mapping e₁ onto the
// unit column mu. When mu ≈ e₁ the reflection degenerates to the
// identity and y is left untouched.
//
// Complexity: O(p).
func householderReflectInto(y, mu *mat.Dense) {
	p, _ := mu.Dims()
	v := make([]float64, p)
	vv := 0.0
	for i := 0; i < p; i++ {
		e := 0.0
		if i == 0 {
			e = 1
		}
		v[i] = e - mu.At(i, 0)
		vv += v[i] * v[i]
	}
	if vv < 1e-30 {
		return
	}
	vy := 0.0
	for i := 0; i < p; i++ {
		vy += v[i] * y.At(i, 0)
	}
	s := 2 * vy / vv
	for i := 0; i < p; i++ {
		y.Set(i, 0, y.At(i, 0)-s*v[i])
	}
}

// nullBasisInto writes into dst an orthonormal basis (n×w, w = n−j) of
// the orthogonal complement of the first j columns of x, taken from the
// trailing columns of the full Q factor of a QR factorization.
//
// Complexity: O(n³).
func nullBasisInto(dst *mat.Dense, x *mat.Dense, j int) {
	n, _ := x.Dims()
	var qr mat.QR
	qr.Factorize(x.Slice(0, n, 0, j).(*mat.Dense))
	var q mat.Dense
	qr.QTo(&q)
	dst.Copy(q.Slice(0, n, j, n))
}
