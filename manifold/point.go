// Package manifold - point-level predicates and retractions.
//
// Points are caller-owned real *mat.Dense buffers whose shape matches
// Manifold.Shape(). Membership is a floating-point predicate; Project is
// the metric retraction onto the manifold (normalization for vector
// points, the orthogonal polar factor for matrix points).
//
// Contract notes:
//   - Shape mismatches are programmer errors and panic inside gonum, the
//     same way mat itself treats them.
//   - Matrix-point kinds (Stiefel, Grassmann, Rotations) are represented
//     for the Real field only; IsPoint on a non-real matrix manifold is
//     always false.
package manifold

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultTol is the membership tolerance used throughout the module's
// tests and samplers. Loose enough for accumulated rounding in QR/SVD of
// moderate dimensions, tight enough to reject off-manifold points.
const DefaultTol = 1e-9

// NewPoint allocates a zero buffer of the embedded representation shape.
func (m Manifold) NewPoint() *mat.Dense {
	r, c := m.Shape()
	return mat.NewDense(r, c, nil)
}

// WrapAngle maps θ into the canonical circle representation [−π, π).
func WrapAngle(theta float64) float64 {
	w := theta - 2*math.Pi*math.Floor((theta+math.Pi)/(2*math.Pi))
	if w >= math.Pi { // guard the half-open boundary against rounding
		w = -math.Pi
	}
	return w
}

// IsPoint reports whether x lies on m up to the absolute tolerance tol:
//   - vector manifolds: |‖x‖ − 1| ≤ tol
//   - Stiefel/Grassmann: max|XᵀX − I| ≤ tol
//   - Rotations: orthonormal columns and det(X) > 0
//   - real Circle: the single entry is an angle in [−π, π)
//
// Complexity: O(rc) for vector points, O(nk²) for matrix points.
func (m Manifold) IsPoint(x *mat.Dense, tol float64) bool {
	r, c := m.Shape()
	xr, xc := x.Dims()
	if xr != r || xc != c {
		return false
	}

	switch m.Kind {
	case KindSphere, KindProjectiveSpace:
		return math.Abs(colNorm(x)-1) <= tol

	case KindStiefel, KindGrassmann:
		if m.Field != Real {
			return false
		}
		return orthonormalColumns(x, tol)

	case KindRotations:
		if !orthonormalColumns(x, tol) {
			return false
		}
		return mat.Det(x) > 0

	case KindCircle:
		if m.Field != Real {
			return math.Abs(colNorm(x)-1) <= tol
		}
		theta := x.At(0, 0)
		return theta >= -math.Pi && theta < math.Pi

	default:
		return false
	}
}

// Project returns the retraction of x onto m as a fresh buffer.
// See ProjectInto for semantics.
func (m Manifold) Project(x *mat.Dense) *mat.Dense {
	dst := m.NewPoint()
	m.ProjectInto(dst, x)
	return dst
}

// ProjectInto writes the retraction of x onto m into dst (dst and x may
// alias):
//   - vector manifolds: x / ‖x‖
//   - Stiefel/Grassmann/Rotations: the orthogonal polar factor U·Vᵀ of the
//     thin SVD X = U·Σ·Vᵀ; for Rotations a reflection is corrected by
//     negating the last column of U so that det > 0
//   - real Circle: angle wrap into [−π, π)
//
// Degenerate inputs (zero vector, rank-deficient matrix) produce NaN
// coordinates per IEEE semantics; no error is raised.
//
// Complexity: O(rc) for vector points, O(nk²) for the matrix SVD.
func (m Manifold) ProjectInto(dst, x *mat.Dense) {
	switch m.Kind {
	case KindSphere, KindProjectiveSpace:
		dst.Scale(1/colNorm(x), x)

	case KindStiefel, KindGrassmann, KindRotations:
		polarInto(dst, x, m.Kind == KindRotations)

	case KindCircle:
		if m.Field != Real {
			dst.Scale(1/colNorm(x), x)
			return
		}
		dst.Set(0, 0, WrapAngle(x.At(0, 0)))
	}
}

// polarInto writes the orthogonal polar factor of x into dst; when
// special is true the factor is pushed into SO(n) by flipping the column
// of U attached to the smallest singular value.
func polarInto(dst, x *mat.Dense, special bool) {
	var svd mat.SVD
	if !svd.Factorize(x, mat.SVDThin) {
		r, c := x.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				dst.Set(i, j, math.NaN())
			}
		}
		return
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	if special {
		// det(U·Vᵀ) = sign(det X); a negative sign means the nearest
		// orthogonal matrix is a reflection.
		var p mat.Dense
		p.Mul(&u, v.T())
		if mat.Det(&p) < 0 {
			rows, cols := u.Dims()
			for i := 0; i < rows; i++ {
				u.Set(i, cols-1, -u.At(i, cols-1))
			}
		}
	}
	dst.Mul(&u, v.T())
}

// orthonormalColumns checks max|XᵀX − I| ≤ tol.
func orthonormalColumns(x *mat.Dense, tol float64) bool {
	_, k := x.Dims()
	var g mat.Dense
	g.Mul(x.T(), x)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(g.At(i, j)-want) > tol {
				return false
			}
		}
	}
	return true
}

// colNorm returns the Frobenius norm of x (the Euclidean norm for column
// vectors).
func colNorm(x *mat.Dense) float64 {
	return mat.Norm(x, 2)
}
