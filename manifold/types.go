// Package manifold - descriptor types and constructors.
//
// This file declares the Field and Kind enums, the Manifold value type and
// its constructors. Everything here is O(1) and allocation-free; the only
// method touching a matrix is NewPoint.
package manifold

// Field tags the number system underlying a manifold's linear structure.
//
// The field determines the real dimension d(𝔽) of one coordinate and, with
// it, the real embedding dimension of vector manifolds: a point of
// Sphere(n,𝔽) occupies d(𝔽)·(n+1) real coordinates.
type Field int

const (
	// Real numbers, d = 1.
	Real Field = iota

	// Complex numbers, d = 2.
	Complex

	// Quaternion numbers, d = 4.
	Quaternion
)

// RealDim returns the real dimension d(𝔽) ∈ {1, 2, 4} of one coordinate.
func (f Field) RealDim() int {
	switch f {
	case Complex:
		return 2
	case Quaternion:
		return 4
	default:
		return 1
	}
}

// String implements fmt.Stringer for diagnostics.
func (f Field) String() string {
	switch f {
	case Complex:
		return "ℂ"
	case Quaternion:
		return "ℍ"
	default:
		return "ℝ"
	}
}

// Kind enumerates the supported manifold families. The set is closed:
// every operation in this module switches exhaustively over it.
type Kind int

const (
	// KindSphere is the unit sphere S^n ⊂ 𝔽^{n+1}.
	KindSphere Kind = iota

	// KindProjectiveSpace is 𝔽P^n, the sphere modulo scalar phase;
	// points are represented by a unit vector of the equivalence class.
	KindProjectiveSpace

	// KindStiefel is St(n,k), the n×k matrices with orthonormal columns.
	KindStiefel

	// KindGrassmann is Gr(n,k), k-planes in 𝔽^n; points are Stiefel
	// representatives of their span.
	KindGrassmann

	// KindRotations is SO(n), the n×n special orthogonal group.
	KindRotations

	// KindCircle is the unit circle; real representation is a bare angle
	// in [−π,π), complex representation a unit vector in ℝ².
	KindCircle
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "Sphere"
	case KindProjectiveSpace:
		return "ProjectiveSpace"
	case KindStiefel:
		return "Stiefel"
	case KindGrassmann:
		return "Grassmann"
	case KindRotations:
		return "Rotations"
	case KindCircle:
		return "Circle"
	default:
		return "Unknown"
	}
}

// Manifold is an immutable descriptor of one sample space. It is a plain
// comparable value; constructing one performs no validation and no
// allocation (lightweight-constructor policy — invalid dimensions surface
// as NaN masses or failed membership tests downstream, never as panics).
//
// Interpretation of N and K per kind:
//   - Sphere(n,𝔽), ProjectiveSpace(n,𝔽): N = n (intrinsic sphere index).
//   - Stiefel(n,k,𝔽), Grassmann(n,k,𝔽): N = n rows, K = k columns.
//   - Rotations(n): N = n, K = n.
//   - Circle: N, K unused.
type Manifold struct {
	Kind  Kind
	N     int
	K     int
	Field Field
}

// Sphere returns the descriptor of the real unit sphere S^n ⊂ ℝ^{n+1}.
func Sphere(n int) Manifold { return Manifold{Kind: KindSphere, N: n, Field: Real} }

// SphereF returns the descriptor of S^n over the field f; points live in
// the real embedding ℝ^{d(f)·(n+1)}.
func SphereF(n int, f Field) Manifold { return Manifold{Kind: KindSphere, N: n, Field: f} }

// ProjectiveSpace returns the descriptor of 𝔽P^n over the field f.
func ProjectiveSpace(n int, f Field) Manifold {
	return Manifold{Kind: KindProjectiveSpace, N: n, Field: f}
}

// Stiefel returns the descriptor of the real Stiefel manifold St(n,k).
func Stiefel(n, k int) Manifold { return Manifold{Kind: KindStiefel, N: n, K: k, Field: Real} }

// StiefelF returns the descriptor of St(n,k) over the field f. Non-real
// Stiefel manifolds have closed-form volumes but no point representation
// in this module; point-level operations reject them.
func StiefelF(n, k int, f Field) Manifold {
	return Manifold{Kind: KindStiefel, N: n, K: k, Field: f}
}

// Grassmann returns the descriptor of the real Grassmann manifold Gr(n,k).
func Grassmann(n, k int) Manifold { return Manifold{Kind: KindGrassmann, N: n, K: k, Field: Real} }

// GrassmannF returns the descriptor of Gr(n,k) over the field f; the same
// representation caveat as StiefelF applies.
func GrassmannF(n, k int, f Field) Manifold {
	return Manifold{Kind: KindGrassmann, N: n, K: k, Field: f}
}

// Rotations returns the descriptor of the rotation group SO(n).
func Rotations(n int) Manifold { return Manifold{Kind: KindRotations, N: n, K: n, Field: Real} }

// Circle returns the descriptor of the real circle (angle representation).
func Circle() Manifold { return Manifold{Kind: KindCircle, Field: Real} }

// CircleF returns the circle over the field f; the complex circle is
// represented by a unit vector in ℝ².
func CircleF(f Field) Manifold { return Manifold{Kind: KindCircle, Field: f} }

// Shape returns the (rows, cols) of the real embedded representation of a
// point of m. Vector manifolds are columns (cols == 1).
func (m Manifold) Shape() (rows, cols int) {
	switch m.Kind {
	case KindSphere, KindProjectiveSpace:
		return m.Field.RealDim() * (m.N + 1), 1
	case KindStiefel, KindGrassmann:
		return m.N, m.K
	case KindRotations:
		return m.N, m.N
	case KindCircle:
		if m.Field == Real {
			return 1, 1
		}
		return 2, 1
	default:
		return 0, 0
	}
}

// EmbeddingDim returns rows·cols of the embedded representation.
func (m Manifold) EmbeddingDim() int {
	r, c := m.Shape()
	return r * c
}

// IsVectorPoint reports whether points of m are column vectors (cols == 1).
func (m Manifold) IsVectorPoint() bool {
	_, c := m.Shape()
	return c == 1
}

// IsGroup reports whether m is one of the group manifolds (the kinds Haar
// measures are defined on).
func (m Manifold) IsGroup() bool {
	return m.Kind == KindRotations || m.Kind == KindCircle
}
