// Package manifold defines immutable value descriptors for the sample
// spaces served by the measure package: spheres, projective spaces,
// Stiefel and Grassmann manifolds, rotation groups and the circle, over
// the real, complex and quaternionic number systems.
//
// 🚀 What is a descriptor?
//
//	A Manifold is a small value — kind, ambient dimensions, field — that
//	pins down the embedded representation of a "point":
//	  • Sphere(n,𝔽), ProjectiveSpace(n,𝔽) — unit column vector of
//	    d(𝔽)·(n+1) real coordinates, d(𝔽) ∈ {1,2,4}
//	  • Stiefel(n,k), Grassmann(n,k)      — n×k matrix, orthonormal columns
//	  • Rotations(n)                      — n×n special orthogonal matrix
//	  • Circle — 1×1 angle in [−π,π) (real) or 2×1 unit vector (complex)
//
// ✨ Design rules:
//
//   - Descriptors are plain comparable values: construct, copy, discard.
//     No hidden state, no validation at construction.
//   - Points are always real *mat.Dense buffers owned by the caller.
//     Complex and quaternionic vector manifolds work through their real
//     embedding; their matrix counterparts carry closed-form volumes but
//     no point representation here.
//   - IsPoint and Project are floating-point operations: membership is
//     always "up to tolerance".
//
// ⚙️ Usage:
//
//	import "github.com/tkraev/mfdmeasure/manifold"
//
//	s2 := manifold.Sphere(2)        // S² embedded in ℝ³
//	st := manifold.Stiefel(5, 2)    // 5×2 orthonormal frames
//	r, c := st.Shape()              // 5, 2
//	ok := s2.IsPoint(x, manifold.DefaultTol)
//
// See measure/doc.go for the distributions defined over these spaces.
package manifold
