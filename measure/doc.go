// Package measure implements probability measures on Riemannian manifolds:
// primitive volume measures with closed-form masses and exact samplers,
// a normalization combinator, and the parameterized Angular Central
// Gaussian, Bingham and von Mises–Fisher families.
//
// 🚀 What's inside?
//
//	• Hausdorff — the manifold's volume/area measure: log-mass in closed
//	  form per family (Chikuse 2003), exact uniform sampling (normalized
//	  Gaussians, sign-corrected QR, determinant-flipped rotations)
//	• Haar — left/right-invariant measure on the group manifolds,
//	  delegating to Hausdorff (they coincide up to normalization on the
//	  compact groups served here)
//	• Normalize — wraps any measure with a mass into its probability
//	  counterpart; idempotent, lazy, sampling passes through
//	• ACG — Angular Central Gaussian in precision (Σ⁻¹) or Cholesky (L)
//	  form; sampling via Gaussian push-forward and polar projection
//	• Bingham — quadratic exponential family; log-density only (no known
//	  general sampler — an open gap, not a hidden one)
//	• VMF — von Mises–Fisher / Langevin: Best–Fisher (1979) on the
//	  circle, Wood (1994) on spheres, Hoff (2009) on Stiefel manifolds
//
// ✨ Contract:
//
//   - Lightweight constructors: building a measure never validates
//     parameters and never computes a normalizer. Invalid parameters
//     surface as NaN/Inf downstream, per IEEE semantics.
//   - Numeric degeneracy (κ=0, zero singular values, singular Grams) is
//     special-cased to the exact limiting value, never a 0/0 NaN.
//   - Evaluating a density at an off-manifold point is undefined behavior
//     by contract, not a checked error.
//   - Every sampler consumes a caller-supplied rand.Source; a fixed seed
//     reproduces the draw sequence exactly. Samplers running in parallel
//     must each own an independent Source (see NewSource/DeriveSource).
//   - Rejection loops are unbounded by contract and terminate almost
//     surely; SampleCapped variants surface an iteration budget as
//     ErrMaxIterations for callers that cannot tolerate open loops.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/tkraev/mfdmeasure/manifold"
//	  "github.com/tkraev/mfdmeasure/measure"
//	)
//
//	sphere := manifold.Sphere(2)
//	base := measure.Normalize(measure.NewHausdorff(sphere))
//	x, _ := base.Sample(measure.NewSource(7))   // uniform point on S²
//	ld, _ := base.LogDensity(x)                 // −log(4π)
//
// See doc comments on each measure for the density formulas and sampler
// references.
package measure
