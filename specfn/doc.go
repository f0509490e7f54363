// Package specfn provides the numerically stable special-function kernels
// the measure package builds its normalizing constants on: the log
// multivariate gamma function, the log modified Bessel function of the
// first kind, and scalar / matrix-argument hypergeometric functions.
//
// 🚀 Why log space?
//
//	Normalizing constants on manifolds overflow float64 fast: Γ_k(n/2)
//	explodes combinatorially and I_ν(κ) grows like e^κ. Every kernel here
//	therefore returns a logarithm, computed without ever materializing the
//	un-logged value:
//	  • LogMvGamma    — sum of log-gammas, never a product of gammas
//	  • LogBesselI    — exponentially-scaled evaluation; finite and
//	    accurate across x ∈ [0, 1e5] and ν ∈ [−1, large]
//	  • LogHypergeom0F1 / LogHypergeom1F1 — log-domain series with
//	    logaddexp accumulation; 0F1 reduces to a closed Bessel form
//
// ✨ Failure policy (mirrors IEEE semantics):
//
//   - Mathematically defined results never raise: NaN and ±Inf propagate.
//   - Zero-argument edge cases (κ=0, B=0) return the exact limiting value
//     by explicit branch, never NaN from 0·log 0.
//   - The matrix-argument hypergeometric functions for arguments larger
//     than 1×1 are an acknowledged unimplemented extension point and
//     return ErrNotImplemented loudly.
//
// ⚙️ Usage:
//
//	import "github.com/tkraev/mfdmeasure/specfn"
//
//	lg := specfn.LogMvGamma(3, 2.5)        // log Γ₃(2.5)
//	lb := specfn.LogBesselI(0.5, 1e4)      // ≈ 1e4 − ½·log(2π·1e4)
//	l0 := specfn.LogHypergeom0F1(1.5, 4.0) // log 0F1(; 3/2; 4)
//
// References: Chikuse (2003) for the volume formulas these feed;
// Abramowitz & Stegun §9.6/§9.7 for the Bessel series and Hankel
// expansion; Koev & Edelman (2006) for the matrix-argument algorithm
// deliberately left as an extension point.
package specfn
