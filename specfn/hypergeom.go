// Package specfn - hypergeometric kernels 0F1 and 1F1.
//
// The scalar forms are exact: 0F1 collapses to a closed Bessel expression
// and 1F1 is a log-domain Kummer series (with the Kummer transform
// covering negative arguments). The matrix-argument forms reduce a 1×1
// argument to the scalar kernels and refuse anything larger — see
// ErrNotImplemented.
package specfn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// hypergeomMaxTerms caps the Kummer series; the terms peak near m ≈ z.
const hypergeomMaxTerms = 500000

// LogHypergeom0F1 returns log 0F1(; b; z) for b > 0 and z ≥ 0 via the
// closed Bessel form
//
//	0F1(; b; z) = Γ(b) · s^{1−b} · I_{b−1}(2s),  s = √z,
//
// which keeps the evaluation finite for large z where the un-logged value
// overflows. The z = 0 edge returns exactly 0 (0F1(; b; 0) = 1).
//
// Domain: b > 0, z ≥ 0; NaN outside.
func LogHypergeom0F1(b, z float64) float64 {
	if !(b > 0) || z < 0 || math.IsNaN(z) {
		return math.NaN()
	}
	if z == 0 {
		return 0
	}
	s := math.Sqrt(z)
	lg, _ := math.Lgamma(b)
	return lg + (1-b)*math.Log(s) + LogBesselI(b-1, 2*s)
}

// LogHypergeom1F1 returns log 1F1(a; b; z) (Kummer's confluent
// hypergeometric function M) for a > 0, b > 0.
//
// For z ≥ 0 the defining series Σ (a)_m z^m / ((b)_m m!) has positive
// terms and is summed in log space with logaddexp accumulation, so large
// z never overflows. For z < 0 the Kummer transform
// M(a,b,z) = e^z · M(b−a, b, −z) restores a positive-term series
// (requires b > a for the transformed series; NaN otherwise).
// The z = 0 edge returns exactly 0 and a == b short-circuits to z itself
// (M(a,a,z) = e^z).
//
// Complexity: O(|z|) series terms in the worst case.
func LogHypergeom1F1(a, b, z float64) float64 {
	if !(a > 0) || !(b > 0) || math.IsNaN(z) {
		return math.NaN()
	}
	if z == 0 {
		return 0
	}
	if a == b {
		return z
	}
	if z < 0 {
		if !(b > a) {
			return math.NaN()
		}
		return z + LogHypergeom1F1(b-a, b, -z)
	}

	logZ := math.Log(z)
	logTerm := 0.0 // m = 0 term is 1
	sum := 0.0
	for m := 0; m < hypergeomMaxTerms; m++ {
		fm := float64(m)
		logTerm += math.Log(a+fm) - math.Log(b+fm) + logZ - math.Log(fm+1)
		sum = logAddExp(sum, logTerm)
		if logTerm < sum-36 && (a+fm)*z < (b+fm)*(fm+1) {
			break
		}
	}
	return sum
}

// LogHypergeom0F1Matrix returns log 0F1(; b; B) for a symmetric matrix
// argument B. A 1×1 argument reduces to the scalar kernel; larger
// arguments return ErrNotImplemented.
//
// TODO(specfn): general matrix arguments need the truncated
// Jack-polynomial algorithm of Koev & Edelman (2006).
func LogHypergeom0F1Matrix(b float64, B mat.Symmetric) (float64, error) {
	if B.SymmetricDim() == 1 {
		return LogHypergeom0F1(b, B.At(0, 0)), nil
	}
	if isZeroSym(B) {
		return 0, nil // pFq(...; 0) = 1 in every dimension
	}
	return math.NaN(), ErrNotImplemented
}

// LogHypergeom1F1Matrix returns log 1F1(a; b; B) for a symmetric matrix
// argument B, with the same 1×1 reduction and the same deliberate
// refusal of the general case as LogHypergeom0F1Matrix.
func LogHypergeom1F1Matrix(a, b float64, B mat.Symmetric) (float64, error) {
	if B.SymmetricDim() == 1 {
		return LogHypergeom1F1(a, b, B.At(0, 0)), nil
	}
	if isZeroSym(B) {
		return 0, nil
	}
	return math.NaN(), ErrNotImplemented
}

// isZeroSym reports whether every entry of B is exactly zero — the one
// matrix argument whose hypergeometric value is known in every dimension.
func isZeroSym(B mat.Symmetric) bool {
	n := B.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if B.At(i, j) != 0 {
				return false
			}
		}
	}
	return true
}
