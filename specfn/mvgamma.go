// Package specfn - log multivariate gamma.
package specfn

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// LogMvGamma returns log Γ_m(a), the logarithm of the multivariate gamma
// function of order m:
//
//	log Γ_m(a) = (m(m−1)/4)·log π + Σ_{i=1..m} log Γ(a − (i−1)/2)
//
// Domain: m ≥ 1 and a > (m−1)/2; NaN outside. The evaluation is a sum of
// log-gammas (delegated to gonum's mathext.MvLgamma), stable for large m
// where the un-logged product would overflow immediately.
//
// Complexity: O(m).
func LogMvGamma(m int, a float64) float64 {
	if m < 1 || !(a > float64(m-1)/2) {
		return math.NaN()
	}
	return mathext.MvLgamma(a, m)
}
