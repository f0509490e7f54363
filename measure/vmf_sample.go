// Package measure - exact vMF samplers.
//
// Three algorithms, one per representation:
//
//   - Real circle: Best & Fisher (1979) wrapped-Cauchy-envelope rejection.
//   - Spheres: Wood (1994) — Beta-envelope rejection for the mode-aligned
//     cosine t, a uniform draw on the orthogonal complement, and a
//     Householder reflection onto the mode. Exact inverse-CDF shortcut at
//     p = 3, Bernoulli at p = 1.
//   - Stiefel: Hoff (2009) — sequential-conditional column sampling with
//     a joint whole-sequence rejection on the accumulated Bessel
//     log-ratio; zero singular values fall back to uniform null-space
//     draws with exactly zero acceptance contribution.
//
// All loops are unbounded by contract and terminate almost surely; the
// Capped variants trade exactness guarantees under a budget for a
// recoverable ErrMaxIterations.
package measure

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/tkraev/mfdmeasure/manifold"
	"github.com/tkraev/mfdmeasure/specfn"
)

// Sample draws an exact vMF point into a fresh buffer. See SampleInto.
func (v VMF) Sample(src rand.Source) (*mat.Dense, error) {
	dst := v.M.NewPoint()
	if err := v.SampleInto(src, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// SampleInto draws an exact vMF point into dst. Supported sample spaces:
// the Circle (both fields), spheres over any field, and real Stiefel
// manifolds; Rotations carry a density but no sampler here and return
// ErrUnsupportedManifold.
func (v VMF) SampleInto(src rand.Source, dst *mat.Dense) error {
	return v.sampleInto(src, dst, 0)
}

// SampleCapped is Sample with an iteration budget: every rejection loop
// involved may spin at most maxIter times before ErrMaxIterations is
// returned. A cap of 0 means unbounded (identical to Sample). Intended
// for callers — servers, latency-bound pipelines — that cannot tolerate
// an open loop; the uncapped entry points remain the exact contract.
func (v VMF) SampleCapped(src rand.Source, maxIter int) (*mat.Dense, error) {
	dst := v.M.NewPoint()
	if err := v.sampleInto(src, dst, maxIter); err != nil {
		return nil, err
	}
	return dst, nil
}

// SampleIntoCapped is SampleInto with the SampleCapped budget semantics.
func (v VMF) SampleIntoCapped(src rand.Source, dst *mat.Dense, maxIter int) error {
	return v.sampleInto(src, dst, maxIter)
}

func (v VMF) sampleInto(src rand.Source, dst *mat.Dense, maxIter int) error {
	switch v.pointClass() {
	case vmfCircleAngle:
		theta0, kappa, err := v.circleParams()
		if err != nil {
			return err
		}
		rng := rand.New(src)
		theta, err := sampleVonMises(rng, theta0, kappa, maxIter)
		if err != nil {
			return err
		}
		dst.Set(0, 0, theta)
		return nil

	case vmfVector:
		c, err := v.meanVector()
		if err != nil {
			return err
		}
		kappa := mat.Norm(c, 2)
		if kappa == 0 {
			uniformDirectionInto(rand.New(src), dst)
			return nil
		}
		c.Scale(1/kappa, c)
		return sampleSphereVMFInto(src, c, kappa, dst, maxIter)

	case vmfMatrix:
		if v.M.Kind == manifold.KindRotations {
			return ErrUnsupportedManifold
		}
		u, d, vv, err := v.svdParams()
		if err != nil {
			return err
		}
		return sampleStiefelVMFInto(src, u, d, vv, dst, maxIter)

	default:
		return ErrUnsupportedManifold
	}
}

// svdParams resolves the matrix parameterizations to the SVD triple the
// Hoff sampler consumes, factorizing F when the parameter is not already
// in SVD form.
func (v VMF) svdParams() (u *mat.Dense, d []float64, vv *mat.Dense, err error) {
	if p, ok := v.Param.(VMFSVDForm); ok {
		return p.U, p.D, p.V, nil
	}
	f, err := v.meanMatrix()
	if err != nil {
		return nil, nil, nil, err
	}
	var svd mat.SVD
	if !svd.Factorize(f, mat.SVDThin) {
		return nil, nil, nil, ErrNoSampler
	}
	var um, vm mat.Dense
	svd.UTo(&um)
	svd.VTo(&vm)
	return &um, svd.Values(nil), &vm, nil
}

// sampleVonMises draws one angle from the von Mises distribution with
// the given mode and concentration via the Best & Fisher (1979)
// rejection scheme. κ = 0 short-circuits to a uniform angle.
//
// Envelope constants: τ = 1+√(1+4κ²), ρ = (τ−√(2τ))/(2κ),
// r = (1+ρ²)/(2ρ). Acceptance uses the cheap quadratic test first and
// the exact log test second, so most draws cost one log at most.
func sampleVonMises(rng *rand.Rand, mode, kappa float64, maxIter int) (float64, error) {
	if kappa == 0 {
		return -math.Pi + 2*math.Pi*rng.Float64(), nil
	}

	tau := 1 + math.Sqrt(1+4*kappa*kappa)
	rho := (tau - math.Sqrt(2*tau)) / (2 * kappa)
	r := (1 + rho*rho) / (2 * rho)

	for iter := 1; ; iter++ {
		if maxIter > 0 && iter > maxIter {
			return 0, ErrMaxIterations
		}

		z := math.Cos(math.Pi * rng.Float64())
		f := (1 + r*z) / (r + z)
		c := kappa * (r - f)
		u := rng.Float64()

		if c*(2-c) > u || math.Log(c/u)+1 >= c {
			if f > 1 {
				f = 1
			} else if f < -1 {
				f = -1
			}
			theta := math.Acos(f)
			if rng.Float64() < 0.5 {
				theta = -theta
			}
			return manifold.WrapAngle(theta + mode), nil
		}
	}
}

// sampleSphereVMFInto draws one vMF point on the sphere S^{p−1} with
// unit mode mu and concentration kappa ≥ 0 into dst, via the Wood (1994)
// decomposition x = t·e₁ + √(1−t²)·[0; ξ] rotated onto mu by a
// Householder reflection.
func sampleSphereVMFInto(src rand.Source, mu *mat.Dense, kappa float64, dst *mat.Dense, maxIter int) error {
	rng := rand.New(src)
	p, _ := mu.Dims()

	if p == 1 {
		// 0-sphere: x = ±μ, logit P(x = μ) = 2κ.
		s := 1.0
		if rng.Float64() >= 1/(1+math.Exp(-2*kappa)) {
			s = -1
		}
		dst.Set(0, 0, s*mu.At(0, 0))
		return nil
	}

	t, err := sampleVMFCosine(src, rng, p, kappa, maxIter)
	if err != nil {
		return err
	}
	s := 1 - t*t
	if s < 0 {
		s = 0
	}
	s = math.Sqrt(s)

	xi := mat.NewDense(p-1, 1, nil)
	uniformDirectionInto(rng, xi)

	dst.Set(0, 0, t)
	for i := 1; i < p; i++ {
		dst.Set(i, 0, s*xi.At(i-1, 0))
	}
	householderReflectInto(dst, mu)
	return nil
}

// sampleVMFCosine draws the mode-aligned cosine t ∈ [−1,1] with density
// ∝ (1−t²)^{(p−3)/2}·exp(κt):
//
//   - p = 3: exact inverse CDF of the truncated exponential,
//     t = 1 + log(u + (1−u)e^{−2κ})/κ, with the κ = 0 limit drawn
//     uniformly (the formula would 0/0 there).
//   - otherwise: Wood's Beta((p−1)/2,(p−1)/2) envelope with constants
//     a = 2κ/(p−1), b = √(a²+1) − a, x₀ = (1−b)/(1+b); acceptance
//     κt + (p−1)·log1p(−x₀t) − c ≥ log u. The envelope stays valid
//     (b ∈ (0,1]) for every κ ≥ 0, and κ = 0 accepts on the first draw.
func sampleVMFCosine(src rand.Source, rng *rand.Rand, p int, kappa float64, maxIter int) (float64, error) {
	if p == 3 {
		if kappa == 0 {
			return 2*rng.Float64() - 1, nil
		}
		u := rng.Float64()
		t := 1 + math.Log(u+(1-u)*math.Exp(-2*kappa))/kappa
		if t < -1 { // u = 0 at large κ underflows the log; clamp to the support
			t = -1
		}
		return t, nil
	}

	m := float64(p - 1)
	a := 2 * kappa / m
	b := math.Sqrt(a*a+1) - a
	x0 := (1 - b) / (1 + b)
	c := kappa*x0 + m*math.Log(1-x0*x0)

	beta := distuv.Beta{Alpha: m / 2, Beta: m / 2, Src: src}
	for iter := 1; ; iter++ {
		if maxIter > 0 && iter > maxIter {
			return 0, ErrMaxIterations
		}
		z := beta.Rand()
		t := (1 - (1+b)*z) / (1 - (1-b)*z)
		if kappa*t+m*math.Log1p(-x0*t)-c >= math.Log(rng.Float64()) {
			return t, nil
		}
	}
}

// sampleStiefelVMFInto draws one matrix vMF point on St(n,k) with SVD
// parameters (U, D, V) into dst, via Hoff's (2009) sequential-conditional
// scheme: build candidate columns one at a time — the j-th column is a
// sphere-vMF draw toward the projection of D_j·u_j onto the null space
// of the columns already placed — and accept or reject the entire column
// sequence jointly on the accumulated log-ratio of exact vs. reduced
// Bessel normalizers. The k = 1 case accumulates a zero log-ratio and
// degenerates to the sphere sampler composed with the 1×1 rotation V.
func sampleStiefelVMFInto(src rand.Source, u *mat.Dense, d []float64, v *mat.Dense, dst *mat.Dense, maxIter int) error {
	rng := rand.New(src)
	n, k := u.Dims()
	x := mat.NewDense(n, k, nil)

	for iter := 1; ; iter++ {
		if maxIter > 0 && iter > maxIter {
			return ErrMaxIterations
		}

		logRatio := 0.0
		for j := 0; j < k; j++ {
			w := n - j
			ucol := u.Slice(0, n, j, j+1).(*mat.Dense)

			// z = D_j · Nᵀu_j in the w-dimensional reduced frame.
			var nb *mat.Dense
			z := mat.NewDense(w, 1, nil)
			if j == 0 {
				z.Scale(d[0], ucol)
			} else {
				nb = mat.NewDense(n, w, nil)
				nullBasisInto(nb, x, j)
				z.Mul(nb.T(), ucol)
				z.Scale(d[j], z)
			}

			xr := mat.NewDense(w, 1, nil)
			normZ := mat.Norm(z, 2)
			if normZ == 0 {
				// Zero singular value (or fully explained mean): uniform
				// draw in the null space, acceptance contribution exactly 0.
				uniformDirectionInto(rng, xr)
			} else {
				z.Scale(1/normZ, z)
				if err := sampleSphereVMFInto(src, z, normZ, xr, maxIter); err != nil {
					return err
				}
				nu := float64(w)/2 - 1
				logRatio += logBesselScaled(nu, normZ) - logBesselScaled(nu, d[j])
			}

			if nb == nil {
				for i := 0; i < n; i++ {
					x.Set(i, 0, xr.At(i, 0))
				}
			} else {
				var col mat.Dense
				col.Mul(nb, xr)
				for i := 0; i < n; i++ {
					x.Set(i, j, col.At(i, 0))
				}
			}
		}

		// ‖z_j‖ ≤ D_j makes every term ≤ 0, so logRatio is a valid
		// log-acceptance probability.
		if math.Log(rng.Float64()) < logRatio {
			dst.Mul(x, v.T())
			return nil
		}
	}
}

// logBesselScaled returns log(I_ν(x)/x^ν), the order-scaled Bessel term
// of Hoff's acceptance ratio, with its exact x → 0 limit
// −ν·log2 − logΓ(ν+1) branch-guarded so zero arguments never produce a
// 0/0.
func logBesselScaled(nu, x float64) float64 {
	if x == 0 {
		lg, _ := math.Lgamma(nu + 1)
		return -nu*math.Ln2 - lg
	}
	return specfn.LogBesselI(nu, x) - nu*math.Log(x)
}
