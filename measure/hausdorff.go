// Package measure - Hausdorff (volume) measure.
//
// Log-masses are the closed-form volumes of the default embeddings
// (Chikuse 2003, "Statistics on Special Manifolds", §1.4), assembled from
// two scalar building blocks: the sphere volume over a field and the log
// multivariate gamma function. Sampling is exact per family.
package measure

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/tkraev/mfdmeasure/manifold"
	"github.com/tkraev/mfdmeasure/specfn"
)

// Hausdorff is the unnormalized volume/area measure on the default
// embedding of a manifold. It is the reference measure of the package:
// every parameterized density is taken relative to its normalized form.
type Hausdorff struct {
	M manifold.Manifold
}

// NewHausdorff returns the Hausdorff measure on m. No validation is
// performed (lightweight-constructor policy).
func NewHausdorff(m manifold.Manifold) Hausdorff { return Hausdorff{M: m} }

// Manifold returns the sample space descriptor.
func (h Hausdorff) Manifold() manifold.Manifold { return h.M }

// LogDensity is identically zero: the Hausdorff measure is the base
// measure, so its density against itself is 1 by contract, not by
// computation.
func (h Hausdorff) LogDensity(_ *mat.Dense) (float64, error) { return 0, nil }

// LogMass returns the log of the total volume:
//
//   - Sphere(n,𝔽):    log2 + ν·logπ − logΓ(ν),  ν = d(𝔽)·(n+1)/2
//   - 𝔽P(n):          mass(Sphere(n,𝔽)) − mass(Sphere(0,𝔽))
//   - St(n,k,ℝ):      k·log2 + (kn/2)·logπ − logΓ_k(n/2)
//   - St(n,k,𝔽):      Σ_{i<k} mass(Sphere(n−1−i,𝔽))   (telescoping
//     product form matching vol St(n,k) = vol S_{𝔽}^{n−1} · vol St(n−1,k−1))
//   - Gr(n,k,𝔽):      mass(St(n,k,𝔽)) − mass(St(k,k,𝔽))
//   - SO(n):          mass(St(n,n,ℝ)) − log2   (O(n) is two copies of SO(n))
//   - Circle:         log 2π
//
// Out-of-range dimensions (k > n, n < 0) surface as NaN through the
// gamma-function domains rather than as errors.
func (h Hausdorff) LogMass() (float64, error) {
	return hausdorffLogMass(h.M)
}

// Sample draws an exact point into a fresh buffer. See SampleInto.
func (h Hausdorff) Sample(src rand.Source) (*mat.Dense, error) {
	dst := h.M.NewPoint()
	if err := h.SampleInto(src, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// SampleInto draws an exact point of the measure (uniform, after
// normalization) into dst:
//
//   - Sphere/ProjectiveSpace (any field) and the complex Circle: a
//     standard-normal vector of the real embedding, normalized.
//   - Stiefel/Grassmann (real): QR of an IID-normal n×k matrix with the
//     sign ambiguity removed by forcing diag(R) ≥ 0, which makes the
//     factorization unique and Q exactly Haar-distributed.
//   - Rotations: the St(n,n) draw; a negative determinant is repaired by
//     swapping the first two columns, landing the sample in SO(n).
//   - Real Circle: a uniform angle in [−π, π).
//
// Matrix-point kinds over non-real fields return ErrUnsupportedField.
func (h Hausdorff) SampleInto(src rand.Source, dst *mat.Dense) error {
	rng := rand.New(src)

	switch h.M.Kind {
	case manifold.KindSphere, manifold.KindProjectiveSpace:
		uniformDirectionInto(rng, dst)
		return nil

	case manifold.KindStiefel, manifold.KindGrassmann:
		if h.M.Field != manifold.Real {
			return ErrUnsupportedField
		}
		sampleStiefelInto(rng, dst)
		return nil

	case manifold.KindRotations:
		sampleStiefelInto(rng, dst)
		if h.M.N >= 2 && mat.Det(dst) < 0 {
			swapColumns(dst, 0, 1)
		}
		return nil

	case manifold.KindCircle:
		if h.M.Field == manifold.Real {
			dst.Set(0, 0, -math.Pi+2*math.Pi*rng.Float64())
			return nil
		}
		uniformDirectionInto(rng, dst)
		return nil

	default:
		return ErrUnsupportedManifold
	}
}

// hausdorffLogMass dispatches the closed forms; shared with Haar.
func hausdorffLogMass(m manifold.Manifold) (float64, error) {
	switch m.Kind {
	case manifold.KindSphere:
		return sphereLogMass(m.N, m.Field), nil

	case manifold.KindProjectiveSpace:
		return sphereLogMass(m.N, m.Field) - sphereLogMass(0, m.Field), nil

	case manifold.KindStiefel:
		return stiefelLogMass(m.N, m.K, m.Field), nil

	case manifold.KindGrassmann:
		return stiefelLogMass(m.N, m.K, m.Field) - stiefelLogMass(m.K, m.K, m.Field), nil

	case manifold.KindRotations:
		return stiefelLogMass(m.N, m.N, manifold.Real) - math.Ln2, nil

	case manifold.KindCircle:
		return math.Log(2 * math.Pi), nil

	default:
		return math.NaN(), ErrUnsupportedManifold
	}
}

// sphereLogMass returns log vol S^n over field f: the surface area of the
// unit sphere in ℝ^{d(f)·(n+1)}.
func sphereLogMass(n int, f manifold.Field) float64 {
	nu := float64(f.RealDim()) * float64(n+1) / 2
	lg, _ := math.Lgamma(nu)
	return math.Ln2 + nu*math.Log(math.Pi) - lg
}

// stiefelLogMass returns log vol St(n,k) over field f. The real case uses
// the multivariate-gamma closed form; the complex and quaternionic cases
// use the telescoping product of field-sphere volumes, which agrees with
// the recursive identity vol St(n,k) = vol S_{𝔽}^{n−1} · vol St(n−1,k−1).
func stiefelLogMass(n, k int, f manifold.Field) float64 {
	if k < 0 || k > n {
		return math.NaN()
	}
	if k == 0 {
		return 0 // St(n,0) is a single (empty) frame
	}
	if f == manifold.Real {
		fn, fk := float64(n), float64(k)
		return fk*math.Ln2 + fk*fn/2*math.Log(math.Pi) - specfn.LogMvGamma(k, fn/2)
	}
	s := 0.0
	for i := 0; i < k; i++ {
		s += sphereLogMass(n-1-i, f)
	}
	return s
}

// sampleStiefelInto fills dst (n×k) with a Haar draw on St(n,k) via the
// unique sign-corrected QR factorization of a Gaussian matrix.
func sampleStiefelInto(rng *rand.Rand, dst *mat.Dense) {
	n, k := dst.Dims()
	a := mat.NewDense(n, k, nil)
	fillNormal(rng, a)

	var qr mat.QR
	qr.Factorize(a)
	var q, r mat.Dense
	qr.QTo(&q)
	qr.RTo(&r)

	dst.Copy(q.Slice(0, n, 0, k))
	for j := 0; j < k; j++ {
		// diag(R) = 0 has probability zero; treat it as positive.
		if r.At(j, j) < 0 {
			for i := 0; i < n; i++ {
				dst.Set(i, j, -dst.At(i, j))
			}
		}
	}
}

// swapColumns exchanges columns a and b of x in place.
func swapColumns(x *mat.Dense, a, b int) {
	r, _ := x.Dims()
	for i := 0; i < r; i++ {
		va, vb := x.At(i, a), x.At(i, b)
		x.Set(i, a, vb)
		x.Set(i, b, va)
	}
}
