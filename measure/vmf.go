// Package measure - von Mises–Fisher / Langevin distribution.
//
// The vMF is the restriction of an ambient isotropic normal with mean F
// (or κ·μ) to the manifold: density ∝ exp(Re⟨F, x⟩) relative to the
// normalized Hausdorff base measure. Parameter records are alternative
// encodings of one distribution and must agree numerically:
//
//	vector points:  (μ, κ)  ⇔  c = κ·μ
//	matrix points:  F  ⇔  (U, D, V) the SVD of F  ⇔  (H, P) the polar
//	                decomposition F = H·P
//
// This file carries the parameter sum type, the log-density and the
// closed-form mode; the samplers live in vmf_sample.go.
package measure

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tkraev/mfdmeasure/manifold"
	"github.com/tkraev/mfdmeasure/specfn"
)

// VMFParam is the closed sum of vMF parameterizations.
type VMFParam interface{ isVMFParam() }

// VMFModeConcentration encodes a vector vMF by its mode μ (a unit column
// of the embedding; a 1×1 angle on the real circle) and concentration
// κ ≥ 0. κ = 0 is the uniform distribution.
type VMFModeConcentration struct {
	Mu    *mat.Dense
	Kappa float64
}

func (VMFModeConcentration) isVMFParam() {}

// VMFMeanVector encodes a vector vMF by the single mean vector c = κ·μ;
// c = 0 is the uniform distribution.
type VMFMeanVector struct {
	C *mat.Dense
}

func (VMFMeanVector) isVMFParam() {}

// VMFMatrixMean encodes a matrix vMF by the ambient mean matrix F (n×k).
type VMFMatrixMean struct {
	F *mat.Dense
}

func (VMFMatrixMean) isVMFParam() {}

// VMFSVDForm encodes a matrix vMF by the thin SVD F = U·diag(D)·Vᵀ
// (U n×k, D length k, V k×k). This is the form the Stiefel sampler
// consumes directly.
type VMFSVDForm struct {
	U *mat.Dense
	D []float64
	V *mat.Dense
}

func (VMFSVDForm) isVMFParam() {}

// VMFPolarForm encodes a matrix vMF by the polar decomposition F = H·P
// with H ∈ St(n,k) the orthogonal polar factor and P symmetric PSD.
type VMFPolarForm struct {
	H *mat.Dense
	P *mat.SymDense
}

func (VMFPolarForm) isVMFParam() {}

// VMF is the von Mises–Fisher (Langevin) distribution on the Circle,
// spheres (any field, through the real embedding) and real Stiefel
// manifolds; matrix densities extend to Rotations, sampling does not.
// Base measure: the normalized Hausdorff measure on the same manifold.
//
// Projective spaces and Grassmannians carry no vMF: the linear kernel
// ⟨F, x⟩ is odd in x, so it cannot descend to the antipodal or subspace
// quotient. Every operation returns ErrUnsupportedManifold there; the
// quadratic families (ACG, Bingham) are the quotient-invariant
// counterparts.
type VMF struct {
	M     manifold.Manifold
	Param VMFParam
}

// NewVMF returns the vMF with the given parameterization. No validation
// (lightweight-constructor policy); κ < 0 or a non-unit μ produce
// garbage-in-garbage-out densities, not errors.
func NewVMF(m manifold.Manifold, p VMFParam) VMF { return VMF{M: m, Param: p} }

// Manifold returns the sample space descriptor.
func (v VMF) Manifold() manifold.Manifold { return v.M }

// LogDensity evaluates the vMF log-density at x:
//
//	real circle:   κ·cos(θ−θ₀) − log I₀(κ)
//	vector point:  ⟨c, x⟩ − logC(p, κ),  κ = ‖c‖, p = embedding dim,
//	               logC(p,κ) = logΓ(p/2) + ν·(log2 − logκ) + log I_ν(κ),
//	               ν = p/2 − 1, with the κ = 0 limit returning exactly 0
//	matrix point:  tr(FᵀX) − log 0F1(; n/2; FᵀF/4)
//
// The matrix normalizer goes through the 0F1 kernel: exact for k = 1,
// specfn.ErrNotImplemented for wider points.
func (v VMF) LogDensity(x *mat.Dense) (float64, error) {
	switch v.pointClass() {
	case vmfCircleAngle:
		theta0, kappa, err := v.circleParams()
		if err != nil {
			return 0, err
		}
		return kappa*math.Cos(x.At(0, 0)-theta0) - logVMFNorm(2, kappa), nil

	case vmfVector:
		c, err := v.meanVector()
		if err != nil {
			return 0, err
		}
		p, _ := c.Dims()
		kappa := mat.Norm(c, 2)
		return frobDot(c, x) - logVMFNorm(p, kappa), nil

	case vmfMatrix:
		f, err := v.meanMatrix()
		if err != nil {
			return 0, err
		}
		r, k := f.Dims()
		ftf := mat.NewSymDense(k, nil)
		var g mat.Dense
		g.Mul(f.T(), f)
		for i := 0; i < k; i++ {
			for j := i; j < k; j++ {
				ftf.SetSym(i, j, g.At(i, j)/4)
			}
		}
		logNorm, err := specfn.LogHypergeom0F1Matrix(float64(r)/2, ftf)
		if err != nil {
			return 0, err
		}
		return frobDot(f, x) - logNorm, nil

	default:
		return 0, ErrUnsupportedManifold
	}
}

// Mode returns the density maximizer in closed form: μ, c/‖c‖, the polar
// factor of F (via SVD), U·Vᵀ, or H, depending on the parameterization.
// A zero mean vector (the uniform case) yields NaN coordinates — the
// mode is genuinely undefined there.
func (v VMF) Mode() (*mat.Dense, error) {
	if v.pointClass() == vmfUnsupported {
		return nil, ErrUnsupportedManifold
	}

	switch p := v.Param.(type) {
	case VMFModeConcentration:
		if v.pointClass() == vmfMatrix {
			return nil, ErrUnsupportedParam
		}
		dst := v.M.NewPoint()
		dst.Copy(p.Mu)
		return dst, nil

	case VMFMeanVector:
		if v.pointClass() != vmfVector {
			return nil, ErrUnsupportedParam
		}
		dst := v.M.NewPoint()
		dst.Scale(1/mat.Norm(p.C, 2), p.C)
		return dst, nil

	case VMFMatrixMean:
		if v.pointClass() != vmfMatrix {
			return nil, ErrUnsupportedParam
		}
		return v.M.Project(p.F), nil

	case VMFSVDForm:
		if v.pointClass() != vmfMatrix {
			return nil, ErrUnsupportedParam
		}
		dst := v.M.NewPoint()
		dst.Mul(p.U, p.V.T())
		return dst, nil

	case VMFPolarForm:
		if v.pointClass() != vmfMatrix {
			return nil, ErrUnsupportedParam
		}
		dst := v.M.NewPoint()
		dst.Copy(p.H)
		return dst, nil

	default:
		return nil, ErrUnsupportedParam
	}
}

// pointClass partitions the supported manifold kinds by representation.
type vmfClass int

const (
	vmfUnsupported vmfClass = iota
	vmfCircleAngle          // real circle, 1×1 angle point
	vmfVector               // spheres over any field, complex circle
	vmfMatrix               // real Stiefel, Rotations (density only)
)

func (v VMF) pointClass() vmfClass {
	switch v.M.Kind {
	case manifold.KindCircle:
		if v.M.Field == manifold.Real {
			return vmfCircleAngle
		}
		return vmfVector
	case manifold.KindSphere:
		return vmfVector
	case manifold.KindStiefel, manifold.KindRotations:
		if v.M.Field != manifold.Real {
			return vmfUnsupported
		}
		return vmfMatrix
	default:
		return vmfUnsupported
	}
}

// circleParams extracts (θ₀, κ) on the real circle.
func (v VMF) circleParams() (theta0, kappa float64, err error) {
	p, ok := v.Param.(VMFModeConcentration)
	if !ok {
		return 0, 0, ErrUnsupportedParam
	}
	return p.Mu.At(0, 0), p.Kappa, nil
}

// meanVector resolves the vector-point parameterizations to c = κ·μ.
// The returned buffer is fresh and owned by the caller.
func (v VMF) meanVector() (*mat.Dense, error) {
	r, _ := v.M.Shape()
	c := mat.NewDense(r, 1, nil)
	switch p := v.Param.(type) {
	case VMFModeConcentration:
		c.Scale(p.Kappa, p.Mu)
		return c, nil
	case VMFMeanVector:
		c.Copy(p.C)
		return c, nil
	default:
		return nil, ErrUnsupportedParam
	}
}

// meanMatrix resolves the matrix-point parameterizations to the ambient
// mean F. The returned buffer is fresh and owned by the caller.
func (v VMF) meanMatrix() (*mat.Dense, error) {
	r, k := v.M.Shape()
	f := mat.NewDense(r, k, nil)
	switch p := v.Param.(type) {
	case VMFMatrixMean:
		f.Copy(p.F)
		return f, nil
	case VMFSVDForm:
		ud := mat.NewDense(r, k, nil)
		for j := 0; j < k; j++ {
			for i := 0; i < r; i++ {
				ud.Set(i, j, p.U.At(i, j)*p.D[j])
			}
		}
		f.Mul(ud, p.V.T())
		return f, nil
	case VMFPolarForm:
		f.Mul(p.H, p.P)
		return f, nil
	default:
		return nil, ErrUnsupportedParam
	}
}

// logVMFNorm returns logC(p, κ), the log-normalizer of the vector vMF
// relative to the normalized Hausdorff measure. The κ = 0 branch returns
// the exact uniform limit 0 rather than evaluating ν·log(0).
func logVMFNorm(p int, kappa float64) float64 {
	if kappa == 0 {
		return 0
	}
	nu := float64(p)/2 - 1
	lg, _ := math.Lgamma(float64(p) / 2)
	return lg + nu*(math.Ln2-math.Log(kappa)) + specfn.LogBesselI(nu, kappa)
}
