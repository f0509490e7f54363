// Package mfdmeasure is your toolbox for probability measures on Riemannian
// manifolds — spheres, Stiefel frames, Grassmannians, rotation groups and
// projective spaces — with exact samplers and closed-form log-densities.
//
// 🚀 What is mfdmeasure?
//
//	A numeric library for probabilistic modeling on non-Euclidean sample
//	spaces. It brings together:
//		• Manifold descriptors: Sphere, ProjectiveSpace, Stiefel, Grassmann,
//		  Rotations, Circle — over real, complex and quaternionic fields
//		• Primitive measures: Hausdorff (volume) and Haar (group-invariant),
//		  each with a closed-form log-mass and an exact sampler
//		• Normalization: wrap any measure into its probability counterpart
//		• Parameterized families: Angular Central Gaussian, Bingham,
//		  von Mises–Fisher / Langevin — rejection samplers included
//		• Special functions: log multivariate gamma, overflow-safe
//		  log modified Bessel I, hypergeometric 0F1 / 1F1 kernels
//
// ✨ Why choose mfdmeasure?
//
//   - Exact sampling – rejection samplers with provable acceptance bounds
//   - Numerically stable – everything lives in log space; κ=0 and singular
//     parameter edge cases return limiting values, never NaN
//   - Reproducible – every sampler consumes a caller-supplied seedable
//     rand.Source; same seed ⇒ identical draws
//   - Pure computation – no I/O, no goroutines, no shared mutable state
//
// Under the hood, everything is organized under three packages:
//
//	manifold/ — value descriptors, embedding shapes, membership & projection
//	specfn/   — numerically stable special-function kernels
//	measure/  — Hausdorff, Haar, Normalized, ACG, Bingham, vMF
//
// Quick example:
//
//	m := manifold.Sphere(2)                     // S² in ℝ³
//	vmf := measure.NewVMF(m, measure.VMFModeConcentration{
//	  Mu:    mat.NewDense(3, 1, []float64{0, 0, 1}),
//	  Kappa: 10,
//	})
//	x, _ := vmf.Sample(measure.NewSource(42))   // exact draw near the pole
//
// Dive into the per-package doc.go files and example tests for full
// usage and algorithm references (Wood 1994, Best–Fisher 1979, Hoff 2009,
// Chikuse 2003).
//
//	go get github.com/tkraev/mfdmeasure
package mfdmeasure
