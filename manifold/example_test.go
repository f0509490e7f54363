package manifold_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tkraev/mfdmeasure/manifold"
)

// ExampleManifold_Project retracts an arbitrary ambient vector onto the
// unit sphere by normalization.
func ExampleManifold_Project() {
	s := manifold.Sphere(2)
	x := mat.NewDense(3, 1, []float64{3, 0, 4})

	p := s.Project(x)
	fmt.Printf("p = (%.1f, %.1f, %.1f)\n", p.At(0, 0), p.At(1, 0), p.At(2, 0))
	fmt.Println("on manifold:", s.IsPoint(p, manifold.DefaultTol))
	// Output:
	// p = (0.6, 0.0, 0.8)
	// on manifold: true
}

// ExampleWrapAngle maps any angle into the canonical interval [−π, π).
func ExampleWrapAngle() {
	fmt.Printf("%.4f\n", manifold.WrapAngle(7.0))
	// Output:
	// 0.7168
}
