// Package measure - batch sampling convenience.
package measure

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// SampleN draws n points from s sequentially off one source, each into a
// fresh buffer. A mid-batch error aborts the batch and returns the draws
// collected so far alongside it, so capped samplers can report partial
// progress. For parallel batches derive one source per worker with
// DeriveSource instead of sharing src.
//
// Complexity: n times the cost of a single draw.
func SampleN(s Sampler, src rand.Source, n int) ([]*mat.Dense, error) {
	out := make([]*mat.Dense, 0, n)
	for i := 0; i < n; i++ {
		x, err := s.Sample(src)
		if err != nil {
			return out, err
		}
		out = append(out, x)
	}
	return out, nil
}
