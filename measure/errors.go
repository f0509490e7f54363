package measure

import (
	"errors"
	"fmt"
)

// ErrUnsupportedManifold is returned when a measure is evaluated or
// sampled on a manifold kind it is not defined for.
var ErrUnsupportedManifold = fmt.Errorf("measure: %w", errUnsupportedManifold)
var errUnsupportedManifold = errors.New("manifold kind not supported by this measure")

// ErrUnsupportedField is returned for matrix-point operations over the
// complex or quaternionic fields, which carry closed-form masses but no
// point representation in this module.
var ErrUnsupportedField = fmt.Errorf("measure: %w", errUnsupportedField)
var errUnsupportedField = errors.New("matrix points are represented for the real field only")

// ErrNotAGroup is returned when a Haar measure is used on a manifold
// that is not one of the supported group kinds (Rotations, Circle).
var ErrNotAGroup = fmt.Errorf("measure: %w", errNotAGroup)
var errNotAGroup = errors.New("Haar measure requires a group manifold")

// ErrNoSampler is returned by measures (or parameterizations) that expose
// a log-density but no exact sampling algorithm: Bingham, and the
// precision-matrix form of the Angular Central Gaussian.
var ErrNoSampler = fmt.Errorf("measure: %w", errNoSampler)
var errNoSampler = errors.New("no exact sampler for this measure/parameterization")

// ErrUnsupportedParam is returned when a parameter record is combined
// with a manifold whose point representation it does not match (e.g. a
// matrix-mean form on a vector manifold).
var ErrUnsupportedParam = fmt.Errorf("measure: %w", errUnsupportedParam)
var errUnsupportedParam = errors.New("parameterization not valid for this manifold")

// ErrMaxIterations is returned by the SampleCapped variants when a
// rejection loop exhausts its iteration budget. The uncapped samplers
// never return it: their loops are integral to exactness and terminate
// almost surely.
var ErrMaxIterations = fmt.Errorf("measure: %w", errMaxIterations)
var errMaxIterations = errors.New("rejection sampler exceeded iteration cap")
