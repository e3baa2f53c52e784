// Package los defines core types, configuration options and sentinel
// errors for the los subpackage of github.com/arverden/sightline.
package los

import "errors"

// Sentinel errors returned by the los operations.
var (
	// ErrNilMap indicates that a nil *heightmap.Map was passed.
	ErrNilMap = errors.New("los: heightmap must be non-nil")

	// ErrBadSampleCount indicates that Options.Samples is below 1,
	// which would make the success fraction meaningless.
	ErrBadSampleCount = errors.New("los: Samples must be at least 1")

	// ErrBadJitter indicates that Options.Jitter is negative; a jitter
	// radius has no meaningful sign.
	ErrBadJitter = errors.New("los: Jitter must be non-negative")
)

// Point3 is a coordinate triple: X and Y are continuous grid-space
// coordinates (not necessarily integral — the occupied cell is their
// floor), Z is an elevation in the same units as the heightmap.
type Point3 struct {
	X, Y, Z float64
}

// Defaults for the Probability sampler.
const (
	// DefaultSamples is the number of offset probes issued per estimate.
	DefaultSamples = 9

	// DefaultJitter is the lateral half-span of the probe lattice, in
	// grid cells: offsets range over ±DefaultJitter on each axis.
	DefaultJitter = 2.0
)

// Options configures the Probability sampler.
//
// Samples – number of offset probes (must be ≥ 1). With Samples == 1
//
//	the estimator degenerates to a single Visible call.
//
// Jitter  – lateral half-span of the probe lattice in grid cells
//
//	(must be ≥ 0). The lattice spans ±Jitter on each axis,
//	centered on the unperturbed sight line.
type Options struct {
	Samples int     // Number of offset probes per estimate
	Jitter  float64 // Half-span of the probe lattice, in grid cells
}

// Option represents a functional option for configuring Probability.
type Option func(*Options)

// WithSamples sets the number of offset probes.
// Values below 1 cause Probability to return ErrBadSampleCount.
func WithSamples(n int) Option {
	return func(o *Options) {
		o.Samples = n
	}
}

// WithJitter sets the lateral half-span of the probe lattice in grid
// cells. Negative values cause Probability to return ErrBadJitter;
// zero collapses every probe onto the unperturbed sight line.
func WithJitter(r float64) Option {
	return func(o *Options) {
		o.Jitter = r
	}
}

// DefaultOptions returns an Options struct initialized with the
// package defaults. Use this as a starting point for further
// functional-options overrides.
//
// Defaults:
//   - Samples: DefaultSamples (9 probes on a 3×3 lattice).
//   - Jitter:  DefaultJitter (±2 grid cells across the lattice).
func DefaultOptions() Options {
	return Options{
		Samples: DefaultSamples,
		Jitter:  DefaultJitter,
	}
}
