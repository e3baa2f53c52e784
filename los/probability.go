package los

import (
	"math"

	"github.com/arverden/sightline/heightmap"
)

// Probability estimates the probability that end is visible from start
// when the sight line's lateral position is uncertain. It arranges
// Options.Samples probes on a roughly square lattice of 2D offsets
// spanning ±Options.Jitter grid cells, applies each offset rigidly to
// both endpoints' XY (the whole ray translates sideways; Z is
// untouched), runs Visible for every probe and returns the success
// fraction — always k/Samples for some integer k, hence in [0,1].
//
// The rigid translation models positional uncertainty of the whole
// line (observer and target mislocated together), not independent
// endpoint noise.
//
// With Samples == 1 the estimator degenerates to a single unperturbed
// Visible call, returning exactly 1.0 or 0.0.
//
// Returns ErrNilMap, ErrBadSampleCount or ErrBadJitter on invalid
// input; otherwise never errors.
//
// Complexity: O(Samples×D) time, O(1) memory, where D is the Chebyshev
// cell distance between the endpoints.
func Probability(m *heightmap.Map, start, end Point3, opts ...Option) (float64, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if m == nil {
		return 0, ErrNilMap
	}
	if cfg.Samples < 1 {
		return 0, ErrBadSampleCount
	}
	if cfg.Jitter < 0 {
		return 0, ErrBadJitter
	}

	// 2) A single sample is the plain boolean check.
	if cfg.Samples == 1 {
		visible, err := Visible(m, start, end)
		if err != nil {
			return 0, err
		}
		if visible {
			return 1, nil
		}

		return 0, nil
	}

	// 3) Probe i sits at (i mod side, i / side) on a side×side lattice,
	//    mapped to an offset centered on zero spanning ±Jitter.
	side := int(math.Ceil(math.Sqrt(float64(cfg.Samples))))
	hits := 0
	for i := 0; i < cfg.Samples; i++ {
		var ox, oy float64
		if side > 1 {
			ox = (float64(i%side)/float64(side-1)*2 - 1) * cfg.Jitter
			oy = (float64(i/side)/float64(side-1)*2 - 1) * cfg.Jitter
		}

		// 4) Rigid lateral translation of the whole sight line.
		s := Point3{X: start.X + ox, Y: start.Y + oy, Z: start.Z}
		e := Point3{X: end.X + ox, Y: end.Y + oy, Z: end.Z}

		// m is non-nil here, so Visible cannot error.
		visible, _ := Visible(m, s, e)
		if visible {
			hits++
		}
	}

	// 5) Success fraction.
	return float64(hits) / float64(cfg.Samples), nil
}
