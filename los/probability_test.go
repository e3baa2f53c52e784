package los_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arverden/sightline/heightmap"
	"github.com/arverden/sightline/los"
)

// TestProbability_BadInput verifies the fail-fast contract checks.
func TestProbability_BadInput(t *testing.T) {
	m := flatMap(t, 10, 10, 0)
	a := los.Point3{X: 2, Y: 2, Z: 5}
	b := los.Point3{X: 7, Y: 7, Z: 5}

	_, err := los.Probability(nil, a, b)
	assert.ErrorIs(t, err, los.ErrNilMap, "nil map must error ErrNilMap")

	_, err = los.Probability(m, a, b, los.WithSamples(0))
	assert.ErrorIs(t, err, los.ErrBadSampleCount, "Samples=0 must error ErrBadSampleCount")

	_, err = los.Probability(m, a, b, los.WithSamples(-3))
	assert.ErrorIs(t, err, los.ErrBadSampleCount, "negative Samples must error ErrBadSampleCount")

	_, err = los.Probability(m, a, b, los.WithJitter(-1))
	assert.ErrorIs(t, err, los.ErrBadJitter, "negative Jitter must error ErrBadJitter")
}

// TestProbability_DefaultOptions pins the documented defaults.
func TestProbability_DefaultOptions(t *testing.T) {
	cfg := los.DefaultOptions()
	assert.Equal(t, 9, cfg.Samples, "default sample count")
	assert.Equal(t, 2.0, cfg.Jitter, "default jitter half-span")
}

// TestProbability_SingleSampleMatchesVisible verifies the degenerate
// estimator: one sample equals Visible cast to {0.0, 1.0}.
func TestProbability_SingleSampleMatchesVisible(t *testing.T) {
	clear := flatMap(t, 60, 60, 0)
	blocked := bumpMap(t, 60, 60, 50, [2]int{30, 30})

	a := los.Point3{X: 10, Y: 10, Z: 10}
	b := los.Point3{X: 50, Y: 50, Z: 10}

	for _, tc := range []struct {
		name string
		m    *heightmap.Map
	}{
		{"Clear", clear},
		{"Blocked", blocked},
	} {
		t.Run(tc.name, func(t *testing.T) {
			visible, err := los.Visible(tc.m, a, b)
			require.NoError(t, err)

			p, err := los.Probability(tc.m, a, b, los.WithSamples(1))
			require.NoError(t, err)

			want := 0.0
			if visible {
				want = 1.0
			}
			assert.Equal(t, want, p, "single-sample estimate must equal Visible")
		})
	}
}

// TestProbability_AllClear checks that every probe of the default 3×3
// lattice succeeds over flat terrain well inside the grid.
func TestProbability_AllClear(t *testing.T) {
	m := flatMap(t, 51, 51, 0)

	p, err := los.Probability(m,
		los.Point3{X: 10, Y: 10, Z: 5},
		los.Point3{X: 40, Y: 40, Z: 5})
	require.NoError(t, err)
	assert.Equal(t, 1.0, p, "all probes clear over flat terrain")
}

// TestProbability_AllBlocked checks that a full-width wall defeats
// every lateral offset.
func TestProbability_AllBlocked(t *testing.T) {
	// Wall of height 100 across the entire row y=25.
	values := make([]float64, 51*51)
	for x := 0; x < 51; x++ {
		values[25*51+x] = 100
	}
	m, err := heightmap.New(values, 51, 51)
	require.NoError(t, err)

	p, err := los.Probability(m,
		los.Point3{X: 25, Y: 10, Z: 5},
		los.Point3{X: 25, Y: 40, Z: 5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, p, "every translated ray still crosses the wall")
}

// TestProbability_PartialWall hand-computes a fractional outcome: a
// wall at x=25 covering rows y ≤ 25 blocks the probes offset at
// oy ∈ {-2, 0} but not oy = +2, so exactly 3 of 9 probes succeed.
func TestProbability_PartialWall(t *testing.T) {
	values := make([]float64, 51*51)
	for y := 0; y <= 25; y++ {
		values[y*51+25] = 100
	}
	m, err := heightmap.New(values, 51, 51)
	require.NoError(t, err)

	p, err := los.Probability(m,
		los.Point3{X: 10, Y: 25, Z: 5},
		los.Point3{X: 40, Y: 25, Z: 5})
	require.NoError(t, err)
	assert.InDelta(t, 3.0/9.0, p, 1e-12, "only the oy=+2 probe row clears the wall")
}

// TestProbability_FractionProperty checks the estimator's range
// invariant for several sample counts: p ∈ [0,1] and p×n is an
// integer success count.
func TestProbability_FractionProperty(t *testing.T) {
	// Scattered obstacles so some probes pass and some do not.
	m := bumpMap(t, 41, 41, 30,
		[2]int{20, 18}, [2]int{20, 20}, [2]int{20, 22}, [2]int{19, 21})

	a := los.Point3{X: 5, Y: 20, Z: 5}
	b := los.Point3{X: 35, Y: 20, Z: 5}

	for _, n := range []int{1, 2, 4, 5, 9, 16, 25} {
		p, err := los.Probability(m, a, b, los.WithSamples(n))
		require.NoError(t, err)

		assert.GreaterOrEqual(t, p, 0.0, "Samples=%d", n)
		assert.LessOrEqual(t, p, 1.0, "Samples=%d", n)

		k := p * float64(n)
		assert.InDelta(t, math.Round(k), k, 1e-9,
			"Samples=%d: p must be k/n for integer k", n)
	}
}

// TestProbability_ZeroJitter collapses every probe onto the primary
// ray, forcing a degenerate 0-or-1 estimate regardless of Samples.
func TestProbability_ZeroJitter(t *testing.T) {
	blocked := bumpMap(t, 60, 60, 50, [2]int{30, 30})

	a := los.Point3{X: 10, Y: 10, Z: 10}
	b := los.Point3{X: 50, Y: 50, Z: 10}

	p, err := los.Probability(blocked, a, b, los.WithJitter(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, p, "all zero-offset probes hit the same occluder")

	clear := flatMap(t, 60, 60, 0)
	p, err = los.Probability(clear, a, b, los.WithJitter(0))
	require.NoError(t, err)
	assert.Equal(t, 1.0, p, "all zero-offset probes are clear")
}
