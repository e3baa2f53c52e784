package los

import (
	"math"

	"github.com/arverden/sightline/heightmap"
)

// Visible reports whether an unobstructed sight line exists from start
// to end over the terrain in m. It enumerates every grid cell crossed
// by the 2D projection of the segment (amortized grid DDA) and returns
// false as soon as a crossed cell's elevation exceeds the ray's
// interpolated height at that cell, or the path leaves the grid before
// reaching the target cell; true otherwise.
//
// Returns ErrNilMap if m is nil. Occlusion and out-of-bounds paths are
// ordinary false results, not errors.
//
// Visible is not symmetric: swapping start and end selects the
// parametric axis and breaks corner ties from the opposite direction,
// so the reversed call may visit a different cell set near grid
// corners and disagree. Callers that need symmetry should query both
// directions explicitly.
//
// Complexity: O(D) time, O(1) memory, where D is the Chebyshev
// distance between the start and target cells.
func Visible(m *heightmap.Map, start, end Point3) (bool, error) {
	if m == nil {
		return false, ErrNilMap
	}

	// 1) Segment deltas; dz interpolates the ray height along t.
	dx := end.X - start.X
	dy := end.Y - start.Y
	dz := end.Z - start.Z

	// 2) Current and target cells are the floors of the endpoints.
	x := int(math.Floor(start.X))
	y := int(math.Floor(start.Y))
	endX := int(math.Floor(end.X))
	endY := int(math.Floor(end.Y))

	// 3) Step direction per axis; a zero-delta axis never advances
	//    because its tMax stays at +Inf.
	stepX, stepY := -1, -1
	if dx > 0 {
		stepX = 1
	}
	if dy > 0 {
		stepY = 1
	}

	// 4) tMax = parametric distance to the next grid line per axis,
	//    tDelta = parametric span of one full cell (1/|delta|).
	inf := math.Inf(1)
	tMaxX, tDeltaX := inf, inf
	if dx != 0 {
		nextGridX := float64(x)
		if stepX > 0 {
			nextGridX = float64(x) + 1
		}
		tMaxX = (nextGridX - start.X) / dx
		tDeltaX = 1 / math.Abs(dx)
	}
	tMaxY, tDeltaY := inf, inf
	if dy != 0 {
		nextGridY := float64(y)
		if stepY > 0 {
			nextGridY = float64(y) + 1
		}
		tMaxY = (nextGridY - start.Y) / dy
		tDeltaY = 1 / math.Abs(dy)
	}

	for {
		// 5) Leaving the grid before the target cell is a miss.
		if !m.InBounds(x, y) {
			return false, nil
		}

		// 6) Solve t along the axis with the larger delta magnitude —
		//    the axis with finer-grained cell crossings gives the
		//    stabler estimate — and clamp to [0,1].
		var t float64
		if math.Abs(dx) > math.Abs(dy) {
			t = (float64(x) - start.X) / dx
		} else {
			t = (float64(y) - start.Y) / dy
		}
		t = clampT(t)

		// 7) Terrain above the interpolated ray height occludes.
		if m.At(x, y) > start.Z+t*dz {
			return false, nil
		}

		// 8) Reached the target cell with no occlusion.
		if x == endX && y == endY {
			return true, nil
		}

		// 9) Advance the axis whose next grid line is nearer. The
		//    comparison is strictly tMaxX < tMaxY: a corner tie steps
		//    Y, a deliberate policy that keeps results reproducible.
		if tMaxX < tMaxY {
			tMaxX += tDeltaX
			x += stepX
		} else {
			tMaxY += tDeltaY
			y += stepY
		}
	}
}

// clampT clamps t to [0,1]. The !(t > 0) form also maps NaN — the
// both-deltas-zero degenerate segment — to 0, so a same-cell check
// compares terrain against start.Z.
func clampT(t float64) float64 {
	if !(t > 0) {
		return 0
	}
	if t > 1 {
		return 1
	}

	return t
}
