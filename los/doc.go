// Package los computes terrain line-of-sight over a heightmap.Map:
// an exact boolean visibility check and a jittered probability
// estimator built on top of it.
//
// What:
//
//   - Visible walks the exact sequence of grid cells the 2D projection
//     of a 3D segment crosses (amortized grid DDA, a 2D voxel
//     traversal) and reports false as soon as a crossed cell's terrain
//     rises above the ray's interpolated height there, or the path
//     leaves the grid.
//   - Probability issues several offset Visible probes on a square
//     lattice of lateral offsets around the primary ray and returns
//     the fraction that succeed, approximating visibility under
//     positional uncertainty of the whole sight line.
//
// Why:
//
//   - Exactness: cell-accurate traversal never skips a thin occluder,
//     unlike fixed-step marching along the segment.
//   - Uncertainty: observer and target positions are rarely known to
//     sub-cell precision; a success fraction over nearby parallel
//     sight lines is more honest than a single boolean.
//
// Algorithm outline (Visible):
//  1. cell = (⌊x₀⌋, ⌊y₀⌋); target = (⌊x₁⌋, ⌊y₁⌋); per-axis step = ±1.
//  2. Per axis: tMax = parametric distance to the next grid line,
//     tDelta = 1/|delta|; a zero-delta axis gets +Inf for both so it
//     is never chosen to advance.
//  3. Loop: out of bounds → false; t solved along the larger-|delta|
//     axis and clamped to [0,1]; terrain > z₀+t·dz → false; cell ==
//     target → true; else advance the axis with the smaller tMax
//     (strict tMaxX < tMaxY, so a corner tie steps Y — a deliberate,
//     reproducible policy).
//
// Complexity:
//
//   - Visible:     O(D) time, O(1) memory, D = Chebyshev cell distance.
//   - Probability: O(Samples×D) time, O(1) memory.
//
// Errors (sentinel):
//
//   - ErrNilMap         — the heightmap is nil.
//   - ErrBadSampleCount — Options.Samples < 1.
//   - ErrBadJitter      — Options.Jitter < 0.
//
// Occlusion, leaving the grid and out-of-range endpoints are ordinary
// negative results (false / lower probability), never errors.
//
// Concurrency: both operations are pure functions of their inputs and
// a read-only Map; they are safe to call concurrently on a shared Map.
package los
