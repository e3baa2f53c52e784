// Package heightmap provides a validated, immutable view over a 2D grid
// of terrain elevation samples (a DEM), stored row-major.
//
// What:
//
//   - Map wraps a contiguous []float64 elevation buffer with its
//     width and height, validated once at construction.
//   - From2D builds a Map from a rectangular [][]float64.
//   - InBounds, Index and Coordinate translate between (x,y) cells and
//     row-major offsets.
//   - Min, Max and Mean summarize the elevation distribution.
//   - Fingerprint yields a 64-bit content identity for the map, useful
//     when memoizing visibility results against a specific DEM.
//
// Why:
//
//   - Line-of-sight analysis: the los package reads elevations through
//     Map without ever revalidating buffer geometry.
//   - Safety: a *Map that exists is rectangular and size-consistent;
//     silent out-of-bounds reads against a mis-declared buffer are
//     impossible.
//
// Complexity:
//
//   - New / From2D:            O(W×H) time and memory (defensive copy).
//   - At / InBounds / Index:   O(1).
//   - Min / Max / Mean:        O(W×H).
//   - Fingerprint:             O(W×H).
//
// Errors:
//
//   - ErrDimensions:    width or height is less than 1.
//   - ErrSizeMismatch:  buffer length differs from width×height.
//   - ErrEmptyMap:      input 2D slice has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//
// Concurrency: a Map is immutable after construction and safe for
// unsynchronized concurrent reads.
package heightmap
