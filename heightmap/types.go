// Package heightmap defines the Map type and sentinel errors for the
// heightmap subpackage of github.com/arverden/sightline.
package heightmap

import "errors"

// Sentinel errors for heightmap construction.
var (
	// ErrDimensions indicates a non-positive width or height.
	ErrDimensions = errors.New("heightmap: width and height must be at least 1")
	// ErrSizeMismatch indicates the buffer length differs from width×height.
	ErrSizeMismatch = errors.New("heightmap: buffer length must equal width*height")
	// ErrEmptyMap indicates the input 2D slice has no rows or no columns.
	ErrEmptyMap = errors.New("heightmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
)

// Map is an immutable, row-major view over a rectangular grid of
// elevation samples. Width and Height are fixed at construction; the
// elevation at cell (x, y) lives at offset y*width + x.
// A Map is safe for unsynchronized concurrent reads.
type Map struct {
	width, height int
	elev          []float64
}
