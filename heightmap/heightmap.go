package heightmap

// New constructs a Map over a row-major elevation buffer.
// It deep-copies the input to ensure immutability.
// Returns ErrDimensions if width or height < 1,
// ErrSizeMismatch if len(values) != width*height.
// Algorithmic complexity: O(W×H) time and memory.
func New(values []float64, width, height int) (*Map, error) {
	if width < 1 || height < 1 {
		return nil, ErrDimensions
	}
	if len(values) != width*height {
		return nil, ErrSizeMismatch
	}
	// Deep copy to prevent external mutation
	elev := make([]float64, len(values))
	copy(elev, values)

	return &Map{width: width, height: height, elev: elev}, nil
}

// From2D constructs a Map from a non-empty, rectangular 2D slice,
// where rows[y][x] is the elevation at cell (x, y).
// Returns ErrEmptyMap if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func From2D(rows [][]float64) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	h, w := len(rows), len(rows[0])
	elev := make([]float64, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		elev = append(elev, row...)
	}

	return &Map{width: w, height: h, elev: elev}, nil
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// Len returns the total number of cells (Width×Height).
func (m *Map) Len() int { return len(m.elev) }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// At returns the elevation at cell (x,y). It performs no bounds check;
// callers guard with InBounds, as the los traversal loop does.
// Complexity: O(1).
func (m *Map) At(x, y int) float64 {
	return m.elev[y*m.width+x]
}

// Index maps (x,y) to a row-major offset: y*Width + x.
// Complexity: O(1).
func (m *Map) Index(x, y int) int {
	return y*m.width + x
}

// Coordinate converts a row-major offset back to (x,y).
// Complexity: O(1).
func (m *Map) Coordinate(idx int) (x, y int) {
	return idx % m.width, idx / m.width
}
