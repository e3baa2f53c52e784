package heightmap

// Min returns the smallest elevation in the map.
// Complexity: O(W×H).
func (m *Map) Min() float64 {
	min := m.elev[0]
	for _, v := range m.elev[1:] {
		if v < min {
			min = v
		}
	}

	return min
}

// Max returns the largest elevation in the map.
// Complexity: O(W×H).
func (m *Map) Max() float64 {
	max := m.elev[0]
	for _, v := range m.elev[1:] {
		if v > max {
			max = v
		}
	}

	return max
}

// Mean returns the arithmetic mean elevation of the map.
// Complexity: O(W×H).
func (m *Map) Mean() float64 {
	sum := 0.0
	for _, v := range m.elev {
		sum += v
	}

	return sum / float64(len(m.elev))
}
