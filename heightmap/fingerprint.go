package heightmap

import (
	"encoding/binary"
	"math"

	xxhash "github.com/cespare/xxhash/v2"
)

// Fingerprint returns a 64-bit xxHash content identity over the map's
// dimensions and elevation buffer. Two maps have equal fingerprints iff
// they have equal width, height and bit-identical elevations, so the
// value is a stable cache key for memoizing visibility results.
// Complexity: O(W×H).
func (m *Map) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(m.width))
	_, _ = d.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(m.height))
	_, _ = d.Write(buf[:])
	for _, v := range m.elev {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
