package world

// Grid constants.
const (
	// ShiftBy - shift by N bits for 2^N cells per region side (2^4 = 16)
	ShiftBy = 4

	// RegionSize in cells
	RegionSize = 1 << ShiftBy

	// MaxMapSize bounds map width/height in cells
	MaxMapSize = 1024
)

// CoordToRegionIndex converts cell coordinate to region index.
func CoordToRegionIndex(x, y int32) (rx, ry int32) {
	return x >> ShiftBy, y >> ShiftBy
}

// RegionsFor returns the number of regions needed to cover size cells.
func RegionsFor(size int32) int32 {
	return (size + RegionSize - 1) >> ShiftBy
}
