package codec

import "github.com/deepteams/nya/internal/pixel"

// ApplyFilter runs the differential post-filter over buf in place, per
// spec §4.G. NONE is a no-op. SUB traverses row-major (index(i) = i); UP
// traverses column-major via the transpose mapping, so each pixel's
// "previous" in iteration order is the pixel above it in the image. The
// rolling predictor carries across row/column boundaries with no reset,
// starting from prev (the session's initialized Previous value).
func ApplyFilter(buf []pixel.Packed, width, height int, filter FilterType, colorDepth int, prev pixel.Packed) {
	if filter == FilterNone {
		return
	}

	count := width * height
	for i := 0; i < count; i++ {
		idx := traversalIndex(i, width, height, filter)
		updated := pixel.AddMod256(prev, buf[idx], colorDepth)
		buf[idx] = updated
		prev = updated
	}
}

// traversalIndex maps iteration position i to a buffer index according to
// the filter's traversal order (spec §4.G).
func traversalIndex(i, width, height int, filter FilterType) int {
	if filter == FilterUp {
		return width*(i%height) + i/height
	}
	return i // FilterSub: row-major, left-to-right, top-to-bottom
}
