package nya

import "github.com/deepteams/nya/internal/pixel"

// Image is the decoded result: a tightly packed, row-major buffer of
// 32-bit colors in R,G,B,A byte order (spec §3, §6).
type Image struct {
	Width  uint16
	Height uint16

	// Pixels holds exactly Width*Height packed colors, row-major, no
	// stride or padding.
	Pixels []uint32
}

// At returns the packed pixel at (x, y). It panics if (x, y) is out of
// bounds, matching the teacher's direct-index image accessors.
func (img *Image) At(x, y int) uint32 {
	if x < 0 || x >= int(img.Width) || y < 0 || y >= int(img.Height) {
		panic("nya: Image.At coordinates out of bounds")
	}
	return img.Pixels[y*int(img.Width)+x]
}

func packedSliceToUint32(buf []pixel.Packed) []uint32 {
	out := make([]uint32, len(buf))
	for i, p := range buf {
		out[i] = uint32(p)
	}
	return out
}
