package codec

import (
	"testing"

	"github.com/deepteams/nya/internal/pixel"
)

func TestApplyFilter_None(t *testing.T) {
	buf := []pixel.Packed{0x01020304, 0x05060708}
	want := append([]pixel.Packed(nil), buf...)
	ApplyFilter(buf, 2, 1, FilterNone, 32, pixel.InitialPrevious(32))
	for i := range buf {
		if buf[i] != want[i] {
			t.Errorf("pixel %d = %#x, want %#x (unmodified)", i, uint32(buf[i]), uint32(want[i]))
		}
	}
}

func TestApplyFilter_Sub_RGBA(t *testing.T) {
	// spec §8 S3: 2x2 RGBA, SUB filter, prev = 0.
	buf := []pixel.Packed{0x10203040, 0x01010101, 0x01010101, 0x01010101}
	ApplyFilter(buf, 2, 2, FilterSub, 32, 0x00000000)
	want := []pixel.Packed{0x10203040, 0x11213141, 0x12223242, 0x13233343}
	for i := range buf {
		if buf[i] != want[i] {
			t.Errorf("pixel %d = %#x, want %#x", i, uint32(buf[i]), uint32(want[i]))
		}
	}
}

func TestApplyFilter_Up_RGB(t *testing.T) {
	// spec §8 S4: 2x2 RGB, UP filter, prev = 0xFFFFFF00.
	// Residuals in column-major order (0,0),(0,1),(1,0),(1,1):
	// all 0x010101FF. Buffer is stored row-major: [(0,0),(1,0),(0,1),(1,1)].
	buf := []pixel.Packed{
		0x010101FF, // (0,0)
		0x010101FF, // (1,0)
		0x010101FF, // (0,1)
		0x010101FF, // (1,1)
	}
	ApplyFilter(buf, 2, 2, FilterUp, 24, 0xFFFFFF00)
	want := []pixel.Packed{0x000000FF, 0x020202FF, 0x010101FF, 0x030303FF}
	for i := range buf {
		if buf[i] != want[i] {
			t.Errorf("pixel %d = %#x, want %#x", i, uint32(buf[i]), uint32(want[i]))
		}
	}
}
