// Package container parses the NYA file header: the fixed 9-byte preamble
// that precedes the bitstream-encoded Huffman tree and tagged pixel
// blocks. It plays the role the teacher's RIFF/WEBP header parser plays
// for WebP, narrowed to NYA's much smaller fixed layout.
package container

import (
	"encoding/binary"
	"errors"
)

// HeaderSize is the number of bytes in the fixed NYA header (spec §4.B).
const HeaderSize = 9

// Magic is the required 4-byte signature at the start of every NYA file.
var Magic = [4]byte{'N', 'Y', 'A', '!'}

// FilterType selects the post-decode differential unfilter (spec §3).
type FilterType uint8

const (
	FilterNone FilterType = 0
	FilterSub  FilterType = 1
	FilterUp   FilterType = 2
)

// Flag bit positions within byte 8 of the header.
const (
	flagFilterMask = 0x03 // bits 0-1
	flagHasAlpha   = 0x04 // bit 2
)

// Errors returned by Parse.
var (
	ErrInvalidMagic  = errors.New("nya: invalid magic")
	ErrInvalidFilter = errors.New("nya: invalid filter type")
	ErrTruncated     = errors.New("nya: truncated header")
)

// Header holds the parsed fields of the 9-byte NYA preamble.
type Header struct {
	Width    uint16
	Height   uint16
	HasAlpha bool
	Filter   FilterType
}

// ColorDepth returns the number of bits a literal pixel read consumes:
// 32 when the header's alpha bit is set, 24 otherwise (spec §4.E/§6).
func (h Header) ColorDepth() int {
	if h.HasAlpha {
		return 32
	}
	return 24
}

// Parse reads and validates the fixed 9-byte NYA header from data.
// data must be at least HeaderSize bytes; the BitReader driving the rest
// of the decode attaches to whatever follows byte 8 (spec §4.B, §4.H).
func Parse(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, ErrTruncated
	}
	if data[0] != Magic[0] || data[1] != Magic[1] || data[2] != Magic[2] || data[3] != Magic[3] {
		return Header{}, ErrInvalidMagic
	}

	width := binary.LittleEndian.Uint16(data[4:6])
	height := binary.LittleEndian.Uint16(data[6:8])
	flags := data[8]

	filter := FilterType(flags & flagFilterMask)
	if filter == 3 {
		return Header{}, ErrInvalidFilter
	}

	return Header{
		Width:    width,
		Height:   height,
		HasAlpha: flags&flagHasAlpha != 0,
		Filter:   filter,
	}, nil
}
