package codec

import (
	"errors"

	"github.com/deepteams/nya/internal/huffman"
	"github.com/deepteams/nya/internal/pixel"
)

// ErrOverrun is returned when a run-length block would write past the end
// of the pixel buffer (spec §4.F, §7).
var ErrOverrun = errors.New("nya: block would overrun pixel buffer")

// bitReader is the subset of *bitio.Reader the block loop needs.
type bitReader interface {
	ReadBit() (uint32, error)
	ReadBits(n int) (uint32, error)
}

// block tags (spec §4.F).
const (
	tagLiteralSingle = 0b00
	tagLiteralRun    = 0b01
	tagHuffmanSingle = 0b10
	tagHuffmanRun    = 0b11
)

// DecodeBlocks drives the tagged-block loop until pixelIndex reaches
// width*height, writing decoded pixels into buf (spec §4.F). buf must
// already be sized to width*height.
func DecodeBlocks(r bitReader, tree *huffman.Tree, colorDepth int, buf []pixel.Packed) error {
	total := len(buf)
	idx := 0

	for idx < total {
		tag, err := r.ReadBits(2)
		if err != nil {
			return err
		}

		switch tag {
		case tagLiteralSingle:
			p, err := pixel.ReadLiteral(r, colorDepth)
			if err != nil {
				return err
			}
			if idx+1 > total {
				return ErrOverrun
			}
			buf[idx] = p
			idx++

		case tagLiteralRun:
			p, err := pixel.ReadLiteral(r, colorDepth)
			if err != nil {
				return err
			}
			count, err := readRunLength(r)
			if err != nil {
				return err
			}
			if idx+count > total {
				return ErrOverrun
			}
			fill(buf, idx, count, p)
			idx += count

		case tagHuffmanSingle:
			p, err := tree.Read(r)
			if err != nil {
				return err
			}
			if idx+1 > total {
				return ErrOverrun
			}
			buf[idx] = p
			idx++

		case tagHuffmanRun:
			p, err := tree.Read(r)
			if err != nil {
				return err
			}
			count, err := readRunLength(r)
			if err != nil {
				return err
			}
			if idx+count > total {
				return ErrOverrun
			}
			fill(buf, idx, count, p)
			idx += count
		}
	}

	return nil
}

// readRunLength reads the variable-width run length: a 3-bit L selects the
// bit width (L+1) of R, and the run emits (R+1) copies (spec §4.F,
// GLOSSARY). The minimum run is 1 pixel, the maximum 256.
func readRunLength(r bitReader) (int, error) {
	l, err := r.ReadBits(3)
	if err != nil {
		return 0, err
	}
	width := int(l) + 1
	run, err := r.ReadBits(width)
	if err != nil {
		return 0, err
	}
	return int(run) + 1, nil
}

func fill(buf []pixel.Packed, start, count int, v pixel.Packed) {
	for i := 0; i < count; i++ {
		buf[start+i] = v
	}
}
