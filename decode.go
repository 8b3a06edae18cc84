package nya

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/deepteams/nya/internal/bitio"
	"github.com/deepteams/nya/internal/codec"
	"github.com/deepteams/nya/internal/container"
	"github.com/deepteams/nya/internal/huffman"
	"github.com/deepteams/nya/internal/pixel"
)

// DecodeFile opens path, checks its extension, and decodes it as a NYA
// image (spec §6). The .nya extension check is cosmetic and exists only
// here; Decode itself imposes no such requirement, so a host application
// that wants to relax it can call Decode directly.
func DecodeFile(path string) (*Image, error) {
	if filepath.Ext(path) != ".nya" {
		return nil, ErrNotNyaExtension
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, ErrOpenFailed
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "nya: decoding %s", path)
	}
	return img, nil
}

// Decode reads one NYA image from r and returns the fully decoded pixel
// buffer (spec §4.H). It orchestrates the header parse, Huffman tree
// reconstruction, tagged-block loop, and post-filter in sequence; any
// stage failing aborts the whole decode with a typed error. There is
// nothing to explicitly release on failure: the tree and working buffer
// are regular Go values reclaimed by the garbage collector once the
// function returns, whether it returns an image or an error.
func Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)

	hdrBytes := make([]byte, container.HeaderSize)
	if _, err := io.ReadFull(br, hdrBytes); err != nil {
		return nil, ErrTruncatedStream
	}

	hdr, err := container.Parse(hdrBytes)
	if err != nil {
		switch {
		case errors.Is(err, container.ErrInvalidMagic):
			return nil, ErrInvalidMagic
		case errors.Is(err, container.ErrInvalidFilter):
			return nil, ErrInvalidFilter
		default:
			return nil, ErrTruncatedStream
		}
	}

	width, height := int(hdr.Width), int(hdr.Height)
	total := width * height
	if total == 0 {
		return &Image{Width: hdr.Width, Height: hdr.Height, Pixels: []uint32{}}, nil
	}

	colorDepth := hdr.ColorDepth()
	bits := bitio.NewReader(br)

	tree, err := huffman.Build(bits, bits, colorDepth)
	if err != nil {
		return nil, ErrTruncatedStream
	}

	sess := codec.NewSession(colorDepth, width, height, codec.FilterType(hdr.Filter), tree)

	buf, err := allocPixels(total)
	if err != nil {
		return nil, err
	}

	if err := codec.DecodeBlocks(bits, sess.Tree, sess.ColorDepth, buf); err != nil {
		if errors.Is(err, codec.ErrOverrun) {
			return nil, ErrOverrun
		}
		return nil, ErrTruncatedStream
	}

	codec.ApplyFilter(buf, sess.Width, sess.Height, sess.Filter, sess.ColorDepth, sess.Previous)

	return &Image{
		Width:  hdr.Width,
		Height: hdr.Height,
		Pixels: packedSliceToUint32(buf),
	}, nil
}

// allocPixels allocates the pixel buffer, converting an allocation panic
// (the host refusing the request) into ErrAllocationFailed rather than
// letting it crash the caller (spec §7).
func allocPixels(n int) (buf []pixel.Packed, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, ErrAllocationFailed
		}
	}()
	return make([]pixel.Packed, n), nil
}
