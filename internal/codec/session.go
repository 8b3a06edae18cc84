// Package codec implements the NYA decoder's tagged-block loop (Component
// F) and differential post-filter (Component G), threaded through an
// explicit per-decode session rather than the original implementation's
// process-global decode state.
package codec

import (
	"github.com/deepteams/nya/internal/huffman"
	"github.com/deepteams/nya/internal/pixel"
)

// Session bundles the decode parameters established after the header is
// parsed and held for the rest of one Decode invocation (spec §3,
// §5). The original implementation keeps these in process-global statics;
// threading them explicitly here removes that concurrency hazard and lets
// multiple decodes run safely side by side.
type Session struct {
	ColorDepth int // 24 or 32, bits consumed per literal pixel read
	Filter     FilterType
	Width      int
	Height     int

	// Previous is the rolling predictor used by the post-filter. It is
	// reset to the spec-defined initial value before filtering starts.
	Previous pixel.Packed

	Tree *huffman.Tree
}

// FilterType mirrors container.FilterType without importing the container
// package, keeping codec's dependency surface limited to what it actually
// needs (huffman and pixel).
type FilterType uint8

const (
	FilterNone FilterType = 0
	FilterSub  FilterType = 1
	FilterUp   FilterType = 2
)

// NewSession builds a Session with the predictor initialized per spec §3.
func NewSession(colorDepth, width, height int, filter FilterType, tree *huffman.Tree) *Session {
	return &Session{
		ColorDepth: colorDepth,
		Filter:     filter,
		Width:      width,
		Height:     height,
		Previous:   pixel.InitialPrevious(colorDepth),
		Tree:       tree,
	}
}
