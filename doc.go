// Package nya implements a pure Go decoder for the NYA image format.
//
// NYA is a compact single-image container that combines a pre-built
// Huffman dictionary with literal/run tagged pixel blocks and an optional
// inter-pixel differential filter. This package implements decoding only;
// there is no NYA encoder here.
//
// The package supports:
//   - RGB (24-bit) and RGBA (32-bit) literal pixels
//   - A self-describing Huffman tree reconstructed from a pre-order
//     bitstream walk, with no explicit length or symbol-count header
//   - Literal, literal-run, Huffman, and Huffman-run tagged blocks
//   - SUB (row-major) and UP (column-major) differential post-filters
//
// Basic usage:
//
//	img, err := nya.DecodeFile("cat.nya")
//
// or, given an already-open reader:
//
//	img, err := nya.Decode(r)
package nya
