package nya

import "errors"

// Errors returned by Decode/DecodeFile (spec §6/§7). All are fatal to the
// current decode; there is no partial-image recovery.
var (
	ErrNotNyaExtension  = errors.New("nya: file does not have a .nya extension")
	ErrOpenFailed       = errors.New("nya: failed to open file")
	ErrInvalidMagic     = errors.New("nya: invalid magic")
	ErrInvalidFilter    = errors.New("nya: invalid filter type")
	ErrTruncatedStream  = errors.New("nya: truncated stream")
	ErrOverrun          = errors.New("nya: block would overrun pixel buffer")
	ErrAllocationFailed = errors.New("nya: allocation failed")
)
