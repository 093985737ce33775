package heap

import "errors"

// ErrInvalidChunkSize is returned by New when Options.ChunkSize is not a
// positive multiple of Dsize.
var ErrInvalidChunkSize = errors.New("heap: chunk size must be a positive multiple of the double-word size")

// ErrBootstrap is returned by New when the extender fails during bootstrap
// (§4.1): while laying out the initial prologue/epilogue region, in which
// case the extender's own error is wrapped alongside it, or during the
// initial chunk extension, in which case it is not.
var ErrBootstrap = errors.New("heap: failed to bootstrap arena")
