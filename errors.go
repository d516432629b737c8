// SPDX-License-Identifier: PostgreSQL
// Copyright (c) 2026 Nikolay Samokhvalov
// Source: github.com/NikolayS/pglz-compression

package pglz

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrIncompressible is returned by Compress when the strategy refuses the
	// input (size gate, disabled compression) or when the output failed to
	// stay under the strategy's budget. The caller should store the input
	// verbatim; the destination contents are undefined.
	ErrIncompressible = errors.New("incompressible input for this strategy")
	// ErrDestTooSmall is returned by CompressInto when the destination is
	// smaller than MaxOutput(len(src)).
	ErrDestTooSmall = errors.New("destination smaller than MaxOutput bound")
	// ErrOptionsRequired is returned when Decompress is called with nil options
	// (OutLen is required).
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrInputOverrun is returned when a back-reference tag is truncated by the
	// end of the compressed input.
	ErrInputOverrun = errors.New("input overrun")
	// ErrZeroOffset is returned when a back-reference carries offset 0, which
	// no compressor emits and which would never terminate the expansion.
	ErrZeroOffset = errors.New("zero back-reference offset")
	// ErrLookBehindUnderrun is returned when a back-reference points before the
	// start of the output produced so far.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrIncomplete is returned in strict mode when the stream and the declared
	// raw size do not end together.
	ErrIncomplete = errors.New("stream does not match declared raw size")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than
	// MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
