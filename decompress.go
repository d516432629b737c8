// SPDX-License-Identifier: PostgreSQL
// Copyright (c) 2026 Nikolay Samokhvalov
// Source: github.com/NikolayS/pglz-compression

package pglz

import "io"

// DecompressOptions configures decompression. OutLen is required (the raw
// size stored out of band by the caller); Partial permits prefix extraction;
// MaxInputSize limits reads when using DecompressFromReader.
type DecompressOptions struct {
	// OutLen is the expected decompressed size.
	OutLen int
	// Partial permits the stream to stop short of OutLen (and leaves trailing
	// input unconsumed). With Partial false the stream must end exactly at
	// OutLen produced and input consumed, or ErrIncomplete is returned.
	Partial bool
	// MaxInputSize limits how many bytes DecompressFromReader may read
	// (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns strict options with the given output
// length and no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}

// Decompress decompresses a pglz stream from src into a buffer of length
// opts.OutLen. Returns ErrOptionsRequired if opts is nil or OutLen is
// negative. Malformed input is reported with one of the sentinel errors and
// never writes past OutLen bytes.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil || opts.OutLen < 0 {
		return nil, ErrOptionsRequired
	}

	dst := make([]byte, opts.OutLen)
	n, err := decompressCore(src, dst, !opts.Partial)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressInto decompresses src into the caller-provided dst, whose length
// is the expected raw size. The check is strict: the stream must fill dst
// exactly and be fully consumed.
func DecompressInto(src, dst []byte) ([]byte, error) {
	n, err := decompressCore(src, dst, true)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressPartialInto decompresses as much of src as fits into dst and
// returns the produced prefix. Used when the caller only wants the first
// len(dst) bytes of the raw datum (slice detoasting).
func DecompressPartialInto(src, dst []byte) ([]byte, error) {
	n, err := decompressCore(src, dst, false)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressFromReader reads the full stream then calls Decompress. No
// decoding logic of its own. If opts.MaxInputSize > 0 and more bytes are
// read, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	if opts.MaxInputSize > 0 {
		r = io.LimitReader(r, int64(opts.MaxInputSize)+1)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}

// decompressCore replays the stream into dst: a control byte classifies the
// next up-to-8 items LSB-first as literals or back-reference tags. Every tag
// is validated before anything is written, so malformed input cannot touch
// bytes beyond what a valid prefix produced.
func decompressCore(src, dst []byte, strict bool) (int, error) {
	var inPos, outPos int
	srcLen := len(src)
	dstLen := len(dst)

	for inPos < srcLen && outPos < dstLen {
		ctrl := src[inPos]
		inPos++

		for ctrlc := 0; ctrlc < 8 && inPos < srcLen && outPos < dstLen; ctrlc++ {
			if ctrl&1 != 0 {
				// Tag: T1 carries the offset's high nibble and length-3 (or
				// the 0x0f escape), T2 the offset's low byte, and an escaped
				// length adds T3 to the base of 18.
				if inPos+2 > srcLen {
					return 0, ErrInputOverrun
				}
				length := int(src[inPos]&0x0f) + 3
				off := int(src[inPos]&0xf0)<<4 | int(src[inPos+1])
				inPos += 2
				if length == 18 {
					if inPos >= srcLen {
						return 0, ErrInputOverrun
					}
					length += int(src[inPos])
					inPos++
				}

				// A zero offset would never terminate the expansion below,
				// and an offset beyond the bytes produced so far would read
				// outside the buffer.
				if off == 0 {
					return 0, ErrZeroOffset
				}
				if off > outPos {
					return 0, ErrLookBehindUnderrun
				}

				// Don't emit more than requested.
				length = min(length, dstLen-outPos)

				outPos = expandBackRef(dst, outPos, off, length)
			} else {
				dst[outPos] = src[inPos]
				inPos++
				outPos++
			}

			ctrl >>= 1
		}
	}

	if strict && (outPos != dstLen || inPos != srcLen) {
		return 0, ErrIncomplete
	}

	return outPos, nil
}

// MaxCompressedSize returns the maximum number of compressed bytes needed to
// reproduce a rawSize-byte prefix of a datum whose whole compressed size is
// totalCompressedSize.
//
// One control bit per byte means an all-literal prefix takes rawSize*9 bits,
// rounded up to bytes. Two more bytes cover the corner case where the prefix
// ends with N-1 or N-2 literals followed by a tag that straddles the prefix
// boundary; earlier tags represent more raw bytes than they occupy and can't
// push the bound.
func MaxCompressedSize(rawSize, totalCompressedSize int) int {
	compressedSize := (int64(rawSize)*9+7)/8 + 2

	// Never larger than the whole compressed datum.
	compressedSize = min(compressedSize, int64(totalCompressedSize))

	return int(compressedSize)
}
