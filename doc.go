// SPDX-License-Identifier: PostgreSQL
// Copyright (c) 2026 Nikolay Samokhvalov
// Source: github.com/NikolayS/pglz-compression

/*
Package pglz implements the PostgreSQL pglz compression format, byte-for-byte
compatible with the in-tree compressor used for TOAST, WAL full-page images
and base backups.

The stream is a sequence of groups: one control byte followed by up to eight
items, classified LSB-first as literal bytes (bit 0) or 2-3 byte back-reference
tags (bit 1). Tags carry offsets of 1-4095 and lengths of 3-273. There is no
framing header; the raw length is stored out of band by the caller.

The match finder uses a Fibonacci multiply-shift hash over the next four input
bytes and a 4097-entry history ring partitioned into per-bucket chains, with
bounded chain traversal and a word-at-a-time match extension.

# Compress

Compression is gated by a Strategy. A nil strategy means StrategyDefault; use
StrategyAlways to compress whenever a single byte can be saved:

	out, err := pglz.Compress(data, nil)
	out, err := pglz.Compress(data, pglz.StrategyAlways)

ErrIncompressible means the input is not worth compressing under the given
strategy; store it verbatim. To reuse caller-managed output memory, size the
destination with MaxOutput:

	dst := make([]byte, pglz.MaxOutput(len(data)))
	n, err := pglz.CompressInto(data, dst, nil)

# Decompress

The raw size is required (use DecompressOptions). From a byte slice:

	out, err := pglz.Decompress(compressed, pglz.DefaultDecompressOptions(rawSize))

To reuse caller-managed output memory (no per-call output allocation):

	dst := make([]byte, rawSize)
	out, err := pglz.DecompressInto(compressed, dst)

DecompressPartialInto extracts a prefix without requiring the stream to be
consumed completely, which is what slice detoasting does:

	prefix, err := pglz.DecompressPartialInto(compressed, make([]byte, 512))

From an io.Reader (e.g. a stream with a known decompressed size):

	out, err := pglz.DecompressFromReader(r, pglz.DefaultDecompressOptions(rawSize))
*/
package pglz
