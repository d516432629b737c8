// SPDX-License-Identifier: PostgreSQL
// Copyright (c) 2026 Nikolay Samokhvalov
// Source: github.com/NikolayS/pglz-compression

package pglz

import "encoding/binary"

// hashIndex computes the history bucket for the four input bytes at pos.
//
// This is a Fibonacci multiply-shift hash: the four bytes are read as a
// little-endian uint32, multiplied by the golden ratio constant, and the
// well-mixed high bits [31:19] are masked to the table size. The historical
// polynomial hash ((s0<<6)^(s1<<4)^(s2<<2)^s3) exercised only ~3% of the
// buckets on English text, with average chain lengths around 30; the
// multiplicative hash spreads entries uniformly and has no dependency chain
// among the four byte loads.
//
// Because four bytes feed the hash, 3-byte matches whose fourth byte differs
// usually land in the wrong bucket and are lost. That is an accepted
// tradeoff; the decompressor accepts any valid tag stream.
//
// When fewer than four bytes remain, the next byte's value is used directly.
func hashIndex(src []byte, pos, mask int) int {
	if len(src)-pos < 4 {
		return int(src[pos]) & mask
	}

	h := binary.LittleEndian.Uint32(src[pos:]) * fibHashMultiplier
	return int(h>>19) & mask
}

// hashTableSize picks the bucket count for an input of slen bytes. A large
// table minimizes collisions but costs more to reset, and for a small input
// the reset dominates. Always a power of two, used as a bit mask.
func hashTableSize(slen int) int {
	switch {
	case slen < 128:
		return 512
	case slen < 256:
		return 1024
	case slen < 512:
		return 2048
	case slen < 1024:
		return 4096
	default:
		return maxHistoryLists
	}
}
