// SPDX-License-Identifier: PostgreSQL
// Copyright (c) 2026 Nikolay Samokhvalov
// Source: github.com/NikolayS/pglz-compression

package pglz

import (
	"encoding/binary"
	"math/bits"
)

// matchLen returns the length of the common prefix of a and b, up to max
// bytes. Eight bytes are compared per step; on a mismatch the XOR of the two
// words locates the first differing byte via its trailing zero count. The
// remaining tail falls through to the scalar loop.
//
// A full-width load happens only while n+8 <= max, so neither side is read
// past max. The result is the exact first-difference index, so replacing the
// scalar loop with this path cannot change compressor output.
func matchLen(a, b []byte, max int) int {
	n := 0
	for n+8 <= max {
		diff := binary.LittleEndian.Uint64(a[n:]) ^ binary.LittleEndian.Uint64(b[n:])
		if diff != 0 {
			return n + bits.TrailingZeros64(diff)>>3
		}
		n += 8
	}

	return n + matchLenScalar(a[n:], b[n:], max-n)
}

// matchLenScalar is the byte-at-a-time reference for matchLen. It is the
// tail of the word loop and stands alone so the two can be checked against
// each other.
func matchLenScalar(a, b []byte, max int) int {
	for i := range max {
		if a[i] != b[i] {
			return i
		}
	}

	return max
}
