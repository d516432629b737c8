// SPDX-License-Identifier: PostgreSQL
// Copyright (c) 2026 Nikolay Samokhvalov
// Source: github.com/NikolayS/pglz-compression

package pglz

// expandBackRef copies length bytes starting off bytes back from outPos to
// dst[outPos:] and returns the new output position. The caller has validated
// 0 < off <= outPos and outPos+length <= len(dst).
//
// When off < length the regions overlap: the data repeats with period off,
// so the expansion copies off bytes (never overlapping), doubles off, and
// repeats until the final copy is non-overlapping. The copy source point
// stays at the original outPos-off throughout — after copying one period,
// two periods are available to copy at once, then four, and so on. "AB"
// repeated 100 times expands from two literals and one tag this way.
//
// A plain forward byte loop would produce the same bytes; the doubling form
// turns the common run-length case into a handful of bulk copies.
func expandBackRef(dst []byte, outPos, off, length int) int {
	for off < length {
		copy(dst[outPos:outPos+off], dst[outPos-off:outPos])
		length -= off
		outPos += off
		off += off
	}

	copy(dst[outPos:outPos+length], dst[outPos-off:outPos-off+length])
	return outPos + length
}
