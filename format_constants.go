// SPDX-License-Identifier: PostgreSQL
// Copyright (c) 2026 Nikolay Samokhvalov
// Source: github.com/NikolayS/pglz-compression

package pglz

// Tag format bounds. The 12-bit offset field and the 4-bit length nibble
// (with 0x0f escaping to a third tag byte) dictate every limit below.
const (
	minMatch    = 3    // smallest length a tag can carry
	maxMatch    = 273  // 18 + 255 via the 3-byte tag
	maxShortLen = 17   // longest match a 2-byte tag can carry
	maxOffset   = 4095 // 12-bit offset; 0 is invalid
)

// History dictionary parameters.
const (
	historySize     = 4096            // one window; the ring keeps historySize+1 positions
	historyEntries  = historySize + 1 // ring slots; slot 0 is a valid entry
	maxHistoryLists = 8192            // bucket count for the largest inputs; power of two
	maxChain        = 256             // chain traversal bound per lookup
	invalidEntry    = -1              // chain terminator / empty bucket
)

// fibHashMultiplier is the golden ratio scaled to 2^32 (Knuth TAOCP vol 3).
const fibHashMultiplier = 2654435761

// Index width checks: bucket numbers must fit uint16 and ring indexes must
// fit int16 with -1 reserved. Constant conversions fail to compile on
// overflow.
const (
	_ = uint16(maxHistoryLists - 1)
	_ = int16(historySize)
)
