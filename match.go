// SPDX-License-Identifier: PostgreSQL
// Copyright (c) 2026 Nikolay Samokhvalov
// Source: github.com/NikolayS/pglz-compression

package pglz

import (
	"bytes"
	"encoding/binary"
)

// findMatch walks the bucket chain for the input position pos and returns
// the longest back-reference found, or ok == false if nothing of at least
// minMatch bytes exists within the window.
//
// The caller must guarantee that at least 4 bytes remain at pos. Every
// candidate position p satisfies 0 <= p < pos, so with pos <= len(src)-4
// both 4-byte fast-reject loads are in bounds.
//
// Three conditions stop the walk: a match of at least goodMatch bytes, the
// end of the chain, and a candidate already too far back to encode. After
// each visited entry goodMatch decays by goodDrop percent, so the finder
// settles for shorter matches the further back it looks. maxChain bounds the
// walk against pathological bucket collisions.
func findMatch(h *history, src []byte, pos, goodMatch, goodDrop, mask int) (length, offset int, ok bool) {
	bestLen := 0
	bestOff := 0
	chainLen := 0

	probe := binary.LittleEndian.Uint32(src[pos:])
	e := h.start[hashIndex(src, pos, mask)]

	for e != invalidEntry {
		hp := int(h.entries[e].pos)

		// Stop once the offset reaches 0x0fff, so 4094 is the largest
		// offset emitted.
		off := pos - hp
		if off >= 0x0fff {
			break
		}

		// 4-byte fast reject: a candidate that does not share the full
		// fingerprint window is skipped without touching its tail. This
		// sacrifices rare 3-byte matches whose fourth byte differs.
		if binary.LittleEndian.Uint32(src[hp:]) == probe {
			thisLen := 4
			ip := pos + 4
			mp := hp + 4
			viable := true

			if bestLen >= 16 {
				// Speculative block check: only candidates at least as long
				// as the current best are interesting, so compare bestLen
				// bytes at once and extend from there on success. bestLen
				// was bounded by the end of input when it was found, so the
				// compared regions are in bounds on both sides.
				if bytes.Equal(src[ip:pos+bestLen], src[mp:hp+bestLen]) {
					thisLen = bestLen
					ip = pos + bestLen
					mp = hp + bestLen
				} else {
					viable = false
				}
			}

			if viable {
				limit := maxMatch - thisLen
				if rem := len(src) - ip; rem < limit {
					limit = rem
				}
				thisLen += matchLen(src[ip:], src[mp:], limit)

				if thisLen > bestLen {
					bestLen = thisLen
					bestOff = off
				}
			}
		}

		e = h.entries[e].next

		chainLen++
		if chainLen >= maxChain {
			break
		}

		// Be happy with lesser matches the more entries we visited; skip
		// the arithmetic at the end of the chain.
		if e != invalidEntry {
			if bestLen >= goodMatch {
				break
			}
			goodMatch -= goodMatch * goodDrop / 100
		}
	}

	// Only matches that save at least one byte are worth a tag.
	if bestLen > 2 {
		return bestLen, bestOff, true
	}

	return 0, 0, false
}
