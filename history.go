// SPDX-License-Identifier: PostgreSQL
// Copyright (c) 2026 Nikolay Samokhvalov
// Source: github.com/NikolayS/pglz-compression

package pglz

// histEntry is one slot of the history ring. Entries are addressed by int16
// ring index; the sentinel is the index value -1, not a ring slot, so slot 0
// is a valid entry.
type histEntry struct {
	pos    int32  // absolute input position of this occurrence
	next   int16  // ring index of the next entry in the same bucket, -1 ends the chain
	hindex uint16 // bucket this entry is currently linked into
}

// history is the per-call match-finding state: a ring of historyEntries
// slots holding the last historySize+1 input positions, and one chain head
// per hash bucket.
//
// Invariants, maintained by add/unlink:
//   - following next from start[b] reaches only entries with hindex == b,
//     ending at -1; no entry is on two chains;
//   - the first historyEntries inserts fill fresh slots; afterwards every
//     insert recycles exactly one slot, unlinking it from its old chain
//     before relinking.
//
// Only start[:buckets] is reset between calls. The entries are set up as
// they are used: recycling touches only slots written during the current
// call, because recycled turns true only after the ring has wrapped.
type history struct {
	start    [maxHistoryLists]int16
	entries  [historyEntries]histEntry
	next     int // ring slot the next insert writes
	recycled bool
}

// reset empties the first buckets chain heads and rewinds the ring.
func (h *history) reset(buckets int) {
	for i := range h.start[:buckets] {
		h.start[i] = invalidEntry
	}
	h.next = 0
	h.recycled = false
}

// unlink splices entry i out of its current bucket chain by scanning from
// the chain head for its predecessor.
//
// The scan must never be truncated: abandoning it would leave the stale
// predecessor's next pointing at a slot that is about to join a different
// bucket, silently merging two chains. The worst case (all slots in one
// bucket) needs 4096 consecutive identical fingerprints — degenerate data
// that compresses trivially, so the amortized cost stays acceptable; under
// the multiplicative hash chains average below one entry.
func (h *history) unlink(i int16) {
	e := &h.entries[i]
	pp := &h.start[e.hindex]
	for *pp != invalidEntry {
		if *pp == i {
			*pp = e.next
			return
		}
		pp = &h.entries[*pp].next
	}

	// Entry not found in its recorded chain: the bookkeeping is wrong.
	// The slot is overwritten immediately after, so the damage cannot
	// propagate; nothing useful to do here.
}

// add records input position pos in the bucket selected by its fingerprint,
// recycling the oldest ring slot once the ring has wrapped.
func (h *history) add(src []byte, pos, mask int) {
	hindex := hashIndex(src, pos, mask)
	i := int16(h.next) //nolint:gosec // G115: next stays below historyEntries, checked below

	if h.recycled {
		h.unlink(i)
	}

	h.entries[i] = histEntry{
		pos:    int32(pos), //nolint:gosec // G115: input length is gated to int32 range
		next:   h.start[hindex],
		hindex: uint16(hindex), //nolint:gosec // G115: bucket count is at most maxHistoryLists
	}
	h.start[hindex] = i

	h.next++
	if h.next >= historyEntries {
		h.next = 0
		h.recycled = true
	}
}
