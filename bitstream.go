// SPDX-License-Identifier: PostgreSQL
// Copyright (c) 2026 Nikolay Samokhvalov
// Source: github.com/NikolayS/pglz-compression

package pglz

// ctrlWriter emits the pglz byte stream: groups of one control byte followed
// by up to eight items whose kind is encoded bit-wise in the control byte,
// LSB first (literal = 0, back-reference = 1).
//
// The control byte's position is reserved when the first item of a group is
// written; its bits accumulate in bits and are stored into the reserved slot
// when the group fills or when flush is called. mask selects the bit for the
// next item; mask == 0 means a new control byte must be reserved.
type ctrlWriter struct {
	out  []byte
	pos  int  // next write position in out
	ctrl int  // reserved control byte position, -1 before the first group
	bits byte // pending control bits for out[ctrl]
	mask byte // control bit for the next item
}

// reserve stores the completed control byte and reserves a slot for the next
// one when the current group is full (or before the first item).
func (w *ctrlWriter) reserve() {
	if w.mask == 0 {
		if w.ctrl >= 0 {
			w.out[w.ctrl] = w.bits
		}
		w.ctrl = w.pos
		w.pos++
		w.bits = 0
		w.mask = 1
	}
}

// literal emits one uncompressed byte; its control bit stays 0.
func (w *ctrlWriter) literal(b byte) {
	w.reserve()
	w.out[w.pos] = b
	w.pos++
	w.mask <<= 1
}

// tag emits a back-reference of the given length and offset and sets its
// control bit. Lengths 3-17 fit the 2-byte form; 18-273 take the 3-byte form
// with the length nibble escaped to 0x0f. The writer is agnostic to the
// bounds; the match finder guarantees length in [3, 273] and offset in
// [1, 4095].
func (w *ctrlWriter) tag(length, off int) {
	w.reserve()
	w.bits |= w.mask
	w.mask <<= 1

	if length > maxShortLen {
		w.out[w.pos] = byte((off&0xf00)>>4) | 0x0f
		w.out[w.pos+1] = byte(off)
		w.out[w.pos+2] = byte(length - 18)
		w.pos += 3
	} else {
		w.out[w.pos] = byte((off&0xf00)>>4) | byte(length-minMatch)
		w.out[w.pos+1] = byte(off)
		w.pos += 2
	}
}

// flush stores the pending control byte of a partially filled final group.
func (w *ctrlWriter) flush() {
	if w.ctrl >= 0 {
		w.out[w.ctrl] = w.bits
	}
}
