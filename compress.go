// SPDX-License-Identifier: PostgreSQL
// Copyright (c) 2026 Nikolay Samokhvalov
// Source: github.com/NikolayS/pglz-compression

package pglz

import "math"

// MaxOutput returns the destination size CompressInto requires for a source
// of slen bytes. The main loop checks its output budget once per item and an
// item is at most four bytes (a control byte plus a 3-byte tag), hence the
// slop.
func MaxOutput(slen int) int {
	return slen + 4
}

// Compress compresses src under the given strategy and returns the
// compressed stream. A nil strategy means StrategyDefault. ErrIncompressible
// means the input is not worth compressing under this strategy and should be
// stored verbatim.
func Compress(src []byte, strategy *Strategy) ([]byte, error) {
	dst := make([]byte, MaxOutput(len(src)))
	n, err := CompressInto(src, dst, strategy)
	if err != nil {
		return nil, err
	}

	return dst[:n:n], nil
}

// CompressInto compresses src into dst and returns the number of bytes
// written. dst must be at least MaxOutput(len(src)) bytes; on any error the
// contents of dst are undefined.
func CompressInto(src, dst []byte, strategy *Strategy) (int, error) {
	if strategy == nil {
		strategy = StrategyDefault
	}
	if len(dst) < MaxOutput(len(src)) {
		return 0, ErrDestTooSmall
	}

	slen := len(src)

	// The strategy may forbid compression outright or for this input size.
	if strategy.MatchSizeGood <= 0 ||
		slen < strategy.MinInputSize ||
		slen > strategy.MaxInputSize {
		return 0, ErrIncompressible
	}

	// Limit the match parameters to the supported range.
	goodMatch := strategy.MatchSizeGood
	if goodMatch > maxMatch {
		goodMatch = maxMatch
	} else if goodMatch < 17 {
		goodMatch = 17
	}

	goodDrop := min(max(strategy.MatchSizeDrop, 0), 100)
	needRate := min(max(strategy.MinCompRate, 0), 99)

	// Maximum result size allowed by the strategy: the input size minus the
	// wanted savings. This is <= slen, so the budget checks below also keep
	// the writer inside dst.
	var resultMax int
	if slen > math.MaxInt32/100 {
		resultMax = (slen / 100) * (100 - needRate)
	} else {
		resultMax = slen * (100 - needRate) / 100
	}

	hashsz := hashTableSize(slen)
	mask := hashsz - 1

	hist := acquireHistory()
	defer releaseHistory(hist)
	hist.reset(hashsz)

	w := ctrlWriter{out: dst, ctrl: -1}
	dp := 0
	dend := slen
	foundMatch := false
	skipAfterMatch := strategy.SkipAfterMatch

	// Main loop: runs while at least 4 bytes remain, so the finder's 4-byte
	// fast reject never reads past the end of the input.
	for dp < dend-3 {
		// Budget checks, once per item.
		if w.pos >= resultMax {
			return 0, ErrIncompressible
		}
		if !foundMatch && w.pos >= strategy.FirstSuccessBy {
			return 0, ErrIncompressible
		}

		if matchLength, matchOff, ok := findMatch(hist, src, dp, goodMatch, goodDrop, mask); ok {
			w.tag(matchLength, matchOff)

			if skipAfterMatch {
				// Insert only the first matched byte, then jump the cursor
				// by the full match length. Clamped in case the match
				// reaches into the 4-byte tail threshold.
				hist.add(src, dp, mask)
				dp += matchLength
				if dp > dend {
					dp = dend
				}
			} else {
				for range matchLength {
					hist.add(src, dp, mask)
					dp++
				}
			}

			foundMatch = true
		} else {
			w.literal(src[dp])
			hist.add(src, dp, mask)
			dp++
		}
	}

	// Tail: the last 0-3 bytes go out as literals.
	for dp < dend {
		if w.pos >= resultMax {
			return 0, ErrIncompressible
		}

		w.literal(src[dp])
		hist.add(src, dp, mask)
		dp++
	}

	w.flush()
	if w.pos >= resultMax {
		return 0, ErrIncompressible
	}

	return w.pos, nil
}
