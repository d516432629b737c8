// SPDX-License-Identifier: PostgreSQL
// Copyright (c) 2026 Nikolay Samokhvalov
// Source: github.com/NikolayS/pglz-compression

package pglz

import "math"

// Strategy controls when compression is attempted and how aggressively the
// match finder works. Strategies are immutable by convention; callers either
// use one of the predefined values or construct their own once and share it.
type Strategy struct {
	// MinInputSize and MaxInputSize gate the input length; compression is
	// refused outside [MinInputSize, MaxInputSize].
	MinInputSize int
	MaxInputSize int

	// MinCompRate is the required compression rate in percent (0-99). The
	// output must stay under len(input) * (100 - MinCompRate) / 100 bytes.
	MinCompRate int

	// FirstSuccessBy gives up if no back-reference has been emitted by the
	// time the output reaches this size. This lets the compressor fall out
	// quickly on pre-compressed or random input.
	FirstSuccessBy int

	// MatchSizeGood stops the chain lookup once a candidate match of this
	// length is found; MatchSizeDrop lowers it by this percentage after each
	// visited chain entry, so the finder settles for shorter matches the
	// further back it has to look.
	MatchSizeGood int
	MatchSizeDrop int

	// SkipAfterMatch trades compression ratio for throughput: after emitting
	// a match of length L, only the first matched byte is inserted into the
	// history and the cursor jumps by L. With the flag off every matched byte
	// is inserted, which is the historical behavior and keeps the output
	// byte-identical to it. The flag is read once per match.
	SkipAfterMatch bool
}

// StrategyDefault refuses tiny inputs, requires 25% savings and gives up
// after 1KB of output without a single match.
var StrategyDefault = &Strategy{
	MinInputSize:   32,
	MaxInputSize:   math.MaxInt32,
	MinCompRate:    25,
	FirstSuccessBy: 1024,
	MatchSizeGood:  128,
	MatchSizeDrop:  10,
}

// StrategyAlways compresses any input for which a single byte can be saved,
// and looks harder for good matches.
var StrategyAlways = &Strategy{
	MinInputSize:   0,
	MaxInputSize:   math.MaxInt32,
	MinCompRate:    0,
	FirstSuccessBy: math.MaxInt32,
	MatchSizeGood:  128,
	MatchSizeDrop:  6,
}

// StrategySkip is StrategyDefault with SkipAfterMatch enabled: 2-10x faster
// on compressible data (logs, SQL dumps, JSON) at a cost of a few percentage
// points of ratio. Not suitable when compression ratio is critical.
var StrategySkip = &Strategy{
	MinInputSize:   32,
	MaxInputSize:   math.MaxInt32,
	MinCompRate:    25,
	FirstSuccessBy: 1024,
	MatchSizeGood:  128,
	MatchSizeDrop:  10,
	SkipAfterMatch: true,
}
