package pglz

import (
	"testing"

	"github.com/cespare/xxhash/v2"
)

// The compressed stream is an on-disk format: two builds (or two code paths)
// that claim compatibility must produce byte-for-byte equal output. These
// tests pin that down with stream digests.

func TestBitStable_CompressIsDeterministic(t *testing.T) {
	for inputName, data := range corpusInputs() {
		for _, strategy := range []*Strategy{StrategyDefault, StrategyAlways, StrategySkip} {
			a, err := Compress(data, strategy)
			if err != nil {
				t.Fatalf("%s: Compress failed: %v", inputName, err)
			}
			b, err := Compress(data, strategy)
			if err != nil {
				t.Fatalf("%s: Compress failed: %v", inputName, err)
			}
			if xxhash.Sum64(a) != xxhash.Sum64(b) {
				t.Fatalf("%s: two runs produced different streams", inputName)
			}
		}
	}
}

func TestBitStable_CompressIntoMatchesCompress(t *testing.T) {
	for inputName, data := range corpusInputs() {
		alloc, err := Compress(data, StrategyAlways)
		if err != nil {
			t.Fatalf("%s: Compress failed: %v", inputName, err)
		}

		dst := make([]byte, MaxOutput(len(data)))
		n, err := CompressInto(data, dst, StrategyAlways)
		if err != nil {
			t.Fatalf("%s: CompressInto failed: %v", inputName, err)
		}

		if xxhash.Sum64(alloc) != xxhash.Sum64(dst[:n]) {
			t.Fatalf("%s: CompressInto stream differs from Compress", inputName)
		}
	}
}

func TestBitStable_SkipFlagOffMatchesReference(t *testing.T) {
	// A strategy with SkipAfterMatch explicitly false must be byte-identical
	// to the built-in it copies: the flag's off path is the reference path.
	flagOff := *StrategySkip
	flagOff.SkipAfterMatch = false

	for inputName, data := range corpusInputs() {
		ref, err := Compress(data, StrategyDefault)
		if err != nil {
			t.Fatalf("%s: Compress failed: %v", inputName, err)
		}
		got, err := Compress(data, &flagOff)
		if err != nil {
			t.Fatalf("%s: Compress failed: %v", inputName, err)
		}
		if xxhash.Sum64(ref) != xxhash.Sum64(got) {
			t.Fatalf("%s: flag-off stream differs from reference", inputName)
		}
	}
}

func TestBitStable_MatchLenWordEqualsScalar(t *testing.T) {
	// The word-at-a-time extension must agree with the byte loop on the
	// first difference, for every alignment of that difference.
	rng := newXorshift64(99)
	base := make([]byte, 512)
	rng.fill(base)

	for diffAt := range 70 {
		a := append([]byte(nil), base...)
		b := append([]byte(nil), base...)
		if diffAt < len(b) {
			b[diffAt] ^= 0x40
		}

		for _, max := range []int{0, 1, 7, 8, 9, 15, 16, 17, 63, 64, 65, 256, 512} {
			want := matchLenScalar(a, b, max)
			if got := matchLen(a, b, max); got != want {
				t.Fatalf("diffAt=%d max=%d: word=%d scalar=%d", diffAt, max, got, want)
			}
			if want != min(diffAt, max) {
				t.Fatalf("diffAt=%d max=%d: scalar=%d, want %d", diffAt, max, want, min(diffAt, max))
			}
		}
	}
}
