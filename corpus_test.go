package pglz

import (
	"bytes"
	"fmt"
)

// xorshift64 generates the deterministic test corpora; a fixed seed makes
// every input reproducible byte for byte.
type xorshift64 struct{ state uint64 }

func newXorshift64(seed uint64) *xorshift64 {
	if seed == 0 {
		seed = 1
	}
	return &xorshift64{state: seed}
}

func (r *xorshift64) next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

func (r *xorshift64) fill(b []byte) {
	for i := range b {
		b[i] = byte(r.next())
	}
}

// genRandom returns n incompressible bytes.
func genRandom(n int) []byte {
	b := make([]byte, n)
	newXorshift64(42).fill(b)
	return b
}

var englishWords = []string{
	"the ", "quick ", "brown ", "fox ", "jumps ", "over ", "lazy ", "dog ",
	"and ", "then ", "runs ", "away ", "from ", "here ", "to ", "there ",
	"with ", "some ", "data ", "that ", "is ", "quite ", "compressible ",
	"in ", "nature ", "because ", "it ", "contains ", "many ", "repeated ",
	"words ", "and ", "phrases ", "which ", "help ", "the ", "compression ",
	"algorithm ", "find ", "matches ", "in ", "its ", "history ", "table ",
	"PostgreSQL ", "is ", "an ", "advanced ", "open ", "source ", "relational ",
	"database ", "management ", "system ", "that ", "supports ", "both ",
	"SQL ", "and ", "JSON ", "querying ", "for ", "all ", "workloads ",
}

// genEnglish returns n bytes of English-like word soup: sequential words
// with occasional pseudo-random restarts.
func genEnglish(n int) []byte {
	rng := newXorshift64(42)
	var buf bytes.Buffer
	buf.Grow(n)
	widx := 0
	for buf.Len() < n {
		if widx >= len(englishWords) {
			widx = 0
		}
		buf.WriteString(englishWords[widx])
		widx++
		if rng.next()&0x7 == 0 {
			widx = int(rng.next() % uint64(len(englishWords)))
		}
	}
	return buf.Bytes()[:n]
}

// genRedundant returns n bytes of a 16-byte repeating pattern.
func genRedundant(n int) []byte {
	b := make([]byte, n)
	pattern := []byte("ABCDEFGHIJKLMNOP")
	for i := range b {
		b[i] = pattern[i%16]
	}
	return b
}

// genPgbench returns n bytes shaped like pgbench_accounts rows:
// "aid|bid|abalance|<84 spaces>\n".
func genPgbench(n int) []byte {
	rng := newXorshift64(42)
	var buf bytes.Buffer
	buf.Grow(n + 128)
	aid := 1
	for buf.Len() < n {
		bid := (aid-1)/100000 + 1
		abalance := int(rng.next()%200001) - 100000
		fmt.Fprintf(&buf, "%d|%d|%d|", aid, bid, abalance)
		buf.Write(bytes.Repeat([]byte{' '}, 84))
		buf.WriteByte('\n')
		aid++
	}
	return buf.Bytes()[:n]
}

// genSQL returns n bytes of repetitive INSERT statements.
func genSQL(n int) []byte {
	rng := newXorshift64(42)
	var buf bytes.Buffer
	buf.Grow(n + 128)
	aid := 1
	for buf.Len() < n {
		fmt.Fprintf(&buf, "INSERT INTO pgbench_accounts (aid, bid, abalance, filler) VALUES (%d, %d, %d, '');\n",
			aid, (aid-1)/100000+1, int(rng.next()%200001)-100000)
		aid++
	}
	return buf.Bytes()[:n]
}

// genJSON returns n bytes of repetitive JSON rows.
func genJSON(n int) []byte {
	rng := newXorshift64(42)
	var buf bytes.Buffer
	buf.Grow(n + 128)
	aid := 1
	for buf.Len() < n {
		fmt.Fprintf(&buf, `{"aid": %d, "bid": %d, "abalance": %d, "filler": "          "}`,
			aid, (aid-1)/100000+1, int(rng.next()%200001)-100000)
		buf.WriteByte('\n')
		aid++
	}
	return buf.Bytes()[:n]
}
