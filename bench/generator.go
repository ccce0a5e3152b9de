package bench

import (
	"PrefixBench/errutil"
	"math/rand"
)

const (
	haystackMinLen = 1
	haystackMaxLen = 100
	needleMinLen   = 1
	needleMaxLen   = 20
)

// TestCase is one (haystack, needle) pair. The needle may or may not be a
// prefix of the haystack.
type TestCase struct {
	Haystack []byte
	Needle   []byte
}

// Generator produces random test cases from a seeded source. Two generators
// with the same seed produce the same cases.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// RandomBytes returns a random byte string whose length is uniform in
// [minLen, maxLen].
func (g *Generator) RandomBytes(minLen, maxLen int) []byte {
	errutil.BugOn(minLen < 0 || maxLen < minLen, "bad length range [%d, %d]", minLen, maxLen)
	buf := make([]byte, minLen+g.rng.Intn(maxLen-minLen+1))
	g.rng.Read(buf)
	return buf
}

// TestCase returns a haystack of 1..100 bytes. Half of the time the needle
// is a non-empty prefix of it, otherwise an unrelated string of 1..20 bytes.
func (g *Generator) TestCase() TestCase {
	haystack := g.RandomBytes(haystackMinLen, haystackMaxLen)
	var needle []byte
	if g.rng.Intn(2) == 1 {
		needle = haystack[:1+g.rng.Intn(len(haystack))]
	} else {
		needle = g.RandomBytes(needleMinLen, needleMaxLen)
	}
	return TestCase{Haystack: haystack, Needle: needle}
}

// Batch generates count test cases keyed by needle. Colliding needles
// overwrite each other, so the batch may hold fewer than count entries.
func (g *Generator) Batch(count int) *Batch {
	b := NewBatch(count)
	for i := 0; i < count; i++ {
		b.Put(g.TestCase())
	}
	return b
}
