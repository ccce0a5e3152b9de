package bench

import (
	"PrefixBench/errutil"
	"PrefixBench/utils"
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Batch maps needles to haystacks and remembers the order in which needles
// were first inserted. Re-inserting a needle replaces its haystack in place.
type Batch struct {
	order     []string
	haystacks map[string][]byte
}

func NewBatch(capacity int) *Batch {
	return &Batch{
		order:     make([]string, 0, capacity),
		haystacks: make(map[string][]byte, capacity),
	}
}

func (b *Batch) Put(tc TestCase) {
	key := string(tc.Needle)
	if _, ok := b.haystacks[key]; !ok {
		b.order = append(b.order, key)
	}
	b.haystacks[key] = tc.Haystack
	errutil.BugOn(len(b.order) != len(b.haystacks), "batch order out of sync: %d != %d", len(b.order), len(b.haystacks))
}

func (b *Batch) Len() int {
	return len(b.order)
}

func (b *Batch) Get(needle []byte) ([]byte, bool) {
	h, ok := b.haystacks[string(needle)]
	return h, ok
}

// Cases returns the batch contents in insertion order.
func (b *Batch) Cases() []TestCase {
	cases := make([]TestCase, len(b.order))
	for i, key := range b.order {
		cases[i] = TestCase{Haystack: b.haystacks[key], Needle: []byte(key)}
	}
	return cases
}

// Digest fingerprints the ordered contents with xxh3. Batches generated from
// the same seed have equal digests.
func (b *Batch) Digest() uint64 {
	h := xxh3.New()
	var lens [8]byte
	for _, key := range b.order {
		haystack := b.haystacks[key]
		binary.LittleEndian.PutUint32(lens[:4], uint32(len(key)))
		binary.LittleEndian.PutUint32(lens[4:], uint32(len(haystack)))
		h.Write(lens[:])
		h.WriteString(key)
		h.Write(haystack)
	}
	return h.Sum64()
}

// Size reports the bytes held by the batch.
func (b *Batch) Size() utils.SizeReport {
	var haystackBytes, needleBytes int
	for _, key := range b.order {
		needleBytes += len(key)
		haystackBytes += len(b.haystacks[key])
	}
	return utils.SizeReport{
		Name:       "batch",
		TotalBytes: haystackBytes + needleBytes,
		Children: []utils.SizeReport{
			{Name: "haystacks", TotalBytes: haystackBytes},
			{Name: "needles", TotalBytes: needleBytes},
		},
	}
}
