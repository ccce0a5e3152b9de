package bits

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/exp/slices"
)

var _ BitString = WordBits{}

// WordBits packs bits into uint64 words. Bits past size are always zero.
type WordBits struct {
	words []uint64
	size  uint32
}

func NewWordBits(data []byte) WordBits {
	words := make([]uint64, (len(data)+7)/8)
	full := len(data) / 8
	for i := 0; i < full; i++ {
		words[i] = binary.LittleEndian.Uint64(data[i*8:])
	}
	for i := full * 8; i < len(data); i++ {
		words[full] |= uint64(data[i]) << (8 * (i % 8))
	}
	return WordBits{words: words, size: uint32(len(data)) * 8}
}

func (w WordBits) Size() uint32 {
	return w.size
}

func (w WordBits) GetLCPLength(other BitString) uint32 {
	o, ok := other.(WordBits)
	if !ok {
		mixedLayouts(w, other)
		return 0
	}

	limit := min(w.size, o.size)
	for i := uint32(0); i*64 < limit; i++ {
		if diff := w.words[i] ^ o.words[i]; diff != 0 {
			return min(i*64+uint32(bits.TrailingZeros64(diff)), limit)
		}
	}
	return limit
}

// HasPrefix compares whole words and masks the last one, which skips
// locating the first differing bit.
func (w WordBits) HasPrefix(prefix BitString) bool {
	p, ok := prefix.(WordBits)
	if !ok {
		mixedLayouts(w, prefix)
		return false
	}
	if p.size == 0 {
		return true
	}
	if p.size > w.size {
		return false
	}

	last := (p.size - 1) / 64
	if !slices.Equal(w.words[:last], p.words[:last]) {
		return false
	}
	mask := lowMask(p.size)
	return w.words[last]&mask == p.words[last]&mask
}

func (w WordBits) Equal(other BitString) bool {
	o, ok := other.(WordBits)
	if !ok {
		mixedLayouts(w, other)
		return false
	}
	return w.size == o.size && slices.Equal(w.words, o.words)
}

func (w WordBits) Prefix(size uint32) BitString {
	if size >= w.size {
		return w
	}
	words := append([]uint64(nil), w.words[:(size+63)/64]...)
	if len(words) > 0 {
		words[len(words)-1] &= lowMask(size)
	}
	return WordBits{words: words, size: size}
}

func (w WordBits) Hash() uint64 {
	data := make([]byte, 0, len(w.words)*8)
	for _, word := range w.words {
		data = binary.LittleEndian.AppendUint64(data, word)
	}
	return hashBits(w.size, data)
}

// lowMask keeps the bits of the last word that belong to a string of size
// bits. size must be positive.
func lowMask(size uint32) uint64 {
	if size%64 == 0 {
		return ^uint64(0)
	}
	return uint64(1)<<(size%64) - 1
}
