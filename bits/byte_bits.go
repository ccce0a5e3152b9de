package bits

import "math/bits"

var _ BitString = ByteBits{}

// ByteBits views a byte slice as a bit string without copying it.
type ByteBits struct {
	data []byte
	size uint32
}

func NewByteBits(data []byte) ByteBits {
	return ByteBits{data: data, size: uint32(len(data)) * 8}
}

func (b ByteBits) Size() uint32 {
	return b.size
}

// GetLCPLength finds the first differing byte and locates the differing bit
// inside it with TrailingZeros8.
func (b ByteBits) GetLCPLength(other BitString) uint32 {
	o, ok := other.(ByteBits)
	if !ok {
		mixedLayouts(b, other)
		return 0
	}

	limit := min(b.size, o.size)
	for i := uint32(0); i*8 < limit; i++ {
		if diff := b.data[i] ^ o.data[i]; diff != 0 {
			return min(i*8+uint32(bits.TrailingZeros8(diff)), limit)
		}
	}
	return limit
}

func (b ByteBits) HasPrefix(prefix BitString) bool {
	n := prefix.Size()
	if n == 0 {
		return true
	}
	if n > b.size {
		return false
	}
	return b.GetLCPLength(prefix) == n
}

func (b ByteBits) Equal(other BitString) bool {
	return b.size == other.Size() && b.GetLCPLength(other) == b.size
}

// Prefix shares the underlying bytes unless the cut falls inside a byte,
// in which case the last byte is copied and masked.
func (b ByteBits) Prefix(size uint32) BitString {
	if size >= b.size {
		return b
	}
	n := (size + 7) / 8
	if size%8 == 0 {
		return ByteBits{data: b.data[:n], size: size}
	}

	data := append([]byte(nil), b.data[:n]...)
	data[n-1] &= byte(1)<<(size%8) - 1
	return ByteBits{data: data, size: size}
}

func (b ByteBits) Hash() uint64 {
	return hashBits(b.size, b.data)
}
