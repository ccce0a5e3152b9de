package bits

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// hashBits hashes the bit count followed by the ceil(size/8) bytes holding
// the bits.
func hashBits(size uint32, data []byte) uint64 {
	var head [4]byte
	binary.LittleEndian.PutUint32(head[:], size)

	h := xxh3.New()
	_, _ = h.Write(head[:])
	_, _ = h.Write(data[:(size+7)/8])
	return h.Sum64()
}
