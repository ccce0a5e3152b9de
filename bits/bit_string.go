package bits

import "PrefixBench/errutil"

// BitString is a bit sequence stored least significant bit first within
// each byte. A byte slice of length n is a BitString of n*8 bits, so a byte
// prefix is also a bit prefix.
//
// Both operands of GetLCPLength, HasPrefix and Equal must share a layout.
type BitString interface {
	Size() uint32
	GetLCPLength(other BitString) uint32
	HasPrefix(prefix BitString) bool
	// Prefix returns the first size bits, or the whole string when it is
	// shorter.
	Prefix(size uint32) BitString
	Equal(other BitString) bool
	// Hash covers the size and the bits, so equal strings of either layout
	// hash equally.
	Hash() uint64
}

// Layout selects the in-memory representation of a BitString.
type Layout int

const (
	// ByteLayout keeps the input bytes and compares a byte at a time.
	ByteLayout Layout = iota
	// WordLayout packs the input into little-endian uint64 words.
	WordLayout
)

func New(layout Layout, data []byte) BitString {
	switch layout {
	case WordLayout:
		return NewWordBits(data)
	default:
		errutil.BugOn(layout != ByteLayout, "unknown bit string layout %d", layout)
		return NewByteBits(data)
	}
}

func mixedLayouts(a, b BitString) {
	errutil.Bug("bits: mixed layouts %T and %T", a, b)
}
