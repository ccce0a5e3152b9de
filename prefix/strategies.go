package prefix

import (
	"PrefixBench/bits"
	"bytes"
	"unicode/utf8"

	iradix "github.com/hashicorp/go-immutable-radix"
	"github.com/zeebo/xxh3"
)

// IndexAtZero searches for the first occurrence of needle and checks that it
// sits at position 0. It scans the whole haystack when needle is not a prefix.
func IndexAtZero(haystack, needle []byte) (bool, error) {
	return bytes.Index(haystack, needle) == 0, nil
}

// SliceEqual compares the first len(needle) bytes of haystack (or all of it
// when shorter) with needle.
func SliceEqual(haystack, needle []byte) (bool, error) {
	n := min(len(needle), len(haystack))
	return bytes.Equal(haystack[:n], needle), nil
}

// BoundedCompare orders the first len(needle) bytes of haystack against
// needle and then tests the ordering value with looseGreaterOrEqual(c, needle),
// an integer against a byte string. The outcome is not a prefix test; the
// strategy is kept for its cost profile and its results are not relied on.
func BoundedCompare(haystack, needle []byte) (bool, error) {
	n := min(len(needle), len(haystack))
	c := bytes.Compare(haystack[:n], needle)
	return looseGreaterOrEqual(c, needle), nil
}

// Precheck wraps f with a first-byte short circuit. Empty operands yield
// ErrEmptyOperand.
func Precheck(f Func) Func {
	return func(haystack, needle []byte) (bool, error) {
		if len(haystack) == 0 || len(needle) == 0 {
			return false, ErrEmptyOperand
		}
		if haystack[0] != needle[0] {
			return false, nil
		}
		return f(haystack, needle)
	}
}

// RuneSliceEqual takes as many runes from haystack as needle holds and
// compares the resulting bytes with needle. Invalid UTF-8 bytes count as one
// rune each, so a needle that ends inside a multi-byte sequence of haystack
// does not match even when it is a byte prefix.
func RuneSliceEqual(haystack, needle []byte) (bool, error) {
	count := utf8.RuneCount(needle)
	off := 0
	for i := 0; i < count && off < len(haystack); i++ {
		_, size := utf8.DecodeRune(haystack[off:])
		off += size
	}
	return bytes.Equal(haystack[:off], needle), nil
}

// RuneIndexAtZero walks haystack rune by rune looking for needle and checks
// that the first hit is at rune position 0.
func RuneIndexAtZero(haystack, needle []byte) (bool, error) {
	return runeIndex(haystack, needle) == 0, nil
}

func runeIndex(haystack, needle []byte) int {
	pos := 0
	for i := 0; ; pos++ {
		if bytes.HasPrefix(haystack[i:], needle) {
			return pos
		}
		if i == len(haystack) {
			return -1
		}
		_, size := utf8.DecodeRune(haystack[i:])
		i += size
	}
}

// StdHasPrefix is the standard library's bytes.HasPrefix.
func StdHasPrefix(haystack, needle []byte) (bool, error) {
	return bytes.HasPrefix(haystack, needle), nil
}

// BitStringLCP converts both operands to byte-backed bit strings and compares
// their longest common prefix with the needle length.
func BitStringLCP(haystack, needle []byte) (bool, error) {
	return bits.New(bits.ByteLayout, haystack).HasPrefix(bits.New(bits.ByteLayout, needle)), nil
}

// WordCompare packs both operands into 64-bit words and compares a word at a
// time, masking the last one.
func WordCompare(haystack, needle []byte) (bool, error) {
	return bits.New(bits.WordLayout, haystack).HasPrefix(bits.New(bits.WordLayout, needle)), nil
}

// BitStringPrefixEqual cuts the haystack bit string to the needle's size and
// tests the two for equality.
func BitStringPrefixEqual(haystack, needle []byte) (bool, error) {
	h := bits.New(bits.ByteLayout, haystack)
	n := bits.New(bits.ByteLayout, needle)
	return h.Prefix(n.Size()).Equal(n), nil
}

// WordPrefixHash compares the hash of the needle's word-packed bits with the
// hash of the haystack cut to the same size.
func WordPrefixHash(haystack, needle []byte) (bool, error) {
	if len(needle) > len(haystack) {
		return false, nil
	}
	h := bits.New(bits.WordLayout, haystack)
	n := bits.New(bits.WordLayout, needle)
	return h.Prefix(n.Size()).Hash() == n.Hash(), nil
}

// Digest compares xxh3 hashes of needle and of the same-length head of
// haystack. Distinct inputs collide with probability 2^-64.
func Digest(haystack, needle []byte) (bool, error) {
	if len(needle) > len(haystack) {
		return false, nil
	}
	return xxh3.Hash(haystack[:len(needle)]) == xxh3.Hash(needle), nil
}

// RadixLongestPrefix stores needle in an immutable radix tree and asks the
// tree for the longest stored key that prefixes haystack.
func RadixLongestPrefix(haystack, needle []byte) (bool, error) {
	tree, _, _ := iradix.New().Insert(needle, struct{}{})
	_, _, ok := tree.Root().LongestPrefix(haystack)
	return ok, nil
}
