package prefix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exact lists strategies that are true prefix tests for arbitrary bytes.
var exact = []string{
	"index",
	"slice",
	"index with precheck",
	"slice with precheck",
	"rune index",
	"rune index (decoded)",
	"bytes.HasPrefix",
	"bitstring lcp",
	"word compare",
	"bitstring prefix equal",
	"word prefix hash",
	"xxh3 digest",
	"radix longest prefix",
}

func mustSelect(t testing.TB, names ...string) Registry {
	t.Helper()
	r, err := Extended().Select(names...)
	require.NoError(t, err)
	return r
}

func randomBytes(r *rand.Rand, minLen, maxLen int) []byte {
	buf := make([]byte, minLen+r.Intn(maxLen-minLen+1))
	r.Read(buf)
	return buf
}

func TestExactStrategies_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for _, s := range mustSelect(t, exact...) {
		t.Run(s.Name, func(t *testing.T) {
			for i := 0; i < 500; i++ {
				needle := randomBytes(r, 1, 20)
				suffix := randomBytes(r, 0, 80)
				haystack := append(append([]byte(nil), needle...), suffix...)

				ok, err := s.Check.HasPrefix(haystack, needle)
				require.NoError(t, err)
				require.True(t, ok, "needle %x haystack %x", needle, haystack)

				cut := 1 + r.Intn(len(haystack))
				mismatched := append(append([]byte(nil), haystack[:cut-1]...), haystack[cut-1]^0xff)
				ok, err = s.Check.HasPrefix(haystack, mismatched)
				require.NoError(t, err)
				require.False(t, ok, "needle %x haystack %x", mismatched, haystack)
			}
		})
	}
}

func TestExactStrategies_NeedleLongerThanHaystack(t *testing.T) {
	for _, s := range mustSelect(t, exact...) {
		ok, err := s.Check.HasPrefix([]byte("he"), []byte("hello"))
		require.NoError(t, err, s.Name)
		require.False(t, ok, s.Name)
	}
}

func TestRuneSliceEqual(t *testing.T) {
	cases := []struct {
		haystack, needle string
		want             bool
	}{
		{"hello", "he", true},
		{"hello", "hello", true},
		{"hello", "hex", false},
		{"he", "hello", false},
		{"żółw", "żó", true},
		{"żółw", "żo", false},
		{"€uro", "€", true},
		// A byte prefix that cuts a rune in half is not a rune prefix.
		{"€uro", "\xe2\x82", false},
		{"\xff\xfeabc", "\xff\xfe", true},
	}
	for _, c := range cases {
		got, err := RuneSliceEqual([]byte(c.haystack), []byte(c.needle))
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "RuneSliceEqual(%q, %q)", c.haystack, c.needle)
	}
}

func TestRuneIndex(t *testing.T) {
	require.Equal(t, 0, runeIndex([]byte("żółw"), []byte("żó")))
	require.Equal(t, 2, runeIndex([]byte("żółw"), []byte("łw")))
	require.Equal(t, 3, runeIndex([]byte("żółw"), []byte("w")))
	require.Equal(t, -1, runeIndex([]byte("żółw"), []byte("x")))
	require.Equal(t, 0, runeIndex([]byte("abc"), nil))
}

func TestPrecheck_MatchesBase(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	pairs := []struct {
		base    Func
		checked Func
	}{
		{IndexAtZero, Precheck(IndexAtZero)},
		{SliceEqual, Precheck(SliceEqual)},
		{BoundedCompare, Precheck(BoundedCompare)},
	}

	for i := 0; i < 2_000; i++ {
		haystack := randomBytes(r, 1, 100)
		var needle []byte
		if r.Intn(2) == 1 {
			needle = haystack[:1+r.Intn(len(haystack))]
		} else {
			needle = randomBytes(r, 1, 20)
		}

		for _, p := range pairs[:2] {
			want, err := p.base(haystack, needle)
			require.NoError(t, err)
			got, err := p.checked(haystack, needle)
			require.NoError(t, err)
			require.Equal(t, want, got, "needle %x haystack %x", needle, haystack)
		}

		// The compare strategy is only equal to its precheck variant when the
		// first bytes agree; otherwise the short circuit answers false.
		if haystack[0] == needle[0] {
			want, _ := pairs[2].base(haystack, needle)
			got, err := pairs[2].checked(haystack, needle)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	}
}

func TestPrecheck_EmptyOperand(t *testing.T) {
	f := Precheck(func(haystack, needle []byte) (bool, error) {
		t.Fatal("base strategy must not be called")
		return false, nil
	})

	_, err := f(nil, []byte("a"))
	require.ErrorIs(t, err, ErrEmptyOperand)
	_, err = f([]byte("a"), []byte{})
	require.ErrorIs(t, err, ErrEmptyOperand)

	ok, err := f([]byte("a"), []byte("b"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBoundedCompare_LooseComparison(t *testing.T) {
	cases := []struct {
		name             string
		haystack, needle string
		want             bool
	}{
		// "0" >= "he": '0' sorts before 'h'.
		{"letters prefix", "hello", "he", false},
		// "0" >= "\x01": '0' sorts after 0x01.
		{"control byte prefix", "\x01abc", "\x01", true},
		// Numeric needle: 0 >= 5 is false, 0 >= -3 is true.
		{"numeric needle", "5abc", "5", false},
		{"negative numeric needle", "-3x", "-3", true},
		// "-1" >= "zz": '-' sorts before 'z'.
		{"haystack sorts first", "aa", "zz", false},
		// "1" >= "!": '1' sorts after '!'.
		{"haystack sorts last", "~~", "!", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := BoundedCompare([]byte(c.haystack), []byte(c.needle))
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestParseNumeric(t *testing.T) {
	numeric := map[string]float64{
		"5":      5,
		" 42 ":   42,
		"-3":     -3,
		"+1.5":   1.5,
		".5":     0.5,
		"1.":     1,
		"1e3":    1000,
		"2.5E-1": 0.25,
	}
	for in, want := range numeric {
		v, ok := parseNumeric([]byte(in))
		require.True(t, ok, in)
		require.InDelta(t, want, v, 1e-12, in)
	}

	for _, in := range []string{"", " ", "abc", "0x1A", "inf", "NaN", "1e", "--1", ".", "1 2", "5a"} {
		_, ok := parseNumeric([]byte(in))
		require.False(t, ok, in)
	}
}

func TestDigest(t *testing.T) {
	ok, err := Digest([]byte("hello"), []byte("he"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = Digest([]byte("h"), []byte("he"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRadixLongestPrefix_EmptyNeedle(t *testing.T) {
	ok, err := RadixLongestPrefix([]byte("hello"), nil)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBitStringStrategies_LastBitMismatch(t *testing.T) {
	// Nine bytes put the last needle byte in a second word.
	haystack := []byte("abcdefghijk")
	needle := []byte("abcdefghi")

	for _, check := range []Func{BitStringLCP, WordCompare, BitStringPrefixEqual, WordPrefixHash} {
		ok, err := check(haystack, needle)
		require.NoError(t, err)
		require.True(t, ok)

		needle[8] ^= 0x80
		ok, err = check(haystack, needle)
		require.NoError(t, err)
		require.False(t, ok)
		needle[8] ^= 0x80

		ok, err = check(haystack, nil)
		require.NoError(t, err)
		require.True(t, ok)
	}
}
