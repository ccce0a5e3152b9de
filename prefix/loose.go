package prefix

import (
	"bytes"
	"strconv"
)

// looseGreaterOrEqual evaluates c >= s where c is an integer and s a byte
// string, using weak-typing rules: a numeric s is compared as a number,
// anything else is compared bytewise against the decimal text of c.
func looseGreaterOrEqual(c int, s []byte) bool {
	if v, ok := parseNumeric(s); ok {
		return float64(c) >= v
	}
	return bytes.Compare(strconv.AppendInt(nil, int64(c), 10), s) >= 0
}

// parseNumeric accepts optional surrounding whitespace, an optional sign,
// decimal digits with an optional fraction, and an optional exponent.
// Hex, "inf" and "nan" are not numeric.
func parseNumeric(s []byte) (float64, bool) {
	s = bytes.Trim(s, " \t\n\r\v\f")
	if len(s) == 0 {
		return 0, false
	}

	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	intDigits := countDigits(s[i:])
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		i++
		fracDigits = countDigits(s[i:])
		i += fracDigits
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := countDigits(s[j:])
		if expDigits == 0 {
			return 0, false
		}
		i = j + expDigits
	}
	if i != len(s) {
		return 0, false
	}

	// ParseFloat reports ErrRange with a usable ±Inf or 0 for huge exponents.
	v, _ := strconv.ParseFloat(string(s), 64)
	return v, true
}

func countDigits(s []byte) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
