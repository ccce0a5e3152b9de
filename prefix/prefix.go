// Package prefix holds the prefix-check strategies being benchmarked.
//
// Every strategy answers one question: does haystack start with needle?
// A strategy that cannot answer returns a non-nil error instead of a
// result; callers count such calls and move on.
package prefix

import "errors"

// ErrEmptyOperand is returned by precheck strategies when the haystack or
// the needle has no first byte to compare.
var ErrEmptyOperand = errors.New("prefix: empty operand has no first byte")

// Checker is the capability every strategy provides.
type Checker interface {
	HasPrefix(haystack, needle []byte) (bool, error)
}

// Func adapts a plain function to Checker.
type Func func(haystack, needle []byte) (bool, error)

func (f Func) HasPrefix(haystack, needle []byte) (bool, error) {
	return f(haystack, needle)
}

// Strategy is a Checker with a display name.
type Strategy struct {
	Name  string
	Check Checker
}
