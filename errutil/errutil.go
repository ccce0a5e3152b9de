// Package errutil reports broken internal invariants.
package errutil

import "fmt"

// debug turns Bug reports into panics.
const debug = false

// Bug reports a state the caller believed impossible. It is a no-op unless
// debug is set.
func Bug(format string, msg ...any) {
	if debug {
		panic(fmt.Sprintf(format, msg...))
	}
}

func BugOn(cond bool, format string, msg ...any) {
	if debug && cond {
		Bug(format, msg...)
	}
}
