package prefix

import (
	"PrefixBench/utils"
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

var ErrUnknownStrategy = errors.New("prefix: unknown strategy")

// Registry is an ordered list of strategies. Runs, reports and aggregation
// all follow registry order.
type Registry []Strategy

// Default returns the baseline set of eight strategies.
//
// "rune index" reuses IndexAtZero and measures the same function under a
// second label. RuneIndexAtZero is in Extended.
func Default() Registry {
	return Registry{
		{Name: "index", Check: Func(IndexAtZero)},
		{Name: "slice", Check: Func(SliceEqual)},
		{Name: "compare", Check: Func(BoundedCompare)},
		{Name: "index with precheck", Check: Precheck(IndexAtZero)},
		{Name: "slice with precheck", Check: Precheck(SliceEqual)},
		{Name: "compare with precheck", Check: Precheck(BoundedCompare)},
		{Name: "rune index", Check: Func(IndexAtZero)},
		{Name: "rune slice", Check: Func(RuneSliceEqual)},
	}
}

// Extended returns Default followed by strategies built on bit strings,
// hashing and radix trees.
func Extended() Registry {
	return append(Default(),
		Strategy{Name: "rune index (decoded)", Check: Func(RuneIndexAtZero)},
		Strategy{Name: "bytes.HasPrefix", Check: Func(StdHasPrefix)},
		Strategy{Name: "bitstring lcp", Check: Func(BitStringLCP)},
		Strategy{Name: "word compare", Check: Func(WordCompare)},
		Strategy{Name: "bitstring prefix equal", Check: Func(BitStringPrefixEqual)},
		Strategy{Name: "word prefix hash", Check: Func(WordPrefixHash)},
		Strategy{Name: "xxh3 digest", Check: Func(Digest)},
		Strategy{Name: "radix longest prefix", Check: Func(RadixLongestPrefix)},
	)
}

// Names returns the strategy labels in registry order.
func (r Registry) Names() []string {
	return utils.Map(r, func(s Strategy) string { return s.Name })
}

// Lookup finds a strategy by its exact label.
func (r Registry) Lookup(name string) (Strategy, bool) {
	i := slices.IndexFunc(r, func(s Strategy) bool { return s.Name == name })
	if i < 0 {
		return Strategy{}, false
	}
	return r[i], true
}

// Select returns the strategies named in names, in registry order.
func (r Registry) Select(names ...string) (Registry, error) {
	for _, name := range names {
		if _, ok := r.Lookup(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
		}
	}

	selected := make(Registry, 0, len(names))
	for _, s := range r {
		if slices.Contains(names, s.Name) {
			selected = append(selected, s)
		}
	}
	return selected, nil
}
