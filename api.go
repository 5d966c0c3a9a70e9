package classmerge

import "sync"

// defaultMerger is built lazily on first use. DefaultConfig is covered by the
// test suite, so a build failure here is a programming error in this package
// and panics rather than being surfaced per call.
var defaultMerger = sync.OnceValue(func() *Merger {
	m, err := New(DefaultConfig())
	if err != nil {
		panic("classmerge: default config failed to build: " + err.Error())
	}
	return m
})

// Merge flattens its arguments (see Join) and resolves utility-class
// conflicts against the default vocabulary: for tokens that target the same
// style property under the same variant modifiers, the rightmost wins;
// everything else passes through in order.
func Merge(args ...any) string { return defaultMerger().Merge(args...) }
