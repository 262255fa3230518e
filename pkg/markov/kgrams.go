package markov

import (
	"iter"
	"slices"
)

// KgramSet is a read-only view of a model's k-grams. It shares storage with
// the model and exposes no way to change it.
type KgramSet struct {
	table map[string]*entry
	keys  []string
}

// Len returns the number of distinct k-grams.
func (s KgramSet) Len() int {
	return len(s.keys)
}

// Contains reports whether kgram occurs in the source text.
func (s KgramSet) Contains(kgram string) bool {
	_, ok := s.table[kgram]
	return ok
}

// All iterates over the k-grams in lexical order.
func (s KgramSet) All() iter.Seq[string] {
	return slices.Values(s.keys)
}

// Sorted returns the k-grams in lexical order. The slice is a copy and may be
// modified freely.
func (s KgramSet) Sorted() []string {
	return slices.Clone(s.keys)
}
