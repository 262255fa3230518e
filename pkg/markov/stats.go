package markov

import "strings"

// Stats holds aggregated counts for a model.
type Stats struct {
	Order       int // The length of every k-gram
	Kgrams      int // The number of distinct k-grams
	Transitions int // The number of recorded followers across all k-grams
	DeadEnds    int // The number of k-grams with no follower at all
}

// Stats returns aggregated counts for the model.
func (m *Model) Stats() Stats {
	st := Stats{Order: m.order, Kgrams: len(m.keys)}
	for _, e := range m.table {
		st.Transitions += len(e.followers)
		if len(e.followers) == 0 {
			st.DeadEnds++
		}
	}
	return st
}

// String dumps the whole mapping for diagnostics, e.g. "{ab=[a]$, ba=[b]}".
// Keys are sorted; a trailing '$' marks the k-gram that ends the source text.
func (m *Model) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, kgram := range m.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		e := m.table[kgram]
		b.WriteString(kgram)
		b.WriteString("=[")
		b.WriteString(string(e.followers))
		b.WriteByte(']')
		if e.terminal {
			b.WriteByte('$')
		}
	}
	b.WriteByte('}')
	return b.String()
}
