package markov

import (
	"fmt"
	"slices"
)

// RandomKgram returns one of the model's distinct k-grams chosen uniformly at
// random. How often a k-gram occurred in the source has no effect on the
// draw. It returns ErrEmptyModel when there is nothing to choose from.
func (m *Model) RandomKgram() (string, error) {
	if len(m.keys) == 0 {
		return "", ErrEmptyModel
	}
	return m.keys[m.rand.IntN(len(m.keys))], nil
}

// NextChar returns a character that followed kgram in the source text. Each
// recorded occurrence is equally likely, so a character that followed kgram
// N times out of M is returned with probability N/M.
//
// An unknown k-gram yields an error wrapping ErrUnknownKgram. A k-gram that
// only occurred at the very end of the text has no followers and yields an
// error wrapping ErrNoFollower.
func (m *Model) NextChar(kgram string) (rune, error) {
	e, err := m.lookup(kgram)
	if err != nil {
		return 0, err
	}
	if len(e.followers) == 0 {
		return 0, fmt.Errorf("%w: %q only occurs at end of text", ErrNoFollower, kgram)
	}
	return e.followers[m.rand.IntN(len(e.followers))], nil
}

// Followers returns a copy of the characters recorded after kgram, in source
// order with repeats.
func (m *Model) Followers(kgram string) ([]rune, error) {
	e, err := m.lookup(kgram)
	if err != nil {
		return nil, err
	}
	return slices.Clone(e.followers), nil
}

func (m *Model) lookup(kgram string) (*entry, error) {
	e, ok := m.table[kgram]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKgram, kgram)
	}
	return e, nil
}
