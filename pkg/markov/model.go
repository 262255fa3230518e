package markov

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode/utf8"
)

// Rand is the source of randomness used for sampling. *rand.Rand from
// math/rand/v2 satisfies it, which lets tests supply a seeded generator.
type Rand interface {
	// IntN returns a value in [0, n). It is only called with n > 0.
	IntN(n int) int
}

// globalRand draws from the math/rand/v2 top-level source.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Option configures a Model at construction time.
type Option func(*Model)

// WithRand sets the randomness used by RandomKgram and NextChar.
// Default: the math/rand/v2 global source.
func WithRand(r Rand) Option {
	return func(m *Model) {
		if r != nil {
			m.rand = r
		}
	}
}

// WithLogger sets the logger used while building the model. By default all
// logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.SetLogger(logger)
	}
}

// entry holds what was observed after one k-gram. terminal is set when the
// k-gram also ends the source text, an occurrence that adds no follower.
type entry struct {
	followers []rune
	terminal  bool
}

// Model is an order-K Markov model of a source text. It is built once and
// never modified afterwards, so its queries are safe for concurrent use as
// long as the configured Rand is.
type Model struct {
	order  int
	first  string
	table  map[string]*entry
	keys   []string // sorted, fixed at build time
	rand   Rand
	logger *slog.Logger
}

var newlineReplacer = strings.NewReplacer("\r", "", "\n", " ")

// Normalize removes every carriage return from text and turns every newline
// into a single space. All other characters are kept verbatim.
func Normalize(text string) string {
	return newlineReplacer.Replace(text)
}

// New builds an order-k model of text. The order must be positive and no
// larger than the normalized text measured in runes; otherwise an error
// wrapping ErrInvalidOrder is returned. Text that is not valid UTF-8 is
// rejected with ErrInvalidText rather than modeled with replacement
// characters.
func New(k int, text string, opts ...Option) (*Model, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: order %d must be positive", ErrInvalidOrder, k)
	}
	normalized := Normalize(text)
	if !utf8.ValidString(normalized) {
		return nil, fmt.Errorf("%w: invalid byte at offset %d", ErrInvalidText, invalidOffset(normalized))
	}
	src := []rune(normalized)
	if k > len(src) {
		return nil, fmt.Errorf("%w: order %d exceeds source length %d", ErrInvalidOrder, k, len(src))
	}

	m := newModel(k, opts)
	m.build(src)
	return m, nil
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence.
func invalidOffset(s string) int {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return i
			}
		}
	}
	return -1
}

func newModel(k int, opts []Option) *Model {
	m := &Model{
		order:  k,
		table:  make(map[string]*entry),
		rand:   globalRand{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) build(src []rune) {
	k := m.order
	transitions := 0
	for i := 0; i+k <= len(src); i++ {
		kgram := string(src[i : i+k])
		e, ok := m.table[kgram]
		if !ok {
			e = &entry{}
			m.table[kgram] = e
		}
		// The last k-gram has nothing after it.
		if i+k < len(src) {
			e.followers = append(e.followers, src[i+k])
			transitions++
		} else {
			e.terminal = true
		}
	}
	m.first = string(src[:k])

	m.keys = make([]string, 0, len(m.table))
	for kgram := range m.table {
		m.keys = append(m.keys, kgram)
	}
	slices.Sort(m.keys)

	m.logger.Debug("Model built",
		slog.Int("order", k),
		slog.Int("source_length", len(src)),
		slog.Int("kgrams", len(m.keys)),
		slog.Int("transitions", transitions),
	)
}

// SetLogger replaces the model's logger. A nil logger is ignored.
func (m *Model) SetLogger(logger *slog.Logger) {
	if logger != nil {
		m.logger = logger
	}
}

// Order returns K, the length of every k-gram in the model.
func (m *Model) Order() int {
	return m.order
}

// FirstKgram returns the k-gram at the start of the source text, or "" for a
// model whose source could not be read.
func (m *Model) FirstKgram() string {
	return m.first
}

// Kgrams returns a read-only view of the distinct k-grams in the model.
func (m *Model) Kgrams() KgramSet {
	return KgramSet{table: m.table, keys: m.keys}
}
