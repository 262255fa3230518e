package markov

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// NewFromReader reads r to the end and builds an order-k model of its
// contents. If reading fails, it returns an empty model that answers every
// query as a model without k-grams, together with an error wrapping
// ErrSourceUnavailable.
func NewFromReader(k int, r io.Reader, opts ...Option) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return unavailable(k, opts, err)
	}
	return New(k, string(data), opts...)
}

// NewFromFile builds an order-k model of the file at path. A missing or
// unreadable file is reported the same way as a failing reader in
// NewFromReader.
func NewFromFile(k int, path string, opts ...Option) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return unavailable(k, opts, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	m, err := NewFromReader(k, f, opts...)
	if err != nil {
		return m, fmt.Errorf("failed to model %s: %w", path, err)
	}
	return m, nil
}

func unavailable(k int, opts []Option, cause error) (*Model, error) {
	m := newModel(k, opts)
	m.logger.Error("Error loading source text",
		slog.Int("order", k),
		slog.String("error", cause.Error()),
	)
	return m, fmt.Errorf("%w: %w", ErrSourceUnavailable, cause)
}
