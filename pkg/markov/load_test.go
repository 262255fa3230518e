package markov

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"
)

func TestNewFromFile(t *testing.T) {
	path := writeSource(t, "one fish\r\ntwo fish\n")

	m, err := NewFromFile(4, path)
	if err != nil {
		t.Fatalf("NewFromFile() error = %v", err)
	}
	want := mustNew(t, 4, "one fish two fish ")
	if m.String() != want.String() {
		t.Errorf("file model %s differs from string model %s", m, want)
	}
	if m.FirstKgram() != "one " {
		t.Errorf("FirstKgram() = %q, want \"one \"", m.FirstKgram())
	}
}

func TestNewFromFileMissing(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	m, err := NewFromFile(3, "does/not/exist.txt", WithLogger(logger))
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("expected ErrSourceUnavailable, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected the cause to be kept, got %v", err)
	}
	if m == nil {
		t.Fatal("expected an empty model, got nil")
	}

	if m.Order() != 3 || m.FirstKgram() != "" || m.Kgrams().Len() != 0 {
		t.Errorf("expected empty order-3 model, got order %d first %q with %d k-grams",
			m.Order(), m.FirstKgram(), m.Kgrams().Len())
	}
	if _, err := m.NextChar("abc"); !errors.Is(err, ErrUnknownKgram) {
		t.Errorf("expected ErrUnknownKgram from empty model, got %v", err)
	}
	if !strings.Contains(logs.String(), "Error loading source text") {
		t.Errorf("expected the failure to be logged, got %q", logs.String())
	}
}

func TestNewFromReader(t *testing.T) {
	m, err := NewFromReader(2, strings.NewReader("abab"))
	if err != nil {
		t.Fatalf("NewFromReader() error = %v", err)
	}
	if got := m.String(); got != "{ab=[a]$, ba=[b]}" {
		t.Errorf("String() = %q", got)
	}

	readErr := errors.New("disk on fire")
	m, err = NewFromReader(2, iotest.ErrReader(readErr))
	if !errors.Is(err, ErrSourceUnavailable) || !errors.Is(err, readErr) {
		t.Errorf("expected ErrSourceUnavailable wrapping the read error, got %v", err)
	}
	if m == nil || m.Kgrams().Len() != 0 {
		t.Errorf("expected an empty model after a read failure, got %v", m)
	}

	if _, err = NewFromReader(5, strings.NewReader("abc")); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("expected ErrInvalidOrder for a short source, got %v", err)
	}
}
