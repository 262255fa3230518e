package markov

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// seededRand returns a deterministic generator so sampling tests are reproducible.
func seededRand() *rand.Rand {
	return rand.New(rand.NewPCG(7277, 7278))
}

// mustNew builds a model and fails the test if construction errors.
func mustNew(t *testing.T, k int, text string, opts ...Option) *Model {
	t.Helper()
	m, err := New(k, text, opts...)
	if err != nil {
		t.Fatalf("New(%d, %q) error = %v", k, text, err)
	}
	return m
}

// writeSource writes text to a file in a fresh temp dir and returns its path.
func writeSource(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("failed to write source file: %v", err)
	}
	return path
}

var (
	benchmarkCorpus string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads this package's own sources to get a reasonably
// sized, newline-heavy corpus.
func createBenchmarkCorpus() string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		for _, file := range []string{"model.go", "sample.go", "load.go", "kgrams.go", "stats.go"} {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = "this is a fallback corpus for benchmarking. it is not very long but will prevent a crash. "
				return
			}
			sb.Write(content)
		}
		benchmarkCorpus = sb.String()
	})
	return benchmarkCorpus
}
