package index

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

// TestMain ensures no goroutines leak from any test in this package. The
// index is designed for lock-free concurrent reads, so leaked readers
// would point at a real defect.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestConcurrentReads hammers one shared index from many goroutines.
// Membership tests and enumerations share no mutable state after the
// build, so this must be race-free (run with -race) and every answer
// must match single-threaded behavior.
func TestConcurrentReads(t *testing.T) {
	words := make([]string, 0, 1000)
	for i := 0; i < 1000; i++ {
		words = append(words, fmt.Sprintf("word%04d", i))
	}
	ix := buildFrom(t, words...)

	var g errgroup.Group
	for w := 0; w < 16; w++ {
		g.Go(func() error {
			for _, word := range words {
				if !ix.Contains(word) {
					return fmt.Errorf("lost word %q under concurrency", word)
				}
			}
			if ix.Contains("word9999") {
				return fmt.Errorf("phantom word under concurrency")
			}
			n := 0
			for range ix.Words() {
				n++
			}
			if n != len(words) {
				return fmt.Errorf("enumeration yielded %d words, want %d", n, len(words))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// TestConcurrentIteratorsAreIndependent interleaves many simultaneously
// live sequences over the same index.
func TestConcurrentIteratorsAreIndependent(t *testing.T) {
	ix := buildFrom(t, "a", "i", "at", "to", "cat", "dog", "list")

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			seen := make(map[string]int)
			for word := range ix.Words() {
				seen[word]++
			}
			for word, n := range seen {
				if n != 1 {
					return fmt.Errorf("word %q yielded %d times", word, n)
				}
			}
			if len(seen) != 7 {
				return fmt.Errorf("yielded %d distinct words, want 7", len(seen))
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
}
