// Package wordlist answers "is this string a valid English word?" against a
// fixed word list embedded in the binary, and enumerates the list filtered
// by exact length or length range.
//
// The index behind the package is built lazily on first use, exactly once,
// and is immutable afterwards: every function is safe for unsynchronized
// concurrent use, and membership tests allocate nothing. Enumeration order
// is deliberately unspecified (it is not alphabetical); only the ascending
// length ordering of Words and WordsInRange is guaranteed.
//
//	if wordlist.Exists("rusty") {
//		...
//	}
//	for w := range wordlist.WordsByLen(2) {
//		fmt.Println(w)
//	}
package wordlist

import (
	"fmt"
	"iter"
	"sync"

	"github.com/standardbeagle/wordlist/internal/index"
	"github.com/standardbeagle/wordlist/internal/words"
)

// load builds the index on first call and returns the shared instance
// afterwards. sync.OnceValue gives the acquire/release guarantee:
// concurrent first callers either run the build or block until it is
// complete; nobody observes a partially built index.
var load = sync.OnceValue(func() *index.Index {
	ix, err := index.Build(words.Raw())
	if err != nil {
		// The embedded list ships inside the module, so a malformed blob
		// is a packaging defect, not a runtime condition.
		panic(fmt.Sprintf("wordlist: embedded word list is malformed: %v", err))
	}
	return ix
})

// Exists reports whether word is in the embedded word list. Any input is
// acceptable: the empty string, strings of lengths the list does not
// contain, and arbitrary non-ASCII input all answer false.
func Exists(word string) bool {
	return load().Contains(word)
}

// Words returns an iterator over every word in the list, ascending by
// length; order within one length is unspecified. Each call returns an
// independent, restartable sequence.
func Words() iter.Seq[string] {
	return load().Words()
}

// WordsByLen returns an iterator over every word of exactly length n.
// Lengths with no words yield an empty sequence.
func WordsByLen(n int) iter.Seq[string] {
	return load().WordsByLen(n)
}

// WordsInRange returns an iterator over every word whose length falls in
// [minLen, maxLen], ascending by length. An inverted range yields an
// empty sequence.
func WordsInRange(minLen, maxLen int) iter.Seq[string] {
	return load().WordsInRange(minLen, maxLen)
}

// Len returns the number of words in the embedded list.
func Len() int {
	return load().Len()
}

// Stats describes the resident footprint of the built index.
type Stats struct {
	Words   int           // total indexed words
	MinLen  int           // shortest word length present
	MaxLen  int           // longest word length present
	Buckets []BucketStats // one per populated length, ascending

	BufferBytes int // word-buffer bytes across all buckets
	SlotBytes   int // slot-table bytes across all buckets
}

// BucketStats describes the words of one length.
type BucketStats struct {
	Len      int     // word length
	Count    int     // words of this length
	Capacity int     // slot-table capacity
	Load     float64 // Count / Capacity
}

// IndexStats reports footprint statistics for the built index. Like every
// other function it triggers the one-time build on first use.
func IndexStats() Stats {
	is := load().Stats()
	s := Stats{
		Words:       is.Words,
		MinLen:      is.MinLen,
		MaxLen:      is.MaxLen,
		Buckets:     make([]BucketStats, 0, len(is.Buckets)),
		BufferBytes: is.BufferBytes,
		SlotBytes:   is.SlotBytes,
	}
	for _, b := range is.Buckets {
		s.Buckets = append(s.Buckets, BucketStats(b))
	}
	return s
}
